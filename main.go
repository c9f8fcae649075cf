package main

import (
	"os"

	"github.com/decker502/shroom/cmd"
	"github.com/decker502/shroom/pkg/embedded"
)

func main() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
