package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version 构建时通过 -ldflags "-X github.com/decker502/shroom/cmd.Version=..." 注入
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shroom %s\n", Version)
	},
}
