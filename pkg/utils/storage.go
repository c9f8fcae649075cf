package utils

import (
	"bytes"
	"fmt"
	"strings"
)

// packageFromCmdline 从 /proc/self/cmdline 内容解析 Android 包名
//
// cmdline 以 NUL 分隔参数，第一个参数即进程名；
// 独立进程形如 "com.decker.shroom:remote"，冒号后缀不属于包名。
func packageFromCmdline(data []byte) (string, error) {
	name := data
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}

	pkg := strings.TrimSpace(string(name))
	if i := strings.IndexByte(pkg, ':'); i >= 0 {
		pkg = pkg[:i]
	}
	if pkg == "" {
		return "", fmt.Errorf("no process name in /proc/self/cmdline")
	}
	return pkg, nil
}
