//go:build !mobile

package utils

import "os"

// TouchEmulateEnv 桌面端强制按触摸设备处理输入的环境变量
const TouchEmulateEnv = "SHROOM_TOUCH_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
func IsMobile() bool {
	return false
}

// IsTouchCapable 当前设备是否按触摸设备处理输入
// 桌面端默认 false，可以通过设置环境变量 SHROOM_TOUCH_EMULATE=1 启用（用于本地调试）
func IsTouchCapable() bool {
	return os.Getenv(TouchEmulateEnv) == "1"
}

// EmulatesTouch 桌面端是否把鼠标当作单指触摸
// 命令行 --touch 或 SHROOM_TOUCH_EMULATE=1 任一开启即可
func EmulatesTouch(flag bool) bool {
	return flag || IsTouchCapable()
}
