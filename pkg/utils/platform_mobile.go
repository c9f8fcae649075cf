//go:build mobile

package utils

// TouchEmulateEnv 移动端不使用，保留以便调用方统一引用
const TouchEmulateEnv = "SHROOM_TOUCH_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// IsTouchCapable 移动端始终为触摸设备
func IsTouchCapable() bool {
	return true
}

// EmulatesTouch 移动端使用真实触摸，不做鼠标模拟
func EmulatesTouch(flag bool) bool {
	return false
}
