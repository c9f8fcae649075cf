//go:build !android

package utils

// EnsureStorageDir 桌面端和 iOS 由 gdata 自行创建 shroom 的偏好目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 非 Android 平台不单独记录路径
func GetStoragePath() string {
	return ""
}
