//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保偏好存储目录存在并可写
// 在 gdata.Open 之前调用：gdata 把 shroom 的偏好写在 /data/data/{package}/ 下，
// 但不会创建缺失的父目录。
func EnsureStorageDir() error {
	dir, err := androidDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".shroom_write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("preferences directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return nil
}

// GetStoragePath 偏好存储所在目录（用于日志）
func GetStoragePath() string {
	dir, err := androidDataDir()
	if err != nil {
		return ""
	}
	return dir
}

// androidDataDir 返回 /data/data/{package}
func androidDataDir() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to read process name: %w", err)
	}
	pkg, err := packageFromCmdline(data)
	if err != nil {
		return "", err
	}
	return filepath.Join("/data/data", pkg), nil
}
