//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSettingsDir 在 gdata 打开之前准备 Android 的设置目录
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会创建子目录。
// 返回创建好的目录路径（用于日志）。
func EnsureSettingsDir() (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "settings")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	// 写一次探测文件，尽早暴露只读目录
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return "", fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	_ = os.Remove(probe)

	return dir, nil
}

// androidPackage 从 /proc/self/cmdline 读取包名（第一个 NUL 之前）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name, _, _ := bytes.Cut(data, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return string(name), nil
}
