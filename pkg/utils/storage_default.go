//go:build !android

package utils

// EnsureSettingsDir 桌面和 iOS 上 gdata 自己创建存储目录，这里什么都不做
func EnsureSettingsDir() (string, error) {
	return "", nil
}
