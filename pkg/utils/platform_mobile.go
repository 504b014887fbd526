//go:build mobile

package utils

// IsMobile 移动端构建总是触屏优先：隐藏键盘提示、按钮放大
func IsMobile() bool { return true }
