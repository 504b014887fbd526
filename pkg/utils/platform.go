//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按触屏布局运行，方便本地调试
const MobileEmulateEnv = "OWNRISK_MOBILE_EMULATE"

// IsMobile reports whether the touch-first layout should be used.
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
