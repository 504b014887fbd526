package flow

import (
	"log"
	"net/url"
	"strings"
)

// Screen 顶层页面
type Screen int

const (
	ScreenWarning Screen = iota
	ScreenNotFound
	ScreenInvitation
	ScreenCelebration
)

// Screens lists every screen in flow order.
var Screens = []Screen{ScreenWarning, ScreenNotFound, ScreenInvitation, ScreenCelebration}

func (s Screen) String() string {
	switch s {
	case ScreenWarning:
		return "warning"
	case ScreenNotFound:
		return "not-found"
	case ScreenInvitation:
		return "invitation"
	case ScreenCelebration:
		return "celebration"
	default:
		return "unknown"
	}
}

// EntryScreen 根据启动 URL 选择入口页面
//
// 片段等于 marker（如 "#warning"）时进入警告页，否则进入伪装的 404 页。
// 无法解析的 URL 也当作没有标记处理。
func EntryScreen(rawURL, marker string) Screen {
	marker = strings.TrimPrefix(marker, "#")
	if marker == "" || rawURL == "" {
		return ScreenNotFound
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		log.Printf("[Flow] Warning: cannot parse launch URL %q: %v", rawURL, err)
		return ScreenNotFound
	}
	if u.Fragment == marker {
		return ScreenWarning
	}
	return ScreenNotFound
}
