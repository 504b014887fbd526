package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if font == nil {
		return []string{textStr}
	}
	return WrapWords(textStr, maxWidth, func(s string) float64 {
		return text.Advance(s, font)
	})
}

// WrapWords 按单词换行
//
// 换行规则:
//   - 只在空白处断行
//   - 单个单词超过最大宽度时单独占一行（不拆词）
func WrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// StripEmoji 去掉 Go 字体无法显示的表情符号和变体选择符，并合并多余空格
func StripEmoji(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // 表情、符号、象形文字
		return true
	case r >= 0x2600 && r <= 0x27BF: // 杂项符号、丁巴特（❤ 等）
		return true
	case r == 0xFE0F || r == 0x200D: // 变体选择符、零宽连接符
		return true
	}
	return false
}
