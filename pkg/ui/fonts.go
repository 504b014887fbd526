// Package ui 提供页面绘制用的字体、按钮、背景渐变和图形符号
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/ownrisk/pkg/utils"
)

// Fonts 页面使用的全部字号
type Fonts struct {
	Display *text.GoTextFace // 404、Yay!
	Title   *text.GoTextFace
	Body    *text.GoTextFace
	Button  *text.GoTextFace
	Small   *text.GoTextFace
}

// LoadFonts 从内置的 Go 字体创建字体
//
// 参数：
//   - scale: 整体缩放（移动端使用更大的字号）
func LoadFonts(scale float64) (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		Display: &text.GoTextFace{Source: bold, Size: 72 * scale},
		Title:   &text.GoTextFace{Source: bold, Size: 36 * scale},
		Body:    &text.GoTextFace{Source: regular, Size: 20 * scale},
		Button:  &text.GoTextFace{Source: bold, Size: 20 * scale},
		Small:   &text.GoTextFace{Source: regular, Size: 14 * scale},
	}, nil
}

// LineHeight 返回字体的行高
func LineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// DrawCentered 以 cx 为水平中心、y 为顶部绘制一行文字
//
// 表情符号会被去掉（Go 字体没有这些字形），需要时由调用方另外绘制图形符号。
// 返回绘制后的行宽。
func DrawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, clr color.Color) float64 {
	s = utils.StripEmoji(s)
	if screen == nil || s == "" {
		return 0
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
	return text.Advance(s, face)
}

// DrawParagraph 在 maxWidth 内自动换行并逐行居中绘制，返回下一行的 y
func DrawParagraph(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y, maxWidth float64, clr color.Color) float64 {
	lh := LineHeight(face)
	for _, line := range utils.WrapText(utils.StripEmoji(s), face, maxWidth) {
		DrawCentered(screen, line, face, cx, y, clr)
		y += lh
	}
	return y
}
