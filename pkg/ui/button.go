package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/ownrisk/pkg/utils"
)

// ButtonState 按钮交互状态
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonDisabled
)

// Button 矩形文字按钮
//
// 职责：
//   - 命中检测（悬停、点击）
//   - 根据 Enabled 决定是否响应
//   - 绘制圆角底色和居中文字
//
// 隐藏（Visible=false）的按钮既不绘制也不响应。
type Button struct {
	Label string

	// 左上角位置和尺寸（逻辑像素）
	X, Y, W, H float64

	Fill      color.NRGBA
	TextColor color.NRGBA

	Visible bool
	Enabled bool
	// Opacity 0.0 ~ 1.0，用于淡出
	Opacity float64

	State   ButtonState
	OnClick func()
}

// NewButton 创建可见、可用的按钮
func NewButton(label string, w, h float64, fill, textColor color.NRGBA, onClick func()) *Button {
	return &Button{
		Label:     label,
		W:         w,
		H:         h,
		Fill:      fill,
		TextColor: textColor,
		Visible:   true,
		Enabled:   true,
		Opacity:   1,
		OnClick:   onClick,
	}
}

// Contains 检测点是否在按钮范围内
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Update 根据输入更新状态，点击时调用 OnClick。返回是否被点击。
func (b *Button) Update(in utils.InputState) bool {
	if !b.Visible {
		b.State = ButtonNormal
		return false
	}
	if !b.Enabled {
		b.State = ButtonDisabled
		return false
	}

	if !b.Contains(float64(in.X), float64(in.Y)) {
		b.State = ButtonNormal
		return false
	}
	b.State = ButtonHovered
	if !in.JustPressed {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Click 模拟一次点击（键盘快捷键使用），隐藏或禁用时忽略
func (b *Button) Click() bool {
	if !b.Visible || !b.Enabled {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw 绘制按钮
func (b *Button) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	if screen == nil || !b.Visible || b.Opacity <= 0 {
		return
	}

	fill := b.Fill
	switch b.State {
	case ButtonHovered:
		fill = lighten(fill, 0.12)
	case ButtonDisabled:
		fill.A = uint8(float64(fill.A) * 0.6)
	}
	fill.A = uint8(float64(fill.A) * b.Opacity)

	// 胶囊形
	FillRoundedRect(screen, b.X, b.Y, b.W, b.H, b.H/2, fill)

	tc := b.TextColor
	tc.A = uint8(float64(tc.A) * b.Opacity)
	DrawCentered(screen, b.Label, face, b.X+b.W/2, b.Y+(b.H-LineHeight(face))/2, tc)
}

// lighten 向白色混合
func lighten(c color.NRGBA, t float64) color.NRGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*t) }
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
