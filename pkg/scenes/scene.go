// Package scenes 实现四个页面：警告页、404 页、邀请页、庆祝页
//
// 页面只负责布局、绘制和把输入转成 flow.Controller 的操作；
// 状态全部在 Controller 中，页面切换由 App 根据 Controller 的事件驱动。
package scenes

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/flow"
	"github.com/decker502/ownrisk/pkg/game"
	"github.com/decker502/ownrisk/pkg/share"
	"github.com/decker502/ownrisk/pkg/ui"
	"github.com/decker502/ownrisk/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// PrimaryActor 支持键盘触发主按钮（Enter / Space）的页面
type PrimaryActor interface {
	Primary()
}

// Env 所有页面共享的依赖
type Env struct {
	Controller *flow.Controller
	Share      *share.Provider
	Fonts      *ui.Fonts
	Viewport   *game.Viewport
	// Now 返回当前逻辑时间（用于动画）
	Now func() time.Duration
	// Input 读取本帧输入；桌面和移动端都是 utils.GetInputState
	Input func() utils.InputState
	// Scale UI 缩放（移动端更大）
	Scale float64
}

// New 按页面名称创建页面，供 SceneManager 的工厂使用
func New(name string, env *Env) Scene {
	switch name {
	case flow.ScreenWarning.String():
		return NewWarningScene(env)
	case flow.ScreenNotFound.String():
		return NewNotFoundScene(env)
	case flow.ScreenInvitation.String():
		return NewInvitationScene(env)
	case flow.ScreenCelebration.String():
		return NewCelebrationScene(env)
	default:
		return nil
	}
}

// 调色
var (
	textDark    = color.NRGBA{R: 0x4a, G: 0x1d, B: 0x3b, A: 0xff}
	textMuted   = color.NRGBA{R: 0x7a, G: 0x4a, B: 0x6b, A: 0xff}
	textError   = color.NRGBA{R: 0xc0, G: 0x26, B: 0x3b, A: 0xff}
	cardFill    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb8}
	primaryFill = color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	neutralFill = color.NRGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// ThemeTint 用于在心形裂缝等处露出背景的近似颜色
	themeTint = color.NRGBA{R: 0xfb, G: 0xe4, B: 0xef, A: 0xff}
)

const (
	buttonW = 140.0
	buttonH = 48.0
	padding = 24.0
)

func (e *Env) size() (w, h float64) {
	return e.Viewport.Size()
}

func (e *Env) scale() float64 {
	if e.Scale <= 0 {
		return 1
	}
	return e.Scale
}

func (e *Env) input() utils.InputState {
	if e.Input == nil {
		return utils.InputState{}
	}
	return e.Input()
}

func (e *Env) now() time.Duration {
	if e.Now == nil {
		return 0
	}
	return e.Now()
}

// card 页面中央的半透明圆角卡片
type card struct {
	x, y, w, h float64
}

// centeredCard 计算宽 maxW（不超过视口减去边距）、高 h 的居中卡片
func centeredCard(vw, vh, maxW, h float64) card {
	w := math.Min(maxW, vw-2*padding)
	return card{x: (vw - w) / 2, y: math.Max(padding, (vh-h)/2), w: w, h: h}
}

func (c card) centerX() float64 { return c.x + c.w/2 }

func (c card) draw(screen *ebiten.Image, fill color.NRGBA) {
	ui.FillRoundedRect(screen, c.x, c.y, c.w, c.h, 18, fill)
}

// drawFooter 每个页面底部的版权行
func drawFooter(screen *ebiten.Image, env *Env) {
	w, h := env.size()
	face := env.Fonts.Small
	y := h - ui.LineHeight(face) - 12
	width := ui.DrawCentered(screen, config.Footer, face, w/2-8, y, textMuted)
	// 文案末尾的红心
	ui.DrawHeart(screen, w/2-8+width/2+12, y+ui.LineHeight(face)/2, 12, ui.HeartColor)
}

// placeButtons 把按钮水平并排居中放在 y 处
func placeButtons(cx, y, gap float64, buttons ...*ui.Button) {
	total := -gap
	for _, b := range buttons {
		total += b.W + gap
	}
	x := cx - total/2
	for _, b := range buttons {
		b.X, b.Y = x, y
		x += b.W + gap
	}
}
