package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/ownrisk/pkg/config"
)

// 页面上的表情用简单图形代替（Go 字体没有彩色表情字形）

var (
	HeartColor = color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	faceColor  = color.NRGBA{R: 0xfc, G: 0xd3, B: 0x4d, A: 0xff}
	inkColor   = color.NRGBA{R: 0x3f, G: 0x2a, B: 0x1d, A: 0xff}
	tearColor  = color.NRGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
)

func fillRotatedRect(dst *ebiten.Image, cx, cy, w, h, angle float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(w, h)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(whiteTexture().SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), op)
}

// HeartGeometry 心形由一个旋转 45° 的正方形和两个圆组成
//
// 返回正方形边长，以及两个圆的圆心偏移和半径（相对于 (cx, cy)）。
func HeartGeometry(size float64) (side, dx, dy, r float64) {
	side = size / (1 + 1/math.Sqrt2)
	d := side / (2 * math.Sqrt2)
	return side, d, -d, side / 2
}

// DrawHeart 以 (cx, cy) 为中心画一个宽约 size 的心
func DrawHeart(screen *ebiten.Image, cx, cy, size float64, clr color.Color) {
	if screen == nil {
		return
	}
	side, dx, dy, r := HeartGeometry(size)
	cy += r / 3 // 视觉居中
	fillRotatedRect(screen, cx, cy, side, side, math.Pi/4, clr)
	vector.DrawFilledCircle(screen, float32(cx-dx), float32(cy+dy), float32(r), clr, true)
	vector.DrawFilledCircle(screen, float32(cx+dx), float32(cy+dy), float32(r), clr, true)
}

// DrawBrokenHeart 画一个中间有裂缝的心
func DrawBrokenHeart(screen *ebiten.Image, cx, cy, size float64, clr, bg color.Color) {
	if screen == nil {
		return
	}
	DrawHeart(screen, cx, cy, size, clr)
	// 裂缝：自上而下的折线
	h := size * 0.45
	pts := [][2]float64{{0, -h}, {-size * 0.08, -h * 0.4}, {size * 0.06, 0}, {-size * 0.05, h * 0.45}, {0, h}}
	for i := 0; i+1 < len(pts); i++ {
		vector.StrokeLine(screen,
			float32(cx+pts[i][0]), float32(cy+pts[i][1]),
			float32(cx+pts[i+1][0]), float32(cy+pts[i+1][1]),
			float32(size*0.07), bg, true)
	}
}

// DrawSadFace 画一个流泪的脸
func DrawSadFace(screen *ebiten.Image, cx, cy, size float64) {
	if screen == nil {
		return
	}
	r := size / 2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), faceColor, true)
	eye := float32(r * 0.12)
	vector.DrawFilledCircle(screen, float32(cx-r*0.35), float32(cy-r*0.2), eye, inkColor, true)
	vector.DrawFilledCircle(screen, float32(cx+r*0.35), float32(cy-r*0.2), eye, inkColor, true)

	// 向下弯的嘴：圆弧上半部分
	const segments = 8
	mouthR := r * 0.45
	mcx, mcy := cx, cy+r*0.65
	for i := 0; i < segments; i++ {
		a0 := math.Pi + math.Pi*float64(i)/segments
		a1 := math.Pi + math.Pi*float64(i+1)/segments
		vector.StrokeLine(screen,
			float32(mcx+mouthR*math.Cos(a0)), float32(mcy+mouthR*math.Sin(a0)*0.6),
			float32(mcx+mouthR*math.Cos(a1)), float32(mcy+mouthR*math.Sin(a1)*0.6),
			float32(r*0.1), inkColor, true)
	}

	// 眼泪
	vector.DrawFilledCircle(screen, float32(cx-r*0.35), float32(cy+r*0.15), float32(r*0.14), tearColor, true)
	vector.DrawFilledCircle(screen, float32(cx+r*0.35), float32(cy+r*0.15), float32(r*0.14), tearColor, true)
}

// DrawEmoji 画拒绝文案旁的表情
func DrawEmoji(screen *ebiten.Image, emoji string, cx, cy, size float64, bg color.Color) {
	switch emoji {
	case config.EmojiSad:
		DrawSadFace(screen, cx, cy, size)
	default:
		DrawBrokenHeart(screen, cx, cy, size, HeartColor, bg)
	}
}
