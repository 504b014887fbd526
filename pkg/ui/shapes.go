package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// cornerSteps 每个圆角的分段数
const cornerSteps = 8

// RoundedRectOutline 返回圆角矩形的轮廓点（顺时针，从左上角圆弧开始）
//
// r 会被限制在短边的一半以内；r 为短边一半时就是胶囊形。
func RoundedRectOutline(x, y, w, h, r float64) [][2]float64 {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	corners := [4]struct{ cx, cy, start float64 }{
		{x + r, y + r, math.Pi},           // 左上
		{x + w - r, y + r, 1.5 * math.Pi}, // 右上
		{x + w - r, y + h - r, 0},         // 右下
		{x + r, y + h - r, 0.5 * math.Pi}, // 左下
	}
	pts := make([][2]float64, 0, 4*(cornerSteps+1))
	for _, c := range corners {
		for i := 0; i <= cornerSteps; i++ {
			a := c.start + float64(i)/cornerSteps*math.Pi/2
			pts = append(pts, [2]float64{c.cx + r*math.Cos(a), c.cy + r*math.Sin(a)})
		}
	}
	return pts
}

// FillRoundedRect 填充圆角矩形
//
// 形状是凸的，用以中心为顶点的扇形三角形一次绘制，半透明颜色不会在重叠处变深。
func FillRoundedRect(screen *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	if screen == nil || w <= 0 || h <= 0 {
		return
	}
	cr, cg, cb, ca := clr.RGBA()
	vertex := func(px, py float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(px), DstY: float32(py),
			SrcX: 1, SrcY: 1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}

	outline := RoundedRectOutline(x, y, w, h, r)
	vs := make([]ebiten.Vertex, 0, len(outline)+1)
	vs = append(vs, vertex(x+w/2, y+h/2))
	for _, p := range outline {
		vs = append(vs, vertex(p[0], p[1]))
	}
	is := make([]uint16, 0, len(outline)*3)
	for i := 1; i <= len(outline); i++ {
		next := i + 1
		if next > len(outline) {
			next = 1
		}
		is = append(is, 0, uint16(i), uint16(next))
	}

	// RGBA() 返回预乘值
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	screen.DrawTriangles(vs, is, whiteTexture(), op)
}

var whiteTex *ebiten.Image

// whiteTexture 3x3 白色纹理，取中心像素避免边缘采样
func whiteTexture() *ebiten.Image {
	if whiteTex == nil {
		whiteTex = ebiten.NewImage(3, 3)
		whiteTex.Fill(color.White)
	}
	return whiteTex
}
