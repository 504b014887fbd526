package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/ownrisk/pkg/effects"
)

// whitePixel 1x1 白色图片，缩放并着色后用于绘制旋转矩形
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// ImageCanvas 基于离屏 ebiten.Image 的绘图表面
type ImageCanvas struct {
	img  *ebiten.Image
	w, h int
}

var _ effects.Canvas = (*ImageCanvas)(nil)

// NewImageCanvas creates an offscreen canvas of the given size.
func NewImageCanvas(w, h int) *ImageCanvas {
	c := &ImageCanvas{}
	c.Resize(w, h)
	return c
}

// NewImageSurface 是 effects.SurfaceFactory
func NewImageSurface(w, h int) effects.Canvas {
	return NewImageCanvas(w, h)
}

// Image returns the backing image for compositing onto the screen.
func (c *ImageCanvas) Image() *ebiten.Image { return c.img }

// Resize 重新分配图片，旧内容丢弃
func (c *ImageCanvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if c.img != nil && c.w == w && c.h == h {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
	c.w, c.h = w, h
}

func (c *ImageCanvas) Clear() {
	c.img.Clear()
}

func (c *ImageCanvas) Fade(col color.NRGBA) {
	vector.DrawFilledRect(c.img, 0, 0, float32(c.w), float32(c.h), col, false)
}

func (c *ImageCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col, true)
}

func (c *ImageCanvas) FillRotatedRect(cx, cy, w, h, angle float64, col color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(w, h)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(col)
	op.Filter = ebiten.FilterLinear
	c.img.DrawImage(pixel(), op)
}

// DrawSurface 把发射器的表面叠加到屏幕上；非 ImageCanvas 的表面忽略
func DrawSurface(screen *ebiten.Image, surface effects.Canvas) {
	ic, ok := surface.(*ImageCanvas)
	if !ok || ic == nil || screen == nil {
		return
	}
	screen.DrawImage(ic.img, nil)
}
