package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/ownrisk/pkg/effects"
)

// PNGCanvas 基于 gg 的 CPU 绘图表面，不需要窗口，用于导出帧图片和测试
type PNGCanvas struct {
	dc *gg.Context
}

var _ effects.Canvas = (*PNGCanvas)(nil)

// NewPNGCanvas creates a transparent raster canvas.
func NewPNGCanvas(w, h int) *PNGCanvas {
	c := &PNGCanvas{}
	c.Resize(w, h)
	return c
}

// NewPNGSurface 是 effects.SurfaceFactory
func NewPNGSurface(w, h int) effects.Canvas {
	return NewPNGCanvas(w, h)
}

// Image returns the canvas pixels.
func (c *PNGCanvas) Image() image.Image { return c.dc.Image() }

func (c *PNGCanvas) Resize(w, h int) {
	c.dc = gg.NewContext(max(w, 1), max(h, 1))
}

func (c *PNGCanvas) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

func (c *PNGCanvas) Fade(col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	c.dc.Fill()
}

func (c *PNGCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func (c *PNGCanvas) FillRotatedRect(cx, cy, w, h, angle float64, col color.NRGBA) {
	c.dc.Push()
	c.dc.RotateAbout(angle, cx, cy)
	c.dc.SetColor(col)
	c.dc.DrawRectangle(cx-w/2, cy-h/2, w, h)
	c.dc.Fill()
	c.dc.Pop()
}

// Frame 把表面合成到纯色背景上，可选地在左上角写一行标签
type Frame struct {
	dc *gg.Context
}

// NewFrame 创建背景帧
func NewFrame(w, h int, bg color.Color) *Frame {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetColor(bg)
	dc.Clear()
	return &Frame{dc: dc}
}

// NewFrameFromImage 以现有图像（例如渐变背景）作为底图
func NewFrameFromImage(img image.Image) *Frame {
	return &Frame{dc: gg.NewContextForImage(img)}
}

// Compose 叠加一个表面
func (f *Frame) Compose(c *PNGCanvas) {
	f.dc.DrawImage(c.Image(), 0, 0)
}

// Label 用 Go Regular 字体写一行文字
func (f *Frame) Label(s string, col color.Color) error {
	face, err := labelFace(14)
	if err != nil {
		return err
	}
	f.dc.SetFontFace(face)
	f.dc.SetColor(col)
	f.dc.DrawString(s, 8, 20)
	return nil
}

// Image returns the composed frame.
func (f *Frame) Image() image.Image { return f.dc.Image() }

// SavePNG 写出 PNG 文件
func (f *Frame) SavePNG(path string) error {
	if err := f.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save frame %s: %w", path, err)
	}
	return nil
}

func labelFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
