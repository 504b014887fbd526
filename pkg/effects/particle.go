package effects

import (
	"image/color"

	"github.com/decker502/ownrisk/pkg/game"
)

// FrameRequester 每帧回调来源；*game.FrameLoop 满足此接口
type FrameRequester interface {
	RequestFrame(fn func()) game.FrameID
	CancelFrame(id game.FrameID)
}

// ViewportSource 视口尺寸及变化监听；*game.Viewport 满足此接口
type ViewportSource interface {
	Size() (w, h float64)
	OnResize(fn func(w, h float64)) (remove func())
}

// Canvas 发射器独占的绘图表面
type Canvas interface {
	// Resize 改变表面尺寸，内容可以丢弃
	Resize(w, h int)
	// Clear 清成全透明
	Clear()
	// Fade 用半透明颜色覆盖整个表面（拖尾效果）
	Fade(c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
	// FillRotatedRect 以 (cx, cy) 为中心绘制旋转 angle 弧度的矩形
	FillRotatedRect(cx, cy, w, h, angle float64, c color.NRGBA)
}

// SurfaceFactory 按视口尺寸创建绘图表面
type SurfaceFactory func(w, h int) Canvas

// Particle 彩纸片或烟花火星
//
// 坐标是视口绝对像素，速度单位是像素/帧。
// Rotation、Spin、W、H 只有彩纸使用。
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Spin     float64
	W, H     float64
	Color    color.NRGBA
	Life     float64
}

// Alpha 返回绘制透明度，即 Life 夹到 [0, 1]
func (p *Particle) Alpha() float64 {
	if p.Life < 0 {
		return 0
	}
	if p.Life > 1 {
		return 1
	}
	return p.Life
}

// Firework 上升中的烟花弹；爆炸后持有自己的火星
type Firework struct {
	X, Y      float64
	TargetY   float64
	VY        float64
	Exploded  bool
	Particles []Particle
	Color     color.NRGBA
}

// Done 爆炸且火星全部消失后可以移除
func (f *Firework) Done() bool {
	return f.Exploded && len(f.Particles) == 0
}

// removeIf 原地删除满足条件的元素，保持顺序
func removeIf[T any](s []T, drop func(*T) bool) []T {
	out := s[:0]
	for i := range s {
		if !drop(&s[i]) {
			out = append(out, s[i])
		}
	}
	// 清掉尾部，避免持有已删除元素的引用
	var zero T
	for i := len(out); i < len(s); i++ {
		s[i] = zero
	}
	return out
}

// withAlpha 按 alpha 缩放颜色的不透明度
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}
