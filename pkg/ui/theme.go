package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/ownrisk/pkg/config"
	"github.com/decker502/ownrisk/pkg/utils"
)

// gradientResolution 渐变纹理的边长，绘制时线性放大到全屏
const gradientResolution = 64

// Background 135° 三色渐变背景，切换主题时在 OkLab 空间交叉淡化
type Background struct {
	from, to   config.Gradient
	changedAt  time.Duration
	transition time.Duration

	pixels   []byte
	texture  *ebiten.Image
	drawnMix float64
	dirty    bool
}

// NewBackground 创建背景，初始主题为 g
func NewBackground(g config.Gradient, transition time.Duration) *Background {
	return &Background{
		from:       g,
		to:         g,
		transition: transition,
		pixels:     make([]byte, gradientResolution*gradientResolution*4),
		drawnMix:   -1,
		dirty:      true,
	}
}

// SetTheme 在 now 时刻开始向 g 过渡；与当前目标相同时忽略
//
// 过渡中再次切换时以当前的混合结果为起点，不会跳变。
func (b *Background) SetTheme(g config.Gradient, now time.Duration) {
	if g == b.to {
		return
	}
	if mix := b.Mix(now); mix < 1 {
		b.from = blendGradient(b.from, b.to, mix)
	} else {
		b.from = b.to
	}
	b.to = g
	b.changedAt = now
	b.dirty = true
}

// Target returns the gradient being transitioned to.
func (b *Background) Target() config.Gradient { return b.to }

// Mix 返回 now 时刻的过渡进度（已缓动），1 表示完成
func (b *Background) Mix(now time.Duration) float64 {
	if b.from == b.to {
		return 1
	}
	t := utils.Progress(float64(now-b.changedAt), float64(b.transition))
	return utils.EaseInOutCubic(t)
}

// Draw 把背景画满 screen
func (b *Background) Draw(screen *ebiten.Image, now time.Duration) {
	if screen == nil {
		return
	}
	mix := b.Mix(now)
	if b.texture == nil {
		b.texture = ebiten.NewImage(gradientResolution, gradientResolution)
	}
	if b.dirty || mix != b.drawnMix {
		FillGradientPixels(b.pixels, b.from, b.to, mix, gradientResolution, gradientResolution)
		b.texture.WritePixels(b.pixels)
		b.drawnMix = mix
		b.dirty = mix < 1
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/gradientResolution, float64(sh)/gradientResolution)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.texture, op)
}

// FillGradientPixels 计算 135° 渐变的 RGBA 像素（预乘，完全不透明）
//
// 方向从左上到右下：位置 (x, y) 的进度为 (x/w + y/h) / 2。
// mix 为 0 时是 from，为 1 时是 to，中间在 OkLab 空间混合。
func FillGradientPixels(dst []byte, from, to config.Gradient, mix float64, w, h int) {
	sx, sy := float64(max(w-1, 1)), float64(max(h-1, 1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := (float64(x)/sx + float64(y)/sy) / 2
			var c colorful.Color
			switch {
			case mix <= 0:
				c = from.At(t)
			case mix >= 1:
				c = to.At(t)
			default:
				c = from.At(t).BlendOkLab(to.At(t), mix).Clamped()
			}
			r, g, bl := c.RGB255()
			i := (y*w + x) * 4
			dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, bl, 0xff
		}
	}
}

// blendGradient 在 OkLab 空间逐个色标混合两个渐变
func blendGradient(a, b config.Gradient, t float64) config.Gradient {
	var out config.Gradient
	for i := range out {
		c := a[i].Colorful().BlendOkLab(b[i].Colorful(), t)
		l, ch, h := c.OkLch()
		out[i] = config.OkLch{L: l, C: ch, H: h}
	}
	return out
}
