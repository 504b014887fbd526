package effects

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/ownrisk/pkg/config"
)

// ConfettiEmitter 彩纸效果：挂载时一次性爆发，随后每帧下落、旋转、淡出
//
// 粒子全部消失后仍然每帧运行，生命周期由外部定时器控制。
type ConfettiEmitter struct {
	runner

	cfg     config.ConfettiConfig
	palette []color.NRGBA
	rng     *rand.Rand

	particles []Particle
}

var _ Emitter = (*ConfettiEmitter)(nil)

// NewConfetti creates an unmounted confetti emitter.
func NewConfetti(cfg config.ConfettiConfig, rng *rand.Rand) *ConfettiEmitter {
	return &ConfettiEmitter{
		runner:  runner{name: "Confetti"},
		cfg:     cfg,
		palette: cfg.Palette.NRGBA(),
		rng:     rng,
	}
}

// Mount 按当前视口生成一批彩纸并开始帧循环；已挂载时忽略
func (e *ConfettiEmitter) Mount(frames FrameRequester, viewport ViewportSource, newSurface SurfaceFactory) {
	if e.mounted() {
		return
	}
	e.mount(frames, viewport, newSurface)
	e.burst()
	e.schedule(e.Step)
}

func (e *ConfettiEmitter) burst() {
	c := e.cfg
	e.particles = make([]Particle, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		size := e.between(c.MinSize, c.MaxSize)
		e.particles = append(e.particles, Particle{
			X:        e.rng.Float64() * e.width,
			Y:        -e.rng.Float64() * c.SpawnBand * e.height,
			VX:       e.between(-c.MaxDrift, c.MaxDrift),
			VY:       e.between(c.MinFall, c.MaxFall),
			Rotation: e.rng.Float64() * 2 * math.Pi,
			Spin:     e.between(-c.MaxSpin, c.MaxSpin),
			W:        size,
			H:        size * 0.6,
			Color:    e.palette[e.rng.Intn(len(e.palette))],
			Life:     1,
		})
	}
}

func (e *ConfettiEmitter) between(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

// Step 推进并绘制一帧
func (e *ConfettiEmitter) Step() {
	if e.surface == nil {
		return
	}
	e.surface.Clear()

	g, decay, h := e.cfg.Gravity, e.cfg.Decay, e.height
	e.particles = removeIf(e.particles, func(p *Particle) bool {
		p.X += p.VX
		p.Y += p.VY
		p.VY += g
		p.Rotation += p.Spin
		p.Life -= decay
		return p.Life <= 0 || p.Y > h
	})

	for i := range e.particles {
		p := &e.particles[i]
		e.surface.FillRotatedRect(p.X, p.Y, p.W, p.H, p.Rotation, withAlpha(p.Color, p.Alpha()))
	}
}

// Unmount 停止帧循环并丢弃所有粒子
func (e *ConfettiEmitter) Unmount() {
	if e.unmount() {
		e.particles = nil
	}
}

func (e *ConfettiEmitter) Mounted() bool   { return e.mounted() }
func (e *ConfettiEmitter) Surface() Canvas { return e.surface }
func (e *ConfettiEmitter) Len() int        { return len(e.particles) }

// Particles 返回存活粒子的只读视图
func (e *ConfettiEmitter) Particles() []Particle { return e.particles }
