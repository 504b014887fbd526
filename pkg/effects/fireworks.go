package effects

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/ownrisk/pkg/config"
)

// FireworksEmitter 烟花效果：随机发射、到达顶点后径向爆炸
//
// 每帧不清屏，而是覆盖一层半透明黑色形成拖尾。
type FireworksEmitter struct {
	runner

	cfg         config.FireworksConfig
	palette     []color.NRGBA
	rocketColor color.NRGBA
	trail       color.NRGBA
	rng         *rand.Rand

	fireworks []Firework

	// OnExplode 在烟花爆炸时调用（用于播放音效），可为 nil
	OnExplode func(x, y float64)
}

var _ Emitter = (*FireworksEmitter)(nil)

// NewFireworks creates an unmounted fireworks emitter.
func NewFireworks(cfg config.FireworksConfig, rng *rand.Rand) *FireworksEmitter {
	return &FireworksEmitter{
		runner:      runner{name: "Fireworks"},
		cfg:         cfg,
		palette:     cfg.Palette.NRGBA(),
		rocketColor: cfg.RocketColor.NRGBA(),
		trail:       color.NRGBA{A: uint8(cfg.TrailAlpha*255 + 0.5)},
		rng:         rng,
	}
}

// Mount 开始帧循环，初始没有烟花；已挂载时忽略
func (e *FireworksEmitter) Mount(frames FrameRequester, viewport ViewportSource, newSurface SurfaceFactory) {
	if e.mounted() {
		return
	}
	e.fireworks = nil
	e.mount(frames, viewport, newSurface)
	e.schedule(e.Step)
}

// Launch 在 x 处发射一枚烟花
func (e *FireworksEmitter) Launch(x float64) {
	c := e.cfg
	e.fireworks = append(e.fireworks, Firework{
		X:       x,
		Y:       e.height,
		TargetY: e.height * (c.ApexMin + e.rng.Float64()*(c.ApexMax-c.ApexMin)),
		VY:      -(c.LaunchSpeedMin + e.rng.Float64()*c.LaunchSpeedJitter),
		Color:   e.palette[e.rng.Intn(len(e.palette))],
	})
}

// Step 推进并绘制一帧
func (e *FireworksEmitter) Step() {
	if e.surface == nil {
		return
	}
	c := e.cfg
	e.surface.Fade(e.trail)

	if e.rng.Float64() < c.LaunchChance {
		e.Launch(e.rng.Float64() * e.width)
	}

	for i := range e.fireworks {
		f := &e.fireworks[i]
		if !f.Exploded {
			f.Y += f.VY
			f.VY += c.RocketGravity
			// 视口很高时可能到不了目标高度，到达弧顶也爆炸
			if f.Y <= f.TargetY || f.VY >= 0 {
				e.explode(f)
			} else {
				e.surface.FillCircle(f.X, f.Y, c.RocketRadius, e.rocketColor)
			}
			continue
		}

		f.Particles = removeIf(f.Particles, func(p *Particle) bool {
			p.X += p.VX
			p.Y += p.VY
			p.VY += c.SparkGravity
			p.Life -= c.SparkDecay
			return p.Alpha() <= 0
		})
		for j := range f.Particles {
			p := &f.Particles[j]
			e.surface.FillCircle(p.X, p.Y, c.SparkRadius, withAlpha(p.Color, p.Alpha()))
		}
	}

	e.fireworks = removeIf(e.fireworks, func(f *Firework) bool { return f.Done() })
}

// explode 生成均匀分布在圆周上的火星，同一次爆炸共用一个颜色
func (e *FireworksEmitter) explode(f *Firework) {
	c := e.cfg
	f.Exploded = true
	f.Particles = make([]Particle, c.Sparks)
	for i := range f.Particles {
		angle := 2 * math.Pi * float64(i) / float64(c.Sparks)
		speed := c.SparkSpeedMin + e.rng.Float64()*c.SparkSpeedJitter
		f.Particles[i] = Particle{
			X:     f.X,
			Y:     f.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Color: f.Color,
			Life:  1,
		}
	}
	log.Printf("[Fireworks] burst at (%.0f, %.0f)", f.X, f.Y)
	if e.OnExplode != nil {
		e.OnExplode(f.X, f.Y)
	}
}

// Unmount 停止帧循环并清空所有烟花
func (e *FireworksEmitter) Unmount() {
	if e.unmount() {
		e.fireworks = nil
	}
}

func (e *FireworksEmitter) Mounted() bool   { return e.mounted() }
func (e *FireworksEmitter) Surface() Canvas { return e.surface }
func (e *FireworksEmitter) Len() int        { return len(e.fireworks) }

// Fireworks 返回活动烟花的只读视图
func (e *FireworksEmitter) Fireworks() []Firework { return e.fireworks }
