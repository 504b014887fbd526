package effects

import (
	"math"
	"testing"

	"github.com/decker502/ownrisk/pkg/game"
)

func TestFireworksLaunch(t *testing.T) {
	var s surfaces
	cfg := testFireworks()
	e := NewFireworks(cfg, testRand())
	e.Mount(game.NewFrameLoop(), game.NewViewport(800, 600), s.factory())

	if e.Len() != 0 {
		t.Fatalf("mount should start with no fireworks, got %d", e.Len())
	}

	for i := 0; i < 50; i++ {
		e.Launch(400)
	}
	for _, f := range e.Fireworks() {
		if f.Y != 600 {
			t.Errorf("rocket should start at the bottom, y=%.2f", f.Y)
		}
		if f.TargetY < 0.1*600 || f.TargetY > 0.5*600 {
			t.Errorf("targetY=%.2f outside the upper 10-50%%", f.TargetY)
		}
		if f.VY > -cfg.LaunchSpeedMin || f.VY < -(cfg.LaunchSpeedMin+cfg.LaunchSpeedJitter) {
			t.Errorf("vy=%.2f outside launch speed range", f.VY)
		}
	}
}

func TestFireworksExplodeRadialBurst(t *testing.T) {
	var s surfaces
	cfg := testFireworks()
	cfg.LaunchChance = 0
	e := NewFireworks(cfg, testRand())

	var bursts int
	e.OnExplode = func(x, y float64) { bursts++ }

	e.Mount(game.NewFrameLoop(), game.NewViewport(800, 600), s.factory())
	e.Launch(300)

	for i := 0; i < 200 && !e.Fireworks()[0].Exploded; i++ {
		e.Step()
	}
	f := e.Fireworks()[0]
	if !f.Exploded {
		t.Fatal("rocket never exploded")
	}
	if bursts != 1 {
		t.Errorf("expected one explode callback, got %d", bursts)
	}
	if len(f.Particles) != cfg.Sparks {
		t.Fatalf("expected %d sparks, got %d", cfg.Sparks, len(f.Particles))
	}

	for i, p := range f.Particles {
		if p.Color != f.Color {
			t.Errorf("spark %d colour differs from its burst", i)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < cfg.SparkSpeedMin-1e-9 || speed > cfg.SparkSpeedMin+cfg.SparkSpeedJitter+1e-9 {
			t.Errorf("spark %d speed %.3f outside range", i, speed)
		}
		angle := math.Atan2(p.VY, p.VX)
		want := 2 * math.Pi * float64(i) / float64(cfg.Sparks)
		diff := math.Mod(angle-want+4*math.Pi, 2*math.Pi)
		if diff > 1e-9 && 2*math.Pi-diff > 1e-9 {
			t.Errorf("spark %d angle %.4f, want %.4f", i, angle, want)
		}
	}
}

// TestFireworksApexExplosion 高视口上到不了目标高度的烟花在弧顶爆炸
func TestFireworksApexExplosion(t *testing.T) {
	var s surfaces
	cfg := testFireworks()
	cfg.LaunchChance = 0
	e := NewFireworks(cfg, testRand())
	e.Mount(game.NewFrameLoop(), game.NewViewport(800, 5000), s.factory())
	e.Launch(300)

	// 最大初速 12、重力 0.2：最多 60 帧到弧顶
	for i := 0; i < 61; i++ {
		e.Step()
	}
	if !e.Fireworks()[0].Exploded {
		t.Fatal("rocket should explode at the top of its arc")
	}
}

func TestFireworksPruning(t *testing.T) {
	var s surfaces
	cfg := testFireworks()
	cfg.LaunchChance = 0
	e := NewFireworks(cfg, testRand())
	e.Mount(game.NewFrameLoop(), game.NewViewport(800, 600), s.factory())
	e.Launch(300)

	// 上升最多 60 帧，火星 100 帧后消失
	for i := 0; i < 200; i++ {
		e.Step()
	}
	if e.Len() != 0 {
		t.Fatalf("burnt out firework should be pruned, %d left", e.Len())
	}
}

func TestFireworksTrailFade(t *testing.T) {
	var s surfaces
	cfg := testFireworks()
	e := NewFireworks(cfg, testRand())
	e.Mount(game.NewFrameLoop(), game.NewViewport(800, 600), s.factory())

	e.Step()
	c := s.last()
	if c.clears != 0 {
		t.Errorf("fireworks should never hard clear, got %d clears", c.clears)
	}
	if len(c.fades) != 1 {
		t.Fatalf("expected one fade per frame, got %d", len(c.fades))
	}
	f := c.fades[0]
	if f.R != 0 || f.G != 0 || f.B != 0 || f.A != 26 {
		t.Errorf("trail colour %+v, want black at alpha 26", f)
	}
}

func TestFireworksUnmountClearsActiveSet(t *testing.T) {
	frames := game.NewFrameLoop()
	vp := game.NewViewport(800, 600)
	var s surfaces
	cfg := testFireworks()
	cfg.LaunchChance = 1
	e := NewFireworks(cfg, testRand())

	e.Mount(frames, vp, s.factory())
	for i := 0; i < 30; i++ {
		frames.Run()
	}
	if e.Len() == 0 {
		t.Fatal("expected active fireworks mid animation")
	}

	e.Unmount()
	if frames.Pending() != 0 {
		t.Errorf("expected zero pending frames, got %d", frames.Pending())
	}
	if vp.Listeners() != 0 {
		t.Errorf("expected zero resize listeners, got %d", vp.Listeners())
	}
	if e.Len() != 0 {
		t.Errorf("expected empty active set, got %d", e.Len())
	}

	frames.Run()
	e.Mount(frames, vp, s.factory())
	if e.Len() != 0 {
		t.Errorf("remount should start empty, got %d", e.Len())
	}
}

func TestFireworksResizeKeepsCoordinates(t *testing.T) {
	vp := game.NewViewport(800, 600)
	var s surfaces
	cfg := testFireworks()
	cfg.LaunchChance = 0
	e := NewFireworks(cfg, testRand())
	e.Mount(game.NewFrameLoop(), vp, s.factory())
	e.Launch(700)
	e.Step()

	before := e.Fireworks()[0]
	vp.Resize(400, 300)

	after := e.Fireworks()[0]
	if after.X != before.X || after.Y != before.Y || after.TargetY != before.TargetY {
		t.Errorf("resize moved firework: %+v -> %+v", before, after)
	}
	if c := s.last(); c.w != 400 || c.h != 300 {
		t.Errorf("surface %dx%d, want 400x300", c.w, c.h)
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		life float64
		want float64
	}{
		{1.5, 1},
		{1, 1},
		{0.25, 0.25},
		{0, 0},
		{-0.3, 0},
	}
	for _, tt := range tests {
		p := Particle{Life: tt.life}
		if got := p.Alpha(); got != tt.want {
			t.Errorf("Alpha() with life %.2f = %.2f, want %.2f", tt.life, got, tt.want)
		}
	}
}

func TestRemoveIf(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	got := removeIf(s, func(v *int) bool { return *v%2 == 0 })
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
