package effects

import (
	"image/color"
	"math/rand"

	"github.com/decker502/ownrisk/pkg/config"
)

// fakeCanvas 记录绘制调用
type fakeCanvas struct {
	w, h    int
	resizes int
	clears  int
	fades   []color.NRGBA
	circles int
	rects   int
	alphas  []uint8
}

func (c *fakeCanvas) Resize(w, h int) { c.w, c.h = w, h; c.resizes++ }
func (c *fakeCanvas) Clear()          { c.clears++ }
func (c *fakeCanvas) Fade(col color.NRGBA) {
	c.fades = append(c.fades, col)
}
func (c *fakeCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	c.circles++
	c.alphas = append(c.alphas, col.A)
}
func (c *fakeCanvas) FillRotatedRect(cx, cy, w, h, angle float64, col color.NRGBA) {
	c.rects++
	c.alphas = append(c.alphas, col.A)
}

func (c *fakeCanvas) resetCounts() {
	c.clears, c.circles, c.rects = 0, 0, 0
	c.fades, c.alphas = nil, nil
}

// surfaces 记录发射器创建的所有表面
type surfaces struct {
	created []*fakeCanvas
}

func (s *surfaces) factory() SurfaceFactory {
	return func(w, h int) Canvas {
		c := &fakeCanvas{w: w, h: h}
		s.created = append(s.created, c)
		return c
	}
}

func (s *surfaces) last() *fakeCanvas {
	return s.created[len(s.created)-1]
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

func testConfetti() config.ConfettiConfig {
	return config.DefaultAppConfig().Confetti
}

func testFireworks() config.FireworksConfig {
	return config.DefaultAppConfig().Fireworks
}
