package ui

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/ownrisk/pkg/config"
)

func TestBackgroundMix(t *testing.T) {
	b := NewBackground(config.Gradients[0], 800*time.Millisecond)

	if b.Mix(0) != 1 {
		t.Fatalf("fresh background should not be transitioning, mix=%v", b.Mix(0))
	}

	b.SetTheme(config.Gradients[1], time.Second)
	if b.Target() != config.Gradients[1] {
		t.Fatal("target not updated")
	}
	if m := b.Mix(time.Second); m != 0 {
		t.Errorf("mix at start = %v, want 0", m)
	}
	if m := b.Mix(time.Second + 400*time.Millisecond); math.Abs(m-0.5) > 1e-9 {
		t.Errorf("mix at half way = %v, want 0.5", m)
	}
	if m := b.Mix(time.Second + 800*time.Millisecond); m != 1 {
		t.Errorf("mix at end = %v, want 1", m)
	}

	// 相同主题不重新开始过渡
	b.SetTheme(config.Gradients[1], 3*time.Second)
	if b.Mix(3*time.Second) != 1 {
		t.Error("setting the same theme should not restart the transition")
	}
}

// TestBackgroundRetarget 过渡中切换主题，起点是当前混合结果
func TestBackgroundRetarget(t *testing.T) {
	b := NewBackground(config.Gradients[0], 800*time.Millisecond)
	b.SetTheme(config.Gradients[1], 0)
	b.SetTheme(config.Gradients[2], 400*time.Millisecond)

	mid := blendGradient(config.Gradients[0], config.Gradients[1], 0.5)
	for i := range mid {
		if d := b.from[i].Colorful().DistanceRgb(mid[i].Colorful()); d > 1e-6 {
			t.Errorf("stop %d: from differs from the blended snapshot by %v", i, d)
		}
	}
	if b.Mix(400*time.Millisecond) != 0 {
		t.Error("retargeting should restart the transition")
	}
}

func TestFillGradientPixels(t *testing.T) {
	const n = 16
	from, to := config.Gradients[0], config.Gradients[2]
	pix := make([]byte, n*n*4)

	FillGradientPixels(pix, from, to, 0, n, n)
	r, g, b := from.At(0).RGB255()
	if pix[0] != r || pix[1] != g || pix[2] != b || pix[3] != 0xff {
		t.Errorf("top-left pixel %v, want (%d,%d,%d,255)", pix[:4], r, g, b)
	}
	last := (n*n - 1) * 4
	r, g, b = from.At(1).RGB255()
	if pix[last] != r || pix[last+1] != g || pix[last+2] != b {
		t.Errorf("bottom-right pixel %v, want (%d,%d,%d)", pix[last:last+4], r, g, b)
	}

	FillGradientPixels(pix, from, to, 1, n, n)
	r, g, b = to.At(0).RGB255()
	if pix[0] != r || pix[1] != g || pix[2] != b {
		t.Errorf("fully mixed top-left pixel %v, want (%d,%d,%d)", pix[:4], r, g, b)
	}
}

func TestHeartGeometry(t *testing.T) {
	for _, size := range []float64{12, 24, 48} {
		side, dx, dy, r := HeartGeometry(size)
		if width := 2 * (dx + r); math.Abs(width-size) > 1e-9 {
			t.Errorf("size %v: heart width %v", size, width)
		}
		if dy >= 0 {
			t.Errorf("size %v: lobes should sit above the centre", size)
		}
		if math.Abs(r-side/2) > 1e-9 {
			t.Errorf("size %v: lobe radius %v, want half the side %v", size, r, side/2)
		}
	}
}

func TestRoundedRectOutline(t *testing.T) {
	pts := RoundedRectOutline(10, 20, 100, 40, 8)
	if len(pts) != 4*(cornerSteps+1) {
		t.Fatalf("expected %d points, got %d", 4*(cornerSteps+1), len(pts))
	}
	for i, p := range pts {
		if p[0] < 10-1e-9 || p[0] > 110+1e-9 || p[1] < 20-1e-9 || p[1] > 60+1e-9 {
			t.Errorf("point %d %v outside the rectangle", i, p)
		}
	}
	// 第一个点在左边缘，圆角起点
	if math.Abs(pts[0][0]-10) > 1e-9 || math.Abs(pts[0][1]-28) > 1e-9 {
		t.Errorf("first point %v, want (10, 28)", pts[0])
	}

	// 半径超过短边一半时变成胶囊
	capsule := RoundedRectOutline(0, 0, 100, 40, 100)
	if math.Abs(capsule[0][1]-20) > 1e-9 {
		t.Errorf("capsule should start at mid height, got %v", capsule[0])
	}
}
