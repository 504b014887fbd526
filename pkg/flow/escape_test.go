package flow

import (
	"math/rand"
	"testing"

	"github.com/decker502/ownrisk/pkg/config"
)

func TestPlaceEscapeStaysInRegion(t *testing.T) {
	region := config.DefaultAppConfig().Flow.Escape
	rng := rand.New(rand.NewSource(7))

	viewports := []Size{{1920, 1080}, {960, 720}, {375, 667}, {320, 240}}
	control := Size{96, 48}

	for _, vp := range viewports {
		minX := vp.W * region.MarginLeft
		maxX := vp.W - vp.W*region.MarginRight - control.W
		minY := vp.H * region.Top
		maxY := vp.H*region.Bottom - control.H

		for i := 0; i < 500; i++ {
			p := PlaceEscape(region, vp, control, rng)
			if p.X < minX || p.X > maxX {
				t.Fatalf("viewport %v: x=%.2f outside [%.2f, %.2f]", vp, p.X, minX, maxX)
			}
			if p.Y < minY || p.Y > maxY {
				t.Fatalf("viewport %v: y=%.2f outside [%.2f, %.2f]", vp, p.Y, minY, maxY)
			}
		}
	}
}

// TestPlaceEscapeNarrowViewport 按钮比躲避区域宽时退化为居中，仍然在屏幕内
func TestPlaceEscapeNarrowViewport(t *testing.T) {
	region := config.DefaultAppConfig().Flow.Escape
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		viewport Size
		control  Size
	}{
		{"control as wide as viewport", Size{100, 400}, Size{100, 40}},
		{"control wider than region", Size{200, 400}, Size{150, 40}},
		{"control taller than band", Size{800, 100}, Size{80, 90}},
		{"control equals viewport", Size{80, 40}, Size{80, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				p := PlaceEscape(region, tt.viewport, tt.control, rng)
				if p.X < 0 || p.X+tt.control.W > tt.viewport.W {
					t.Fatalf("x=%.2f puts control off screen", p.X)
				}
				if p.Y < 0 || p.Y+tt.control.H > tt.viewport.H {
					t.Fatalf("y=%.2f puts control off screen", p.Y)
				}
			}
		})
	}
}

func TestPlaceEscapeIsRandom(t *testing.T) {
	region := config.DefaultAppConfig().Flow.Escape
	rng := rand.New(rand.NewSource(3))

	seen := make(map[Point]bool)
	for i := 0; i < 20; i++ {
		seen[PlaceEscape(region, Size{960, 720}, Size{96, 48}, rng)] = true
	}
	if len(seen) < 19 {
		t.Errorf("expected fresh positions, got %d distinct of 20", len(seen))
	}
}
