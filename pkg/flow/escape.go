package flow

import (
	"math"
	"math/rand"

	"github.com/decker502/ownrisk/pkg/config"
)

// Size 宽高（像素）
type Size struct {
	W, H float64
}

// Point 左上角坐标（像素）
type Point struct {
	X, Y float64
}

// PlaceEscape 为躲避按钮随机选择一个位置
//
// 位置是按钮左上角，范围：
//
//	x ∈ [w·MarginLeft, w − w·MarginRight − cw]
//	y ∈ [h·Top, h·Bottom − ch]
//
// 按钮比可用区域还大时该轴退化为居中位置，并夹到 [0, w−cw]，
// 只要视口不小于按钮就不会出屏。
func PlaceEscape(region config.EscapeRegion, viewport, control Size, rng *rand.Rand) Point {
	return Point{
		X: pickAxis(viewport.W*region.MarginLeft, viewport.W-viewport.W*region.MarginRight-control.W,
			viewport.W, control.W, rng),
		Y: pickAxis(viewport.H*region.Top, viewport.H*region.Bottom-control.H,
			viewport.H, control.H, rng),
	}
}

func pickAxis(lo, hi, extent, size float64, rng *rand.Rand) float64 {
	if hi < lo {
		return clamp((extent-size)/2, 0, math.Max(0, extent-size))
	}
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
