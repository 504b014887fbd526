package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if v := fn(0); math.Abs(v) > 1e-9 {
				t.Errorf("%s(0) = %v, 期望 0", name, v)
			}
			if v := fn(1); math.Abs(v-1) > 1e-9 {
				t.Errorf("%s(1) = %v, 期望 1", name, v)
			}
			// 超出范围的输入被夹住
			if v := fn(-1); math.Abs(v) > 1e-9 {
				t.Errorf("%s(-1) = %v, 期望 0", name, v)
			}
			if v := fn(2); math.Abs(v-1) > 1e-9 {
				t.Errorf("%s(2) = %v, 期望 1", name, v)
			}
			// 单调递增
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := fn(float64(i) / 100)
				if v < prev {
					t.Fatalf("%s not monotonic at %d", name, i)
				}
				prev = v
			}
		})
	}
}

func TestEaseInOutCubicMidpoint(t *testing.T) {
	if v := EaseInOutCubic(0.5); math.Abs(v-0.5) > 0.001 {
		t.Errorf("EaseInOutCubic(0.5) = %v, 期望 0.5", v)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		elapsed, duration, want float64
	}{
		{0, 0.8, 0},
		{0.4, 0.8, 0.5},
		{2, 0.8, 1},
		{-1, 0.8, 0},
		{0.1, 0, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.elapsed, tt.duration); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Progress(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
		}
	}
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v", Lerp(10, 20, 0.25))
	}
}
