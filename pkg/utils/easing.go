package utils

import "math"

// 缓动函数
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入先夹到 [0, 1]。

// Progress 把已经过的时间换算成 [0, 1] 的进度；duration 非正时直接完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp01(elapsed / duration)
}

// EaseOutCubic 三次方缓出：开始快，结束慢
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出（背景渐变切换使用）
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
