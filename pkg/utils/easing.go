package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度
// 只影响绘制（淡出、预警闪烁、遮罩渐入），不参与游戏逻辑。

// EaseOutCubic 三次方缓出：开始快，结束慢
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入：开始慢，结束快
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Pulse 把相位映射为 [0, 1] 的正弦脉冲（0.5 + 0.5·sin）
func Pulse(phase float64) float64 {
	return 0.5 + 0.5*math.Sin(phase)
}
