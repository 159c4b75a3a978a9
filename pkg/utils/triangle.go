package utils

import "math"

// DegenerateEpsilon 三角形退化判定阈值
// 重心坐标分母的绝对值小于该值时视为三点共线
const DegenerateEpsilon = 0.001

// Triangle 三角形（三个顶点）
type Triangle [3]Vec2

// PointInTriangle 使用重心坐标判断点是否在三角形内
//
// 边界上的点视为在内部。三点共线（退化三角形）时一律返回 false，
// 不做除法，也不产生 NaN。
func PointInTriangle(p Vec2, tri Triangle) bool {
	x1, y1 := tri[0].X, tri[0].Y
	x2, y2 := tri[1].X, tri[1].Y
	x3, y3 := tri[2].X, tri[2].Y

	denominator := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(denominator) < DegenerateEpsilon {
		return false
	}

	a := ((y2-y3)*(p.X-x3) + (x3-x2)*(p.Y-y3)) / denominator
	b := ((y3-y1)*(p.X-x3) + (x1-x3)*(p.Y-y3)) / denominator
	c := 1 - a - b

	return a >= 0 && b >= 0 && c >= 0
}

// SamplePoints 返回矩形的五个采样点：四个角 + 中心
func SamplePoints(r Rect) [5]Vec2 {
	return [5]Vec2{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.CenterX(), Y: r.CenterY()},
	}
}

// RectHitsTriangle 检查矩形是否"碰到"三角形
//
// 这是近似判定：只测试 SamplePoints 的五个点是否落在三角形内，
// 三角形尖端刺入矩形边的中段时不会命中。
func RectHitsTriangle(r Rect, tri Triangle) bool {
	for _, p := range SamplePoints(r) {
		if PointInTriangle(p, tri) {
			return true
		}
	}
	return false
}
