package utils

import "testing"

// TestPointInTriangle 测试重心坐标判定
func TestPointInTriangle(t *testing.T) {
	right := Triangle{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 0}}

	tests := []struct {
		name  string
		point Vec2
		tri   Triangle
		want  bool
	}{
		{"inside right triangle", Vec2{X: 2, Y: 2}, right, true},
		{"outside right triangle", Vec2{X: 9, Y: 9}, right, false},
		{"vertex counts as inside", Vec2{X: 0, Y: 0}, right, true},
		{"hypotenuse counts as inside", Vec2{X: 5, Y: 5}, right, true},
		{"negative side", Vec2{X: -1, Y: 2}, right, false},
		{"collinear triangle", Vec2{X: 1, Y: 1}, Triangle{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, false},
		{"collinear triangle far point", Vec2{X: 50, Y: -3}, Triangle{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}, false},
		{"all vertices equal", Vec2{X: 3, Y: 3}, Triangle{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInTriangle(tt.point, tt.tri); got != tt.want {
				t.Errorf("PointInTriangle(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

// TestRectHitsTriangle 测试五点采样近似
func TestRectHitsTriangle(t *testing.T) {
	// 尖刺：顶点朝上
	spike := Triangle{{X: 16, Y: 0}, {X: 4, Y: 22}, {X: 28, Y: 22}}

	// 矩形中心落在三角形内
	if !RectHitsTriangle(NewRect(10, 8, 12, 10), spike) {
		t.Error("Expected rect whose center is inside the spike to hit")
	}

	// 矩形完全在三角形上方
	if RectHitsTriangle(NewRect(0, -60, 30, 50), spike) {
		t.Error("Expected rect above spike not to hit")
	}

	// 矩形底边穿过尖端中部，但五个采样点都不在三角形内：近似判定不命中
	wide := NewRect(-100, -40, 232, 45)
	if RectHitsTriangle(wide, spike) {
		t.Error("Expected sample-point approximation to miss a tip piercing the edge midpoint")
	}

	// 左下角落入三角形
	if !RectHitsTriangle(NewRect(14, -20, 30, 40), spike) {
		t.Error("Expected bottom-left corner inside the spike to hit")
	}
}

// TestSamplePoints 测试采样点顺序：四角 + 中心
func TestSamplePoints(t *testing.T) {
	pts := SamplePoints(NewRect(10, 20, 30, 40))
	want := [5]Vec2{{10, 20}, {40, 20}, {10, 60}, {40, 60}, {25, 40}}
	if pts != want {
		t.Errorf("SamplePoints = %v, want %v", pts, want)
	}
}
