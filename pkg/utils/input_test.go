package utils

import "testing"

func TestClassifyTouch(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want TouchZone
	}{
		{"左下角", 50, 600, TouchLeft},
		{"左侧按钮右边界内", 212, 600, TouchLeft},
		{"右移按钮", 300, 600, TouchRight},
		{"左半屏中间空白", 500, 600, TouchNone},
		{"左上半屏", 50, 100, TouchNone},
		{"右半屏上方", 1000, 50, TouchJump},
		{"右半屏下方", 640, 700, TouchJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTouch(tt.x, tt.y, 1280, 720); got != tt.want {
				t.Errorf("ClassifyTouch(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
