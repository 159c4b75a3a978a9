// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchZone 屏幕触摸按钮区域
type TouchZone int

const (
	TouchNone TouchZone = iota
	TouchLeft
	TouchRight
	TouchJump
)

// ClassifyTouch 判断触摸点落在哪个按钮区域
//
// 布局（逻辑屏幕坐标）：
//   - 下半屏左侧 1/6：向左
//   - 下半屏 1/6 到 1/3：向右
//   - 右半屏任意位置：跳跃
func ClassifyTouch(x, y, screenW, screenH int) TouchZone {
	if x >= screenW/2 {
		return TouchJump
	}
	if y < screenH/2 {
		return TouchNone
	}
	switch {
	case x < screenW/6:
		return TouchLeft
	case x < screenW/3:
		return TouchRight
	}
	return TouchNone
}

// TouchControls 一帧的触摸按钮状态
type TouchControls struct {
	Left  bool
	Right bool
	// Jump 本帧有新的触摸落在跳跃区域
	Jump bool
	// Tapped 本帧有任意新的触摸（死亡/胜利后用于重开）
	Tapped bool
}

// ReadTouchControls 读取当前触摸状态
//
// 触摸坐标由 ebiten 换算为逻辑屏幕坐标，screenW/screenH 传入逻辑屏幕尺寸。
func ReadTouchControls(screenW, screenH int) TouchControls {
	var tc TouchControls

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		switch ClassifyTouch(x, y, screenW, screenH) {
		case TouchLeft:
			tc.Left = true
		case TouchRight:
			tc.Right = true
		}
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tc.Tapped = true
		x, y := ebiten.TouchPosition(id)
		if ClassifyTouch(x, y, screenW, screenH) == TouchJump {
			tc.Jump = true
		}
	}
	return tc
}
