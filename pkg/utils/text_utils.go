package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextAlign 文本水平对齐方式
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// textShadowColor 文字阴影颜色（半透明黑色，偏移 2 像素）
var textShadowColor = color.RGBA{0, 0, 0, 120}

// DrawText 绘制单行文本
//
// 参数:
//   - dst: 目标图像
//   - s: 文本内容
//   - face: 字体
//   - x, y: 锚点坐标；y 为文本的垂直中心，x 的含义由 align 决定
//   - align: 水平对齐方式
//   - clr: 文字颜色
//   - shadow: 是否在右下方 2 像素处绘制阴影
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align TextAlign, clr color.Color, shadow bool) {
	if s == "" || face == nil {
		return
	}

	if shadow {
		drawTextOnce(dst, s, face, x+2, y+2, align, textShadowColor)
	}
	drawTextOnce(dst, s, face, x, y, align, clr)
}

func drawTextOnce(dst *ebiten.Image, s string, face text.Face, x, y float64, align TextAlign, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.SecondaryAlign = text.AlignCenter
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(dst, s, face, op)
}

// MeasureText 测量文本宽度
func MeasureText(s string, face text.Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(s, face, 0)
	return width
}
