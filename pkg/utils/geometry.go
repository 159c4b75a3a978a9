package utils

// Vec2 二维向量（世界坐标，像素）
type Vec2 struct {
	X, Y float64
}

// Rect 轴对齐矩形（左上角 + 尺寸，世界坐标）
//
//   - Right = X + W，Bottom = Y + H
//   - 两个矩形仅在内部有重叠时才视为碰撞，边缘相接不算碰撞
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left 左边界
func (r Rect) Left() float64 { return r.X }

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Top 上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX 中心X坐标
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY 中心Y坐标
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center 中心点
func (r Rect) Center() Vec2 {
	return Vec2{X: r.CenterX(), Y: r.CenterY()}
}

// Overlaps 检查两个矩形是否重叠（AABB）
//
// 边缘相接（例如玩家脚底恰好贴在平台顶面）不算重叠，
// 否则碰撞修正后的静止状态会被误判为持续碰撞。
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		o.X < r.Right() &&
		r.Y < o.Bottom() &&
		o.Y < r.Bottom()
}

// Inflate 以中心为基准扩大（或缩小，传负值）矩形
//
// 参数:
//   - dw: 宽度增量（左右各扩 dw/2）
//   - dh: 高度增量（上下各扩 dh/2）
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{
		X: r.X - dw/2,
		Y: r.Y - dh/2,
		W: r.W + dw,
		H: r.H + dh,
	}
}

// Translate 平移矩形
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// MoveTo 将左上角移动到指定位置
func (r Rect) MoveTo(x, y float64) Rect {
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// SetBottom 保持尺寸不变，将底边对齐到 y
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetTop 将顶边对齐到 y
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetRight 保持尺寸不变，将右边对齐到 x
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetLeft 将左边对齐到 x
func (r *Rect) SetLeft(x float64) { r.X = x }
