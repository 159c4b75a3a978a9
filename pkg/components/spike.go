package components

import (
	"math"

	"github.com/decker502/devilish/pkg/utils"
)

// MoveAxis 尖刺往复移动的方向
type MoveAxis int

const (
	MoveNone MoveAxis = iota
	MoveHorizontal
	MoveVertical
)

// Spike 尖刺
//
// 普通尖刺始终致命；弹出式尖刺在倒计时结束前无害（只显示预警），
// 之后永久致命。两者都可以沿一个轴做正弦往复移动。
type Spike struct {
	Rect utils.Rect
	// Origin 移动的基准位置（关卡配置中的左上角）
	Origin utils.Vec2

	Popup bool
	Delay float64
	Timer float64

	Active bool

	// WarnPhase 弹出前预警闪烁的相位
	WarnPhase float64
	WarnRate  float64

	Axis      MoveAxis
	MoveSpeed float64
	MoveRange float64
	MoveTimer float64

	// Inset 危险三角形底边两端的内缩量
	Inset float64
}

// NewSpike 创建尖刺
func NewSpike(x, y, w, h float64, popup bool, delay float64) *Spike {
	return &Spike{
		Rect:   utils.NewRect(x, y, w, h),
		Origin: utils.Vec2{X: x, Y: y},
		Popup:  popup,
		Delay:  delay,
		Timer:  delay,
		Active: !popup,
	}
}

// Update 推进弹出倒计时和往复移动
func (s *Spike) Update(dt float64) {
	if s.Popup && !s.Active {
		s.Timer -= dt
		s.WarnPhase += dt * s.WarnRate
		if s.Timer <= 0 {
			s.Active = true
		}
	}

	s.MoveTimer += dt
	offset := math.Sin(s.MoveTimer*s.MoveSpeed) * s.MoveRange
	switch s.Axis {
	case MoveHorizontal:
		s.Rect.X = s.Origin.X + offset
	case MoveVertical:
		s.Rect.Y = s.Origin.Y + offset
	}
}

// DangerZone 返回危险三角形：顶点在矩形顶边中点，底边两端各内缩 Inset
//
// 未激活的尖刺没有危险区域，ok 为 false。
func (s *Spike) DangerZone() (tri utils.Triangle, ok bool) {
	if !s.Active {
		return tri, false
	}
	r := s.Rect
	return utils.Triangle{
		{X: r.CenterX(), Y: r.Top()},
		{X: r.Left() + s.Inset, Y: r.Bottom() - s.Inset},
		{X: r.Right() - s.Inset, Y: r.Bottom() - s.Inset},
	}, true
}

// View 实现 Drawable
func (s *Spike) View() View {
	v := View{
		Kind:    ViewSpike,
		Rect:    s.Rect,
		Visible: true,
		Alpha:   1,
		Active:  s.Active,
		Warning: s.Popup && !s.Active,
		Phase:   s.WarnPhase,
	}
	if s.Popup && s.Delay > 0 && !s.Active {
		v.Progress = 1 - s.Timer/s.Delay
	}
	if tri, ok := s.DangerZone(); ok {
		v.Danger = tri
	}
	return v
}
