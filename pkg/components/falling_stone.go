package components

import (
	"math"

	"github.com/decker502/devilish/pkg/utils"
)

// StoneState 落石所处阶段
type StoneState int

const (
	StoneIdle StoneState = iota
	StoneWarning
	StoneFalling
	StoneSettled
)

func (s StoneState) String() string {
	switch s {
	case StoneIdle:
		return "idle"
	case StoneWarning:
		return "warning"
	case StoneFalling:
		return "falling"
	case StoneSettled:
		return "settled"
	}
	return "unknown"
}

// FallingStone 落石
//
// 玩家中心X进入触发区间后开始预警，预警计时归零时掉落；
// 落到平台上反弹，反弹次数达到上限或反弹速度过小后静止。
// 掉落开始后（含静止状态）接触玩家即致命。
type FallingStone struct {
	Rect utils.Rect

	VY float64
	// Rotation 旋转角（度），AngularVelocity 每帧增加的角度
	Rotation        float64
	AngularVelocity float64
	// DropSpin 掉落瞬间获得的角速度，构建关卡时随机确定
	DropSpin float64

	// 下落参数（像素/帧），来自规则
	Gravity     float64
	Terminal    float64
	Restitution float64
	SettleSpeed float64

	TriggerMin float64
	TriggerMax float64

	Warning      bool
	WarningTime  float64
	WarningTimer float64

	Dropped bool
	Settled bool

	Bounces    int
	MaxBounces int
}

// StoneImpact 落石本帧的落地结果
type StoneImpact struct {
	// Bounced 本帧撞上平台并反弹
	Bounced bool
	// Settled 本帧进入静止
	Settled bool
	// At 撞击点（落石底边中点）
	At utils.Vec2
	// Speed 反弹后的竖直速度大小，用于决定尘土数量
	Speed float64
}

// NewFallingStone 创建落石
func NewFallingStone(x, y, size, triggerMin, triggerMax, warning float64, maxBounces int) *FallingStone {
	return &FallingStone{
		Rect:         utils.NewRect(x, y, size, size),
		TriggerMin:   triggerMin,
		TriggerMax:   triggerMax,
		WarningTime:  warning,
		WarningTimer: warning,
		MaxBounces:   maxBounces,
	}
}

// State 当前阶段
func (s *FallingStone) State() StoneState {
	switch {
	case s.Settled:
		return StoneSettled
	case s.Dropped:
		return StoneFalling
	case s.Warning:
		return StoneWarning
	}
	return StoneIdle
}

// CheckTrigger 玩家中心X位于触发区间（闭区间）时进入预警
//
// 返回本次调用是否刚刚触发预警。
func (s *FallingStone) CheckTrigger(playerCenterX float64) bool {
	if s.Dropped || s.Warning {
		return false
	}
	if playerCenterX >= s.TriggerMin && playerCenterX <= s.TriggerMax {
		s.Warning = true
		return true
	}
	return false
}

// Update 推进预警倒计时，归零时掉落
func (s *FallingStone) Update(dt float64) {
	if !s.Warning || s.Dropped {
		return
	}
	s.WarningTimer -= dt
	if s.WarningTimer <= 0 {
		s.Dropped = true
		s.VY = 0
		s.AngularVelocity = s.DropSpin
	}
}

// Fall 掉落中的落石做一帧下落并与平台碰撞
//
// 只处理下落方向的碰撞：底边对齐平台顶面，竖直速度按 Restitution 反向，
// 角速度衰减。反弹次数达到上限或反弹速度低于 SettleSpeed 时静止。
func (s *FallingStone) Fall(solids []Solid) StoneImpact {
	var impact StoneImpact
	if !s.Dropped || s.Settled {
		return impact
	}

	s.VY += s.Gravity
	if s.Terminal > 0 && s.VY > s.Terminal {
		s.VY = s.Terminal
	}
	s.Rect.Y += s.VY
	s.Rotation += s.AngularVelocity

	for _, solid := range solids {
		if !s.Rect.Overlaps(solid.Rect) || s.VY <= 0 {
			continue
		}
		s.Rect.SetBottom(solid.Rect.Top())
		s.VY = -s.VY * s.Restitution
		s.AngularVelocity *= 0.7
		s.Bounces++

		impact.Bounced = true
		impact.At = utils.Vec2{X: s.Rect.CenterX(), Y: s.Rect.Bottom()}
		impact.Speed = math.Abs(s.VY)

		if s.Bounces >= s.MaxBounces || math.Abs(s.VY) < s.SettleSpeed {
			s.Settled = true
			s.VY = 0
			s.AngularVelocity = 0
			impact.Settled = true
		}
		break
	}
	return impact
}

// Lethal 掉落开始后接触即致命
func (s *FallingStone) Lethal() bool {
	return s.Dropped
}

// View 实现 Drawable
func (s *FallingStone) View() View {
	v := View{
		Kind:     ViewStone,
		Rect:     s.Rect,
		Visible:  true,
		Alpha:    1,
		Active:   s.Dropped,
		Warning:  s.Warning && !s.Dropped,
		Rotation: s.Rotation * math.Pi / 180,
	}
	if v.Warning && s.WarningTime > 0 {
		v.Progress = 1 - s.WarningTimer/s.WarningTime
	}
	return v
}
