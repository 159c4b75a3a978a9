package systems

import (
	"math"

	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

// PhysicsSystem 玩家移动、跳跃与平台碰撞
//
// 速度以"像素/帧"为单位（固定逻辑帧率），计时器以秒为单位。
// 水平和竖直方向分别移动、分别解决碰撞（先水平后竖直），
// 斜向运动不会被一次合并的碰撞检测吞掉。
type PhysicsSystem struct {
	rules  config.PlayerRules
	bounds utils.Rect
}

// JumpKind 本帧发生的起跳类型
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpDouble
	// JumpBuffered 空中按下跳跃但无法起跳，请求被缓冲
	JumpBuffered
)

// MoveResult 一帧物理移动的结果
type MoveResult struct {
	// Landed 本帧从空中落到平台上（持续站立不算）
	Landed bool
	// LandingSpeed 落地前的竖直速度
	LandingSpeed float64
	// HardLanding 落地速度超过阈值，产生尘土和压扁效果
	HardLanding bool
	// BufferedJump 落地瞬间执行了缓冲的跳跃
	BufferedJump bool
	// HitCeiling 上升时撞到平台底面
	HitCeiling bool
	// Support 本帧脚下的实体；未站在任何实体上时为 nil（包括站在关卡底边上）
	Support *components.Solid
	// RunDust 地面奔跑时本帧应发射尘土
	RunDust bool
	// Feet 玩家底边中点
	Feet utils.Vec2
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - rules: 玩家调参
//   - bounds: 关卡范围，玩家不能离开
func NewPhysicsSystem(rules config.PlayerRules, bounds utils.Rect) *PhysicsSystem {
	return &PhysicsSystem{rules: rules, bounds: bounds}
}

// Control 处理本帧的方向和跳跃输入
//
// 跳跃优先级：地面或土狼时间内 → 普通跳；否则二段跳（每次离地一次）；
// 两者都不满足时把请求缓冲 JumpBufferTime 秒，落地时立即执行。
func (s *PhysicsSystem) Control(p *components.Player, in components.Input, dt float64) JumpKind {
	if p.Frozen() {
		return JumpNone
	}

	dir := in.Direction()
	if dir < 0 {
		p.FacingRight = false
	} else if dir > 0 {
		p.FacingRight = true
	}

	control := 1.0
	if !p.OnGround {
		control = s.rules.AirControl
	}
	p.VX += dir * s.rules.Acceleration * control

	if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer -= dt
	}
	if p.CoyoteTimer > 0 {
		p.CoyoteTimer -= dt
	}

	if !in.Jump {
		return JumpNone
	}

	switch {
	case p.OnGround || p.CoyoteTimer > 0:
		s.jump(p)
		return JumpGround
	case s.rules.DoubleJump && p.CanDoubleJump && !p.HasDoubleJumped:
		p.VY = s.rules.DoubleJumpVelocity
		p.CanDoubleJump = false
		p.HasDoubleJumped = true
		p.PulseJump()
		return JumpDouble
	default:
		p.JumpBufferTimer = s.rules.JumpBufferTime
		return JumpBuffered
	}
}

func (s *PhysicsSystem) jump(p *components.Player) {
	p.VY = s.rules.JumpVelocity
	p.OnGround = false
	p.CoyoteTimer = 0
	p.JumpBufferTimer = 0
	p.CanDoubleJump = s.rules.DoubleJump
	p.HasDoubleJumped = false
	p.PulseJump()
}

// Move 施加摩擦和重力，分轴移动并与 solids 解决碰撞
func (s *PhysicsSystem) Move(p *components.Player, solids []components.Solid, dt float64) MoveResult {
	var res MoveResult
	if p.Frozen() {
		return res
	}

	if p.OnGround {
		p.VX *= s.rules.Friction
	} else {
		p.VX *= s.rules.AirResistance
	}
	p.VX = clamp(p.VX, -s.rules.MoveSpeed, s.rules.MoveSpeed)

	p.VY += s.rules.Gravity
	if p.VY > s.rules.TerminalVelocity {
		p.VY = s.rules.TerminalVelocity
	}

	// 水平
	p.Rect.X += p.VX
	for _, solid := range solids {
		if !p.Rect.Overlaps(solid.Rect) {
			continue
		}
		if p.VX > 0 {
			p.Rect.SetRight(solid.Rect.Left())
			p.VX = 0
		} else if p.VX < 0 {
			p.Rect.SetLeft(solid.Rect.Right())
			p.VX = 0
		}
	}

	// 竖直
	wasOnGround := p.OnGround
	p.OnGround = false
	fallSpeed := p.VY

	p.Rect.Y += p.VY
	for i := range solids {
		solid := &solids[i]
		if !p.Rect.Overlaps(solid.Rect) {
			continue
		}
		if p.VY > 0 {
			p.Rect.SetBottom(solid.Rect.Top())
			res.Support = solid
			s.land(p, wasOnGround, fallSpeed, &res)
		} else if p.VY < 0 {
			p.Rect.SetTop(solid.Rect.Bottom())
			p.VY = 0
			res.HitCeiling = true
		}
	}

	s.clampToBounds(p, wasOnGround, fallSpeed, &res)

	// 走下平台边缘时开始土狼时间
	if wasOnGround && !p.OnGround && p.VY >= 0 {
		p.CoyoteTimer = s.rules.CoyoteTime
	}

	// 压扁/拉伸逐帧回弹
	p.Squash += (1 - p.Squash) * 0.2
	p.Stretch += (1 - p.Stretch) * 0.2

	if p.OnGround && math.Abs(p.VX) > s.rules.RunDustSpeed {
		p.DustTimer += dt
		if p.DustTimer > s.rules.RunDustInterval {
			p.DustTimer = 0
			res.RunDust = true
		}
	}

	res.Feet = utils.Vec2{X: p.Rect.CenterX(), Y: p.Rect.Bottom()}
	return res
}

// land 落到平台顶面：重置二段跳，有缓冲跳跃时立即起跳
func (s *PhysicsSystem) land(p *components.Player, wasOnGround bool, fallSpeed float64, res *MoveResult) {
	p.OnGround = true
	p.CanDoubleJump = s.rules.DoubleJump
	p.HasDoubleJumped = false

	if p.JumpBufferTimer > 0 {
		s.jump(p)
		res.BufferedJump = true
		res.Landed = true
		res.LandingSpeed = fallSpeed
		return
	}

	p.VY = 0
	if wasOnGround {
		return
	}
	res.Landed = true
	res.LandingSpeed = fallSpeed
	if fallSpeed > s.rules.HardLandingSpeed {
		res.HardLanding = true
		p.PulseLand()
	}
}

// clampToBounds 关卡边界：左右和顶部是墙，底部是地面
func (s *PhysicsSystem) clampToBounds(p *components.Player, wasOnGround bool, fallSpeed float64, res *MoveResult) {
	b := s.bounds
	if p.Rect.Left() < b.Left() {
		p.Rect.SetLeft(b.Left())
		p.VX = 0
	}
	if p.Rect.Right() > b.Right() {
		p.Rect.SetRight(b.Right())
		p.VX = 0
	}
	if p.Rect.Top() < b.Top() {
		p.Rect.SetTop(b.Top())
		p.VY = math.Max(0, p.VY)
	}
	if p.Rect.Bottom() > b.Bottom() {
		p.Rect.SetBottom(b.Bottom())
		s.land(p, wasOnGround, fallSpeed, res)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
