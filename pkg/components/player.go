package components

import "github.com/decker502/devilish/pkg/utils"

// Player 玩家角色
//
// 速度单位为"像素/帧"，计时器单位为秒。
// 每局开始时重新创建，不跨局复用。
type Player struct {
	Rect utils.Rect

	VX float64
	VY float64

	OnGround    bool
	FacingRight bool

	// CoyoteTimer 离开平台边缘后仍允许起跳的剩余时间
	CoyoteTimer float64
	// JumpBufferTimer 空中提前按下跳跃后的缓冲剩余时间，落地时立即起跳
	JumpBufferTimer float64

	CanDoubleJump   bool
	HasDoubleJumped bool

	Dead bool
	Win  bool

	// Squash/Stretch 纵向/横向缩放（1.0 为原始尺寸），纯视觉效果
	Squash  float64
	Stretch float64

	// DustTimer 地面奔跑尘土的发射计时
	DustTimer float64
}

// NewPlayer 在出生点创建玩家（x, y 为矩形左上角）
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Rect:          utils.NewRect(x, y, w, h),
		FacingRight:   true,
		CanDoubleJump: true,
		Squash:        1,
		Stretch:       1,
	}
}

// Frozen 死亡或胜利后玩家不再响应输入和物理
func (p *Player) Frozen() bool {
	return p.Dead || p.Win
}

// PulseJump 起跳时的拉伸效果
func (p *Player) PulseJump() {
	p.Squash = 0.7
	p.Stretch = 1.3
}

// PulseLand 落地时的压扁效果
func (p *Player) PulseLand() {
	p.Squash = 1.3
	p.Stretch = 0.7
}

// DrawRect 应用压扁/拉伸后的绘制矩形（底边中心不变）
func (p *Player) DrawRect() utils.Rect {
	w := p.Rect.W * p.Stretch
	h := p.Rect.H * p.Squash
	return utils.Rect{
		X: p.Rect.CenterX() - w/2,
		Y: p.Rect.Bottom() - h,
		W: w,
		H: h,
	}
}
