package components

import "github.com/decker502/devilish/pkg/utils"

// Door 出口门
//
// 玩家第一次靠近初始位置时，门会换到另一个位置（只发生一次）；
// 玩家进入胜利触发区后门打开，打开状态下碰到当前位置的门即胜利。
type Door struct {
	Primary   utils.Rect
	Alternate utils.Rect
	Active    utils.Rect

	Open        bool
	TrolledOnce bool

	TrollCooldown float64
	// TrollInflateX/Y 触发换位的接近范围
	TrollInflateX float64
	TrollInflateY float64

	GlowPhase float64
}

// DoorTrollCooldown 换位后的冷却时间（秒）
const DoorTrollCooldown = 2.0

// NewDoor 创建出口门，初始位于 primary
func NewDoor(primary, alternate utils.Rect, inflateX, inflateY float64) *Door {
	return &Door{
		Primary:       primary,
		Alternate:     alternate,
		Active:        primary,
		TrollInflateX: inflateX,
		TrollInflateY: inflateY,
	}
}

// MaybeTroll 玩家靠近初始位置时换位，返回本次是否发生换位
func (d *Door) MaybeTroll(player utils.Rect) bool {
	if d.TrolledOnce || d.Open || d.TrollCooldown > 0 {
		return false
	}
	if !player.Overlaps(d.Primary.Inflate(d.TrollInflateX, d.TrollInflateY)) {
		return false
	}
	d.TrolledOnce = true
	d.TrollCooldown = DoorTrollCooldown
	d.Active = d.Alternate
	return true
}

// SetOpen 打开出口，返回是否为首次打开
func (d *Door) SetOpen() bool {
	if d.Open {
		return false
	}
	d.Open = true
	return true
}

// CheckWin 门已打开且玩家碰到当前位置的门
func (d *Door) CheckWin(player utils.Rect) bool {
	return d.Open && player.Overlaps(d.Active)
}

// Update 推进发光相位和换位冷却
func (d *Door) Update(dt float64) {
	d.GlowPhase += dt * 3
	if d.TrollCooldown > 0 {
		d.TrollCooldown -= dt
	}
}

// View 实现 Drawable
func (d *Door) View() View {
	return View{
		Kind:    ViewDoor,
		Rect:    d.Active,
		Visible: true,
		Alpha:   1,
		Active:  d.Open,
		Phase:   d.GlowPhase,
	}
}
