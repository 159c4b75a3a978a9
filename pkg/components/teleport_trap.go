package components

import (
	"math"

	"github.com/decker502/devilish/pkg/utils"
)

// TeleportTrap 传送陷阱：把玩家送到固定位置，之后进入冷却
type TeleportTrap struct {
	Rect        utils.Rect
	Destination utils.Vec2

	Cooldown    float64
	CooldownMax float64

	Pulse     float64
	PulseRate float64
}

// NewTeleportTrap 创建传送陷阱
func NewTeleportTrap(rect utils.Rect, dest utils.Vec2, cooldown float64) *TeleportTrap {
	return &TeleportTrap{
		Rect:        rect,
		Destination: dest,
		CooldownMax: cooldown,
	}
}

// Ready 冷却完毕
func (t *TeleportTrap) Ready() bool {
	return t.Cooldown <= 0
}

// TryTeleport 玩家与陷阱重叠且冷却完毕时触发传送
//
// 返回传送目的地（玩家矩形左上角）；触发后进入冷却。
func (t *TeleportTrap) TryTeleport(player utils.Rect) (utils.Vec2, bool) {
	if !t.Ready() || !player.Overlaps(t.Rect) {
		return utils.Vec2{}, false
	}
	t.Cooldown = t.CooldownMax
	return t.Destination, true
}

// Update 推进冷却和脉冲相位
func (t *TeleportTrap) Update(dt float64) {
	if t.Cooldown > 0 {
		t.Cooldown -= dt
	}
	t.Pulse = math.Mod(t.Pulse+dt*t.PulseRate, 2*math.Pi)
}

// View 实现 Drawable
func (t *TeleportTrap) View() View {
	v := View{
		Kind:    ViewTeleport,
		Rect:    t.Rect,
		Visible: true,
		Alpha:   1,
		Active:  t.Ready(),
		Phase:   t.Pulse,
	}
	if !t.Ready() && t.CooldownMax > 0 {
		v.Progress = t.Cooldown / t.CooldownMax
	}
	return v
}
