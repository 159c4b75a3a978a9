package components

import "github.com/decker502/devilish/pkg/utils"

// FakeDoor 假门：外观像出口，碰到即死
type FakeDoor struct {
	Rect  utils.Rect
	Inset float64
	Pulse float64
}

// NewFakeDoor 创建假门
func NewFakeDoor(rect utils.Rect, inset float64) *FakeDoor {
	return &FakeDoor{Rect: rect, Inset: inset}
}

// Kills 玩家与门内缩后的矩形重叠即致命（擦边不算）
func (d *FakeDoor) Kills(player utils.Rect) bool {
	return player.Overlaps(d.Rect.Inflate(-d.Inset, -d.Inset))
}

// Update 推进骷髅闪烁相位
func (d *FakeDoor) Update(dt float64) {
	d.Pulse += dt * 2
}

// View 实现 Drawable
func (d *FakeDoor) View() View {
	return View{Kind: ViewFakeDoor, Rect: d.Rect, Visible: true, Alpha: 1, Phase: d.Pulse}
}
