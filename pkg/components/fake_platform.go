package components

import "github.com/decker502/devilish/pkg/utils"

// FakePlatform 假平台：玩家落上去后延迟消失
type FakePlatform struct {
	Rect utils.Rect

	Active    bool
	Triggered bool

	Delay          float64
	DisappearTimer float64

	// Alpha 消失过程中的不透明度（0-1）
	Alpha float64
}

// NewFakePlatform 创建假平台
func NewFakePlatform(rect utils.Rect, delay float64) *FakePlatform {
	return &FakePlatform{
		Rect:   rect,
		Active: true,
		Delay:  delay,
		Alpha:  1,
	}
}

// Solid 是否参与本帧碰撞；触发后立刻不再承载玩家
func (f *FakePlatform) Solid() bool {
	return f.Active && !f.Triggered
}

// Trigger 开始消失倒计时，返回是否为首次触发
func (f *FakePlatform) Trigger() bool {
	if !f.Active || f.Triggered {
		return false
	}
	f.Triggered = true
	f.DisappearTimer = f.Delay
	return true
}

// Update 推进消失倒计时
func (f *FakePlatform) Update(dt float64) {
	if !f.Triggered || !f.Active {
		return
	}
	f.DisappearTimer -= dt
	if f.DisappearTimer <= 0 {
		f.Active = false
		f.Alpha = 0
		return
	}
	if f.Delay > 0 {
		f.Alpha = f.DisappearTimer / f.Delay
	}
}

// View 实现 Drawable
func (f *FakePlatform) View() View {
	return View{
		Kind:    ViewFakePlatform,
		Rect:    f.Rect,
		Visible: f.Active,
		Alpha:   f.Alpha,
		Active:  f.Triggered,
	}
}
