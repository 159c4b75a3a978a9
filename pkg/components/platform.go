package components

import "github.com/decker502/devilish/pkg/utils"

// 平台外观类型
const (
	PlatformGround = "ground"
	PlatformNormal = "normal"
	PlatformStep   = "step"
)

// Platform 静态平台，创建后不再变化
type Platform struct {
	Rect utils.Rect
	Type string
}

// View 实现 Drawable
func (p *Platform) View() View {
	return View{Kind: ViewPlatform, Rect: p.Rect, Visible: true, Alpha: 1, Style: p.Type}
}

// SolidKind 实体矩形的来源
type SolidKind int

const (
	SolidStatic SolidKind = iota
	SolidFakePlatform
	SolidMagicWall
)

func (k SolidKind) String() string {
	switch k {
	case SolidStatic:
		return "static"
	case SolidFakePlatform:
		return "fakePlatform"
	case SolidMagicWall:
		return "magicWall"
	}
	return "unknown"
}

// Solid 本帧参与碰撞的实体矩形
//
// 碰撞列表每帧重新构建，Solid 只在构建它的那一帧有效。
type Solid struct {
	Rect utils.Rect
	Kind SolidKind
	// Index 来源对象在关卡对应切片中的下标（魔法墙为 0）
	Index int
}
