package components

import "github.com/decker502/devilish/pkg/utils"

// ViewKind 渲染视图的类别
type ViewKind int

const (
	ViewPlatform ViewKind = iota
	ViewFakePlatform
	ViewMagicWall
	ViewSpike
	ViewStone
	ViewTeleport
	ViewFakeDoor
	ViewDoor
)

// View 关卡对象在当前帧的渲染快照
//
// 渲染系统只读取 View，不直接访问对象的内部状态。
// 各字段的含义因 Kind 而异，未使用的字段保持零值。
type View struct {
	Kind ViewKind

	// Rect 对象当前的世界坐标矩形
	Rect utils.Rect

	// Visible 为 false 时整个对象不绘制（已摧毁的墙、已消失的假平台）
	Visible bool

	// Alpha 整体不透明度（0-1）
	Alpha float64

	// Phase 周期动画相位（脉冲、发光、预警闪烁）
	Phase float64

	// Progress 进度类数值（裂纹扩散、预警倒计时、冷却比例），0-1
	Progress float64

	// Active 语义随 Kind 变化：尖刺已弹出、传送就绪、门已打开、落石已掉落
	Active bool

	// Warning 预警中（弹出前的尖刺、落下前的落石）
	Warning bool

	// Rotation 旋转角（弧度），仅落石使用
	Rotation float64

	// ShakeX 水平抖动偏移，仅魔法墙使用
	ShakeX float64

	// Health 剩余耐久，仅魔法墙使用
	Health int

	// Danger 尖刺的危险三角形，仅 Active 时有效
	Danger utils.Triangle

	// Style 外观类型（平台的 ground/normal/step）
	Style string
}

// Drawable 能产出渲染快照的对象
type Drawable interface {
	View() View
}

// Hazard 随时间推进状态的关卡对象
//
// 编排器持有一个 []Hazard，每帧统一推进计时器并收集渲染快照；
// 与玩家的交互检测由碰撞系统按固定优先级逐类处理。
type Hazard interface {
	Drawable
	Update(dt float64)
}
