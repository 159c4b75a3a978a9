package systems

import "github.com/decker502/devilish/pkg/utils"

// EventKind 关卡事件类型
type EventKind int

const (
	EventWallHit EventKind = iota
	EventWallDestroyed
	EventFakePlatformTriggered
	EventTeleported
	EventKilled
	EventDoorTrolled
	EventDoorOpened
	EventWon
	EventStoneWarning
	EventStoneDropped
	EventStoneImpact
)

func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wallHit"
	case EventWallDestroyed:
		return "wallDestroyed"
	case EventFakePlatformTriggered:
		return "fakePlatformTriggered"
	case EventTeleported:
		return "teleported"
	case EventKilled:
		return "killed"
	case EventDoorTrolled:
		return "doorTrolled"
	case EventDoorOpened:
		return "doorOpened"
	case EventWon:
		return "won"
	case EventStoneWarning:
		return "stoneWarning"
	case EventStoneDropped:
		return "stoneDropped"
	case EventStoneImpact:
		return "stoneImpact"
	}
	return "unknown"
}

// 死亡原因
const (
	CauseFakeDoor = "fakeDoor"
	CauseSpike    = "spike"
	CauseStone    = "stone"
)

// Event 一帧内发生的关卡事件
//
// 事件只描述"发生了什么"，粒子、震屏、音效和计分由编排器统一响应。
type Event struct {
	Kind EventKind
	// At 事件位置（粒子爆发中心）
	At utils.Vec2
	// To 第二个位置：门换位后的位置、传送目的地
	To utils.Vec2
	// Index 相关对象在关卡切片中的下标
	Index int
	// Cause 死亡原因，仅 EventKilled 使用
	Cause string
	// Count 粒子数量提示（落石撞击的尘土数量）
	Count int
}
