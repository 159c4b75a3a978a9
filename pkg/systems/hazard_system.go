package systems

import (
	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/entities"
)

// HazardSystem 推进所有陷阱的计时器和落石运动
type HazardSystem struct{}

// NewHazardSystem 创建陷阱系统
func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

// Update 推进一帧
//
// 落石先检查触发（玩家中心X），再推进计时，最后与本帧的实体列表做下落碰撞。
// 其余陷阱只推进自身计时器，彼此之间不读取状态。
func (s *HazardSystem) Update(level *entities.Level, solids []components.Solid, dt float64) []Event {
	var events []Event
	playerX := level.Player.Rect.CenterX()

	for i, stone := range level.Stones {
		if stone.CheckTrigger(playerX) {
			events = append(events, Event{Kind: EventStoneWarning, At: stone.Rect.Center(), Index: i})
		}
	}

	for _, h := range level.Hazards() {
		wasDropped := false
		stone, isStone := h.(*components.FallingStone)
		if isStone {
			wasDropped = stone.Dropped
		}

		h.Update(dt)

		if isStone && !wasDropped && stone.Dropped {
			events = append(events, Event{Kind: EventStoneDropped, At: stone.Rect.Center(), Index: s.stoneIndex(level, stone)})
		}
	}

	for i, stone := range level.Stones {
		impact := stone.Fall(solids)
		if impact.Bounced {
			events = append(events, Event{
				Kind:  EventStoneImpact,
				At:    impact.At,
				Index: i,
				Count: int(impact.Speed * 1.5),
			})
		}
	}
	return events
}

func (s *HazardSystem) stoneIndex(level *entities.Level, stone *components.FallingStone) int {
	for i, st := range level.Stones {
		if st == stone {
			return i
		}
	}
	return -1
}
