package systems

import (
	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/entities"
	"github.com/decker502/devilish/pkg/utils"
)

// BuildSolids 构建本帧的实体矩形列表
//
// 顺序固定：静态平台、未触发的假平台、存活的魔法墙。
// 列表只在本帧有效，下一帧必须重新构建。
func BuildSolids(level *entities.Level) []components.Solid {
	solids := make([]components.Solid, 0, len(level.Platforms)+len(level.FakePlatforms)+1)
	for i, p := range level.Platforms {
		solids = append(solids, components.Solid{Rect: p.Rect, Kind: components.SolidStatic, Index: i})
	}
	for i, f := range level.FakePlatforms {
		if f.Solid() {
			solids = append(solids, components.Solid{Rect: f.Rect, Kind: components.SolidFakePlatform, Index: i})
		}
	}
	if w := level.MagicWall; w != nil && w.Alive {
		solids = append(solids, components.Solid{Rect: w.Rect, Kind: components.SolidMagicWall})
	}
	return solids
}

// CollisionSystem 玩家与陷阱的交互检测
//
// 检测按固定优先级进行：魔法墙命中 → 假平台触发 → 传送 → 假门 → 尖刺 → 落石 → 门。
// 玩家一旦死亡，本帧剩余的检测全部跳过。
type CollisionSystem struct{}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Resolve 执行本帧的交互检测，直接修改关卡对象状态并返回发生的事件
//
// 参数:
//   - level: 当前关卡
//   - move: 本帧玩家物理移动的结果（用于判断是否落在假平台上）
func (s *CollisionSystem) Resolve(level *entities.Level, move MoveResult) []Event {
	var events []Event
	player := level.Player
	if player.Frozen() {
		return events
	}

	if w := level.MagicWall; w != nil && w.Contact(player.Rect) {
		if w.Hit() {
			events = append(events, Event{Kind: EventWallDestroyed, At: w.Rect.Center()})
			log.Debug().Str("component", "CollisionSystem").Msg("magic wall destroyed")
		} else {
			events = append(events, Event{
				Kind: EventWallHit,
				At:   utils.Vec2{X: player.Rect.CenterX(), Y: w.Rect.CenterY()},
			})
		}
	}

	if sup := move.Support; sup != nil && sup.Kind == components.SolidFakePlatform {
		f := level.FakePlatforms[sup.Index]
		if f.Trigger() {
			events = append(events, Event{Kind: EventFakePlatformTriggered, At: f.Rect.Center(), Index: sup.Index})
		}
	}

	for i, trap := range level.Teleports {
		from := player.Rect.Center()
		dest, ok := trap.TryTeleport(player.Rect)
		if !ok {
			continue
		}
		player.Rect = player.Rect.MoveTo(dest.X, dest.Y)
		player.VX = 0
		player.VY = 0
		events = append(events, Event{Kind: EventTeleported, At: from, To: player.Rect.Center(), Index: i})
		log.Debug().Str("component", "CollisionSystem").Float64("x", dest.X).Float64("y", dest.Y).Msg("player teleported")
		break
	}

	if ev, ok := s.checkLethal(level); ok {
		return append(events, ev)
	}

	door := level.Door
	if door.MaybeTroll(player.Rect) {
		events = append(events, Event{Kind: EventDoorTrolled, At: door.Primary.Center(), To: door.Alternate.Center()})
		log.Debug().Str("component", "CollisionSystem").Msg("door trolled")
	}

	if player.Rect.Overlaps(level.WinTrigger) && door.SetOpen() {
		events = append(events, Event{Kind: EventDoorOpened, At: door.Active.Center()})
	}

	if door.CheckWin(player.Rect) {
		events = append(events, Event{Kind: EventWon, At: player.Rect.Center()})
	}
	return events
}

// checkLethal 致命检测：假门 → 尖刺 → 落石，命中第一个即返回
func (s *CollisionSystem) checkLethal(level *entities.Level) (Event, bool) {
	r := level.Player.Rect
	at := r.Center()

	for i, d := range level.FakeDoors {
		if d.Kills(r) {
			return Event{Kind: EventKilled, At: at, Cause: CauseFakeDoor, Index: i}, true
		}
	}
	for i, spike := range level.Spikes {
		if tri, ok := spike.DangerZone(); ok && utils.RectHitsTriangle(r, tri) {
			return Event{Kind: EventKilled, At: at, Cause: CauseSpike, Index: i}, true
		}
	}
	for i, stone := range level.Stones {
		if stone.Lethal() && stone.Rect.Overlaps(r) {
			return Event{Kind: EventKilled, At: at, Cause: CauseStone, Index: i}, true
		}
	}
	return Event{}, false
}
