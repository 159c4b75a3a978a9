package entities

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

// Level 一局游戏中的全部关卡对象
//
// 重置时整个 Level 被丢弃并重新构建，不做局部恢复。
type Level struct {
	ID     string
	Name   string
	Width  float64
	Height float64

	Player *components.Player

	Platforms     []*components.Platform
	FakePlatforms []*components.FakePlatform
	// MagicWall 为 nil 表示关卡没有魔法墙
	MagicWall *components.MagicWall
	Spikes    []*components.Spike
	Stones    []*components.FallingStone
	Teleports []*components.TeleportTrap
	FakeDoors []*components.FakeDoor
	Door      *components.Door

	WinTrigger utils.Rect
}

// Hazards 所有需要按帧推进的关卡对象，顺序即绘制顺序
func (l *Level) Hazards() []components.Hazard {
	hazards := make([]components.Hazard, 0,
		len(l.FakePlatforms)+len(l.Spikes)+len(l.Stones)+len(l.Teleports)+len(l.FakeDoors)+2)

	for _, f := range l.FakePlatforms {
		hazards = append(hazards, f)
	}
	if l.MagicWall != nil {
		hazards = append(hazards, l.MagicWall)
	}
	for _, t := range l.Teleports {
		hazards = append(hazards, t)
	}
	for _, d := range l.FakeDoors {
		hazards = append(hazards, d)
	}
	for _, s := range l.Spikes {
		hazards = append(hazards, s)
	}
	for _, s := range l.Stones {
		hazards = append(hazards, s)
	}
	hazards = append(hazards, l.Door)
	return hazards
}

// BuildLevel 根据关卡配置和规则构建关卡
//
// 参数:
//   - cfg: 已通过验证的关卡配置
//   - rules: 当前规则变体
//   - rng: 随机源（落石掉落时的旋转速度），nil 时使用全局随机源
//
// 返回:
//   - *Level: 构建完成的关卡，玩家位于出生点
//   - error: 配置为空或规则缺失时返回错误
func BuildLevel(cfg *config.LevelConfig, rules *config.Rules, rng *rand.Rand) (*Level, error) {
	if cfg == nil {
		return nil, fmt.Errorf("level config cannot be nil")
	}
	if rules == nil {
		return nil, fmt.Errorf("rules cannot be nil")
	}

	level := &Level{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Width:      cfg.Width,
		Height:     cfg.Height,
		WinTrigger: rectOf(cfg.WinTrigger),
	}

	pr := rules.Player
	level.Player = components.NewPlayer(cfg.Spawn.X, cfg.Spawn.Y, pr.Width, pr.Height)

	for _, p := range cfg.Platforms {
		level.Platforms = append(level.Platforms, &components.Platform{Rect: rectOf(p.RectConfig), Type: p.Type})
	}

	for _, f := range cfg.FakePlatforms {
		delay := f.Delay
		if delay == 0 {
			delay = rules.FakePlatform.DefaultDelay
		}
		level.FakePlatforms = append(level.FakePlatforms, components.NewFakePlatform(rectOf(f.RectConfig), delay))
	}

	if cfg.MagicWall != nil {
		wall := components.NewMagicWall(rectOf(*cfg.MagicWall), rules.Wall.Health)
		wall.HitInflate = rules.Wall.HitInflate
		wall.CrackTime = rules.Wall.CrackTime
		wall.ShakeTime = rules.Wall.ShakeTime
		level.MagicWall = wall
	}

	for _, s := range cfg.Spikes {
		spike := components.NewSpike(s.X, s.Y, s.W, s.H, s.Popup, s.Delay)
		spike.WarnRate = rules.Spike.WarnRate
		spike.Inset = rules.Spike.Inset
		if s.Move != nil {
			spike.MoveSpeed = s.Move.Speed
			spike.MoveRange = s.Move.Range
			switch s.Move.Axis {
			case "horizontal":
				spike.Axis = components.MoveHorizontal
			case "vertical":
				spike.Axis = components.MoveVertical
			}
		}
		level.Spikes = append(level.Spikes, spike)
	}

	sr := rules.Stone
	for _, s := range cfg.Stones {
		stone := components.NewFallingStone(s.X, s.Y, sr.Size, s.Trigger[0], s.Trigger[1], s.Warning, sr.MaxBounces)
		stone.Gravity = pr.Gravity * sr.GravityScale
		stone.Terminal = pr.TerminalVelocity
		stone.Restitution = sr.Restitution
		stone.SettleSpeed = sr.SettleSpeed
		stone.DropSpin = particle.RandomInRange(rng, -sr.MaxSpin, sr.MaxSpin)
		level.Stones = append(level.Stones, stone)
	}

	for _, t := range cfg.Teleports {
		trap := components.NewTeleportTrap(rectOf(t.RectConfig), utils.Vec2{X: t.Destination.X, Y: t.Destination.Y}, rules.Teleport.Cooldown)
		trap.PulseRate = rules.Teleport.PulseRate
		level.Teleports = append(level.Teleports, trap)
	}

	fd := rules.FakeDoor
	for _, p := range cfg.FakeDoors {
		level.FakeDoors = append(level.FakeDoors, components.NewFakeDoor(utils.NewRect(p.X, p.Y, fd.Width, fd.Height), fd.Inset))
	}

	dr := rules.Door
	level.Door = components.NewDoor(
		utils.NewRect(cfg.Door.Primary.X, cfg.Door.Primary.Y, dr.Width, dr.Height),
		utils.NewRect(cfg.Door.Alternate.X, cfg.Door.Alternate.Y, dr.Width, dr.Height),
		dr.TrollInflateX, dr.TrollInflateY,
	)

	log.Debug().
		Str("component", "LevelFactory").
		Str("level", cfg.ID).
		Int("platforms", len(level.Platforms)).
		Int("spikes", len(level.Spikes)).
		Int("stones", len(level.Stones)).
		Msg("level built")

	return level, nil
}

func rectOf(r config.RectConfig) utils.Rect {
	return utils.NewRect(r.X, r.Y, r.W, r.H)
}
