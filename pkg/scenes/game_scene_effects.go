package scenes

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/game"
	"github.com/decker502/devilish/pkg/systems"
)

// 震屏配置的事件名（rules.yaml camera.shakes 的 key）
const (
	shakeWallHit      = "wallHit"
	shakeWallBreak    = "wallBreak"
	shakeFakePlatform = "fakePlatform"
	shakeTeleport     = "teleport"
	shakeDeath        = "death"
	shakeWin          = "win"
	shakeStoneImpact  = "stoneImpact"
)

// 奔跑尘土：脚下水平随机偏移和每次的粒子数
const (
	runDustSpread = 8.0
	runDustCount  = 3
)

// onJump 起跳音效
func (s *GameScene) onJump(kind systems.JumpKind) {
	switch kind {
	case systems.JumpGround:
		s.playSound(game.SoundJump)
	case systems.JumpDouble:
		s.playSound(game.SoundDoubleJump)
	}
}

// onMove 落地和奔跑的尘土
func (s *GameScene) onMove(move systems.MoveResult) {
	if move.HardLanding {
		s.particles.Dust(move.Feet, int(math.Abs(move.LandingSpeed)/2))
		s.playSound(game.SoundLand)
	}
	if move.BufferedJump {
		s.playSound(game.SoundJump)
	}
	if move.RunDust {
		at := move.Feet
		at.X += particle.RandomInRange(s.rng, -runDustSpread, runDustSpread)
		s.particles.Dust(at, runDustCount)
	}
}

// handleEvent 响应一个关卡事件：粒子、震屏、音效和状态变化
func (s *GameScene) handleEvent(ev systems.Event) {
	switch ev.Kind {
	case systems.EventWallHit:
		s.particles.Burst(systems.PresetWallCrack, ev.At)
		s.shake(shakeWallHit)
		s.playSound(game.SoundWallHit)

	case systems.EventWallDestroyed:
		s.particles.Burst(systems.PresetWallBreak, ev.At)
		s.shake(shakeWallBreak)
		s.playSound(game.SoundWallBreak)
		log.Debug().Str("component", "GameScene").Msg("magic wall destroyed")

	case systems.EventFakePlatformTriggered:
		s.shake(shakeFakePlatform)

	case systems.EventTeleported:
		s.particles.Burst(systems.PresetTeleport, ev.At)
		s.particles.Burst(systems.PresetTeleport, ev.To)
		s.shake(shakeTeleport)
		s.playSound(game.SoundTeleport)

	case systems.EventDoorTrolled:
		s.particles.Burst(systems.PresetDoorSwap, ev.At)
		s.particles.Burst(systems.PresetDoorSwap, ev.To)
		s.playSound(game.SoundDoorTroll)

	case systems.EventDoorOpened:
		s.playSound(game.SoundDoorOpen)

	case systems.EventStoneWarning:
		log.Debug().Str("component", "GameScene").Int("stone", ev.Index).Msg("stone warning")

	case systems.EventStoneDropped:
		s.playSound(game.SoundStoneDrop)
		log.Debug().Str("component", "GameScene").Int("stone", ev.Index).Msg("stone dropped")

	case systems.EventStoneImpact:
		s.particles.BurstCount(systems.PresetStoneImpact, ev.At, ev.Count)
		s.shake(shakeStoneImpact)
		s.playSound(game.SoundStoneHit)

	case systems.EventKilled:
		s.killPlayer(ev)

	case systems.EventWon:
		s.winGame()
	}
}

// killPlayer 玩家死亡：冻结玩家和计时，尝试次数 +1
func (s *GameScene) killPlayer(ev systems.Event) {
	if !s.state.Kill() {
		return
	}
	player := s.level.Player
	player.Dead = true

	s.particles.Burst(systems.PresetDeath, player.Rect.Center())
	s.shake(shakeDeath)
	s.playSound(game.SoundDeath)

	log.Debug().Str("component", "GameScene").
		Str("cause", ev.Cause).
		Int("attempts", s.state.Attempts).
		Float64("elapsed", s.state.DeathTime).
		Msg("player died")
}

// winGame 通关：冻结玩家和计时，刷新最佳时间
func (s *GameScene) winGame() {
	changed, newBest := s.state.Win()
	if !changed {
		return
	}
	player := s.level.Player
	player.Win = true

	s.particles.Burst(systems.PresetWin, player.Rect.Center())
	s.shake(shakeWin)
	s.playSound(game.SoundWin)

	log.Info().Str("component", "GameScene").
		Float64("time", s.state.WinTime).
		Float64("best", s.state.BestTime).
		Bool("newBest", newBest).
		Msg("level cleared")
}

func (s *GameScene) shake(event string) {
	s.camera.Shake(s.rules.Camera.Shake(event))
}

func (s *GameScene) playSound(name string) {
	if s.sounds == nil {
		return
	}
	s.sounds.PlaySound(name)
}
