package systems

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

// 内置预设名
const (
	PresetExplosion   = "explosion"
	PresetDust        = "dust"
	PresetWallCrack   = "wallCrack"
	PresetWallBreak   = "wallBreak"
	PresetTeleport    = "teleport"
	PresetDoorSwap    = "doorSwap"
	PresetStoneImpact = "stoneImpact"
	PresetDeath       = "death"
	PresetWin         = "win"
)

// ParticleSystem 容量受限的粒子池
//
// 粒子只是视觉输出，不影响任何游戏逻辑。
// 容量策略：爆发类粒子超出上限时淘汰最旧的粒子；尘土超出上限时直接放弃。
type ParticleSystem struct {
	presets   map[string]*particle.Preset
	rules     config.ParticleRules
	gravity   float64
	rng       *rand.Rand
	particles []*components.Particle

	// 已经警告过的未知预设，避免每帧刷屏
	warned map[string]bool
}

// NewParticleSystem 创建粒子系统
//
// 参数:
//   - presets: 已编译的爆发预设
//   - rules: 容量限制
//   - playerGravity: 玩家重力，粒子默认受到 playerGravity × rules.GravityScale 的重力
//   - rng: 随机源，nil 时使用全局随机源
func NewParticleSystem(presets map[string]*particle.Preset, rules config.ParticleRules, playerGravity float64, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		presets: presets,
		rules:   rules,
		gravity: playerGravity * rules.GravityScale,
		rng:     rng,
		warned:  make(map[string]bool),
	}
}

// Burst 按预设在 at 处爆发一次，粒子数由预设决定
func (ps *ParticleSystem) Burst(name string, at utils.Vec2) int {
	preset := ps.preset(name)
	if preset == nil {
		return 0
	}
	return ps.BurstCount(name, at, int(preset.Count.Sample(ps.rng)))
}

// BurstCount 按预设在 at 处爆发 count 个粒子
//
// 单次爆发受 MaxBurst 限制；池满时淘汰最旧的粒子腾出空间。
// 返回实际生成的粒子数。
func (ps *ParticleSystem) BurstCount(name string, at utils.Vec2, count int) int {
	preset := ps.preset(name)
	if preset == nil || count <= 0 {
		return 0
	}

	if ps.rules.MaxBurst > 0 && count > ps.rules.MaxBurst {
		count = ps.rules.MaxBurst
	}
	if max := ps.rules.MaxParticles; max > 0 {
		if count > max {
			count = max
		}
		if overflow := len(ps.particles) + count - max; overflow > 0 {
			ps.particles = append(ps.particles[:0], ps.particles[overflow:]...)
		}
	}

	ps.spawn(preset, at, count)
	return count
}

// Dust 在 at 处产生 count 个尘土粒子；池中空间不足时整批放弃
func (ps *ParticleSystem) Dust(at utils.Vec2, count int) int {
	preset := ps.preset(PresetDust)
	if preset == nil || count <= 0 {
		return 0
	}
	if max := ps.rules.MaxParticles; max > 0 && len(ps.particles)+count > max {
		return 0
	}
	ps.spawn(preset, at, count)
	return count
}

func (ps *ParticleSystem) spawn(preset *particle.Preset, at utils.Vec2, count int) {
	gravity := ps.gravity
	if preset.HasGravity {
		gravity = preset.Gravity
	}

	for i := 0; i < count; i++ {
		life := preset.Life.Sample(ps.rng)
		ps.particles = append(ps.particles, &components.Particle{
			X:       at.X,
			Y:       at.Y,
			VX:      preset.SpeedX.Sample(ps.rng),
			VY:      preset.SpeedY.Sample(ps.rng),
			Life:    life,
			MaxLife: life,
			Size:    preset.Size.Sample(ps.rng),
			Color:   preset.Color,
			Gravity: gravity,
			Alpha:   preset.Alpha,
			Scale:   preset.Scale,
		})
	}
}

func (ps *ParticleSystem) preset(name string) *particle.Preset {
	preset, ok := ps.presets[name]
	if !ok {
		if !ps.warned[name] {
			ps.warned[name] = true
			log.Warn().Str("component", "ParticleSystem").Str("preset", name).Msg("unknown particle preset")
		}
		return nil
	}
	return preset
}

// Update 推进所有粒子并移除寿命耗尽的粒子
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Life -= dt
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(ps.particles); i++ {
		ps.particles[i] = nil
	}
	ps.particles = alive
}

// Particles 当前存活的粒子（按生成顺序）
func (ps *ParticleSystem) Particles() []*components.Particle {
	return ps.particles
}

// Len 当前粒子数
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear 清空粒子池
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
