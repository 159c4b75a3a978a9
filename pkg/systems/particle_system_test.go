package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

func fixed(v float64) particle.Value {
	return particle.Value{Min: v, Max: v}
}

func testPresets() map[string]*particle.Preset {
	return map[string]*particle.Preset{
		PresetExplosion: {
			Name:   PresetExplosion,
			Count:  fixed(10),
			SpeedX: fixed(2),
			SpeedY: fixed(-3),
			Life:   fixed(0.5),
			Size:   fixed(3),
		},
		PresetDust: {
			Name:   PresetDust,
			Count:  fixed(3),
			Life:   fixed(1),
			Size:   fixed(1),
			SpeedY: fixed(-1),
		},
	}
}

func newTestParticles(max, burst int) *ParticleSystem {
	rules := config.ParticleRules{MaxParticles: max, MaxBurst: burst, GravityScale: 0.5}
	return NewParticleSystem(testPresets(), rules, 0.8, rand.New(rand.NewSource(1)))
}

// TestParticleSystem_BurstCapped 单次爆发不超过 MaxBurst
func TestParticleSystem_BurstCapped(t *testing.T) {
	ps := newTestParticles(100, 30)
	if n := ps.BurstCount(PresetExplosion, utils.Vec2{}, 80); n != 30 {
		t.Errorf("spawned %d, want 30", n)
	}
	if n := ps.Burst(PresetExplosion, utils.Vec2{}); n != 10 {
		t.Errorf("preset burst spawned %d, want 10", n)
	}
	if ps.Len() != 40 {
		t.Errorf("pool size = %d, want 40", ps.Len())
	}
}

// TestParticleSystem_BurstEvictsOldest 池满时淘汰最旧的粒子
func TestParticleSystem_BurstEvictsOldest(t *testing.T) {
	ps := newTestParticles(20, 0)
	ps.BurstCount(PresetExplosion, utils.Vec2{X: 1}, 15)
	ps.BurstCount(PresetExplosion, utils.Vec2{X: 2}, 10)

	if ps.Len() != 20 {
		t.Fatalf("pool size = %d, want 20", ps.Len())
	}
	old := 0
	for _, p := range ps.Particles() {
		if p.X == 1 {
			old++
		}
	}
	if old != 10 {
		t.Errorf("old particles kept = %d, want 10", old)
	}
	if ps.Particles()[19].X != 2 {
		t.Error("newest particle should be at the end")
	}
}

// TestParticleSystem_DustSkippedWhenFull 池满时尘土整批放弃
func TestParticleSystem_DustSkippedWhenFull(t *testing.T) {
	ps := newTestParticles(10, 0)
	ps.BurstCount(PresetExplosion, utils.Vec2{}, 9)

	if n := ps.Dust(utils.Vec2{}, 3); n != 0 {
		t.Errorf("dust spawned %d into a full pool", n)
	}
	if n := ps.Dust(utils.Vec2{}, 1); n != 1 {
		t.Errorf("dust spawned %d, want 1", n)
	}
	if ps.Len() != 10 {
		t.Errorf("pool size = %d, want 10", ps.Len())
	}
}

// TestParticleSystem_Update 速度、重力和寿命
func TestParticleSystem_Update(t *testing.T) {
	ps := newTestParticles(0, 0)
	ps.BurstCount(PresetExplosion, utils.Vec2{X: 100, Y: 100}, 1)

	ps.Update(0.1)
	p := ps.Particles()[0]
	// 重力 = 0.8 × 0.5 = 0.4
	if math.Abs(p.VY+2.6) > 1e-9 {
		t.Errorf("vy = %.2f, want -2.6", p.VY)
	}
	if math.Abs(p.X-102) > 1e-9 || math.Abs(p.Y-97.4) > 1e-9 {
		t.Errorf("position = (%.2f, %.2f), want (102, 97.4)", p.X, p.Y)
	}

	for i := 0; i < 5; i++ {
		ps.Update(0.1)
	}
	if ps.Len() != 0 {
		t.Errorf("expired particles not removed, len = %d", ps.Len())
	}
}

// TestParticleSystem_UnknownPreset 未知预设不产生粒子
func TestParticleSystem_UnknownPreset(t *testing.T) {
	ps := newTestParticles(0, 0)
	if n := ps.Burst("missing", utils.Vec2{}); n != 0 {
		t.Errorf("unknown preset spawned %d", n)
	}
	ps.Burst(PresetExplosion, utils.Vec2{})
	ps.Clear()
	if ps.Len() != 0 {
		t.Error("Clear should empty the pool")
	}
}
