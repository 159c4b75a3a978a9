package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadRules_DataFile 测试加载仓库中的规则文件
func TestLoadRules_DataFile(t *testing.T) {
	rf, err := LoadRules("../../data/rules.yaml")
	require.NoError(t, err)

	assert.Equal(t, "enhanced", rf.Default)
	assert.Equal(t, []string{"desktop", "enhanced"}, rf.Names())

	enhanced, err := rf.Variant("")
	require.NoError(t, err)
	assert.Equal(t, 0.8, enhanced.Player.Gravity)
	assert.Equal(t, -15.0, enhanced.Player.JumpVelocity)
	assert.Equal(t, -13.5, enhanced.Player.DoubleJumpVelocity)
	assert.True(t, enhanced.Player.DoubleJump)
	assert.Equal(t, 2, enhanced.Wall.Health)
	assert.Equal(t, 100, enhanced.Particles.MaxParticles)
	assert.Equal(t, ShakeRule{Intensity: 12, Duration: 0.8}, enhanced.Camera.Shake("death"))
	assert.Equal(t, ShakeRule{}, enhanced.Camera.Shake("unknown"))
}

// TestRulesFile_VariantExtends 测试变体继承：子变体只覆盖出现的字段
func TestRulesFile_VariantExtends(t *testing.T) {
	rf, err := LoadRules("../../data/rules.yaml")
	require.NoError(t, err)

	desktop, err := rf.Variant("desktop")
	require.NoError(t, err)

	// 覆盖的字段
	assert.Equal(t, 0.8, desktop.Player.Acceleration)
	assert.Equal(t, 0.5, desktop.Player.AirControl)
	assert.Equal(t, 20.0, desktop.Door.TrollInflateY)
	assert.Equal(t, 8, desktop.Render.ShadowBlur)
	assert.Equal(t, ShakeRule{Intensity: 8, Duration: 0.5}, desktop.Camera.Shake("wallBreak"))

	// 继承的字段
	assert.Equal(t, 0.8, desktop.Player.Gravity)
	assert.Equal(t, 60.0, desktop.Door.TrollInflateX)
	assert.Equal(t, ShakeRule{Intensity: 12, Duration: 0.8}, desktop.Camera.Shake("death"))

	// 子变体的覆盖不能污染父变体
	enhanced, err := rf.Variant("enhanced")
	require.NoError(t, err)
	assert.Equal(t, ShakeRule{Intensity: 6, Duration: 0.4}, enhanced.Camera.Shake("wallBreak"))
	assert.Equal(t, 1.0, enhanced.Player.Acceleration)
}

// TestParseRules_Errors 测试规则文件结构错误
func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no variants", "default: a\n", "at least one variant"},
		{"no default", "variants:\n  a: {}\n", "default variant is required"},
		{"undefined default", "default: b\nvariants:\n  a: {}\n", `default variant "b" is not defined`},
		{"bad yaml", "default: [", "failed to parse rules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestRulesFile_VariantErrors 测试变体解析错误
func TestRulesFile_VariantErrors(t *testing.T) {
	rf, err := ParseRules([]byte(`
default: a
variants:
  a:
    extends: b
  b:
    extends: a
  c:
    player: {width: 0}
`))
	require.NoError(t, err)

	_, err = rf.Variant("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extends itself")

	_, err = rf.Variant("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rules variant")

	_, err = rf.Variant("c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player size must be positive")
}

// TestRules_Validate 测试调参校验
func TestRules_Validate(t *testing.T) {
	rf, err := LoadRules("../../data/rules.yaml")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(r *Rules)
		want   string
	}{
		{"upward gravity", func(r *Rules) { r.Player.Gravity = -1 }, "gravity"},
		{"downward jump", func(r *Rules) { r.Player.JumpVelocity = 5 }, "jump velocity"},
		{"friction above one", func(r *Rules) { r.Player.Friction = 1.2 }, "friction"},
		{"bouncy stone", func(r *Rules) { r.Stone.Restitution = 1 }, "restitution"},
		{"invulnerable wall", func(r *Rules) { r.Wall.Health = 0 }, "wall health"},
		{"fake door all inset", func(r *Rules) { r.FakeDoor.Inset = 25 }, "inset"},
		{"burst exceeds pool", func(r *Rules) { r.Particles.MaxBurst = 500 }, "max burst"},
		{"zero smoothing", func(r *Rules) { r.Camera.Smoothing = 0 }, "smoothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := rf.Variant("enhanced")
			require.NoError(t, err)
			tt.mutate(rules)
			err = rules.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
