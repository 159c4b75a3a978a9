package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadLevelConfig_DataFile 测试加载仓库中的关卡
func TestLoadLevelConfig_DataFile(t *testing.T) {
	level, err := LoadLevelConfig("../../data/levels/devil-1.yaml")
	require.NoError(t, err)

	assert.Equal(t, "devil-1", level.ID)
	assert.Equal(t, 1280.0, level.Width)
	assert.Equal(t, 720.0, level.Height)
	assert.Equal(t, Point{X: 60, Y: 620}, level.Spawn)

	require.Len(t, level.Platforms, 9)
	assert.Equal(t, "ground", level.Platforms[0].Type)
	assert.Equal(t, "normal", level.Platforms[1].Type, "type defaults to normal")

	require.Len(t, level.FakePlatforms, 2)
	assert.Equal(t, 0.8, level.FakePlatforms[0].Delay)

	require.NotNil(t, level.MagicWall)
	assert.Equal(t, RectConfig{X: 350, Y: 580, W: 70, H: 80}, *level.MagicWall)

	require.Len(t, level.Spikes, 5)
	assert.Equal(t, DefaultSpikeWidth, level.Spikes[0].W)
	assert.Equal(t, DefaultSpikeHeight, level.Spikes[0].H)
	assert.False(t, level.Spikes[0].Popup)
	assert.True(t, level.Spikes[1].Popup)
	require.NotNil(t, level.Spikes[2].Move)
	assert.Equal(t, "horizontal", level.Spikes[2].Move.Axis)

	require.Len(t, level.Stones, 4)
	assert.Equal(t, [2]float64{420, 540}, level.Stones[0].Trigger)
	assert.Equal(t, 1.5, level.Stones[0].Warning)

	require.Len(t, level.Teleports, 1)
	assert.Equal(t, Point{X: 600, Y: 380}, level.Teleports[0].Destination)

	assert.Equal(t, Point{X: 1140, Y: 380}, level.Door.Primary)
	assert.Equal(t, Point{X: 160, Y: 500}, level.Door.Alternate)
	assert.Len(t, level.FakeDoors, 1)
	assert.Equal(t, RectConfig{X: 1220, Y: 0, W: 60, H: 720}, level.WinTrigger)
}

// TestLoadLevelConfig_Defaults 测试默认值
func TestLoadLevelConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
id: mini
name: Mini
platforms:
  - {x: 0, y: 100, w: 100, h: 10}
winTrigger: {x: 90, y: 0, w: 10, h: 100}
`), 0644))

	level, err := LoadLevelConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float64(GameWindowWidth), level.Width)
	assert.Equal(t, float64(GameWindowHeight), level.Height)
	assert.Nil(t, level.MagicWall)
	assert.Empty(t, level.Spikes)
}

// TestLoadLevelConfig_MissingFile 测试文件不存在
func TestLoadLevelConfig_MissingFile(t *testing.T) {
	_, err := LoadLevelConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read level config file")
}

// TestParseLevelConfig_Invalid 测试非法关卡
func TestParseLevelConfig_Invalid(t *testing.T) {
	base := "id: x\nname: X\nwinTrigger: {x: 0, y: 0, w: 10, h: 10}\n"
	platform := "platforms:\n  - {x: 0, y: 0, w: 10, h: 10}\n"

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing id", "name: X\n" + platform, "level ID is required"},
		{"missing name", "id: x\n" + platform, "level name is required"},
		{"no platforms", base, "at least one platform"},
		{"empty platform", base + "platforms:\n  - {x: 0, y: 0, w: 0, h: 10}\n", "platforms[0]"},
		{"negative fake delay", base + platform + "fakePlatforms:\n  - {x: 0, y: 0, w: 5, h: 5, delay: -1}\n", "fakePlatforms[0]"},
		{"bad move axis", base + platform + "spikes:\n  - {x: 0, y: 0, move: {axis: diagonal}}\n", "move axis"},
		{"inverted trigger", base + platform + "stones:\n  - {x: 0, y: 0, trigger: [50, 10], warning: 1}\n", "inverted"},
		{"empty win trigger", "id: x\nname: X\n" + platform, "winTrigger"},
		{"bad yaml", "id: [", "failed to parse level config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
