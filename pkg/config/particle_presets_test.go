package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadParticlePresets_DataFile 测试加载仓库中的粒子预设
func TestLoadParticlePresets_DataFile(t *testing.T) {
	presets, err := LoadParticlePresets("../../data/particles.yaml")
	require.NoError(t, err)

	for _, name := range []string{"explosion", "dust", "wallBreak", "teleport", "death", "win"} {
		require.Contains(t, presets, name)
	}
	assert.Equal(t, 10.0, presets["explosion"].Count.Min)
	assert.Equal(t, -5.0, presets["explosion"].SpeedX.Min)
	assert.Equal(t, 5.0, presets["explosion"].SpeedX.Max)
}

func TestLoadParticlePresets_MissingFile(t *testing.T) {
	_, err := LoadParticlePresets("testdata/no-such-file.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read particle presets")
}
