package config

import (
	"fmt"

	"github.com/decker502/devilish/internal/particle"
)

// DefaultParticlesPath 粒子预设文件
const DefaultParticlesPath = "data/particles.yaml"

// LoadParticlePresets 从数据目录或磁盘加载并编译粒子预设
func LoadParticlePresets(path string) (map[string]*particle.Preset, error) {
	data, err := readDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle presets %s: %w", path, err)
	}
	presets, err := particle.ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}
