package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultSoundsPath 音效定义文件
const DefaultSoundsPath = "data/sounds.yaml"

// 支持的波形
const (
	WaveSine     = "sine"
	WaveSquare   = "square"
	WaveTriangle = "triangle"
	WaveNoise    = "noise"
)

// SoundConfig 合成音效配置
//
// 游戏没有音频素材，所有音效都按此配置在启动时合成为 PCM。
type SoundConfig struct {
	SampleRate int                 `yaml:"sampleRate"`
	Sounds     map[string]SoundDef `yaml:"sounds"`
}

// SoundDef 单个音效：一段频率线性滑动、音量线性衰减的波形
type SoundDef struct {
	Wave     string  `yaml:"wave"`
	Freq     float64 `yaml:"freq"`    // 起始频率（Hz）
	EndFreq  float64 `yaml:"endFreq"` // 结束频率（Hz），0 表示不滑动
	Duration float64 `yaml:"duration"`
	Volume   float64 `yaml:"volume"`
}

// ParseSoundConfig 解析音效配置
func ParseSoundConfig(data []byte) (*SoundConfig, error) {
	var cfg SoundConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sound config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sound config: %w", err)
	}
	return &cfg, nil
}

// LoadSoundConfig 从数据目录或磁盘加载音效配置
func LoadSoundConfig(path string) (*SoundConfig, error) {
	data, err := readDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound config %s: %w", path, err)
	}
	return ParseSoundConfig(data)
}

// Validate 检查音效配置
func (c *SoundConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sampleRate must be positive, got %d", c.SampleRate)
	}
	for _, name := range c.Names() {
		s := c.Sounds[name]
		switch s.Wave {
		case WaveSine, WaveSquare, WaveTriangle, WaveNoise:
		default:
			return fmt.Errorf("sound %q: unknown wave %q", name, s.Wave)
		}
		if s.Freq <= 0 {
			return fmt.Errorf("sound %q: freq must be positive", name)
		}
		if s.EndFreq < 0 {
			return fmt.Errorf("sound %q: endFreq cannot be negative", name)
		}
		if s.Duration <= 0 || s.Duration > 5 {
			return fmt.Errorf("sound %q: duration must be in (0, 5], got %.2f", name, s.Duration)
		}
		if s.Volume < 0 || s.Volume > 1 {
			return fmt.Errorf("sound %q: volume must be in [0, 1], got %.2f", name, s.Volume)
		}
	}
	return nil
}

// Names 返回所有音效名（排序后）
func (c *SoundConfig) Names() []string {
	names := make([]string, 0, len(c.Sounds))
	for name := range c.Sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
