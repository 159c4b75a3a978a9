package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultLevelPath 默认关卡文件（嵌入数据目录）
const DefaultLevelPath = "data/levels/devil-1.yaml"

// 尖刺默认尺寸（关卡未指定宽高时使用）
const (
	DefaultSpikeWidth  = 32.0
	DefaultSpikeHeight = 26.0
)

// LevelConfig 关卡配置数据结构
// 描述一张手工搭建的固定关卡：平台、陷阱、门和胜利区域
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "devil-1"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）

	Width  float64 `yaml:"width"`  // 关卡宽度，默认等于窗口宽度
	Height float64 `yaml:"height"` // 关卡高度，默认等于窗口高度

	Spawn Point `yaml:"spawn"` // 玩家出生点（矩形左上角）

	Platforms     []PlatformConfig     `yaml:"platforms"`
	FakePlatforms []FakePlatformConfig `yaml:"fakePlatforms"`
	MagicWall     *RectConfig          `yaml:"magicWall"` // 可选：魔法墙
	Spikes        []SpikeConfig        `yaml:"spikes"`
	Stones        []StoneConfig        `yaml:"stones"`
	Teleports     []TeleportConfig     `yaml:"teleports"`
	Door          DoorConfig           `yaml:"door"`
	FakeDoors     []Point              `yaml:"fakeDoors"`
	WinTrigger    RectConfig           `yaml:"winTrigger"` // 进入后出口门打开
}

// Point 二维坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig 矩形（左上角 + 宽高）
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlatformConfig 静态平台
type PlatformConfig struct {
	RectConfig `yaml:",inline"`
	Type       string `yaml:"type"` // 外观类型："ground", "normal", "step"，默认 "normal"
}

// FakePlatformConfig 假平台：踩上后延迟消失
type FakePlatformConfig struct {
	RectConfig `yaml:",inline"`
	Delay      float64 `yaml:"delay"` // 消失延迟（秒），0 表示使用规则默认值
}

// SpikeConfig 尖刺配置
type SpikeConfig struct {
	X     float64     `yaml:"x"`
	Y     float64     `yaml:"y"`
	W     float64     `yaml:"w"`     // 默认 32
	H     float64     `yaml:"h"`     // 默认 26
	Popup bool        `yaml:"popup"` // 是否为弹出式（倒计时结束后才致命）
	Delay float64     `yaml:"delay"` // 弹出倒计时（秒）
	Move  *MoveConfig `yaml:"move"`  // 可选：正弦往复移动
}

// MoveConfig 尖刺移动方式
type MoveConfig struct {
	Axis  string  `yaml:"axis"`  // "horizontal" 或 "vertical"
	Speed float64 `yaml:"speed"` // 角速度（弧度/秒）
	Range float64 `yaml:"range"` // 振幅（像素）
}

// StoneConfig 落石配置
type StoneConfig struct {
	X       float64    `yaml:"x"`
	Y       float64    `yaml:"y"`
	Trigger [2]float64 `yaml:"trigger"` // 玩家中心X进入 [min, max] 时开始预警
	Warning float64    `yaml:"warning"` // 预警时长（秒）
}

// TeleportConfig 传送陷阱配置
type TeleportConfig struct {
	RectConfig  `yaml:",inline"`
	Destination Point `yaml:"destination"`
}

// DoorConfig 出口门配置
type DoorConfig struct {
	Primary   Point `yaml:"primary"`   // 初始位置
	Alternate Point `yaml:"alternate"` // 恶作剧换位后的位置
}

// ParseLevelConfig 解析关卡 YAML，应用默认值并验证
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&levelConfig)

	if err := levelConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config %q: %w", levelConfig.ID, err)
	}
	return &levelConfig, nil
}

// LoadLevelConfig 从数据目录或磁盘加载关卡配置
// 参数：
//
//	path - 关卡配置文件路径（"data/" 开头时优先读取嵌入资源）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := readDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Width == 0 {
		config.Width = GameWindowWidth
	}
	if config.Height == 0 {
		config.Height = GameWindowHeight
	}

	for i := range config.Platforms {
		if config.Platforms[i].Type == "" {
			config.Platforms[i].Type = "normal"
		}
	}

	for i := range config.Spikes {
		if config.Spikes[i].W == 0 {
			config.Spikes[i].W = DefaultSpikeWidth
		}
		if config.Spikes[i].H == 0 {
			config.Spikes[i].H = DefaultSpikeHeight
		}
	}
}

// Validate 验证关卡配置的完整性和合法性
func (c *LevelConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("level ID is required")
	}
	if c.Name == "" {
		return fmt.Errorf("level name is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("level size must be positive, got %.0fx%.0f", c.Width, c.Height)
	}

	if len(c.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	for i, p := range c.Platforms {
		if err := p.RectConfig.validate(); err != nil {
			return fmt.Errorf("platforms[%d]: %w", i, err)
		}
	}

	for i, p := range c.FakePlatforms {
		if err := p.RectConfig.validate(); err != nil {
			return fmt.Errorf("fakePlatforms[%d]: %w", i, err)
		}
		if p.Delay < 0 {
			return fmt.Errorf("fakePlatforms[%d]: delay cannot be negative", i)
		}
	}

	if c.MagicWall != nil {
		if err := c.MagicWall.validate(); err != nil {
			return fmt.Errorf("magicWall: %w", err)
		}
	}

	for i, s := range c.Spikes {
		if s.W <= 0 || s.H <= 0 {
			return fmt.Errorf("spikes[%d]: size must be positive", i)
		}
		if s.Delay < 0 {
			return fmt.Errorf("spikes[%d]: delay cannot be negative", i)
		}
		if s.Move != nil {
			if s.Move.Axis != "horizontal" && s.Move.Axis != "vertical" {
				return fmt.Errorf("spikes[%d]: move axis must be horizontal or vertical, got %q", i, s.Move.Axis)
			}
			if s.Move.Range < 0 {
				return fmt.Errorf("spikes[%d]: move range cannot be negative", i)
			}
		}
	}

	for i, s := range c.Stones {
		if s.Trigger[0] > s.Trigger[1] {
			return fmt.Errorf("stones[%d]: trigger range [%.0f, %.0f] is inverted", i, s.Trigger[0], s.Trigger[1])
		}
		if s.Warning < 0 {
			return fmt.Errorf("stones[%d]: warning cannot be negative", i)
		}
	}

	for i, t := range c.Teleports {
		if err := t.RectConfig.validate(); err != nil {
			return fmt.Errorf("teleports[%d]: %w", i, err)
		}
	}

	if err := c.WinTrigger.validate(); err != nil {
		return fmt.Errorf("winTrigger: %w", err)
	}
	return nil
}

func (r RectConfig) validate() error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("size must be positive, got %.1fx%.1f", r.W, r.H)
	}
	return nil
}
