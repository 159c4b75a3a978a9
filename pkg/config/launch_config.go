package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// 启动配置的环境变量前缀，例如 DEVILISH_VARIANT=desktop
const launchEnvPrefix = "DEVILISH"

// LaunchConfig 启动配置
//
// 优先级（高到低）：命令行参数 > 环境变量 > devilish.yaml > 默认值
type LaunchConfig struct {
	// ConfigFile 显式指定的配置文件路径，为空时在当前目录查找 devilish.yaml
	ConfigFile string `mapstructure:"config"`
	// Variant 调参变体名（"enhanced", "desktop"），为空使用规则文件的默认变体
	Variant string `mapstructure:"variant"`
	// Rules 规则文件路径
	Rules string `mapstructure:"rules"`
	// Level 关卡文件路径
	Level string `mapstructure:"level"`
	// Verbose 启用详细日志（debug 级别）
	Verbose bool `mapstructure:"verbose"`
	// LogLevel 显式日志级别（trace/debug/info/warn/error），优先于 Verbose
	LogLevel string `mapstructure:"logLevel"`
	// Fullscreen 启动时全屏
	Fullscreen bool `mapstructure:"fullscreen"`
	// Seed 随机种子（粒子、镜头震动），0 表示按时间生成
	Seed int64 `mapstructure:"seed"`
	// TPS 逻辑帧率
	TPS int `mapstructure:"tps"`
}

// NewLaunchFlagSet 创建启动参数集合
func NewLaunchFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "配置文件路径（默认查找 ./devilish.yaml）")
	fs.StringP("variant", "V", "", "调参变体（enhanced | desktop）")
	fs.String("rules", DefaultRulesPath, "规则文件路径")
	fs.StringP("level", "l", DefaultLevelPath, "关卡文件路径")
	fs.BoolP("verbose", "v", false, "启用详细日志输出")
	fs.String("log-level", "", "日志级别（trace/debug/info/warn/error）")
	fs.Bool("fullscreen", false, "全屏启动")
	fs.Int64("seed", 0, "随机种子（0 表示按时间生成）")
	fs.Int("tps", DefaultTPS, "逻辑帧率")
	return fs
}

// LoadLaunchConfig 解析命令行参数、环境变量和配置文件
//
// 参数：
//   - args: 命令行参数（不含程序名）
//
// 返回：
//   - *LaunchConfig: 合并后的启动配置
//   - error: 参数解析失败（含 pflag.ErrHelp）、配置文件读取失败或配置非法
func LoadLaunchConfig(args []string) (*LaunchConfig, error) {
	fs := NewLaunchFlagSet("devilish")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return loadLaunchConfig(fs)
}

func loadLaunchConfig(fs *pflag.FlagSet) (*LaunchConfig, error) {
	v := viper.New()

	v.SetDefault("variant", "")
	v.SetDefault("rules", DefaultRulesPath)
	v.SetDefault("level", DefaultLevelPath)
	v.SetDefault("verbose", false)
	v.SetDefault("logLevel", "")
	v.SetDefault("fullscreen", false)
	v.SetDefault("seed", 0)
	v.SetDefault("tps", DefaultTPS)

	// 命令行参数使用 kebab-case，配置键使用 camelCase
	fs.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if key == "log-level" {
			key = "logLevel"
		}
		_ = v.BindPFlag(key, f)
	})

	v.SetEnvPrefix(launchEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("devilish")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg LaunchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode launch config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查启动配置
func (c *LaunchConfig) Validate() error {
	if c.TPS < 10 || c.TPS > 240 {
		return fmt.Errorf("tps must be between 10 and 240, got %d", c.TPS)
	}
	if c.Rules == "" {
		return fmt.Errorf("rules path is required")
	}
	if c.Level == "" {
		return fmt.Errorf("level path is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
