package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultRulesPath 规则配置文件的默认路径（位于嵌入数据目录）
const DefaultRulesPath = "data/rules.yaml"

// Rules 一套完整的游戏调参（不可变）
//
// 物理量的单位约定：
//   - 速度、加速度以"像素/帧"为单位（固定 60 TPS），与原版手感一致
//   - 计时器以秒为单位，由每帧的 dt 推进
//
// Rules 在构造各系统时传入并被捕获，运行期间不再修改。
type Rules struct {
	// Extends 继承的变体名，未出现的字段沿用父变体的值
	Extends string `yaml:"extends,omitempty"`

	Player       PlayerRules       `yaml:"player"`
	Spike        SpikeRules        `yaml:"spike"`
	Stone        StoneRules        `yaml:"stone"`
	Wall         WallRules         `yaml:"wall"`
	FakePlatform FakePlatformRules `yaml:"fakePlatform"`
	Teleport     TeleportRules     `yaml:"teleport"`
	Door         DoorRules         `yaml:"door"`
	FakeDoor     FakeDoorRules     `yaml:"fakeDoor"`
	Particles    ParticleRules     `yaml:"particles"`
	Camera       CameraRules       `yaml:"camera"`
	Render       RenderRules       `yaml:"render"`
}

// PlayerRules 玩家移动与跳跃参数
type PlayerRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Gravity            float64 `yaml:"gravity"`
	TerminalVelocity   float64 `yaml:"terminalVelocity"`
	JumpVelocity       float64 `yaml:"jumpVelocity"`
	DoubleJumpVelocity float64 `yaml:"doubleJumpVelocity"`
	DoubleJump         bool    `yaml:"doubleJump"`

	MoveSpeed     float64 `yaml:"moveSpeed"`
	Acceleration  float64 `yaml:"acceleration"`
	AirControl    float64 `yaml:"airControl"`
	Friction      float64 `yaml:"friction"`
	AirResistance float64 `yaml:"airResistance"`

	CoyoteTime     float64 `yaml:"coyoteTime"`
	JumpBufferTime float64 `yaml:"jumpBufferTime"`

	// HardLandingSpeed 落地时的下落速度超过该值才产生尘土和压扁效果
	HardLandingSpeed float64 `yaml:"hardLandingSpeed"`
	// RunDustInterval 地面奔跑时尘土粒子的发射间隔（秒）
	RunDustInterval float64 `yaml:"runDustInterval"`
	// RunDustSpeed 奔跑尘土的最低水平速度
	RunDustSpeed float64 `yaml:"runDustSpeed"`
}

// SpikeRules 尖刺危险区参数
type SpikeRules struct {
	// Inset 危险三角形底边两端相对矩形的内缩量
	Inset float64 `yaml:"inset"`
	// WarnRate 弹出前警示闪烁的相位速度（弧度/秒）
	WarnRate float64 `yaml:"warnRate"`
}

// StoneRules 落石参数
type StoneRules struct {
	Size         float64 `yaml:"size"`
	GravityScale float64 `yaml:"gravityScale"`
	// Restitution 反弹时保留的竖直速度比例
	Restitution float64 `yaml:"restitution"`
	MaxBounces  int     `yaml:"maxBounces"`
	// SettleSpeed 反弹后竖直速度低于该值即停止
	SettleSpeed float64 `yaml:"settleSpeed"`
	// MaxSpin 掉落时随机角速度的上限（度/帧）
	MaxSpin float64 `yaml:"maxSpin"`
}

// WallRules 魔法墙参数
type WallRules struct {
	Health int `yaml:"health"`
	// HitInflate 命中判定时墙体矩形的扩展量
	HitInflate float64 `yaml:"hitInflate"`
	CrackTime  float64 `yaml:"crackTime"`
	ShakeTime  float64 `yaml:"shakeTime"`
}

// FakePlatformRules 假平台参数
type FakePlatformRules struct {
	// DefaultDelay 关卡未指定时的消失延迟（秒）
	DefaultDelay float64 `yaml:"defaultDelay"`
}

// TeleportRules 传送陷阱参数
type TeleportRules struct {
	Cooldown  float64 `yaml:"cooldown"`
	PulseRate float64 `yaml:"pulseRate"`
}

// DoorRules 出口门参数
type DoorRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// TrollInflateX/Y 触发"恶作剧换位"的接近范围（主门矩形扩展量）
	TrollInflateX float64 `yaml:"trollInflateX"`
	TrollInflateY float64 `yaml:"trollInflateY"`
}

// FakeDoorRules 假门参数
type FakeDoorRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Inset 致死判定时门矩形的内缩量
	Inset float64 `yaml:"inset"`
}

// ParticleRules 粒子池参数
type ParticleRules struct {
	// MaxParticles 粒子池上限，0 表示不限
	MaxParticles int `yaml:"maxParticles"`
	// MaxBurst 单次爆发的粒子数上限，0 表示不限
	MaxBurst int `yaml:"maxBurst"`
	// GravityScale 粒子受到的重力（相对玩家重力）
	GravityScale float64 `yaml:"gravityScale"`
}

// ShakeRule 一次镜头震动
type ShakeRule struct {
	Intensity float64 `yaml:"intensity"`
	Duration  float64 `yaml:"duration"`
}

// CameraRules 镜头参数
type CameraRules struct {
	Smoothing float64 `yaml:"smoothing"`
	// Shakes 各事件对应的震动（key: wallHit/wallBreak/fakePlatform/teleport/death/win）
	Shakes map[string]ShakeRule `yaml:"shakes"`
}

// RenderRules 渲染质量参数
type RenderRules struct {
	// ShadowBlur 阴影模糊层数
	ShadowBlur int `yaml:"shadowBlur"`
	// AtmosphereEveryOtherFrame 为 true 时氛围层隔帧绘制
	AtmosphereEveryOtherFrame bool `yaml:"atmosphereEveryOtherFrame"`
}

// Shake 获取事件对应的震动配置，未配置的事件返回零值（不震动）
func (c CameraRules) Shake(event string) ShakeRule {
	return c.Shakes[event]
}

// RulesFile 规则文件：一个默认变体 + 若干命名变体
type RulesFile struct {
	Default  string
	variants map[string]yaml.Node
}

type rulesFileYAML struct {
	Default  string               `yaml:"default"`
	Variants map[string]yaml.Node `yaml:"variants"`
}

// ParseRules 解析规则 YAML
//
// 返回:
//   - *RulesFile: 规则文件，通过 Variant() 取得具体变体
//   - error: YAML 格式错误、缺少变体或默认变体不存在
func ParseRules(data []byte) (*RulesFile, error) {
	var raw rulesFileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	if len(raw.Variants) == 0 {
		return nil, fmt.Errorf("rules must define at least one variant")
	}
	if raw.Default == "" {
		return nil, fmt.Errorf("rules default variant is required")
	}
	if _, ok := raw.Variants[raw.Default]; !ok {
		return nil, fmt.Errorf("default variant %q is not defined", raw.Default)
	}

	return &RulesFile{Default: raw.Default, variants: raw.Variants}, nil
}

// LoadRules 从数据目录或磁盘加载规则文件
func LoadRules(path string) (*RulesFile, error) {
	data, err := readDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return ParseRules(data)
}

// Names 返回所有变体名（排序后）
func (rf *RulesFile) Names() []string {
	names := make([]string, 0, len(rf.variants))
	for name := range rf.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant 解析指定变体（空字符串表示默认变体）
//
// 变体可以通过 extends 继承另一个变体：先解码父变体，再用子变体覆盖。
func (rf *RulesFile) Variant(name string) (*Rules, error) {
	if name == "" {
		name = rf.Default
	}

	var rules Rules
	if err := rf.decodeInto(name, &rules, map[string]bool{}); err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules variant %q: %w", name, err)
	}
	return &rules, nil
}

func (rf *RulesFile) decodeInto(name string, rules *Rules, visiting map[string]bool) error {
	node, ok := rf.variants[name]
	if !ok {
		return fmt.Errorf("unknown rules variant %q (available: %v)", name, rf.Names())
	}
	if visiting[name] {
		return fmt.Errorf("rules variant %q extends itself", name)
	}
	visiting[name] = true

	// 先读取 extends，父变体的值作为底稿
	var header struct {
		Extends string `yaml:"extends"`
	}
	if err := node.Decode(&header); err != nil {
		return fmt.Errorf("failed to decode rules variant %q: %w", name, err)
	}
	if header.Extends != "" {
		if err := rf.decodeInto(header.Extends, rules, visiting); err != nil {
			return err
		}
	}

	// 父变体的 Shakes 需要复制一份，避免子变体解码时写入同一个 map
	if rules.Camera.Shakes != nil {
		shakes := make(map[string]ShakeRule, len(rules.Camera.Shakes))
		for k, v := range rules.Camera.Shakes {
			shakes[k] = v
		}
		rules.Camera.Shakes = shakes
	}

	if err := node.Decode(rules); err != nil {
		return fmt.Errorf("failed to decode rules variant %q: %w", name, err)
	}
	return nil
}

// Validate 检查调参的基本合理性
func (r *Rules) Validate() error {
	p := r.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %.1fx%.1f", p.Width, p.Height)
	}
	if p.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.2f", p.Gravity)
	}
	if p.TerminalVelocity <= 0 {
		return fmt.Errorf("terminal velocity must be positive, got %.2f", p.TerminalVelocity)
	}
	if p.JumpVelocity >= 0 {
		return fmt.Errorf("jump velocity must be negative (upward), got %.2f", p.JumpVelocity)
	}
	if p.DoubleJump && p.DoubleJumpVelocity >= 0 {
		return fmt.Errorf("double jump velocity must be negative (upward), got %.2f", p.DoubleJumpVelocity)
	}
	if p.MoveSpeed <= 0 {
		return fmt.Errorf("move speed must be positive, got %.2f", p.MoveSpeed)
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %.2f", p.Friction)
	}
	if p.AirResistance <= 0 || p.AirResistance > 1 {
		return fmt.Errorf("air resistance must be in (0, 1], got %.2f", p.AirResistance)
	}
	if p.CoyoteTime < 0 || p.JumpBufferTime < 0 {
		return fmt.Errorf("coyote time and jump buffer must not be negative")
	}

	if r.Stone.Size <= 0 {
		return fmt.Errorf("stone size must be positive, got %.1f", r.Stone.Size)
	}
	if r.Stone.Restitution < 0 || r.Stone.Restitution >= 1 {
		return fmt.Errorf("stone restitution must be in [0, 1), got %.2f", r.Stone.Restitution)
	}
	if r.Stone.MaxBounces < 0 {
		return fmt.Errorf("stone max bounces must not be negative, got %d", r.Stone.MaxBounces)
	}

	if r.Wall.Health <= 0 {
		return fmt.Errorf("wall health must be positive, got %d", r.Wall.Health)
	}
	if r.Teleport.Cooldown <= 0 {
		return fmt.Errorf("teleport cooldown must be positive, got %.2f", r.Teleport.Cooldown)
	}
	if r.Door.Width <= 0 || r.Door.Height <= 0 {
		return fmt.Errorf("door size must be positive")
	}
	if r.FakeDoor.Width <= 0 || r.FakeDoor.Height <= 0 {
		return fmt.Errorf("fake door size must be positive")
	}
	if r.FakeDoor.Inset*2 >= r.FakeDoor.Width || r.FakeDoor.Inset*2 >= r.FakeDoor.Height {
		return fmt.Errorf("fake door inset %.1f leaves no lethal area", r.FakeDoor.Inset)
	}

	if r.Particles.MaxParticles < 0 || r.Particles.MaxBurst < 0 {
		return fmt.Errorf("particle limits must not be negative")
	}
	if r.Particles.MaxParticles > 0 && r.Particles.MaxBurst > r.Particles.MaxParticles {
		return fmt.Errorf("max burst %d exceeds max particles %d", r.Particles.MaxBurst, r.Particles.MaxParticles)
	}
	if r.Camera.Smoothing <= 0 || r.Camera.Smoothing > 1 {
		return fmt.Errorf("camera smoothing must be in (0, 1], got %.2f", r.Camera.Smoothing)
	}
	if r.Render.ShadowBlur < 0 {
		return fmt.Errorf("shadow blur must not be negative, got %d", r.Render.ShadowBlur)
	}

	return nil
}
