package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/entities"
	"github.com/decker502/devilish/pkg/game"
	"github.com/decker502/devilish/pkg/systems"
	"github.com/decker502/devilish/pkg/utils"
)

// InputSource 每帧提供一次输入快照
// systems.InputSystem 读取真实键盘，测试中使用脚本输入
type InputSource interface {
	Poll() components.Input
}

// GameSceneConfig 创建游戏场景所需的依赖
type GameSceneConfig struct {
	Level   *config.LevelConfig
	Rules   *config.Rules
	Presets map[string]*particle.Preset

	// Resources 提供 HUD 字体，为 nil 时不绘制文字
	Resources *game.ResourceManager
	// Sounds 音效播放，为 nil 时静音
	Sounds game.SoundPlayer
	// Settings 用户设置，为 nil 时使用仅存在于内存的默认设置
	Settings *game.SettingsManager
	// Input 输入来源，为 nil 时读取真实键盘
	Input InputSource
	// Rand 随机源（粒子、震屏、落石旋转），为 nil 时按当前时间生成
	Rand *rand.Rand
}

// GameScene 游戏主场景
//
// 拥有一局游戏的全部对象：状态、关卡和各个系统。
// 每帧按固定顺序推进：输入 → 实体列表 → 玩家物理 → 陷阱计时 → 交互检测 → 事件反馈 → 粒子与镜头。
// 重置时整个关卡和所有系统重新构建，只保留尝试次数和最佳时间。
type GameScene struct {
	levelCfg *config.LevelConfig
	rules    *config.Rules
	presets  map[string]*particle.Preset

	resources *game.ResourceManager
	sounds    game.SoundPlayer
	settings  *game.SettingsManager
	input     InputSource
	rng       *rand.Rand

	state *game.GameState
	level *entities.Level

	physics   *systems.PhysicsSystem
	collision *systems.CollisionSystem
	hazards   *systems.HazardSystem
	particles *systems.ParticleSystem
	camera    *systems.CameraSystem
	render    *systems.RenderSystem

	background *background

	// clock 场景运行的总时间（秒），驱动氛围和闪烁动画，重置和暂停都不影响
	clock float64

	quitRequested bool
}

// NewGameScene 创建游戏场景并构建第一局
func NewGameScene(cfg GameSceneConfig) (*GameScene, error) {
	if cfg.Level == nil {
		return nil, fmt.Errorf("level config cannot be nil")
	}
	if cfg.Rules == nil {
		return nil, fmt.Errorf("rules cannot be nil")
	}

	s := &GameScene{
		levelCfg:  cfg.Level,
		rules:     cfg.Rules,
		presets:   cfg.Presets,
		resources: cfg.Resources,
		sounds:    cfg.Sounds,
		settings:  cfg.Settings,
		input:     cfg.Input,
		rng:       cfg.Rand,
		state:     game.NewGameState(),
		render:    systems.NewRenderSystem(cfg.Rules.Render),
	}
	if s.settings == nil {
		s.settings = game.NewSettingsManager(nil)
	}
	if s.input == nil {
		s.input = systems.NewInputSystem()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.background = newBackground(s.render, cfg.Rules.Render)

	if err := s.Reset(); err != nil {
		return nil, err
	}

	log.Info().Str("component", "GameScene").Str("level", cfg.Level.ID).Msg("game scene created")
	return s, nil
}

// Reset 丢弃当前关卡，从配置重新构建全部对象
//
// 尝试次数和最佳时间保留，本局计时归零。
func (s *GameScene) Reset() error {
	level, err := entities.BuildLevel(s.levelCfg, s.rules, s.rng)
	if err != nil {
		return fmt.Errorf("failed to build level: %w", err)
	}

	s.level = level
	s.physics = systems.NewPhysicsSystem(s.rules.Player, utils.NewRect(0, 0, level.Width, level.Height))
	s.collision = systems.NewCollisionSystem()
	s.hazards = systems.NewHazardSystem()
	s.particles = systems.NewParticleSystem(s.presets, s.rules.Particles, s.rules.Player.Gravity, s.rng)
	s.camera = systems.NewCameraSystem(s.rules.Camera, level.Width, s.rng)
	s.state.ResetRun()

	log.Debug().Str("component", "GameScene").Int("attempt", s.state.Attempts).Msg("level reset")
	return nil
}

// Update 推进一帧
func (s *GameScene) Update(dt float64) {
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}
	s.clock += dt

	in := s.input.Poll()

	if in.Quit {
		s.quitRequested = true
		return
	}
	s.handleToggles(in)

	ended := s.state.Status == game.StatusDead || s.state.Status == game.StatusWon
	if in.Reset || (in.Tap && ended) {
		if err := s.Reset(); err != nil {
			log.Error().Str("component", "GameScene").Err(err).Msg("reset failed")
		}
		return
	}

	if in.Pause && s.state.TogglePause() {
		log.Debug().Str("component", "GameScene").Str("status", s.state.Status.String()).Msg("pause toggled")
	}
	if s.state.Status == game.StatusPaused {
		return
	}

	s.step(in, dt)
}

// step 执行一帧游戏逻辑
func (s *GameScene) step(in components.Input, dt float64) {
	player := s.level.Player
	s.state.Tick(dt)

	if s.state.Playing() {
		s.onJump(s.physics.Control(player, in, dt))
	}

	solids := systems.BuildSolids(s.level)
	move := s.physics.Move(player, solids, dt)
	s.onMove(move)

	events := s.hazards.Update(s.level, solids, dt)
	if s.state.Playing() {
		events = append(events, s.collision.Resolve(s.level, move)...)
	}
	for _, ev := range events {
		s.handleEvent(ev)
	}

	s.particles.Update(dt)
	s.camera.Follow(player.Rect)
	s.camera.Update(dt)
}

// handleToggles 调试信息和静音开关，修改后立即保存设置
func (s *GameScene) handleToggles(in components.Input) {
	if in.ToggleDebug {
		on := s.settings.ToggleDebugOverlay()
		log.Debug().Str("component", "GameScene").Bool("debug", on).Msg("debug overlay toggled")
		s.settings.SaveOrWarn()
	}
	if in.ToggleMute {
		on := s.settings.ToggleSound()
		log.Debug().Str("component", "GameScene").Bool("sound", on).Msg("sound toggled")
		s.settings.SaveOrWarn()
	}
}

// Draw 绘制背景、关卡、粒子和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.background.Draw(screen, s.clock)

	ox, oy := s.camera.Offset()
	s.render.DrawWorld(screen, s.level, s.particles.Particles(), ox, oy)

	s.drawHUD(screen)
	if s.settings.GetSettings().DebugOverlay {
		s.drawDebug(screen)
	}
	if s.state.Status == game.StatusPaused {
		s.drawPauseOverlay(screen)
	}
	if utils.IsMobile() {
		s.drawTouchButtons(screen)
	}
}

// QuitRequested 玩家按下了退出键
func (s *GameScene) QuitRequested() bool {
	return s.quitRequested
}

// SaveOnExit 退出时保存用户设置
func (s *GameScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		log.Warn().Str("component", "GameScene").Err(err).Msg("failed to save settings on exit")
		return false
	}
	return true
}

// State 当前一局的状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Level 当前关卡
func (s *GameScene) Level() *entities.Level {
	return s.level
}
