// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/game"
	"github.com/decker502/devilish/pkg/scenes"
	"github.com/decker502/devilish/pkg/utils"
)

// storageAppName gdata 存储使用的应用名
const storageAppName = "devilish"

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	deltaTime    float64

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 日志、规则变体、粒子预设、音效和用户设置都在这里准备好，
// 然后通过场景工厂加载 cfg.Level 指定的关卡。
func NewApp(cfg *config.LaunchConfig) (*App, error) {
	SetupLogging(nil, cfg.LogLevel, cfg.Verbose)

	rulesFile, err := config.LoadRules(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("规则加载失败: %w", err)
	}
	rules, err := rulesFile.Variant(cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("规则变体加载失败: %w", err)
	}
	log.Info().Str("component", "App").Str("variant", cfg.Variant).Msg("rules loaded")

	presets, err := config.LoadParticlePresets(config.DefaultParticlesPath)
	if err != nil {
		return nil, fmt.Errorf("粒子预设加载失败: %w", err)
	}

	soundConfig, err := config.LoadSoundConfig(config.DefaultSoundsPath)
	if err != nil {
		return nil, fmt.Errorf("音效配置加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("资源初始化失败: %w", err)
	}
	resourceManager.LoadSounds(soundConfig, rng)

	settingsManager := game.NewSettingsManager(openStorage())

	// 音频上下文全局只能创建一次
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(resourceManager.SampleRate())
	}
	audioManager := game.NewAudioManager(audioContext, resourceManager, settingsManager)
	audioManager.Preload(soundConfig.Names())
	log.Debug().Str("component", "App").Bool("enabled", audioManager.Enabled()).Msg("AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelPath string) (game.Scene, error) {
		levelConfig, err := config.LoadLevelConfig(levelPath)
		if err != nil {
			return nil, err
		}
		return scenes.NewGameScene(scenes.GameSceneConfig{
			Level:     levelConfig,
			Rules:     rules,
			Presets:   presets,
			Resources: resourceManager,
			Sounds:    audioManager,
			Settings:  settingsManager,
			Rand:      rng,
		})
	})
	if err := sceneManager.LoadLevel(cfg.Level); err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Info().Str("component", "App").Str("level", cfg.Level).Int64("seed", seed).Msg("game started")

	return &App{
		sceneManager: sceneManager,
		settings:     settingsManager,
		deltaTime:    1.0 / float64(cfg.TPS),
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Warn().Str("component", "App").Err(err).Msg("storage directory unavailable")
	}
	manager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Warn().Str("component", "App").Err(err).Msg("settings storage unavailable, settings will not persist")
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次；场景请求退出时保存设置并结束游戏循环
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Debug().Str("component", "App").Msg("delayed window size reset")
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.deltaTime)

	if a.sceneManager.QuitRequested() {
		a.sceneManager.SaveOnExit()
		log.Info().Str("component", "App").Msg("quit requested")
		return ebiten.Termination
	}
	return nil
}

// toggleFullscreen F11 切换全屏并记住选择
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	a.settings.SetFullscreen(fullscreen)
	a.settings.SaveOrWarn()
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，游戏画面使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SceneManager 返回场景管理器
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}
