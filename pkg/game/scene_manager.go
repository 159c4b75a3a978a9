package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// SceneFactory 场景工厂函数类型
// 根据关卡路径创建关卡场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelPath string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadLevel to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 通过工厂创建关卡场景并切换过去
//
// 创建失败时保留当前场景并返回错误。
func (sm *SceneManager) LoadLevel(levelPath string) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	scene, err := sm.sceneFactory(levelPath)
	if err != nil {
		return fmt.Errorf("failed to create scene for %s: %w", levelPath, err)
	}
	sm.SwitchTo(scene)
	log.Debug().Str("component", "SceneManager").Str("level", levelPath).Msg("level loaded")
	return nil
}

// QuitRequested 当前场景是否请求退出
func (sm *SceneManager) QuitRequested() bool {
	q, ok := sm.currentScene.(Quitter)
	return ok && q.QuitRequested()
}

// SaveOnExit 让当前场景保存状态（如果它支持）
func (sm *SceneManager) SaveOnExit() {
	if s, ok := sm.currentScene.(Saveable); ok {
		if !s.SaveOnExit() {
			log.Warn().Str("component", "SceneManager").Msg("scene failed to save on exit")
		}
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
