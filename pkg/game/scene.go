package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Quitter 是一个可选接口：场景通过它请求退出程序
//
// App 每帧检查当前场景，返回 true 时以 ebiten.Termination 结束游戏循环。
type Quitter interface {
	QuitRequested() bool
}

// Saveable 是一个可选接口，场景在程序退出时保存状态（用户设置）
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
