package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/game"
	"github.com/decker502/devilish/pkg/utils"
)

var colorDebugText = color.RGBA{R: 150, G: 150, B: 150, A: 255}

// debugLines 玩家调试信息：位置、速度、是否着地、二段跳状态
func debugLines(p *components.Player) []string {
	ground := "No"
	if p.OnGround {
		ground = "Yes"
	}

	doubleJump := "Ready"
	switch {
	case p.CanDoubleJump:
		doubleJump = "Available"
	case p.HasDoubleJumped:
		doubleJump = "Used"
	}

	return []string{
		fmt.Sprintf("Pos: (%d, %d)", int(p.Rect.X), int(p.Rect.Y)),
		fmt.Sprintf("Vel: (%.1f, %.1f)", p.VX, p.VY),
		fmt.Sprintf("Ground: %s", ground),
		fmt.Sprintf("Double Jump: %s", doubleJump),
	}
}

// drawDebug 左下角的调试信息，只在游戏进行中显示
func (s *GameScene) drawDebug(screen *ebiten.Image) {
	if s.resources == nil || !s.state.Playing() {
		return
	}
	face := s.resources.Font(game.FontSizeSmall)
	for i, line := range debugLines(s.level.Player) {
		y := config.GameWindowHeight - config.HUDDebugBottom + float64(i)*config.HUDDebugLineHeight
		utils.DrawText(screen, line, face, config.HUDDebugX, y, utils.AlignLeft, colorDebugText, false)
	}
	// 粒子数量用于观察粒子池上限
	utils.DrawText(screen, fmt.Sprintf("Particles: %d", s.particles.Len()), face,
		config.HUDDebugX, config.GameWindowHeight-config.HUDDebugBottom-config.HUDDebugLineHeight,
		utils.AlignLeft, colorDebugText, false)
}
