package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/entities"
	"github.com/decker502/devilish/pkg/game"
	"github.com/decker502/devilish/pkg/systems"
	"github.com/decker502/devilish/pkg/utils"
)

// HUD 文本
const (
	titlePlaying = "DEVILISH PLATFORMER"
	titleDead    = "YOU DIED"
	titleWon     = "VICTORY!"

	messageDead       = "Press R to try again"
	messageWon        = "Incredible! Press R to play again"
	messageDeadTouch  = "Tap to try again"
	messageWonTouch   = "Incredible! Tap to play again"
	messagePaused     = "PAUSED"
	messagePausedHint = "Press P to resume"

	tipDoor        = "That door looks suspicious..."
	tipWallCracked = "The wall is cracking! Hit it again!"
	tipWall        = "Try breaking through that wall..."
	tipStones      = "Watch out for falling objects!"
)

// controlLines 屏幕底部的操作说明
var controlLines = []string{
	"Move: A/D or ←/→",
	"Jump: W/↑/Space (Double Jump Available!)",
	"Reset: R  |  Pause: P  |  Quit: ESC",
	"Debug: F3  |  Mute: M  |  Fullscreen: F11",
}

// HUD 颜色
var (
	colorTitleDead    = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	colorTitleWon     = color.RGBA{R: 100, G: 255, B: 150, A: 255}
	colorMessageDead  = color.RGBA{R: 255, G: 200, B: 200, A: 255}
	colorMessageWon   = color.RGBA{R: 200, G: 255, B: 200, A: 255}
	colorTip          = color.RGBA{R: 200, G: 200, B: 255, A: 255}
	colorPauseDim     = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	colorTouchButton  = color.RGBA{R: 40, G: 40, B: 60, A: 80}
	colorMessagePlate = color.RGBA{R: 0, G: 0, B: 0, A: 110}
)

const messagePlatePadding = 24

// hudTitle 标题文字和颜色随状态变化
func hudTitle(status game.Status) (string, color.RGBA) {
	switch status {
	case game.StatusDead:
		return titleDead, colorTitleDead
	case game.StatusWon:
		return titleWon, colorTitleWon
	}
	return titlePlaying, systems.ColorForeground
}

// statLines 右上角的统计信息：时间、尝试次数、最佳时间（有通关记录时）
func statLines(gs *game.GameState) []string {
	lines := []string{
		fmt.Sprintf("Time: %.2fs", gs.DisplayTime()),
		fmt.Sprintf("Attempts: %d", gs.Attempts),
	}
	if gs.HasBest() {
		lines = append(lines, fmt.Sprintf("Best: %.2fs", gs.BestTime))
	}
	return lines
}

// gameplayTips 当前适用的提示，最多 config.HUDMaxTips 条
//
// 门还没换过位时提示门可疑；魔法墙存活时按是否出现裂纹给出不同提示；
// 所有落石都还没有预警或掉落时提醒注意头顶。
func gameplayTips(level *entities.Level) []string {
	var tips []string
	if !level.Door.TrolledOnce {
		tips = append(tips, tipDoor)
	}
	if w := level.MagicWall; w != nil && w.Alive {
		if w.Cracked {
			tips = append(tips, tipWallCracked)
		} else {
			tips = append(tips, tipWall)
		}
	}
	if len(level.Stones) > 0 {
		quiet := true
		for _, stone := range level.Stones {
			if stone.Warning || stone.Dropped {
				quiet = false
				break
			}
		}
		if quiet {
			tips = append(tips, tipStones)
		}
	}
	if len(tips) > config.HUDMaxTips {
		tips = tips[:config.HUDMaxTips]
	}
	return tips
}

// drawHUD 标题、统计、操作说明、状态消息和提示
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	if s.resources == nil {
		return
	}
	big := s.resources.BoldFont(game.FontSizeBig)
	body := s.resources.BoldFont(game.FontSizeBody)
	small := s.resources.Font(game.FontSizeSmall)

	const w, h = config.GameWindowWidth, config.GameWindowHeight

	title, titleColor := hudTitle(s.state.Status)
	utils.DrawText(screen, title, big, w/2, config.HUDTitleY, utils.AlignCenter, titleColor, true)

	for i, line := range statLines(s.state) {
		y := config.HUDStatsLineHeight * float64(i+1)
		utils.DrawText(screen, line, body, w-config.HUDStatsRightMargin, y, utils.AlignRight, systems.ColorForeground, true)
	}

	for i, line := range controlLines {
		y := h - config.HUDControlsBottom + float64(i)*config.HUDControlsLineHeight
		utils.DrawText(screen, line, small, w/2, y, utils.AlignCenter, systems.ColorForeground, true)
	}

	touch := utils.IsMobile()
	switch s.state.Status {
	case game.StatusDead:
		msg := messageDead
		if touch {
			msg = messageDeadTouch
		}
		drawMessagePlate(screen, msg, big)
		utils.DrawText(screen, msg, big, w/2, h/2, utils.AlignCenter, colorMessageDead, true)
	case game.StatusWon:
		msg := messageWon
		if touch {
			msg = messageWonTouch
		}
		drawMessagePlate(screen, msg, big)
		utils.DrawText(screen, msg, big, w/2, h/2, utils.AlignCenter, colorMessageWon, true)
	case game.StatusPlaying:
		for i, tip := range gameplayTips(s.level) {
			y := config.HUDTipsY + float64(i)*config.HUDTipsLineHeight
			utils.DrawText(screen, tip, small, w/2, y, utils.AlignCenter, colorTip, true)
		}
	}
}

// drawMessagePlate 屏幕中央消息背后的半透明底板，宽度随文字变化
func drawMessagePlate(screen *ebiten.Image, msg string, face text.Face) {
	const w, h = config.GameWindowWidth, config.GameWindowHeight
	plateW := utils.MeasureText(msg, face) + 2*messagePlatePadding
	plateH := face.Metrics().HAscent + face.Metrics().HDescent + messagePlatePadding
	vector.DrawFilledRect(screen, float32(w/2-plateW/2), float32(h/2-plateH/2), float32(plateW), float32(plateH), colorMessagePlate, false)
}

// drawPauseOverlay 暂停时压暗画面并提示恢复方式
func (s *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	const w, h = config.GameWindowWidth, config.GameWindowHeight
	vector.DrawFilledRect(screen, 0, 0, w, h, colorPauseDim, false)
	if s.resources == nil {
		return
	}
	utils.DrawText(screen, messagePaused, s.resources.BoldFont(game.FontSizeBig), w/2, h/2-30, utils.AlignCenter, systems.ColorForeground, true)
	utils.DrawText(screen, messagePausedHint, s.resources.Font(game.FontSizeBody), w/2, h/2+30, utils.AlignCenter, systems.ColorForeground, true)
}

// drawTouchButtons 移动端的触摸按钮区域（与 utils.ClassifyTouch 的布局一致）
func (s *GameScene) drawTouchButtons(screen *ebiten.Image) {
	const w, h = config.GameWindowWidth, config.GameWindowHeight
	const pad = 12

	left := utils.NewRect(pad, h/2+pad, w/6-2*pad, h/2-2*pad)
	right := left.Translate(w/6, 0)
	jump := utils.NewRect(w/2+pad, h/2+pad, w/2-2*pad, h/2-2*pad)

	for _, r := range []utils.Rect{left, right, jump} {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorTouchButton, false)
	}
	if s.resources == nil {
		return
	}
	face := s.resources.BoldFont(game.FontSizeBody)
	utils.DrawText(screen, "←", face, left.CenterX(), left.CenterY(), utils.AlignCenter, systems.ColorForeground, false)
	utils.DrawText(screen, "→", face, right.CenterX(), right.CenterY(), utils.AlignCenter, systems.ColorForeground, false)
	utils.DrawText(screen, "JUMP", face, jump.CenterX(), jump.CenterY(), utils.AlignCenter, systems.ColorForeground, false)
}
