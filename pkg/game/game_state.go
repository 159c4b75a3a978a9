package game

import "math"

// Status 一局游戏所处的状态
type Status int

const (
	StatusPlaying Status = iota
	StatusDead
	StatusWon
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusDead:
		return "DEAD"
	case StatusWon:
		return "WON"
	case StatusPaused:
		return "PAUSED"
	}
	return "UNKNOWN"
}

// GameState 一局游戏的状态与计时
//
// 死亡和胜利是终止状态，只有 ResetRun 才能回到 PLAYING。
// Attempts 与 BestTime 跨局保留（进程内），不持久化。
type GameState struct {
	Status Status

	// Attempts 当前是第几次尝试，从 1 开始，每次死亡 +1
	Attempts int

	// Elapsed 本局进行的时间（秒），只在 PLAYING 时累加
	Elapsed float64

	// DeathTime/WinTime 死亡/胜利时的 Elapsed
	DeathTime float64
	WinTime   float64

	// BestTime 最快通关时间，+Inf 表示尚未通关
	BestTime float64
}

// NewGameState 创建初始状态
func NewGameState() *GameState {
	return &GameState{
		Status:   StatusPlaying,
		Attempts: 1,
		BestTime: math.Inf(1),
	}
}

// Playing 是否处于可操作状态
func (gs *GameState) Playing() bool {
	return gs.Status == StatusPlaying
}

// Tick 推进本局计时
func (gs *GameState) Tick(dt float64) {
	if gs.Status == StatusPlaying {
		gs.Elapsed += dt
	}
}

// Kill 进入死亡状态，返回状态是否发生了变化
func (gs *GameState) Kill() bool {
	if gs.Status != StatusPlaying {
		return false
	}
	gs.Status = StatusDead
	gs.DeathTime = gs.Elapsed
	gs.Attempts++
	return true
}

// Win 进入胜利状态
//
// 返回:
//   - changed: 状态是否发生了变化
//   - newBest: 本次是否刷新了最佳时间
func (gs *GameState) Win() (changed, newBest bool) {
	if gs.Status != StatusPlaying {
		return false, false
	}
	gs.Status = StatusWon
	gs.WinTime = gs.Elapsed
	if gs.WinTime < gs.BestTime {
		gs.BestTime = gs.WinTime
		newBest = true
	}
	return true, newBest
}

// TogglePause 在 PLAYING 与 PAUSED 之间切换；终止状态下无效
func (gs *GameState) TogglePause() bool {
	switch gs.Status {
	case StatusPlaying:
		gs.Status = StatusPaused
	case StatusPaused:
		gs.Status = StatusPlaying
	default:
		return false
	}
	return true
}

// ResetRun 开始新的一局，保留尝试次数和最佳时间
func (gs *GameState) ResetRun() {
	gs.Status = StatusPlaying
	gs.Elapsed = 0
	gs.DeathTime = 0
	gs.WinTime = 0
}

// HasBest 是否已有通关记录
func (gs *GameState) HasBest() bool {
	return !math.IsInf(gs.BestTime, 1)
}

// DisplayTime HUD 上显示的时间：死亡/胜利后停在对应时刻
func (gs *GameState) DisplayTime() float64 {
	switch gs.Status {
	case StatusDead:
		return gs.DeathTime
	case StatusWon:
		return gs.WinTime
	}
	return gs.Elapsed
}
