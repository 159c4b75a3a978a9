package components

// Input 一帧的玩家输入快照
//
// 方向键为持续状态；其余字段只在按下的那一帧为 true（边沿触发），
// 防止按住 R 时每帧重置、按住跳跃时连续消耗二段跳。
type Input struct {
	Left  bool
	Right bool

	Jump  bool
	Reset bool
	Quit  bool
	Pause bool

	ToggleDebug bool
	ToggleMute  bool

	// Tap 本帧有新的触摸，死亡或胜利后当作重开
	Tap bool
}

// Direction 水平输入方向：-1 左，1 右，0 无（同时按下左右时右优先）
func (in Input) Direction() float64 {
	dir := 0.0
	if in.Left {
		dir = -1
	}
	if in.Right {
		dir = 1
	}
	return dir
}
