package components

// Camera 镜头状态
//
// 位置是派生状态：每帧朝玩家平滑逼近，不影响游戏逻辑。
// 震动与跟随相互独立，只叠加在最终的绘制偏移上。
type Camera struct {
	// X, Y 镜头左上角的世界坐标
	X float64
	Y float64

	// TargetX, TargetY 本帧要逼近的目标位置
	TargetX float64
	TargetY float64

	// ShakeIntensity 震动幅度（像素），ShakeDuration 剩余时长（秒）
	ShakeIntensity float64
	ShakeDuration  float64
}

// Shaking 是否正在震动
func (c *Camera) Shaking() bool {
	return c.ShakeIntensity > 0 && c.ShakeDuration > 0
}
