package config

// 布局配置常量
// 窗口尺寸、HUD 位置等与关卡数据无关的固定布局参数

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// DefaultTPS 默认逻辑帧率
	// 玩家物理以"像素/帧"调参，修改 TPS 会改变手感
	DefaultTPS = 60

	// MaxFrameDelta 单帧 dt 上限（秒），防止卡顿后计时器跳变
	MaxFrameDelta = 0.1
)

// HUD 布局
const (
	// HUDTitleY 标题文字中心Y坐标
	HUDTitleY = 40.0

	// HUDStatsRightMargin 右上角统计信息（时间/尝试次数/最佳）的右边距
	HUDStatsRightMargin = 100.0

	// HUDStatsLineHeight 统计信息行高
	HUDStatsLineHeight = 30.0

	// HUDTipsY 第一条提示的Y坐标，后续每条下移 HUDTipsLineHeight
	HUDTipsY          = 100.0
	HUDTipsLineHeight = 30.0

	// HUDMaxTips 同时显示的提示上限
	HUDMaxTips = 2

	// HUDControlsBottom 操作说明第一行距离屏幕底部的距离
	HUDControlsBottom     = 100.0
	HUDControlsLineHeight = 25.0

	// HUDDebugX/HUDDebugBottom 调试信息左下角位置
	HUDDebugX          = 100.0
	HUDDebugBottom     = 120.0
	HUDDebugLineHeight = 20.0
)

// CameraVerticalSlack 镜头Y方向允许偏离的范围（屏幕高度的比例）
const CameraVerticalSlack = 0.25

// CameraBounds 计算镜头位置的允许范围
//
// 参数：
//   - levelWidth: 关卡宽度
//
// 返回：
//   - minX, maxX: 镜头X范围（关卡不比屏幕宽时固定为0）
//   - minY, maxY: 镜头Y范围（上下各 CameraVerticalSlack 个屏幕高度）
func CameraBounds(levelWidth float64) (minX, maxX, minY, maxY float64) {
	maxX = levelWidth - GameWindowWidth
	if maxX < 0 {
		maxX = 0
	}
	slack := GameWindowHeight * CameraVerticalSlack
	return 0, maxX, -slack, slack
}
