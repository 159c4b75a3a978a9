package systems

import (
	"math/rand"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

// CameraSystem 平滑跟随玩家并叠加震屏
type CameraSystem struct {
	camera    *components.Camera
	smoothing float64
	rng       *rand.Rand

	minX, maxX float64
	minY, maxY float64
}

// NewCameraSystem 创建镜头系统
//
// 参数:
//   - rules: 镜头参数（平滑系数）
//   - levelWidth: 关卡宽度，决定水平方向的移动范围
//   - rng: 震屏随机源，nil 时使用全局随机源
func NewCameraSystem(rules config.CameraRules, levelWidth float64, rng *rand.Rand) *CameraSystem {
	cs := &CameraSystem{
		camera:    &components.Camera{},
		smoothing: rules.Smoothing,
		rng:       rng,
	}
	cs.minX, cs.maxX, cs.minY, cs.maxY = config.CameraBounds(levelWidth)
	return cs
}

// Camera 镜头状态
func (cs *CameraSystem) Camera() *components.Camera {
	return cs.camera
}

// Follow 把镜头中心朝 target 中心平滑逼近一步
func (cs *CameraSystem) Follow(target utils.Rect) {
	c := cs.camera
	c.TargetX = target.CenterX() - config.GameWindowWidth/2
	c.TargetY = target.CenterY() - config.GameWindowHeight/2

	c.X = utils.Lerp(c.X, c.TargetX, cs.smoothing)
	c.Y = utils.Lerp(c.Y, c.TargetY, cs.smoothing)

	c.X = clamp(c.X, cs.minX, cs.maxX)
	c.Y = clamp(c.Y, cs.minY, cs.maxY)
}

// AddShake 叠加震屏：幅度和时长各取较大值
func (cs *CameraSystem) AddShake(intensity, duration float64) {
	c := cs.camera
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeDuration {
		c.ShakeDuration = duration
	}
}

// Shake 按规则中的震屏配置叠加震屏
func (cs *CameraSystem) Shake(rule config.ShakeRule) {
	cs.AddShake(rule.Intensity, rule.Duration)
}

// Update 推进震屏计时，结束后幅度归零
func (cs *CameraSystem) Update(dt float64) {
	c := cs.camera
	if c.ShakeDuration > 0 {
		c.ShakeDuration -= dt
		if c.ShakeDuration <= 0 {
			c.ShakeDuration = 0
			c.ShakeIntensity = 0
		}
	}
}

// Offset 世界坐标到屏幕坐标的偏移（含震屏随机抖动）
func (cs *CameraSystem) Offset() (float64, float64) {
	c := cs.camera
	x, y := -c.X, -c.Y
	if c.ShakeIntensity > 0 {
		x += particle.RandomInRange(cs.rng, -c.ShakeIntensity, c.ShakeIntensity)
		y += particle.RandomInRange(cs.rng, -c.ShakeIntensity, c.ShakeIntensity)
	}
	return x, y
}
