package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

// TestCameraSystem_FollowClamped 关卡与屏幕同宽时水平方向固定
func TestCameraSystem_FollowClamped(t *testing.T) {
	cs := NewCameraSystem(config.CameraRules{Smoothing: 1}, config.GameWindowWidth, nil)

	cs.Follow(utils.NewRect(1200, 100, 30, 50))
	c := cs.Camera()
	if c.X != 0 {
		t.Errorf("camera x = %.1f, want 0", c.X)
	}
	// 125 - 360 = -235，下限 -180
	if c.Y != -180 {
		t.Errorf("camera y = %.1f, want -180", c.Y)
	}
}

// TestCameraSystem_FollowSmoothing 每次逼近目标的一部分
func TestCameraSystem_FollowSmoothing(t *testing.T) {
	cs := NewCameraSystem(config.CameraRules{Smoothing: 0.1}, 2000, nil)
	target := utils.NewRect(1025, 345, 30, 30)

	cs.Follow(target)
	// 目标X = 1040 - 640 = 400
	if got := cs.Camera().X; math.Abs(got-40) > 1e-9 {
		t.Errorf("after one step x = %.3f, want 40", got)
	}
	for i := 0; i < 200; i++ {
		cs.Follow(target)
	}
	if got := cs.Camera().X; math.Abs(got-400) > 0.01 {
		t.Errorf("camera did not converge: x = %.3f", got)
	}
}

// TestCameraSystem_ShakeMax 叠加震屏取较大值，结束后归零
func TestCameraSystem_ShakeMax(t *testing.T) {
	cs := NewCameraSystem(config.CameraRules{Smoothing: 0.1}, config.GameWindowWidth, nil)
	cs.AddShake(5, 0.2)
	cs.Shake(config.ShakeRule{Intensity: 3, Duration: 0.5})

	c := cs.Camera()
	if c.ShakeIntensity != 5 || c.ShakeDuration != 0.5 {
		t.Fatalf("shake = (%.1f, %.1f), want (5, 0.5)", c.ShakeIntensity, c.ShakeDuration)
	}
	if !c.Shaking() {
		t.Error("camera should be shaking")
	}

	for i := 0; i < 40; i++ {
		cs.Update(frameDT)
	}
	if c.Shaking() || c.ShakeIntensity != 0 {
		t.Errorf("shake should have ended, intensity=%.1f duration=%.2f", c.ShakeIntensity, c.ShakeDuration)
	}
	if x, y := cs.Offset(); x != 0 || y != 0 {
		t.Errorf("offset without shake = (%.1f, %.1f)", x, y)
	}
}

// TestCameraSystem_OffsetWithinIntensity 震屏偏移在幅度范围内
func TestCameraSystem_OffsetWithinIntensity(t *testing.T) {
	cs := NewCameraSystem(config.CameraRules{Smoothing: 0.1}, config.GameWindowWidth, rand.New(rand.NewSource(7)))
	cs.AddShake(4, 1)

	for i := 0; i < 50; i++ {
		x, y := cs.Offset()
		if math.Abs(x) > 4 || math.Abs(y) > 4 {
			t.Fatalf("offset (%.2f, %.2f) exceeds intensity", x, y)
		}
	}
}
