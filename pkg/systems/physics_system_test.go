package systems

import (
	"math"
	"testing"

	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

const frameDT = 1.0 / 60

func testPlayerRules() config.PlayerRules {
	return config.PlayerRules{
		Width:              30,
		Height:             50,
		Gravity:            0.8,
		TerminalVelocity:   18,
		JumpVelocity:       -15,
		DoubleJumpVelocity: -13.5,
		DoubleJump:         true,
		MoveSpeed:          6.5,
		Acceleration:       1.0,
		AirControl:         0.7,
		Friction:           0.88,
		AirResistance:      0.96,
		CoyoteTime:         0.1,
		JumpBufferTime:     0.15,
		HardLandingSpeed:   8,
		RunDustInterval:    0.12,
		RunDustSpeed:       3,
	}
}

func newTestPhysics() *PhysicsSystem {
	return NewPhysicsSystem(testPlayerRules(), utils.NewRect(0, 0, 1280, 720))
}

var groundSolids = []components.Solid{{Rect: utils.NewRect(0, 670, 1280, 50)}}

// settle 让玩家在地面上站稳
func settle(s *PhysicsSystem, p *components.Player, solids []components.Solid) {
	for i := 0; i < 120; i++ {
		s.Control(p, components.Input{}, frameDT)
		s.Move(p, solids, frameDT)
	}
}

// TestPhysics_LandingSnapsToTop 下落碰撞后底边对齐平台顶面，竖直速度归零
func TestPhysics_LandingSnapsToTop(t *testing.T) {
	s := newTestPhysics()
	platforms := []components.Solid{
		{Rect: utils.NewRect(0, 670, 1280, 50)},
		{Rect: utils.NewRect(120, 560, 220, 20)},
		{Rect: utils.NewRect(400, 480, 180, 20)},
	}

	for _, start := range []utils.Vec2{{X: 150, Y: 400}, {X: 420, Y: 100}, {X: 800, Y: 300}} {
		p := components.NewPlayer(start.X, start.Y, 30, 50)
		landed := false
		for i := 0; i < 300 && !landed; i++ {
			res := s.Move(p, platforms, frameDT)
			landed = res.Landed
		}
		if !landed {
			t.Fatalf("player from %v never landed", start)
		}
		if !p.OnGround || p.VY != 0 {
			t.Errorf("from %v: onGround=%v vy=%.2f", start, p.OnGround, p.VY)
		}

		onTop := false
		for _, pl := range platforms {
			if p.Rect.Bottom() == pl.Rect.Top() {
				onTop = true
			}
		}
		if !onTop {
			t.Errorf("from %v: bottom %.2f is not on any platform top", start, p.Rect.Bottom())
		}
	}
}

// TestPhysics_JumpDoubleJumpAndNoThird 地面跳、二段跳、第三次按下无效
func TestPhysics_JumpDoubleJumpAndNoThird(t *testing.T) {
	s := newTestPhysics()
	p := components.NewPlayer(60, 620, 30, 50)
	settle(s, p, groundSolids)
	if !p.OnGround {
		t.Fatal("player should be grounded before jumping")
	}

	if kind := s.Control(p, components.Input{Jump: true}, frameDT); kind != JumpGround {
		t.Fatalf("first press = %v, want ground jump", kind)
	}
	if p.VY != -15 || p.OnGround {
		t.Fatalf("after jump: vy=%.2f onGround=%v", p.VY, p.OnGround)
	}
	s.Move(p, groundSolids, frameDT)

	for i := 0; i < 5; i++ {
		s.Control(p, components.Input{}, frameDT)
		s.Move(p, groundSolids, frameDT)
	}

	if kind := s.Control(p, components.Input{Jump: true}, frameDT); kind != JumpDouble {
		t.Fatalf("second press = %v, want double jump", kind)
	}
	if p.VY != -13.5 || !p.HasDoubleJumped {
		t.Fatalf("after double jump: vy=%.2f used=%v", p.VY, p.HasDoubleJumped)
	}
	s.Move(p, groundSolids, frameDT)

	vy := p.VY
	if kind := s.Control(p, components.Input{Jump: true}, frameDT); kind != JumpBuffered {
		t.Errorf("third press = %v, want buffered", kind)
	}
	if p.VY != vy {
		t.Errorf("third press changed vy from %.2f to %.2f", vy, p.VY)
	}
}

// TestPhysics_BufferedJumpFiresOnLanding 落地前按下跳跃，落地瞬间起跳
func TestPhysics_BufferedJumpFiresOnLanding(t *testing.T) {
	s := newTestPhysics()
	p := components.NewPlayer(60, 610, 30, 50)
	p.CanDoubleJump = false
	p.HasDoubleJumped = true
	p.VY = 6

	// 距地面 10 像素，第二帧落地
	if kind := s.Control(p, components.Input{Jump: true}, frameDT); kind != JumpBuffered {
		t.Fatalf("airborne press without double jump = %v, want buffered", kind)
	}
	res := s.Move(p, groundSolids, frameDT)
	if res.Landed {
		t.Fatal("should not reach the ground in one frame")
	}
	s.Control(p, components.Input{}, frameDT)
	res = s.Move(p, groundSolids, frameDT)
	if !res.Landed || !res.BufferedJump {
		t.Fatalf("landed=%v buffered=%v", res.Landed, res.BufferedJump)
	}
	if p.VY != -15 || p.OnGround {
		t.Errorf("buffered jump: vy=%.2f onGround=%v", p.VY, p.OnGround)
	}
	if p.Rect.Bottom() != 670 {
		t.Errorf("bottom = %.2f, want snapped to 670", p.Rect.Bottom())
	}
}

// TestPhysics_BufferExpires 缓冲超时后落地不起跳
func TestPhysics_BufferExpires(t *testing.T) {
	s := newTestPhysics()
	p := components.NewPlayer(60, 300, 30, 50)
	p.CanDoubleJump = false

	s.Control(p, components.Input{Jump: true}, frameDT)
	for i := 0; i < 300; i++ {
		s.Control(p, components.Input{}, frameDT)
		if res := s.Move(p, groundSolids, frameDT); res.Landed {
			if res.BufferedJump {
				t.Fatal("expired buffer should not jump")
			}
			return
		}
	}
	t.Fatal("player never landed")
}

// TestPhysics_CoyoteTime 走下平台边缘后短时间内仍可起跳
func TestPhysics_CoyoteTime(t *testing.T) {
	s := newTestPhysics()
	ledge := []components.Solid{{Rect: utils.NewRect(0, 500, 100, 20)}}
	p := components.NewPlayer(65, 450, 30, 50)
	settle(s, p, ledge)

	walked := false
	for i := 0; i < 60; i++ {
		s.Control(p, components.Input{Right: true}, frameDT)
		s.Move(p, ledge, frameDT)
		if !p.OnGround {
			walked = true
			break
		}
	}
	if !walked {
		t.Fatal("player never walked off the ledge")
	}
	if p.CoyoteTimer <= 0 {
		t.Fatal("coyote timer should start when walking off")
	}

	if kind := s.Control(p, components.Input{Jump: true}, frameDT); kind != JumpGround {
		t.Errorf("jump within coyote time = %v, want ground jump", kind)
	}
	if p.HasDoubleJumped {
		t.Error("coyote jump should not consume the double jump")
	}
}

// TestPhysics_HorizontalFirst 水平碰撞先于竖直碰撞解决
func TestPhysics_HorizontalFirst(t *testing.T) {
	s := newTestPhysics()
	wall := []components.Solid{
		{Rect: utils.NewRect(0, 670, 1280, 50)},
		{Rect: utils.NewRect(200, 580, 70, 80)},
	}
	p := components.NewPlayer(170, 600, 30, 50)
	p.VX = 6
	p.VY = 2

	s.Move(p, wall, frameDT)
	if p.Rect.Right() != 200 {
		t.Errorf("right = %.2f, want pushed back to wall at 200", p.Rect.Right())
	}
	if p.VX != 0 {
		t.Errorf("vx = %.2f, want 0", p.VX)
	}
	if p.Rect.Y <= 600 {
		t.Error("vertical motion should still be applied after horizontal resolution")
	}
}

// TestPhysics_SpeedClampAndHardLanding 测试速度上限和重落地
func TestPhysics_SpeedClampAndHardLanding(t *testing.T) {
	s := newTestPhysics()
	p := components.NewPlayer(60, 100, 30, 50)

	var res MoveResult
	for i := 0; i < 300; i++ {
		s.Control(p, components.Input{Right: true}, frameDT)
		if math.Abs(p.VX) > 6.5+1.0 {
			t.Fatalf("vx %.2f exceeds clamp before integration", p.VX)
		}
		res = s.Move(p, groundSolids, frameDT)
		if p.VY > 18 {
			t.Fatalf("vy %.2f exceeds terminal velocity", p.VY)
		}
		if res.Landed {
			break
		}
	}
	if !res.HardLanding || res.LandingSpeed <= 8 {
		t.Errorf("hard=%v speed=%.2f", res.HardLanding, res.LandingSpeed)
	}
	if p.Squash <= 1 {
		t.Errorf("squash = %.2f, want landing pulse > 1", p.Squash)
	}
}

// TestPhysics_FrozenPlayer 死亡后不再移动
func TestPhysics_FrozenPlayer(t *testing.T) {
	s := newTestPhysics()
	p := components.NewPlayer(60, 100, 30, 50)
	p.Dead = true

	if kind := s.Control(p, components.Input{Jump: true, Right: true}, frameDT); kind != JumpNone {
		t.Errorf("dead player jumped: %v", kind)
	}
	s.Move(p, groundSolids, frameDT)
	if p.Rect.X != 60 || p.Rect.Y != 100 {
		t.Errorf("dead player moved to (%.1f, %.1f)", p.Rect.X, p.Rect.Y)
	}
}
