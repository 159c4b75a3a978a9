package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/utils"
)

func TestWithAlpha(t *testing.T) {
	c := withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if c.A != 127 || c.R != 100 || c.G != 50 || c.B != 25 {
		t.Errorf("withAlpha = %+v, want premultiplied half", c)
	}
	if c := withAlpha(colorSpike, 2); c != colorSpike {
		t.Errorf("alpha > 1 should clamp, got %+v", c)
	}
	if c := withAlpha(colorSpike, -1); c.A != 0 {
		t.Errorf("alpha < 0 should clamp, got %+v", c)
	}
}

func TestShadowAlpha(t *testing.T) {
	if a := shadowAlpha(0, 0); a != 0 {
		t.Errorf("no layers: alpha = %f", a)
	}
	prev := math.Inf(1)
	for i := 0; i < 4; i++ {
		a := shadowAlpha(i, 4)
		if a >= prev {
			t.Errorf("layer %d alpha %f should be fainter than %f", i, a, prev)
		}
		prev = a
	}
}

// TestRotatedCorners 旋转 90 度后四角互换位置
func TestRotatedCorners(t *testing.T) {
	r := utils.NewRect(0, 0, 40, 20)
	corners := rotatedCorners(r, math.Pi/2)
	// 左上角 (-20,-10) 绕中心 (20,10) 旋转 90 度 → (10, -10) + 中心 = (30, -10)
	want := utils.Vec2{X: 30, Y: -10}
	if math.Abs(corners[0].X-want.X) > 1e-9 || math.Abs(corners[0].Y-want.Y) > 1e-9 {
		t.Errorf("corner[0] = %+v, want %+v", corners[0], want)
	}

	straight := rotatedCorners(r, 0)
	if straight[2] != (utils.Vec2{X: 40, Y: 20}) {
		t.Errorf("unrotated bottom-right = %+v", straight[2])
	}
}

func TestCurveAt(t *testing.T) {
	if v := curveAt(particle.Value{}, 0.3, 0.7); v != 0.7 {
		t.Errorf("unset curve = %f, want default", v)
	}
	fade := particle.Value{Keyframes: []particle.Keyframe{{Time: 0, Value: 1}, {Time: 1, Value: 0}}}
	if v := curveAt(fade, 0.25, 1); math.Abs(v-0.75) > 1e-9 {
		t.Errorf("fade at 0.25 = %f, want 0.75", v)
	}
}
