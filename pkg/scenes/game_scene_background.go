package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/systems"
	"github.com/decker502/devilish/pkg/utils"
)

// 氛围层数量：完整 / 精简（隔帧绘制）
const (
	fogLayersFull = 4
	fogLayersLite = 2
	starsFull     = 6
	starsLite     = 3
)

var colorFog = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// background 竖直渐变背景 + 漂浮的雾和闪烁的星星
//
// 精简模式下氛围层画在离屏图像上，每两帧刷新一次。
type background struct {
	render   *systems.RenderSystem
	gradient *ebiten.Image

	lite  bool
	layer *ebiten.Image
	frame int
}

func newBackground(render *systems.RenderSystem, rules config.RenderRules) *background {
	b := &background{
		render:   render,
		gradient: ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight),
		lite:     rules.AtmosphereEveryOtherFrame,
	}
	for y := 0; y < config.GameWindowHeight; y++ {
		c := gradientColor(float64(y) / config.GameWindowHeight)
		vector.DrawFilledRect(b.gradient, 0, float32(y), config.GameWindowWidth, 1, c, false)
	}
	if b.lite {
		b.layer = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	}
	return b
}

// gradientColor 背景渐变在 t（0 顶部，1 底部）处的颜色
func gradientColor(t float64) color.RGBA {
	top, bottom := systems.ColorBackgroundTop, systems.ColorBackgroundBottom
	mix := func(a, b uint8) uint8 {
		return uint8(utils.Lerp(float64(a), float64(b), utils.Clamp01(t)))
	}
	return color.RGBA{R: mix(top.R, bottom.R), G: mix(top.G, bottom.G), B: mix(top.B, bottom.B), A: 255}
}

// Draw 绘制背景，t 为场景时间（秒）
func (b *background) Draw(screen *ebiten.Image, t float64) {
	screen.DrawImage(b.gradient, nil)

	if !b.lite {
		b.drawAtmosphere(screen, t)
		return
	}
	if b.frame%2 == 0 {
		b.layer.Clear()
		b.drawAtmosphere(b.layer, t)
	}
	b.frame++
	screen.DrawImage(b.layer, nil)
}

func (b *background) drawAtmosphere(dst *ebiten.Image, t float64) {
	fogs, stars := fogLayersFull, starsFull
	if b.lite {
		fogs, stars = fogLayersLite, starsLite
	}

	for i := 0; i < fogs; i++ {
		r, alpha := fogLayer(i, t, b.lite)
		b.render.FillEllipse(dst, r.CenterX(), r.CenterY(), r.W/2, r.H/2, colorFog, alpha)
	}

	for i := 0; i < stars; i++ {
		p, brightness := starAt(i, t)
		c := color.RGBA{R: brightness, G: brightness, B: brightness, A: 255}
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), 2, c, true)
	}
}

// fogLayer 第 i 层雾的外接矩形和不透明度（0-1）
//
// 雾层上下缓慢浮动，透明度在 10 到 50（/255）之间起伏。
func fogLayer(i int, t float64, lite bool) (utils.Rect, float64) {
	fi := float64(i)
	w, h, x := float64(config.GameWindowWidth+200), 80.0, -100+fi*30
	if lite {
		w, h, x = config.GameWindowWidth+100, 60, -50+fi*30
	}
	y := 100 + fi*120 + math.Sin(t*0.3+fi)*20
	alpha := (30 + 20*math.Sin(t*0.5+fi)) / 255
	return utils.NewRect(x, y, w, h), alpha
}

// starAt 第 i 颗星星的位置和亮度
func starAt(i int, t float64) (utils.Vec2, uint8) {
	fi := float64(i)
	x := math.Mod(fi*200+math.Sin(t*0.1+fi)*30, config.GameWindowWidth)
	if x < 0 {
		x += config.GameWindowWidth
	}
	brightness := 100 + 50*math.Sin(t+fi)
	return utils.Vec2{X: x, Y: 50 + fi*60}, uint8(brightness)
}
