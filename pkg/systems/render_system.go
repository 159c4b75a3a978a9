package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/entities"
	"github.com/decker502/devilish/pkg/utils"
)

// 调色板
var (
	ColorBackgroundTop    = color.RGBA{R: 20, G: 24, B: 40, A: 255}
	ColorBackgroundBottom = color.RGBA{R: 45, G: 35, B: 60, A: 255}
	ColorForeground       = color.RGBA{R: 240, G: 240, B: 250, A: 255}

	colorPlatform     = color.RGBA{R: 52, G: 62, B: 88, A: 255}
	colorPlatformEdge = color.RGBA{R: 72, G: 82, B: 108, A: 255}
	colorSpike        = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorSpikeEdge    = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	colorSpikeWarn    = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	colorWall         = color.RGBA{R: 85, G: 105, B: 140, A: 255}
	colorWallCrack    = color.RGBA{R: 240, G: 245, B: 255, A: 255}
	colorDoor         = color.RGBA{R: 120, G: 200, B: 180, A: 255}
	colorDoorLocked   = color.RGBA{R: 80, G: 120, B: 160, A: 255}
	colorDoorInner    = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	colorDoorHandle   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorPortal       = color.RGBA{R: 100, G: 255, B: 200, A: 150}
	colorFakeDoor     = color.RGBA{R: 180, G: 120, B: 200, A: 255}
	colorFakeInner    = color.RGBA{R: 40, G: 30, B: 50, A: 255}
	colorFakeHandle   = color.RGBA{R: 220, G: 180, B: 230, A: 255}
	colorTeleport     = color.RGBA{R: 80, G: 180, B: 240, A: 255}
	colorTeleportCold = color.RGBA{R: 60, G: 120, B: 180, A: 255}
	colorTeleportGlow = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	colorTeleportMark = color.RGBA{R: 220, G: 240, B: 255, A: 255}
	colorStone        = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	colorStoneEdge    = color.RGBA{R: 160, G: 160, B: 180, A: 255}
	colorStoneDot     = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	colorStoneWarn    = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	colorPlayer       = color.RGBA{R: 240, G: 248, B: 255, A: 255}
	colorPlayerShade  = color.RGBA{R: 200, G: 208, B: 215, A: 255}
	colorFace         = color.RGBA{R: 40, G: 40, B: 60, A: 255}
)

// withAlpha 返回按 alpha（0-1）缩放后的预乘颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}

// shadowAlpha 第 i 层阴影的不透明度（共 layers 层，越外层越淡）
func shadowAlpha(i, layers int) float64 {
	if layers <= 0 {
		return 0
	}
	return 60.0 / 255 * (1 - float64(i)/float64(layers)) / 2
}

// rotatedCorners 矩形绕中心旋转 angle（弧度）后的四个角，顺序：左上、右上、右下、左下
func rotatedCorners(r utils.Rect, angle float64) [4]utils.Vec2 {
	cx, cy := r.CenterX(), r.CenterY()
	hw, hh := r.W/2, r.H/2
	sin, cos := math.Sincos(angle)
	local := [4]utils.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var out [4]utils.Vec2
	for i, p := range local {
		out[i] = utils.Vec2{X: cx + p.X*cos - p.Y*sin, Y: cy + p.X*sin + p.Y*cos}
	}
	return out
}

// RenderSystem 关卡世界的程序化绘制
//
// 所有图形由矩形、圆、线段和三角形拼成，不依赖图片资源。
// 绘制只读取各对象的 View 快照和玩家状态，不修改任何游戏状态。
type RenderSystem struct {
	shadowLayers int

	// 填充三角形用的白色纹理
	white *ebiten.Image

	// 顶点数组复用，避免每帧分配
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(rules config.RenderRules) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &RenderSystem{
		shadowLayers: rules.ShadowBlur,
		white:        white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:     make([]ebiten.Vertex, 0, 64),
		indices:      make([]uint16, 0, 96),
	}
}

// DrawWorld 绘制关卡、玩家和粒子
//
// 参数:
//   - screen: 绘制目标
//   - level: 当前关卡
//   - particles: 存活粒子（世界坐标）
//   - ox, oy: 镜头偏移（世界坐标 + 偏移 = 屏幕坐标）
func (s *RenderSystem) DrawWorld(screen *ebiten.Image, level *entities.Level, particles []*components.Particle, ox, oy float64) {
	for _, p := range level.Platforms {
		s.drawView(screen, p.View(), ox, oy)
	}
	for _, h := range level.Hazards() {
		s.drawView(screen, h.View(), ox, oy)
	}
	s.drawPlayer(screen, level.Player, ox, oy)
	s.DrawParticles(screen, particles, ox, oy)
}

func (s *RenderSystem) drawView(screen *ebiten.Image, v components.View, ox, oy float64) {
	if !v.Visible {
		return
	}
	r := v.Rect.Translate(ox, oy)

	switch v.Kind {
	case components.ViewPlatform:
		s.drawPlatform(screen, r, 1, true)
	case components.ViewFakePlatform:
		// 触发后逐渐透明，不再画阴影
		s.drawPlatform(screen, r, utils.EaseOutQuad(v.Alpha), !v.Active)
	case components.ViewMagicWall:
		s.drawWall(screen, v, r)
	case components.ViewSpike:
		s.drawSpike(screen, v, ox, oy)
	case components.ViewStone:
		s.drawStone(screen, v, r)
	case components.ViewTeleport:
		s.drawTeleport(screen, v, r)
	case components.ViewFakeDoor:
		s.drawFakeDoor(screen, v, r)
	case components.ViewDoor:
		s.drawDoor(screen, v, r)
	}
}

// drawShadow 多层扩展矩形叠出的柔和阴影
func (s *RenderSystem) drawShadow(screen *ebiten.Image, r utils.Rect, offset float64) {
	base := r.Translate(offset, offset)
	for i := 0; i < s.shadowLayers; i++ {
		grow := float64(i * 2)
		fillRect(screen, base.Inflate(grow, grow), withAlpha(color.RGBA{A: 255}, shadowAlpha(i, s.shadowLayers)))
	}
}

func (s *RenderSystem) drawPlatform(screen *ebiten.Image, r utils.Rect, alpha float64, shadow bool) {
	if shadow {
		s.drawShadow(screen, r, 4)
	}
	fillRect(screen, r, withAlpha(colorPlatform, alpha))
	fillRect(screen, utils.NewRect(r.X, r.Y, r.W, math.Min(4, r.H)), withAlpha(colorPlatformEdge, alpha))

	edge := withAlpha(colorPlatformEdge, alpha)
	for x := 0.0; x < r.W; x += 20 {
		vector.StrokeLine(screen, float32(r.X+x), float32(r.Bottom()-2), float32(r.X+math.Min(x+8, r.W)), float32(r.Bottom()-2), 1, edge, true)
	}
}

func (s *RenderSystem) drawWall(screen *ebiten.Image, v components.View, r utils.Rect) {
	if v.ShakeX > 0 {
		// 抖动方向随剩余时间高频翻转
		r = r.Translate(v.ShakeX*math.Sin(v.Phase*90), 0)
	}
	s.drawShadow(screen, r, 4)
	fillRect(screen, r, colorWall)

	if !v.Active || v.Progress <= 0 {
		return
	}
	crack := withAlpha(colorWallCrack, v.Progress)
	cx, cy := r.CenterX(), r.CenterY()
	length := r.W * 0.4 * utils.EaseOutCubic(v.Progress)
	for i := 0; i < 6; i++ {
		angle := float64(i)*math.Pi/3 + v.Progress*0.5
		ex := cx + math.Cos(angle)*length
		ey := cy + math.Sin(angle)*length
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), 3, crack, true)
	}
}

func (s *RenderSystem) drawSpike(screen *ebiten.Image, v components.View, ox, oy float64) {
	r := v.Rect.Translate(ox, oy)

	if v.Warning {
		intensity := utils.Pulse(v.Phase)
		size := 4 + intensity*8
		vector.DrawFilledCircle(screen, float32(r.CenterX()), float32(r.Top()), float32(size*2),
			withAlpha(colorSpikeWarn, 100.0/255*intensity), true)
		return
	}
	if !v.Active {
		return
	}

	tri := utils.Triangle{
		{X: r.CenterX(), Y: r.Top()},
		{X: r.Left() + 4, Y: r.Bottom()},
		{X: r.Right() - 4, Y: r.Bottom()},
	}
	shadow := tri
	for i := range shadow {
		shadow[i].X += 2
		shadow[i].Y += 2
	}
	s.fillPolygon(screen, shadow[:], color.RGBA{A: 100})
	s.fillPolygon(screen, tri[:], colorSpike)
	strokePolygon(screen, tri[:], 2, colorSpikeEdge)
}

func (s *RenderSystem) drawStone(screen *ebiten.Image, v components.View, r utils.Rect) {
	if v.Warning {
		// 预警：从屏幕顶端垂下的警示线，颜色由黄转红
		p := utils.EaseInQuad(v.Progress)
		warn := withAlpha(color.RGBA{R: 255, G: uint8(255 * (1 - p)), B: 0, A: 255}, 200.0/255*p)
		vector.StrokeLine(screen, float32(r.CenterX()), 0, float32(r.CenterX()), float32(r.Top()), 3, warn, true)
		vector.DrawFilledCircle(screen, float32(r.CenterX()), 20, float32(10+5*math.Sin(p*20)), warn, true)
		strokeRect(screen, r.Inflate(4, 4), 2, withAlpha(colorStoneWarn, 0.5+0.5*math.Sin(p*30)))
	}

	shadow := rotatedCorners(r.Translate(4, 4), v.Rotation)
	s.fillPolygon(screen, shadow[:], color.RGBA{A: 100})

	corners := rotatedCorners(r, v.Rotation)
	s.fillPolygon(screen, corners[:], colorStone)
	strokePolygon(screen, corners[:], 3, colorStoneEdge)

	// 表面斑点跟随旋转
	sin, cos := math.Sincos(v.Rotation)
	cx, cy := r.CenterX(), r.CenterY()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lx := (float64(i) - 1) * r.W / 3
			ly := (float64(j) - 1) * r.H / 3
			x := cx + lx*cos - ly*sin
			y := cy + lx*sin + ly*cos
			vector.DrawFilledCircle(screen, float32(x), float32(y), 2, colorStoneDot, true)
		}
	}
}

func (s *RenderSystem) drawTeleport(screen *ebiten.Image, v components.View, r utils.Rect) {
	glow := utils.Pulse(v.Phase)
	vector.DrawFilledCircle(screen, float32(r.CenterX()), float32(r.CenterY()), float32(math.Max(r.W, r.H)/2+10),
		withAlpha(colorTeleportGlow, 100.0/255*glow), true)

	body := colorTeleport
	if !v.Active {
		body = colorTeleportCold
	}
	fillRect(screen, r, body)

	cx, cy := float32(r.CenterX()), float32(r.CenterY())
	vector.StrokeCircle(screen, cx, cy, float32(math.Min(r.W, r.H)/4), 1, colorTeleportMark, true)
	vector.StrokeLine(screen, cx-5, cy-5, cx+5, cy+5, 1, colorTeleportMark, true)
	vector.StrokeLine(screen, cx+5, cy-5, cx-5, cy+5, 1, colorTeleportMark, true)
}

func (s *RenderSystem) drawFakeDoor(screen *ebiten.Image, v components.View, r utils.Rect) {
	s.drawShadow(screen, r, 4)
	fillRect(screen, r, colorFakeDoor)
	fillRect(screen, r.Inflate(-12, -16), colorFakeInner)
	vector.DrawFilledCircle(screen, float32(r.Right()-12), float32(r.CenterY()), 4, colorFakeHandle, true)

	// 若隐若现的骷髅
	if math.Sin(v.Phase) > 0.7 {
		skull := color.RGBA{R: 200, G: 200, B: 200, A: 255}
		skull = withAlpha(skull, 100.0/255)
		cx, cy := float32(r.CenterX()), float32(r.CenterY())
		vector.DrawFilledCircle(screen, cx, cy, 3, skull, true)
		vector.DrawFilledCircle(screen, cx-2, cy-1, 1, skull, true)
		vector.DrawFilledCircle(screen, cx+2, cy-1, 1, skull, true)
		vector.StrokeLine(screen, cx-2, cy+2, cx+2, cy+2, 1, skull, true)
	}
}

func (s *RenderSystem) drawDoor(screen *ebiten.Image, v components.View, r utils.Rect) {
	if v.Active {
		radius := 30 + 15*math.Sin(v.Phase)
		vector.DrawFilledCircle(screen, float32(r.CenterX()), float32(r.CenterY()), float32(radius), withAlpha(colorDoor, 60.0/255), true)
	}

	s.drawShadow(screen, r, 4)
	body := colorDoorLocked
	if v.Active {
		body = colorDoor
	}
	fillRect(screen, r, body)
	strokeRect(screen, r, 2, color.RGBA{R: body.R + 20, G: body.G + 20, B: body.B + 20, A: 255})

	inner := r.Inflate(-12, -16)
	if v.Active {
		// 旋转的传送门光点
		radius := inner.W / 4
		for i := 0; i < 3; i++ {
			angle := v.Phase + float64(i)*2*math.Pi/3
			x := inner.CenterX() + math.Cos(angle)*radius/3
			y := inner.CenterY() + math.Sin(angle)*radius/3
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius/2), withAlpha(colorPortal, 1), true)
		}
	} else {
		fillRect(screen, inner, colorDoorInner)
	}
	vector.DrawFilledCircle(screen, float32(r.Right()-12), float32(r.CenterY()), 4, colorDoorHandle, true)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, p *components.Player, ox, oy float64) {
	r := p.DrawRect().Translate(ox, oy)

	s.drawShadow(screen, r, 3)
	fillRect(screen, r, colorPlayer)
	highlight := r.Inflate(-4, -4)
	highlight.H = math.Max(4, highlight.H/3)
	fillRect(screen, highlight, colorPlayerShade)

	eyeY := r.Y + math.Max(8, r.H/4)
	eyeOffset := 4.0
	if r.W > 24 {
		eyeOffset = 6
	}
	eyeDir := 0.0
	if math.Abs(p.VX) > 0.5 {
		eyeDir = math.Copysign(1, p.VX)
	} else if !p.FacingRight {
		eyeDir = -1
	}
	for _, ex := range []float64{r.CenterX() - eyeOffset + eyeDir, r.CenterX() + eyeOffset + eyeDir} {
		if p.Dead {
			// 死亡时画叉眼
			vector.StrokeLine(screen, float32(ex-3), float32(eyeY-3), float32(ex+3), float32(eyeY+3), 2, colorFace, true)
			vector.StrokeLine(screen, float32(ex+3), float32(eyeY-3), float32(ex-3), float32(eyeY+3), 2, colorFace, true)
			continue
		}
		vector.DrawFilledCircle(screen, float32(ex), float32(eyeY), 3, colorFace, true)
		vector.DrawFilledCircle(screen, float32(ex-1), float32(eyeY-1), 1, ColorForeground, true)
	}

	mouthY := r.Y + math.Max(20, r.H*2/3)
	cx := r.CenterX()
	if !p.OnGround && p.VY > 5 {
		vector.DrawFilledCircle(screen, float32(cx), float32(mouthY+1), 3, colorFace, true)
	} else {
		vector.StrokeLine(screen, float32(cx-6), float32(mouthY), float32(cx), float32(mouthY+3), 2, colorFace, true)
		vector.StrokeLine(screen, float32(cx), float32(mouthY+3), float32(cx+6), float32(mouthY), 2, colorFace, true)
	}

	if math.Abs(p.VX) > 4 {
		for i := 0; i < 3; i++ {
			lx := r.Left() - 8 - float64(i*4) - 6
			if p.VX < 0 {
				lx = r.Right() + 8 + float64(i*4)
			}
			ly := r.CenterY() + float64(i*3) - 3
			fillRect(screen, utils.NewRect(lx, ly, 6, 2), withAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, float64(100-i*30)/255))
		}
	}
}

// DrawParticles 绘制粒子，透明度和大小随寿命变化
func (s *RenderSystem) DrawParticles(screen *ebiten.Image, particles []*components.Particle, ox, oy float64) {
	for _, p := range particles {
		age := p.Age()
		alpha := curveAt(p.Alpha, age, 1-age)
		size := p.Size * curveAt(p.Scale, age, 1)
		if size < 0.5 || alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X+ox), float32(p.Y+oy), float32(size), withAlpha(p.Color, alpha), true)
	}
}

// curveAt 取曲线在 age 处的值；未配置曲线时返回 def
func curveAt(v particle.Value, age, def float64) float64 {
	if !v.IsCurve() && v.Min == 0 && v.Max == 0 {
		return def
	}
	return v.At(age)
}

// fillPolygon 填充凸多边形
func (s *RenderSystem) fillPolygon(screen *ebiten.Image, pts []utils.Vec2, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	screen.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillEllipse 填充轴对齐椭圆（屏幕坐标），alpha 为 0-1
func (s *RenderSystem) FillEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, clr color.RGBA, alpha float64) {
	const segments = 40
	var pts [segments]utils.Vec2
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / segments)
		pts[i] = utils.Vec2{X: cx + rx*cos, Y: cy + ry*sin}
	}
	s.fillPolygon(screen, pts[:], withAlpha(clr, alpha))
}

func strokePolygon(screen *ebiten.Image, pts []utils.Vec2, width float32, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

func fillRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
}

func strokeRect(screen *ebiten.Image, r utils.Rect, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, true)
}
