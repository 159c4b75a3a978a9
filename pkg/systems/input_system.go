package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/devilish/pkg/components"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/utils"
)

// KeySource 键盘状态来源，测试中可替换为脚本输入
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeys 读取真实键盘
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// 按键绑定
var (
	keysLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysJump  = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	keysReset = []ebiten.Key{ebiten.KeyR}
	keysQuit  = []ebiten.Key{ebiten.KeyEscape}
	keysPause = []ebiten.Key{ebiten.KeyP}
	keysDebug = []ebiten.Key{ebiten.KeyF3}
	keysMute  = []ebiten.Key{ebiten.KeyM}
)

// InputSystem 每帧采样一次键盘（移动端附加触摸按钮），生成 components.Input
type InputSystem struct {
	keys  KeySource
	touch bool
}

// NewInputSystem 创建读取真实键盘的输入系统
// 移动端（或设置了模拟环境变量）额外读取屏幕触摸按钮
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}, touch: utils.IsMobile()}
}

// NewInputSystemWithSource 使用指定的键盘来源创建输入系统
func NewInputSystemWithSource(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

// Poll 采样本帧输入
func (s *InputSystem) Poll() components.Input {
	in := components.Input{
		Left:        s.anyPressed(keysLeft),
		Right:       s.anyPressed(keysRight),
		Jump:        s.anyJustPressed(keysJump),
		Reset:       s.anyJustPressed(keysReset),
		Quit:        s.anyJustPressed(keysQuit),
		Pause:       s.anyJustPressed(keysPause),
		ToggleDebug: s.anyJustPressed(keysDebug),
		ToggleMute:  s.anyJustPressed(keysMute),
	}

	if s.touch {
		tc := utils.ReadTouchControls(config.GameWindowWidth, config.GameWindowHeight)
		in.Left = in.Left || tc.Left
		in.Right = in.Right || tc.Right
		in.Jump = in.Jump || tc.Jump
		in.Tap = tc.Tapped
	}
	return in
}

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (s *InputSystem) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
