package components

import (
	"image/color"

	"github.com/decker502/devilish/internal/particle"
)

// Particle 单个视觉粒子
//
// 由粒子系统创建和回收，不参与任何游戏逻辑。
// 速度单位为"像素/帧"，寿命单位为秒。
type Particle struct {
	X, Y   float64
	VX, VY float64

	Life    float64
	MaxLife float64

	Size  float64
	Color color.RGBA

	// Gravity 每帧叠加到 VY 的加速度
	Gravity float64

	// Alpha/Scale 随归一化年龄变化的曲线
	Alpha particle.Value
	Scale particle.Value
}

// Age 归一化年龄：0 为刚出生，1 为寿命耗尽
func (p *Particle) Age() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	age := 1 - p.Life/p.MaxLife
	if age < 0 {
		return 0
	}
	if age > 1 {
		return 1
	}
	return age
}

// Alive 寿命未耗尽
func (p *Particle) Alive() bool {
	return p.Life > 0
}
