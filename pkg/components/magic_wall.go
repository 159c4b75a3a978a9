package components

import "github.com/decker502/devilish/pkg/utils"

// MagicWall 魔法墙
//
// 存活时像平台一样阻挡玩家。玩家每"接触"一次（扩展矩形重叠的上升沿）
// 计一次命中，耐久归零后摧毁并从碰撞列表中移除。
type MagicWall struct {
	Rect utils.Rect

	Health    int
	MaxHealth int
	Alive     bool

	Cracked       bool
	CrackTime     float64
	CrackTimer    float64
	CrackProgress float64

	ShakeTime  float64
	ShakeTimer float64

	// HitInflate 命中判定的扩展量；墙是实体，玩家被推出后只会贴边，需要扩展才能检测到接触
	HitInflate float64

	// Touching 上一帧玩家是否处于接触状态
	Touching bool
}

// NewMagicWall 创建魔法墙
func NewMagicWall(rect utils.Rect, health int) *MagicWall {
	return &MagicWall{
		Rect:      rect,
		Health:    health,
		MaxHealth: health,
		Alive:     true,
	}
}

// Contact 更新接触状态，返回本帧是否构成一次新的命中
//
// 持续贴着墙只算一次命中，玩家必须离开后再次接触。
func (w *MagicWall) Contact(player utils.Rect) bool {
	if !w.Alive {
		w.Touching = false
		return false
	}
	touching := player.Overlaps(w.Rect.Inflate(w.HitInflate, w.HitInflate))
	hit := touching && !w.Touching
	w.Touching = touching
	return hit
}

// Hit 扣除一点耐久，返回墙是否因此被摧毁
func (w *MagicWall) Hit() bool {
	if !w.Alive {
		return false
	}

	w.Health--
	w.ShakeTimer = w.ShakeTime

	if w.Health <= 0 {
		w.Alive = false
		return true
	}
	w.Cracked = true
	w.CrackTimer = w.CrackTime
	w.CrackProgress = 0
	return false
}

// Update 推进裂纹和抖动计时
func (w *MagicWall) Update(dt float64) {
	if w.ShakeTimer > 0 {
		w.ShakeTimer -= dt
	}
	if w.Cracked && w.CrackTimer > 0 {
		w.CrackTimer -= dt
		if w.CrackTime > 0 {
			w.CrackProgress = 1 - w.CrackTimer/w.CrackTime
		}
		if w.CrackTimer <= 0 {
			w.CrackProgress = 1
		}
	}
}

// View 实现 Drawable
func (w *MagicWall) View() View {
	v := View{
		Kind:     ViewMagicWall,
		Rect:     w.Rect,
		Visible:  w.Alive,
		Alpha:    1,
		Active:   w.Cracked,
		Progress: w.CrackProgress,
		Health:   w.Health,
	}
	if w.ShakeTimer > 0 && w.ShakeTime > 0 {
		// 抖动幅度随剩余时间衰减，方向每帧由相位决定
		v.ShakeX = 3 * (w.ShakeTimer / w.ShakeTime)
		v.Phase = w.ShakeTimer
	}
	return v
}
