package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

// 音效名（对应 data/sounds.yaml 的 key）
const (
	SoundJump       = "jump"
	SoundDoubleJump = "doubleJump"
	SoundLand       = "land"
	SoundWallHit    = "wallHit"
	SoundWallBreak  = "wallBreak"
	SoundTeleport   = "teleport"
	SoundDoorTroll  = "doorTroll"
	SoundDoorOpen   = "doorOpen"
	SoundStoneDrop  = "stoneDrop"
	SoundStoneHit   = "stoneHit"
	SoundDeath      = "death"
	SoundWin        = "win"
)

// SoundPlayer 播放音效的接口
// 游戏场景只依赖这个接口，测试中可以替换为记录调用的实现
type SoundPlayer interface {
	PlaySound(name string) bool
}

// AudioManager 音效管理器
//
// 职责：
//   - 根据 ResourceManager 合成的 PCM 创建并缓存播放器
//   - 播放时应用 SettingsManager 中的开关和音量
//
// audio.Context 为 nil 时进入静音模式，所有播放请求直接返回 false。
type AudioManager struct {
	context         *audio.Context
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player
	missing         map[string]bool
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: 全局音频上下文，采样率必须与合成音效一致；可为 nil（静音）
//   - rm: 提供合成好的音效数据
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, rm *ResourceManager, sm *SettingsManager) *AudioManager {
	if ctx != nil && rm.SampleRate() != 0 && ctx.SampleRate() != rm.SampleRate() {
		log.Warn().Str("component", "AudioManager").
			Int("context", ctx.SampleRate()).Int("sounds", rm.SampleRate()).
			Msg("sample rate mismatch, audio disabled")
		ctx = nil
	}
	return &AudioManager{
		context:         ctx,
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// Enabled 当前是否会发出声音
func (am *AudioManager) Enabled() bool {
	if am.context == nil {
		return false
	}
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

// PlaySound 从头播放一个音效
//
// 返回是否真正播放（静音、音效关闭、未知音效都返回 false）
func (am *AudioManager) PlaySound(name string) bool {
	if !am.Enabled() {
		return false
	}

	player := am.getSoundPlayer(name)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.SetPosition(0); err != nil {
		log.Warn().Str("component", "AudioManager").Str("sound", name).Err(err).Msg("failed to rewind sound")
	}
	player.Play()
	return true
}

// Preload 预先创建播放器，避免首次播放时的延迟
func (am *AudioManager) Preload(names []string) {
	if am.context == nil {
		return
	}
	for _, name := range names {
		am.getSoundPlayer(name)
	}
	log.Debug().Str("component", "AudioManager").Int("count", len(names)).Msg("sounds preloaded")
}

func (am *AudioManager) getSoundPlayer(name string) *audio.Player {
	if player, ok := am.soundPlayers[name]; ok {
		return player
	}

	buf := am.resourceManager.SoundBuffer(name)
	if buf == nil {
		if !am.missing[name] {
			am.missing[name] = true
			log.Warn().Str("component", "AudioManager").Str("sound", name).Msg("sound not found")
		}
		return nil
	}

	player := am.context.NewPlayerFromBytes(buf)
	am.soundPlayers[name] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}
