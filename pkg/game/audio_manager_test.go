package game

import "testing"

// TestAudioManager_Play 开关和未知音效
func TestAudioManager_Play(t *testing.T) {
	rm := newTestResources(t)
	sm := NewSettingsManager(nil)
	am := NewAudioManager(testAudioContext, rm, sm)

	if !am.Enabled() {
		t.Fatal("audio should be enabled by default")
	}
	if !am.PlaySound(SoundJump) {
		t.Error("PlaySound(jump) should play")
	}
	if am.PlaySound("missing") {
		t.Error("unknown sound should not play")
	}

	sm.SetSoundEnabled(false)
	if am.PlaySound(SoundJump) {
		t.Error("sound disabled in settings should not play")
	}
}

// TestAudioManager_Silent 没有音频上下文时静音
func TestAudioManager_Silent(t *testing.T) {
	am := NewAudioManager(nil, newTestResources(t), nil)
	if am.Enabled() {
		t.Error("nil context should be silent")
	}
	if am.PlaySound(SoundDeath) {
		t.Error("nil context should not play")
	}
	am.Preload([]string{SoundDeath})
}

// TestAudioManager_PlayerCache 同一音效复用播放器
func TestAudioManager_PlayerCache(t *testing.T) {
	am := NewAudioManager(testAudioContext, newTestResources(t), nil)
	am.Preload([]string{SoundWin, SoundDeath})
	if len(am.soundPlayers) != 2 {
		t.Fatalf("players = %d, want 2", len(am.soundPlayers))
	}
	p := am.soundPlayers[SoundWin]
	am.PlaySound(SoundWin)
	if am.soundPlayers[SoundWin] != p {
		t.Error("player should be reused")
	}
}
