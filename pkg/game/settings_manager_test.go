package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时 HOME 下打开 gdata 存储
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	originalXDG := os.Getenv("XDG_DATA_HOME")
	os.Setenv("HOME", tempDir)
	os.Unsetenv("XDG_DATA_HOME")
	t.Cleanup(func() {
		os.Setenv("HOME", originalHome)
		if originalXDG != "" {
			os.Setenv("XDG_DATA_HOME", originalXDG)
		}
	})

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.DebugOverlay {
		t.Error("DebugOverlay: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 降级模式下使用默认设置
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("degraded mode SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	sm.SetSoundVolume(0.3)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Error("Load() in degraded mode should restore defaults")
	}
}

// TestSettingsLoadSave 保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	manager := newTestGdata(t, "devilish_settings_test")

	sm1 := NewSettingsManager(manager)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	sm1.ToggleDebugOverlay()
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	settings := NewSettingsManager(manager).GetSettings()
	if settings.SoundVolume != 0.6 {
		t.Errorf("loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("loaded Fullscreen: got false, want true")
	}
	if settings.DebugOverlay {
		t.Error("loaded DebugOverlay: got true, want false")
	}
}

// TestSettingsLoadPartialFile 旧文件缺少的字段保持默认值
func TestSettingsLoadPartialFile(t *testing.T) {
	manager := newTestGdata(t, "devilish_settings_partial")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	settings := NewSettingsManager(manager).GetSettings()
	if !settings.Fullscreen {
		t.Error("fullscreen from file not applied")
	}
	if settings.SoundVolume != 0.8 || !settings.SoundEnabled {
		t.Errorf("missing fields should keep defaults, got %+v", settings)
	}
}

// TestSettingsLoadCorrupt 损坏的文件回退到默认设置
func TestSettingsLoadCorrupt(t *testing.T) {
	manager := newTestGdata(t, "devilish_settings_corrupt")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(manager)
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the corrupt file")
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Error("corrupt file should fall back to defaults")
	}
}

// TestSetSoundVolumeClamp 音量范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
		{-100, 0.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestToggles 开关切换
func TestToggles(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("first ToggleSound should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("second ToggleSound should enable sound")
	}
	if sm.ToggleDebugOverlay() {
		t.Error("first ToggleDebugOverlay should hide the overlay")
	}
}
