package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if !settings.HapticsEnabled {
		t.Error("HapticsEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}

	// 降级模式下保存不报错
	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if sm.ToggleSound() != true {
		t.Error("ToggleSound() should flip back to true")
	}
}

// TestSettingsPersistence 测试设置保存后可被新的管理器读取
func TestSettingsPersistence(t *testing.T) {
	storage := openTestStorage(t, "test_shroom_settings")

	sm, err := NewSettingsManager(storage)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm.SetSoundVolume(0.3)
	sm.SetSoundEnabled(false)
	sm.SetHapticsEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := NewSettingsManager(storage)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	got := reloaded.GetSettings()
	want := GameSettings{SoundVolume: 0.3, SoundEnabled: false, HapticsEnabled: false, Fullscreen: true}
	if *got != want {
		t.Errorf("reloaded settings = %+v, want %+v", *got, want)
	}
}

// TestSetSoundVolumeClamp 测试音量被限制在 0~1
func TestSetSoundVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input float64
		want  float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{3, 1},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestToggleSavesImmediately 测试开关切换后立即持久化
func TestToggleSavesImmediately(t *testing.T) {
	storage := openTestStorage(t, "test_shroom_toggle")

	sm, _ := NewSettingsManager(storage)
	if sm.ToggleSound() {
		t.Fatal("ToggleSound() from default should disable sound")
	}
	if sm.ToggleHaptics() {
		t.Fatal("ToggleHaptics() from default should disable haptics")
	}

	reloaded, _ := NewSettingsManager(storage)
	if reloaded.GetSettings().SoundEnabled || reloaded.GetSettings().HapticsEnabled {
		t.Errorf("toggles were not persisted: %+v", *reloaded.GetSettings())
	}
}

// TestLoadCorruptedSettings 测试损坏的数据回退到默认值
func TestLoadCorruptedSettings(t *testing.T) {
	storage := openTestStorage(t, "test_shroom_corrupt")

	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [not a number")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(storage)
	if err != nil {
		t.Fatalf("NewSettingsManager() should not fail on corrupted data: %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupted data should fall back to defaults, got %+v", *sm.GetSettings())
	}
}

// TestLoadPartialSettings 测试旧文件缺少的字段保持默认值，越界音量被修正
func TestLoadPartialSettings(t *testing.T) {
	storage := openTestStorage(t, "test_shroom_partial")

	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: 7\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(storage)
	got := sm.GetSettings()
	if got.SoundVolume != 1 {
		t.Errorf("SoundVolume: got %v, want clamped 1", got.SoundVolume)
	}
	if !got.SoundEnabled || !got.HapticsEnabled {
		t.Errorf("missing fields should keep defaults, got %+v", *got)
	}
}
