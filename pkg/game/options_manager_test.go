package game

import (
	"os"
	"testing"

	"github.com/gonewx/battlehud/pkg/ui"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultOptions 测试默认选项
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.ExtendedReactionFire {
		t.Error("ExtendedReactionFire: got true, want false")
	}
	if opts.TFTDMode {
		t.Error("TFTDMode: got true, want false")
	}
	if opts.Scale != 3 {
		t.Errorf("Scale: got %d, want 3", opts.Scale)
	}
}

// TestOptionsManagerNilGdata 测试降级模式
func TestOptionsManagerNilGdata(t *testing.T) {
	om := NewOptionsManager(nil)

	if om.GetOptions() == nil {
		t.Fatal("GetOptions() returned nil in degraded mode")
	}
	om.SetTFTDMode(true)
	if err := om.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if err := om.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}
	if om.GetOptions().TFTDMode {
		t.Error("degraded Load() should reset to defaults")
	}
}

// TestOptionsLoadSave 测试保存后重新加载
func TestOptionsLoadSave(t *testing.T) {
	m := openTestGdata(t, "test_battle_options")

	om1 := NewOptionsManager(m)
	om1.SetExtendedReactionFire(true)
	om1.SetTFTDMode(true)
	om1.SetScale(2)
	if err := om1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	om2 := NewOptionsManager(m)
	opts := om2.GetOptions()
	if !opts.ExtendedReactionFire || !opts.TFTDMode || opts.Scale != 2 {
		t.Errorf("loaded options = %+v", opts)
	}
}

// TestOptionsLoadCorrupt 测试损坏数据回退到默认选项
func TestOptionsLoadCorrupt(t *testing.T) {
	m := openTestGdata(t, "test_battle_options_corrupt")
	if err := m.SaveObjectProp(optionsObject, optionsProperty, []byte("scale: [")); err != nil {
		t.Fatal(err)
	}

	om := NewOptionsManager(m)
	if err := om.Load(); err == nil {
		t.Error("Load() should fail on corrupt data")
	}
	if om.GetOptions().Scale != 3 {
		t.Errorf("Scale after corrupt load = %d, want default 3", om.GetOptions().Scale)
	}
}

// TestSetScaleClamp 测试缩放倍数范围
func TestSetScaleClamp(t *testing.T) {
	om := NewOptionsManager(nil)

	tests := []struct {
		input    int
		expected int
	}{
		{2, 2},
		{1, 1},
		{6, 6},
		{0, 1},
		{-3, 1},
		{7, 6},
	}

	for _, tt := range tests {
		om.SetScale(tt.input)
		if got := om.GetOptions().Scale; got != tt.expected {
			t.Errorf("SetScale(%d): got %d, want %d", tt.input, got, tt.expected)
		}
	}
}

// TestButtonOptions 测试全局选项到按钮参数的转换
func TestButtonOptions(t *testing.T) {
	tests := []struct {
		name string
		opts BattleOptions
		want ui.ButtonOptions
	}{
		{"默认", BattleOptions{}, ui.ButtonOptions{}},
		{"扩展反应射击", BattleOptions{ExtendedReactionFire: true}, ui.ButtonOptions{ExtendedSelection: true}},
		{"深海模式", BattleOptions{TFTDMode: true}, ui.ButtonOptions{Palette: ui.PaletteTFTD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.ButtonOptions(); got != tt.want {
				t.Errorf("ButtonOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
