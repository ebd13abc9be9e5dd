package game

import (
	"fmt"
	"log"

	"github.com/gonewx/battlehud/pkg/ui"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BattleOptions 战斗界面全局选项
type BattleOptions struct {
	// ExtendedReactionFire 扩展反应射击：右键选择反应射击类型，中键排除
	ExtendedReactionFire bool `yaml:"extendedReactionFire"`
	// TFTDMode 深海风格按钮（查表换色，硬件按钮行为）
	TFTDMode bool `yaml:"tftdMode"`
	// Scale 窗口缩放倍数 1 ~ 6
	Scale int `yaml:"scale"`
}

// DefaultOptions 返回默认选项
func DefaultOptions() *BattleOptions {
	return &BattleOptions{
		ExtendedReactionFire: false,
		TFTDMode:             false,
		Scale:                3,
	}
}

// ButtonOptions 把全局选项转换为按钮构造参数
func (o *BattleOptions) ButtonOptions() ui.ButtonOptions {
	opts := ui.ButtonOptions{ExtendedSelection: o.ExtendedReactionFire}
	if o.TFTDMode {
		opts.Palette = ui.PaletteTFTD
	}
	return opts
}

// 存储路径常量
const (
	optionsObject   = "options"
	optionsProperty = "battle"

	minScale = 1
	maxScale = 6
)

// OptionsManager 选项管理器
// 负责战斗选项的加载、保存和内存管理
type OptionsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	options      *BattleOptions // 当前选项
}

// NewOptionsManager 创建新的选项管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存选项）
//
// 加载失败不是致命错误，会记录警告并使用默认选项
func NewOptionsManager(gdataManager *gdata.Manager) *OptionsManager {
	om := &OptionsManager{
		gdataManager: gdataManager,
		options:      DefaultOptions(),
	}

	if err := om.Load(); err != nil {
		log.Printf("[OptionsManager] Warning: Failed to load options: %v (using defaults)", err)
	}
	return om
}

// Load 从 gdata 加载选项
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认选项
func (om *OptionsManager) Load() error {
	if om.gdataManager == nil {
		om.options = DefaultOptions()
		return nil
	}

	if !om.gdataManager.ObjectPropExists(optionsObject, optionsProperty) {
		om.options = DefaultOptions()
		return nil
	}

	data, err := om.gdataManager.LoadObjectProp(optionsObject, optionsProperty)
	if err != nil {
		om.options = DefaultOptions()
		return fmt.Errorf("failed to load options: %w", err)
	}

	// 以默认值为底，缺失字段保持默认
	loaded := DefaultOptions()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		om.options = DefaultOptions()
		return fmt.Errorf("failed to unmarshal options: %w", err)
	}
	loaded.Scale = clampScale(loaded.Scale)

	om.options = loaded
	log.Printf("[OptionsManager] Options loaded: extended=%v tftd=%v scale=%d",
		loaded.ExtendedReactionFire, loaded.TFTDMode, loaded.Scale)
	return nil
}

// Save 保存选项到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (om *OptionsManager) Save() error {
	if om.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(om.options)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	if err := om.gdataManager.SaveObjectProp(optionsObject, optionsProperty, data); err != nil {
		return fmt.Errorf("failed to save options: %w", err)
	}

	log.Printf("[OptionsManager] Options saved")
	return nil
}

// GetOptions 获取当前选项
func (om *OptionsManager) GetOptions() *BattleOptions {
	return om.options
}

// SetExtendedReactionFire 设置扩展反应射击开关
//
// 注意：仅修改内存中的选项，需调用 Save() 持久化；已创建的按钮不受影响
func (om *OptionsManager) SetExtendedReactionFire(enabled bool) {
	om.options.ExtendedReactionFire = enabled
}

// SetTFTDMode 设置深海风格按钮
func (om *OptionsManager) SetTFTDMode(enabled bool) {
	om.options.TFTDMode = enabled
}

// SetScale 设置窗口缩放倍数，限制在 1 ~ 6
func (om *OptionsManager) SetScale(scale int) {
	om.options.Scale = clampScale(scale)
}

func clampScale(scale int) int {
	if scale < minScale {
		return minScale
	}
	if scale > maxScale {
		return maxScale
	}
	return scale
}
