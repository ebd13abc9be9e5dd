// Package ui 实现战斗界面的图像按钮控件
package ui

// PaletteStrategy 按钮"按下"图像的调色板重映射策略
type PaletteStrategy int

const (
	// PaletteStandard 标准模式：在亮度色阶内按按钮颜色做反色
	PaletteStandard PaletteStrategy = iota
	// PaletteTFTD 深海模式：使用固定的颜色查找表，按钮同时按硬件按钮行为工作
	PaletteTFTD
)

// String 返回策略名称
func (p PaletteStrategy) String() string {
	if p == PaletteTFTD {
		return "tftd"
	}
	return "standard"
}

// ButtonOptions 按钮构造时的全局特性开关
type ButtonOptions struct {
	// ExtendedSelection 扩展反应射击：启用右键选中和中键排除
	ExtendedSelection bool
	// Palette 调色板重映射策略
	Palette PaletteStrategy
}

// InversionType 按钮的反色触发方式
type InversionType int

const (
	// InvertNone 不因鼠标按下而反色（只能通过分组或 Toggle 改变）
	InvertNone InversionType = iota
	// InvertClick 按下时反色，释放时恢复
	InvertClick
	// InvertToggle 点击按下，再点击弹起（由外部调用 Toggle 维护）
	InvertToggle
)
