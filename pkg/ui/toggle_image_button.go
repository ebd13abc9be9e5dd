package ui

import (
	"github.com/gonewx/battlehud/pkg/input"
	"github.com/gonewx/battlehud/pkg/surface"
)

// ToggleImageButton 战斗界面图像按钮
//
// 按钮本身不绘制任何内容：它把外部提供的基础图像当作按钮，
// 并预先生成"按下/选中/按下且选中/排除"四张派生图像，按状态选择绘制。
//
// 状态轴：
//   - inverted: 按下（左键，可加入按下互斥组）
//   - selected: 选中（右键，需启用扩展反应射击，可加入选中互斥组）
//   - excluded: 排除（中键，需启用扩展反应射击且 CanExclude）
//
// 使用流程：NewToggleImageButton → 写入基础图像 → SetColor → InitSurfaces → Blit
type ToggleImageButton struct {
	*input.InteractiveSurface

	opts  ButtonOptions
	color uint8

	group         *Group
	groupSelected *Group

	inverted      bool
	selected      bool
	excluded      bool
	canBeExcluded bool
	toggleMode    InversionType

	// variants 派生图像，由 InitSurfaces 整体重建，按钮独占
	variants  [variantCount]*surface.Surface
	generated [variantCount]bool
}

// NewToggleImageButton 创建指定尺寸和位置的图像按钮
func NewToggleImageButton(width, height, x, y int, opts ButtonOptions) *ToggleImageButton {
	return &ToggleImageButton{
		InteractiveSurface: input.NewInteractiveSurface(width, height, x, y),
		opts:               opts,
		toggleMode:         InvertNone,
	}
}

// Options 构造时的特性开关
func (b *ToggleImageButton) Options() ButtonOptions { return b.opts }

// SetColor 设置按钮颜色（派生图像的色阶基准）
//
// 修改颜色后需要重新调用 InitSurfaces
func (b *ToggleImageButton) SetColor(color uint8) { b.color = color }

// Color 按钮颜色
func (b *ToggleImageButton) Color() uint8 { return b.color }

// SetGroup 加入按下互斥组，nil 表示普通按钮
//
// 离开旧组时让出其槽位；如果新组的当前持有者就是本按钮，按钮立即显示为按下
func (b *ToggleImageButton) SetGroup(g *Group) {
	if g != nil && g.Kind() != GroupPress {
		panic("ui: SetGroup requires a press group")
	}
	if b.group != nil && b.group != g {
		b.group.Leave(b)
	}
	b.group = g
	if g != nil && g.Holder() == b {
		b.inverted = true
	}
}

// SetGroupSelected 加入选中互斥组，nil 表示不分组
func (b *ToggleImageButton) SetGroupSelected(g *Group) {
	if g != nil && g.Kind() != GroupSelect {
		panic("ui: SetGroupSelected requires a select group")
	}
	if b.groupSelected != nil && b.groupSelected != g {
		b.groupSelected.Leave(b)
	}
	b.groupSelected = g
	if g != nil && g.Holder() == b {
		b.ToggleSelected(true)
	}
}

// CanExclude 允许按钮被中键排除
func (b *ToggleImageButton) CanExclude() { b.canBeExcluded = true }

// Exclude 设置排除状态；未启用扩展反应射击时总是清除
func (b *ToggleImageButton) Exclude(exclude bool) {
	b.excluded = b.opts.ExtendedSelection && exclude
}

// Exclusion 是否处于排除状态
func (b *ToggleImageButton) Exclusion() bool { return b.excluded }

// Inverted 是否处于按下状态
func (b *ToggleImageButton) Inverted() bool { return b.inverted }

// Selected 是否处于选中状态
func (b *ToggleImageButton) Selected() bool { return b.selected }

// AllowToggleInversion 点击按下、再点击弹起
func (b *ToggleImageButton) AllowToggleInversion() { b.toggleMode = InvertToggle }

// AllowClickInversion 按下时反色、释放时恢复
func (b *ToggleImageButton) AllowClickInversion() { b.toggleMode = InvertClick }

// ToggleMode 当前反色触发方式
func (b *ToggleImageButton) ToggleMode() InversionType { return b.toggleMode }

// hardwareMode 深海模式下按钮都按硬件按钮行为工作
func (b *ToggleImageButton) hardwareMode() bool {
	return b.opts.Palette == PaletteTFTD
}

// Toggle 外部显式设置按下状态
//
// 只有硬件模式、切换模式或当前已按下的按钮才会响应，
// 避免把被动按钮误设为按下
func (b *ToggleImageButton) Toggle(press bool) {
	if b.hardwareMode() || b.toggleMode == InvertToggle || b.inverted {
		b.inverted = press
	}
}

// ToggleSelected 外部显式设置选中状态；未启用扩展反应射击时总是清除
func (b *ToggleImageButton) ToggleSelected(press bool) {
	b.selected = b.opts.ExtendedSelection && press
}

// Handle 分发鼠标动作到本按钮
func (b *ToggleImageButton) Handle(action *input.Action) bool {
	return b.InteractiveSurface.Handle(action, b)
}

// MousePress 按下处理
//
// 左键：分组按钮成为组持有者并按下（组内严格单选，再次按下不会弹起）；
// 普通按钮在硬件模式或 InvertClick 模式下按下。
// 右键：扩展反应射击启用时，对选中轴执行同样的逻辑。
// 中键：扩展反应射击启用且可排除时切换排除状态。
//
// 本地处理后总是转发给 InteractiveSurface 通知监听器
func (b *ToggleImageButton) MousePress(action *input.Action) {
	switch action.Button {
	case input.ButtonLeft:
		if b.group != nil {
			b.group.Press(b)
			b.inverted = true
		} else if b.pressLatches(action) && !b.inverted {
			b.inverted = true
		}

	case input.ButtonRight:
		if !b.opts.ExtendedSelection {
			b.selected = false
			break
		}
		if b.groupSelected != nil {
			b.groupSelected.Press(b)
			b.selected = true
		} else if b.pressLatches(action) && !b.selected {
			b.selected = true
		}

	case input.ButtonMiddle:
		if b.opts.ExtendedSelection && b.canBeExcluded {
			b.Exclude(!b.excluded)
		}
	}

	b.InteractiveSurface.MousePress(action)
}

// pressLatches 未分组按钮的按下是否生效
func (b *ToggleImageButton) pressLatches(action *input.Action) bool {
	return (b.hardwareMode() || b.toggleMode == InvertClick) &&
		b.IsButtonPressed(input.ButtonAny) &&
		b.IsButtonHandled(action.Button)
}

// MouseRelease 释放处理
//
// 仅当按钮处于按下状态且该按键有监听器时生效：
//   - 不属于任何组的按钮：同时清除按下和选中
//   - 分组按钮：只清除与释放按键对应的状态轴（左键-按下，右键-选中）
//
// 本地处理后总是转发给 InteractiveSurface 通知监听器
func (b *ToggleImageButton) MouseRelease(action *input.Action) {
	if b.inverted && b.IsButtonHandled(action.Button) {
		if b.group == nil && b.groupSelected == nil {
			b.inverted = false
			b.selected = false
		} else {
			switch action.Button {
			case input.ButtonLeft:
				b.inverted = false
			case input.ButtonRight:
				b.selected = false
			}
		}
	}

	b.InteractiveSurface.MouseRelease(action)
}

// InitSurfaces 根据基础图像和颜色生成派生图像
//
// 必须在基础图像写入后调用一次；基础图像或颜色变化后需再次调用。
// 每次调用都会释放旧的派生图像并整体重建。
func (b *ToggleImageButton) InitSurfaces() {
	b.releaseSurfaces()

	b.variants = generateVariants(b.Surface, b.color, b.opts.Palette)
	for i := range b.generated {
		b.generated[i] = b.opts.Palette == PaletteStandard || Variant(i) == VariantInverted
	}
}

// VariantSurface 返回指定派生图像（InitSurfaces 之前为 nil）
func (b *ToggleImageButton) VariantSurface(v Variant) *surface.Surface {
	return b.variants[v]
}

// Initialized 是否已生成派生图像
func (b *ToggleImageButton) Initialized() bool {
	return b.variants[VariantInverted] != nil
}

// Blit 按当前状态把按钮绘制到目标表面
//
// 优先级：按下且选中 > 按下 > 选中 > 基础图像；排除状态额外叠加遮罩。
// 深海模式没有生成选中相关图像，选中时退回到按下图像或基础图像。
func (b *ToggleImageButton) Blit(target *surface.Surface) {
	if !b.Initialized() {
		panic("ui: ToggleImageButton.Blit called before InitSurfaces")
	}

	switch {
	case b.inverted && b.selected && b.generated[VariantInvertedSelected]:
		b.variants[VariantInvertedSelected].Blit(target)
	case b.inverted:
		b.variants[VariantInverted].Blit(target)
	case b.selected && b.generated[VariantSelected]:
		b.variants[VariantSelected].Blit(target)
	default:
		b.Surface.Blit(target)
	}

	if b.opts.ExtendedSelection && b.excluded && b.generated[VariantExcluded] {
		b.variants[VariantExcluded].Blit(target)
	}
}

// SetX 同时移动基础图像和全部派生图像
func (b *ToggleImageButton) SetX(x int) {
	b.Surface.SetX(x)
	for _, v := range b.variants {
		if v != nil {
			v.SetX(x)
		}
	}
}

// SetY 同时移动基础图像和全部派生图像
func (b *ToggleImageButton) SetY(y int) {
	b.Surface.SetY(y)
	for _, v := range b.variants {
		if v != nil {
			v.SetY(y)
		}
	}
}

// Destroy 释放派生图像，并让出按钮持有的组槽位
func (b *ToggleImageButton) Destroy() {
	b.releaseSurfaces()
	if b.group != nil {
		b.group.Leave(b)
	}
	if b.groupSelected != nil {
		b.groupSelected.Leave(b)
	}
}

func (b *ToggleImageButton) releaseSurfaces() {
	for i, v := range b.variants {
		v.Free()
		b.variants[i] = nil
		b.generated[i] = false
	}
}
