package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed battle_hud.yaml
var defaultHUDLayout []byte

// 按钮反色方式（YAML 中的 mode 字段）
const (
	ModeNone   = "none"
	ModeClick  = "click"
	ModeToggle = "toggle"
)

// ScreenConfig 逻辑屏幕配置
type ScreenConfig struct {
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	Background uint8 `yaml:"background"` // 背景填充的调色板索引
}

// ButtonConfig 单个按钮的布局配置
type ButtonConfig struct {
	ID          string `yaml:"id"`
	Sprite      string `yaml:"sprite"`      // 基础图像名称
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Color       uint8  `yaml:"color"`       // 派生图像的色阶基准
	Mode        string `yaml:"mode"`        // none / click / toggle
	Group       string `yaml:"group"`       // 按下互斥组名称，可选
	SelectGroup string `yaml:"selectGroup"` // 选中互斥组名称，可选
	Exclude     bool   `yaml:"exclude"`     // 是否允许中键排除
}

// HUDLayout 战斗界面布局
type HUDLayout struct {
	Screen  ScreenConfig   `yaml:"screen"`
	Buttons []ButtonConfig `yaml:"buttons"`
	// Initial 各组的初始持有者：组名 -> 按钮 ID
	Initial map[string]string `yaml:"initial"`
}

// DefaultHUDLayout 返回内嵌的默认布局
func DefaultHUDLayout() (*HUDLayout, error) {
	layout, err := ParseHUDLayout(defaultHUDLayout)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded HUD layout: %w", err)
	}
	return layout, nil
}

// LoadHUDLayout 从 YAML 文件加载布局
func LoadHUDLayout(path string) (*HUDLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HUD layout file %s: %w", path, err)
	}

	layout, err := ParseHUDLayout(data)
	if err != nil {
		return nil, fmt.Errorf("invalid HUD layout in %s: %w", path, err)
	}
	return layout, nil
}

// ParseHUDLayout 解析并校验 YAML 布局数据
func ParseHUDLayout(data []byte) (*HUDLayout, error) {
	var layout HUDLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse HUD layout YAML: %w", err)
	}

	if err := validateHUDLayout(&layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// validateHUDLayout 校验布局配置
func validateHUDLayout(layout *HUDLayout) error {
	if layout.Screen.Width <= 0 || layout.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", layout.Screen.Width, layout.Screen.Height)
	}
	if len(layout.Buttons) == 0 {
		return fmt.Errorf("at least one button is required")
	}

	ids := make(map[string]ButtonConfig, len(layout.Buttons))
	for i, b := range layout.Buttons {
		if b.ID == "" {
			return fmt.Errorf("button %d: id is required", i)
		}
		if _, dup := ids[b.ID]; dup {
			return fmt.Errorf("button %d: duplicate id %q", i, b.ID)
		}
		ids[b.ID] = b

		if b.Sprite == "" {
			return fmt.Errorf("button %q: sprite is required", b.ID)
		}
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("button %q: size must be positive, got %dx%d", b.ID, b.Width, b.Height)
		}
		switch b.Mode {
		case "", ModeNone, ModeClick, ModeToggle:
		default:
			return fmt.Errorf("button %q: mode must be one of: none, click, toggle, got %q", b.ID, b.Mode)
		}
		if b.Group != "" && b.Group == b.SelectGroup {
			return fmt.Errorf("button %q: group and selectGroup must differ", b.ID)
		}
	}

	for group, id := range layout.Initial {
		b, ok := ids[id]
		if !ok {
			return fmt.Errorf("initial[%s]: unknown button %q", group, id)
		}
		if b.Group != group && b.SelectGroup != group {
			return fmt.Errorf("initial[%s]: button %q is not a member of the group", group, id)
		}
	}
	return nil
}
