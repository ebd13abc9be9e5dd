// Package input 提供鼠标动作抽象和可交互表面基类
package input

import "fmt"

// MouseButton 鼠标按键
//
// 0 保留为"任意按键"，用于监听器注册和按下状态查询
type MouseButton uint8

const (
	// ButtonAny 任意按键（仅用于查询和注册，不会出现在 Action 中）
	ButtonAny MouseButton = iota
	// ButtonLeft 左键（主键）
	ButtonLeft
	// ButtonMiddle 中键
	ButtonMiddle
	// ButtonRight 右键（副键）
	ButtonRight
)

// String 返回按键名称
func (b MouseButton) String() string {
	switch b {
	case ButtonAny:
		return "any"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button%d", uint8(b))
	}
}

// ActionType 动作类型
type ActionType int

const (
	// MousePress 按键按下
	MousePress ActionType = iota
	// MouseRelease 按键释放
	MouseRelease
)

// Action 一次鼠标动作
// 坐标为逻辑屏幕坐标（已除去缩放）
type Action struct {
	Button MouseButton
	Type   ActionType
	X, Y   int
}

// String 返回便于日志输出的描述
func (a *Action) String() string {
	kind := "press"
	if a.Type == MouseRelease {
		kind = "release"
	}
	return fmt.Sprintf("%s %s at (%d, %d)", a.Button, kind, a.X, a.Y)
}
