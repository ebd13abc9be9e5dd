package input

import (
	"image"

	"github.com/gonewx/battlehud/pkg/surface"
)

// ActionHandler 动作回调
type ActionHandler func(action *Action)

// MouseHandler 可响应鼠标按下/释放的控件
//
// 控件通过实现此接口插入自己的状态机逻辑，
// 并在处理完后调用 InteractiveSurface 的同名方法通知监听器。
type MouseHandler interface {
	MousePress(action *Action)
	MouseRelease(action *Action)
}

// InteractiveSurface 可交互表面
//
// 职责：
//   - 命中检测：只处理落在表面区域内的按下
//   - 维护当前按下的按键集合（按下后移出区域释放也能收到）
//   - 按键级监听器：按下、释放、点击（在区域内按下并释放）
//
// 控件（如按钮）嵌入此类型并覆盖 MousePress/MouseRelease
type InteractiveSurface struct {
	*surface.Surface

	// pressed 当前按住的按键位掩码（bit n 对应 MouseButton n）
	pressed uint8

	press   map[MouseButton][]ActionHandler
	release map[MouseButton][]ActionHandler
	click   map[MouseButton][]ActionHandler
}

// NewInteractiveSurface 创建指定尺寸和位置的可交互表面
func NewInteractiveSurface(width, height, x, y int) *InteractiveSurface {
	return &InteractiveSurface{
		Surface: surface.New(width, height, x, y),
		press:   make(map[MouseButton][]ActionHandler),
		release: make(map[MouseButton][]ActionHandler),
		click:   make(map[MouseButton][]ActionHandler),
	}
}

// OnMousePress 注册按下监听器，button 为 ButtonAny 时响应所有按键
func (s *InteractiveSurface) OnMousePress(button MouseButton, handler ActionHandler) {
	s.press[button] = append(s.press[button], handler)
}

// OnMouseRelease 注册释放监听器
func (s *InteractiveSurface) OnMouseRelease(button MouseButton, handler ActionHandler) {
	s.release[button] = append(s.release[button], handler)
}

// OnMouseClick 注册点击监听器（区域内按下后在区域内释放）
func (s *InteractiveSurface) OnMouseClick(button MouseButton, handler ActionHandler) {
	s.click[button] = append(s.click[button], handler)
}

// IsButtonPressed 查询按键是否按住，ButtonAny 表示任意按键
func (s *InteractiveSurface) IsButtonPressed(button MouseButton) bool {
	if button == ButtonAny {
		return s.pressed != 0
	}
	return s.pressed&(1<<button) != 0
}

// IsButtonHandled 查询该按键是否有监听器
//
// 注册在 ButtonAny 上的监听器对所有按键生效
func (s *InteractiveSurface) IsButtonHandled(button MouseButton) bool {
	if s.hasHandlers(ButtonAny) {
		return true
	}
	return button != ButtonAny && s.hasHandlers(button)
}

func (s *InteractiveSurface) hasHandlers(button MouseButton) bool {
	return len(s.press[button]) > 0 || len(s.release[button]) > 0 || len(s.click[button]) > 0
}

// Contains 判断逻辑坐标是否落在表面区域内
func (s *InteractiveSurface) Contains(x, y int) bool {
	return image.Pt(x, y).In(s.Bounds())
}

// Handle 分发一次鼠标动作
//
// 参数：
//   - action: 鼠标动作
//   - widget: 实际处理动作的控件（通常是嵌入本类型的控件自身）
//
// 返回：
//   - bool: 动作是否被本表面消费
func (s *InteractiveSurface) Handle(action *Action, widget MouseHandler) bool {
	switch action.Type {
	case MousePress:
		if !s.Contains(action.X, action.Y) {
			return false
		}
		s.pressed |= 1 << action.Button
		widget.MousePress(action)
		return true

	case MouseRelease:
		if !s.IsButtonPressed(action.Button) {
			return false
		}
		s.pressed &^= 1 << action.Button
		widget.MouseRelease(action)
		if s.Contains(action.X, action.Y) {
			s.notify(s.click, action)
		}
		return true
	}
	return false
}

// MousePress 通知按下监听器
func (s *InteractiveSurface) MousePress(action *Action) {
	s.notify(s.press, action)
}

// MouseRelease 通知释放监听器
func (s *InteractiveSurface) MouseRelease(action *Action) {
	s.notify(s.release, action)
}

func (s *InteractiveSurface) notify(handlers map[MouseButton][]ActionHandler, action *Action) {
	for _, h := range handlers[ButtonAny] {
		h(action)
	}
	for _, h := range handlers[action.Button] {
		h(action)
	}
}
