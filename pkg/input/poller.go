package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseInput 鼠标输入接口
// 用于依赖注入，支持测试时 mock
type MouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ebitenMouseInput Ebitengine 默认实现
type ebitenMouseInput struct{}

func (e *ebitenMouseInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (e *ebitenMouseInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (e *ebitenMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

// buttonMapping ebiten 按键到 MouseButton 的映射，顺序即同一帧内的分发顺序
var buttonMapping = []struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
	{ebiten.MouseButtonMiddle, ButtonMiddle},
}

// Poller 每帧轮询鼠标状态并生成 Action 列表
type Poller struct {
	mouseInput MouseInput
	actions    []Action
}

// NewPoller 创建使用 ebiten 输入的轮询器
func NewPoller() *Poller {
	return NewPollerWithInput(&ebitenMouseInput{})
}

// NewPollerWithInput 创建带自定义鼠标输入的轮询器（用于测试）
func NewPollerWithInput(mi MouseInput) *Poller {
	return &Poller{mouseInput: mi}
}

// Poll 返回本帧产生的鼠标动作
//
// 参数：
//   - scale: 窗口坐标到逻辑坐标的缩放倍数（<= 0 视为 1）
//
// 返回的切片在下一次 Poll 前有效。同一按键在同一帧内先报告按下再报告释放。
func (p *Poller) Poll(scale int) []Action {
	if scale <= 0 {
		scale = 1
	}
	x, y := p.mouseInput.CursorPosition()
	x, y = x/scale, y/scale

	p.actions = p.actions[:0]
	for _, m := range buttonMapping {
		if p.mouseInput.IsMouseButtonJustPressed(m.ebiten) {
			p.actions = append(p.actions, Action{Button: m.button, Type: MousePress, X: x, Y: y})
		}
		if p.mouseInput.IsMouseButtonJustReleased(m.ebiten) {
			p.actions = append(p.actions, Action{Button: m.button, Type: MouseRelease, X: x, Y: y})
		}
	}
	return p.actions
}
