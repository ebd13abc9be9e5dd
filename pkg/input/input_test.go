package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockMouseInput 用于测试的 mock 鼠标输入
type mockMouseInput struct {
	mouseX, mouseY int
	justPressed    map[ebiten.MouseButton]bool
	justReleased   map[ebiten.MouseButton]bool
}

func (m *mockMouseInput) CursorPosition() (int, int) {
	return m.mouseX, m.mouseY
}

func (m *mockMouseInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return m.justPressed[button]
}

func (m *mockMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return m.justReleased[button]
}

// recordingWidget 记录收到的按下/释放，并转发给基类
type recordingWidget struct {
	*InteractiveSurface
	presses, releases []MouseButton
	pressedDuringPress bool
}

func (w *recordingWidget) MousePress(action *Action) {
	w.presses = append(w.presses, action.Button)
	w.pressedDuringPress = w.IsButtonPressed(action.Button)
	w.InteractiveSurface.MousePress(action)
}

func (w *recordingWidget) MouseRelease(action *Action) {
	w.releases = append(w.releases, action.Button)
	w.InteractiveSurface.MouseRelease(action)
}

func newRecordingWidget() *recordingWidget {
	return &recordingWidget{InteractiveSurface: NewInteractiveSurface(10, 10, 20, 20)}
}

// TestPoller_Poll 测试轮询器生成动作及坐标缩放
func TestPoller_Poll(t *testing.T) {
	mi := &mockMouseInput{
		mouseX: 50, mouseY: 42,
		justPressed:  map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true, ebiten.MouseButtonMiddle: true},
		justReleased: map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true},
	}
	p := NewPollerWithInput(mi)

	actions := p.Poll(2)

	want := []Action{
		{Button: ButtonLeft, Type: MousePress, X: 25, Y: 21},
		{Button: ButtonLeft, Type: MouseRelease, X: 25, Y: 21},
		{Button: ButtonMiddle, Type: MousePress, X: 25, Y: 21},
	}
	if len(actions) != len(want) {
		t.Fatalf("Poll() returned %d actions, want %d", len(actions), len(want))
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("action[%d] = %v, want %v", i, &actions[i], &want[i])
		}
	}

	// 无输入时返回空列表
	mi.justPressed = nil
	mi.justReleased = nil
	if got := p.Poll(0); len(got) != 0 {
		t.Errorf("Poll() with no input returned %d actions", len(got))
	}
}

// TestInteractiveSurface_IsButtonHandled 测试监听器决定按键是否被处理
func TestInteractiveSurface_IsButtonHandled(t *testing.T) {
	tests := []struct {
		name     string
		register MouseButton
		query    MouseButton
		expected bool
	}{
		{"左键监听-查询左键", ButtonLeft, ButtonLeft, true},
		{"左键监听-查询右键", ButtonLeft, ButtonRight, false},
		{"任意键监听-查询右键", ButtonAny, ButtonRight, true},
		{"右键监听-查询任意键", ButtonRight, ButtonAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInteractiveSurface(4, 4, 0, 0)
			s.OnMouseClick(tt.register, func(*Action) {})
			if got := s.IsButtonHandled(tt.query); got != tt.expected {
				t.Errorf("IsButtonHandled(%v) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}

	if NewInteractiveSurface(4, 4, 0, 0).IsButtonHandled(ButtonLeft) {
		t.Error("surface without listeners should not handle any button")
	}
}

// TestInteractiveSurface_Handle 测试命中检测、按下状态和点击事件
func TestInteractiveSurface_Handle(t *testing.T) {
	w := newRecordingWidget()
	var pressed, released, clicked int
	w.OnMousePress(ButtonLeft, func(*Action) { pressed++ })
	w.OnMouseRelease(ButtonAny, func(*Action) { released++ })
	w.OnMouseClick(ButtonLeft, func(*Action) { clicked++ })

	// 区域外按下：不消费
	if w.Handle(&Action{Button: ButtonLeft, Type: MousePress, X: 0, Y: 0}, w) {
		t.Error("press outside bounds should not be consumed")
	}

	// 区域内按下
	if !w.Handle(&Action{Button: ButtonLeft, Type: MousePress, X: 25, Y: 25}, w) {
		t.Fatal("press inside bounds should be consumed")
	}
	if !w.pressedDuringPress {
		t.Error("IsButtonPressed should be true while handling the press")
	}
	if !w.IsButtonPressed(ButtonAny) {
		t.Error("IsButtonPressed(ButtonAny) = false after press")
	}

	// 区域内释放：触发点击
	w.Handle(&Action{Button: ButtonLeft, Type: MouseRelease, X: 26, Y: 26}, w)
	if w.IsButtonPressed(ButtonLeft) {
		t.Error("button still pressed after release")
	}

	// 再次按下，移出区域后释放：不触发点击
	w.Handle(&Action{Button: ButtonLeft, Type: MousePress, X: 25, Y: 25}, w)
	w.Handle(&Action{Button: ButtonLeft, Type: MouseRelease, X: 100, Y: 100}, w)

	// 未按下的释放：不消费
	if w.Handle(&Action{Button: ButtonRight, Type: MouseRelease, X: 25, Y: 25}, w) {
		t.Error("release without press should not be consumed")
	}

	if pressed != 2 || released != 2 || clicked != 1 {
		t.Errorf("listener counts press=%d release=%d click=%d, want 2/2/1", pressed, released, clicked)
	}
	if len(w.presses) != 2 || len(w.releases) != 2 {
		t.Errorf("widget saw %d presses, %d releases, want 2/2", len(w.presses), len(w.releases))
	}
}
