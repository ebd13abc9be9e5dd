package ui

// GroupKind 分组协调的状态轴
type GroupKind int

const (
	// GroupPress 按下互斥组（储备时间单位）
	GroupPress GroupKind = iota
	// GroupSelect 选中互斥组（扩展反应射击类型）
	GroupSelect
)

// Group 互斥按钮组
//
// 组持有唯一的"当前持有者"槽位；按钮只弱引用组，
// 不拥有组或组内其他按钮。
type Group struct {
	kind   GroupKind
	holder *ToggleImageButton
}

// NewGroup 创建指定状态轴的空组
func NewGroup(kind GroupKind) *Group {
	return &Group{kind: kind}
}

// Kind 组的状态轴
func (g *Group) Kind() GroupKind { return g.kind }

// Holder 当前持有者，可能为 nil
func (g *Group) Holder() *ToggleImageButton { return g.holder }

// Set 直接指定持有者，不通知任何按钮
//
// 用于场景初始化：先 Set，再对按钮调用 SetGroup/SetGroupSelected 同步显示状态
func (g *Group) Set(b *ToggleImageButton) { g.holder = b }

// Press 让 b 成为持有者，并通知之前的持有者清除状态
func (g *Group) Press(b *ToggleImageButton) {
	if prev := g.holder; prev != nil {
		switch g.kind {
		case GroupPress:
			prev.Toggle(false)
		case GroupSelect:
			prev.ToggleSelected(false)
		}
	}
	g.holder = b
}

// Leave 如果 b 是持有者则清空槽位
func (g *Group) Leave(b *ToggleImageButton) {
	if g.holder == b {
		g.holder = nil
	}
}
