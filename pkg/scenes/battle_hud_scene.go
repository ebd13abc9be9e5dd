// Package scenes 包含游戏场景实现
package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/battlehud/pkg/config"
	"github.com/gonewx/battlehud/pkg/game"
	"github.com/gonewx/battlehud/pkg/input"
	"github.com/gonewx/battlehud/pkg/sprites"
	"github.com/gonewx/battlehud/pkg/surface"
	"github.com/gonewx/battlehud/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// 场景中使用的按钮 ID 和组名
const (
	reserveGroup  = "reserve"
	reactionGroup = "reaction"

	kneelButton     = "kneel"
	levelUpButton   = "level_up"
	levelDownButton = "level_down"

	maxMapLevel = 3
)

// BattleHUDScene 战斗界面按钮栏场景
//
// 职责：
//   - 按布局配置创建按钮、生成派生图像、连接互斥组
//   - 每帧把鼠标动作分发给按钮
//   - 把按钮合成到逻辑屏幕表面，再缩放呈现到 ebiten 屏幕
type BattleHUDScene struct {
	layout  *config.HUDLayout
	options *game.BattleOptions

	poller    *input.Poller
	presenter *surface.Presenter
	screen    *surface.Surface

	buttons []*ui.ToggleImageButton
	byID    map[string]*ui.ToggleImageButton
	idOf    map[*ui.ToggleImageButton]string
	groups  map[string]*ui.Group

	// 战斗状态（由按钮回调驱动）
	reserve  string
	reaction string
	excluded map[string]bool
	kneeling bool
	mapLevel int
}

// NewBattleHUDScene 创建战斗界面场景
//
// 参数：
//   - layout: 按钮布局
//   - options: 全局战斗选项（决定按钮特性开关）
//   - poller: 鼠标动作轮询器
func NewBattleHUDScene(layout *config.HUDLayout, options *game.BattleOptions, poller *input.Poller) (*BattleHUDScene, error) {
	palette := surface.BattlescapePalette()

	s := &BattleHUDScene{
		layout:    layout,
		options:   options,
		poller:    poller,
		presenter: surface.NewPresenter(),
		screen:    surface.New(layout.Screen.Width, layout.Screen.Height, 0, 0),
		byID:      make(map[string]*ui.ToggleImageButton),
		idOf:      make(map[*ui.ToggleImageButton]string),
		groups:    make(map[string]*ui.Group),
		excluded:  make(map[string]bool),
	}
	s.screen.SetPalette(palette)

	for _, bc := range layout.Buttons {
		if bc.Group != "" {
			s.ensureGroup(bc.Group, ui.GroupPress)
		}
		if bc.SelectGroup != "" {
			s.ensureGroup(bc.SelectGroup, ui.GroupSelect)
		}
	}

	for _, bc := range layout.Buttons {
		b, err := s.createButton(bc, palette)
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("failed to create button %q: %w", bc.ID, err)
		}
		s.buttons = append(s.buttons, b)
		s.byID[bc.ID] = b
		s.idOf[b] = bc.ID
	}

	// 先确定初始持有者，再加入组同步显示状态
	for group, id := range layout.Initial {
		if g, ok := s.groups[group]; ok {
			g.Set(s.byID[id])
		}
	}
	s.reserve = layout.Initial[reserveGroup]
	if options.ExtendedReactionFire {
		s.reaction = layout.Initial[reactionGroup]
	}

	for _, bc := range layout.Buttons {
		b := s.byID[bc.ID]
		if bc.Group != "" {
			b.SetGroup(s.groups[bc.Group])
		}
		if bc.SelectGroup != "" {
			b.SetGroupSelected(s.groups[bc.SelectGroup])
		}
	}

	log.Printf("[BattleHUD] Created %d buttons (extended=%v, palette=%s)",
		len(s.buttons), options.ExtendedReactionFire, options.ButtonOptions().Palette)
	return s, nil
}

func (s *BattleHUDScene) ensureGroup(name string, kind ui.GroupKind) {
	if g, ok := s.groups[name]; ok {
		if g.Kind() != kind {
			log.Printf("[BattleHUD] Warning: group %q used as both press and select group", name)
		}
		return
	}
	s.groups[name] = ui.NewGroup(kind)
}

// createButton 按配置创建按钮并生成派生图像
func (s *BattleHUDScene) createButton(bc config.ButtonConfig, palette color.Palette) (*ui.ToggleImageButton, error) {
	img, err := sprites.Button(bc.Sprite, bc.Width, bc.Height, palette)
	if err != nil {
		return nil, err
	}

	b := ui.NewToggleImageButton(bc.Width, bc.Height, bc.X, bc.Y, s.options.ButtonOptions())
	b.SetPalette(palette)
	b.Load(img)

	b.SetColor(bc.Color)
	switch bc.Mode {
	case config.ModeClick:
		b.AllowClickInversion()
	case config.ModeToggle:
		b.AllowToggleInversion()
	}
	if bc.Exclude {
		b.CanExclude()
	}
	b.InitSurfaces()

	s.bindHandlers(bc, b)
	return b, nil
}

// bindHandlers 注册按钮回调
func (s *BattleHUDScene) bindHandlers(bc config.ButtonConfig, b *ui.ToggleImageButton) {
	id := bc.ID

	switch {
	case bc.Group == reserveGroup:
		// 组在按下时就已切换持有者，状态随按下提交；
		// 分组按钮释放时会清除对应状态轴，释放回调里重新锁定（释放位置不限）
		b.OnMousePress(input.ButtonLeft, func(*input.Action) {
			s.reserve = id
			log.Printf("[BattleHUD] Reserve time units: %s", id)
		})
		b.OnMouseRelease(input.ButtonLeft, func(*input.Action) { b.Toggle(true) })
		if s.options.ExtendedReactionFire {
			b.OnMousePress(input.ButtonRight, func(*input.Action) {
				s.reaction = id
				log.Printf("[BattleHUD] Reaction fire type: %s", id)
			})
			b.OnMouseRelease(input.ButtonRight, func(*input.Action) { b.ToggleSelected(true) })
			if bc.Exclude {
				b.OnMousePress(input.ButtonMiddle, func(*input.Action) {
					s.excluded[id] = b.Exclusion()
					log.Printf("[BattleHUD] Exclude %s: %v", id, b.Exclusion())
				})
			}
		}

	case id == kneelButton:
		// 释放总会清除按下状态，先按当前跪姿恢复显示，区域内点击再切换
		b.OnMouseRelease(input.ButtonLeft, func(*input.Action) { b.Toggle(s.kneeling) })
		b.OnMouseClick(input.ButtonLeft, func(*input.Action) {
			s.kneeling = !s.kneeling
			b.Toggle(s.kneeling)
			log.Printf("[BattleHUD] Kneeling: %v", s.kneeling)
		})

	case id == levelUpButton:
		b.OnMouseClick(input.ButtonLeft, func(*input.Action) { s.changeLevel(1) })

	case id == levelDownButton:
		b.OnMouseClick(input.ButtonLeft, func(*input.Action) { s.changeLevel(-1) })

	default:
		b.OnMouseClick(input.ButtonLeft, func(*input.Action) {
			log.Printf("[BattleHUD] Button clicked: %s", id)
		})
	}
}

func (s *BattleHUDScene) changeLevel(delta int) {
	level := s.mapLevel + delta
	if level < 0 || level > maxMapLevel {
		return
	}
	s.mapLevel = level
	log.Printf("[BattleHUD] Map level: %d", level)
}

// Update 分发本帧的鼠标动作
func (s *BattleHUDScene) Update(deltaTime float64) {
	for _, action := range s.poller.Poll(s.options.Scale) {
		s.HandleAction(&action)
	}
}

// HandleAction 把一次鼠标动作分发给按钮
//
// 按下只交给第一个命中的按钮；释放交给所有按住该键的按钮
func (s *BattleHUDScene) HandleAction(action *input.Action) {
	for _, b := range s.buttons {
		if b.Handle(action) && action.Type == input.MousePress {
			return
		}
	}
}

// Compose 把背景和所有按钮合成到逻辑屏幕表面
func (s *BattleHUDScene) Compose() *surface.Surface {
	s.screen.Lock()
	s.screen.Fill(s.layout.Screen.Background)
	s.screen.Unlock()

	for _, b := range s.buttons {
		b.Blit(s.screen)
	}
	return s.screen
}

// Draw 合成并缩放呈现到 ebiten 屏幕
func (s *BattleHUDScene) Draw(screen *ebiten.Image) {
	s.presenter.Present(screen, s.Compose(), float64(s.options.Scale))
}

// Button 按 ID 查找按钮
func (s *BattleHUDScene) Button(id string) *ui.ToggleImageButton {
	return s.byID[id]
}

// Buttons 按布局顺序返回所有按钮
func (s *BattleHUDScene) Buttons() []*ui.ToggleImageButton {
	return s.buttons
}

// Reserve 当前储备时间单位按钮 ID
func (s *BattleHUDScene) Reserve() string { return s.reserve }

// Reaction 当前反应射击类型按钮 ID（未启用扩展反应射击时为空）
func (s *BattleHUDScene) Reaction() string { return s.reaction }

// Excluded 指定反应射击类型是否被排除
func (s *BattleHUDScene) Excluded(id string) bool { return s.excluded[id] }

// Kneeling 是否跪下
func (s *BattleHUDScene) Kneeling() bool { return s.kneeling }

// MapLevel 当前地图层
func (s *BattleHUDScene) MapLevel() int { return s.mapLevel }

// String 返回当前状态摘要，用于调试输出
func (s *BattleHUDScene) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "reserve=%s reaction=%s kneel=%v level=%d", s.reserve, s.reaction, s.kneeling, s.mapLevel)
	for _, b := range s.buttons {
		if b.Inverted() || b.Selected() || b.Exclusion() {
			fmt.Fprintf(&sb, " [%s inv=%v sel=%v ex=%v]", s.idOf[b], b.Inverted(), b.Selected(), b.Exclusion())
		}
	}
	return sb.String()
}

// Destroy 释放所有按钮
func (s *BattleHUDScene) Destroy() {
	for _, b := range s.buttons {
		b.Destroy()
	}
	s.buttons = nil
}
