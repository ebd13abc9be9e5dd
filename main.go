package main

import (
	"errors"
	"flag"
	"log"

	"github.com/gonewx/battlehud/pkg/config"
	"github.com/gonewx/battlehud/pkg/game"
	"github.com/gonewx/battlehud/pkg/input"
	"github.com/gonewx/battlehud/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	// 命令行参数（仅对本次运行生效，除非指定 -save）
	layoutPath = flag.String("layout", "", "按钮布局 YAML 文件（默认使用内嵌布局）")
	extended   = flag.Bool("extended", false, "启用扩展反应射击（右键选择、中键排除）")
	tftd       = flag.Bool("tftd", false, "深海风格按钮")
	scale      = flag.Int("scale", 0, "窗口缩放倍数 1~6（0 表示使用已保存的设置）")
	save       = flag.Bool("save", false, "把命令行选项保存为默认设置")
	verbose    = flag.Bool("verbose", false, "每帧输出按钮状态")
)

// Game represents the main game structure.
// It implements the ebiten.Game interface to provide the core game loop.
type Game struct {
	sceneManager *game.SceneManager
	hud          *scenes.BattleHUDScene
	width        int
	height       int
	scale        int
}

// Update updates the game logic.
// This method is called every tick (typically 60 times per second).
func (g *Game) Update() error {
	g.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	if *verbose {
		log.Printf("[Game] %s", g.hud)
	}
	return nil
}

// Draw renders the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sceneManager.Draw(screen)
}

// Layout returns the game's scaled screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * g.scale, g.height * g.scale
}

func main() {
	flag.Parse()

	// 打开跨平台存储；失败时降级为仅内存选项
	gdataManager, err := gdata.Open(gdata.Config{AppName: "battlehud"})
	if err != nil {
		log.Printf("[Main] Warning: gdata unavailable: %v (options will not persist)", err)
		gdataManager = nil
	}
	optionsManager := game.NewOptionsManager(gdataManager)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "extended":
			optionsManager.SetExtendedReactionFire(*extended)
		case "tftd":
			optionsManager.SetTFTDMode(*tftd)
		case "scale":
			optionsManager.SetScale(*scale)
		}
	})
	if *save {
		if err := optionsManager.Save(); err != nil {
			log.Printf("[Main] Warning: failed to save options: %v", err)
		}
	}
	options := optionsManager.GetOptions()

	layout, err := loadLayout(*layoutPath)
	if err != nil {
		log.Fatal(err)
	}

	hud, err := scenes.NewBattleHUDScene(layout, options, input.NewPoller())
	if err != nil {
		log.Fatal(err)
	}
	defer hud.Destroy()

	sm := game.NewSceneManager()
	sm.SwitchTo(hud)

	g := &Game{
		sceneManager: sm,
		hud:          hud,
		width:        layout.Screen.Width,
		height:       layout.Screen.Height,
		scale:        options.Scale,
	}

	ebiten.SetWindowSize(g.width*g.scale, g.height*g.scale)
	ebiten.SetWindowTitle("Battlescape HUD")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadLayout(path string) (*config.HUDLayout, error) {
	if path == "" {
		return config.DefaultHUDLayout()
	}
	return config.LoadHUDLayout(path)
}
