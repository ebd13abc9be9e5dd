// render_buttons 把布局中每个按钮的基础图像和派生图像导出为 PNG
//
// 用法：
//
//	go run ./cmd/render_buttons -out /tmp/buttons [-layout hud.yaml] [-tftd] [-scale 4]
//
// 每个按钮输出一张横向拼接图：基础 | 按下 | 选中 | 按下且选中 | 基础+排除
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/battlehud/pkg/config"
	"github.com/gonewx/battlehud/pkg/sprites"
	"github.com/gonewx/battlehud/pkg/surface"
	"github.com/gonewx/battlehud/pkg/ui"
	"golang.org/x/image/draw"
)

var (
	outDir     = flag.String("out", "button_variants", "输出目录")
	layoutPath = flag.String("layout", "", "按钮布局 YAML 文件（默认使用内嵌布局）")
	tftd       = flag.Bool("tftd", false, "使用深海风格查表")
	scale      = flag.Int("scale", 4, "输出放大倍数")
)

func main() {
	flag.Parse()

	layout, err := config.DefaultHUDLayout()
	if *layoutPath != "" {
		layout, err = config.LoadHUDLayout(*layoutPath)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	opts := ui.ButtonOptions{ExtendedSelection: true}
	if *tftd {
		opts.Palette = ui.PaletteTFTD
	}

	palette := surface.BattlescapePalette()
	for _, bc := range layout.Buttons {
		path := filepath.Join(*outDir, bc.ID+".png")
		if err := renderButton(bc, opts, palette, path); err != nil {
			log.Fatalf("[RenderButtons] %s: %v", bc.ID, err)
		}
		log.Printf("[RenderButtons] Wrote %s", path)
	}
}

// renderButton 依次切换按钮状态并绘制到一张横条上
func renderButton(bc config.ButtonConfig, opts ui.ButtonOptions, palette color.Palette, path string) error {
	img, err := sprites.Button(bc.Sprite, bc.Width, bc.Height, palette)
	if err != nil {
		return err
	}

	b := ui.NewToggleImageButton(bc.Width, bc.Height, 0, 0, opts)
	defer b.Destroy()
	b.SetPalette(palette)
	b.Load(img)
	b.SetColor(bc.Color)
	b.AllowToggleInversion()
	b.CanExclude()
	b.InitSurfaces()

	states := []struct{ inverted, selected, excluded bool }{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{true, true, false},
		{false, false, true},
	}

	stride := bc.Width + 1
	strip := surface.New(stride*len(states), bc.Height, 0, 0)
	strip.SetPalette(palette)
	for i, st := range states {
		b.Toggle(st.inverted)
		b.ToggleSelected(st.selected)
		b.Exclude(st.excluded)
		b.SetX(i * stride)
		b.Blit(strip)
	}

	return writeScaledPNG(path, strip.RGBA(), *scale)
}

// writeScaledPNG 最近邻放大后写入 PNG
func writeScaledPNG(path string, src *image.RGBA, factor int) (err error) {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
