// Package sprites 程序化生成战斗界面按钮的基础图像
//
// 不依赖外部美术资源：每个按钮由边框、底色和一个小图标组成，
// 图标用字符位图描述。储备时间单位按钮的射击小人使用索引 34，
// 以便选中图像只保留并重新着色这个图标。
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// 基础图像使用的调色板索引
const (
	borderLight = 17 // 金色色阶亮端
	borderDark  = 27 // 金色色阶暗端
	face        = 36 // 橙色色阶，按钮底色
	glyph       = 19 // 普通图标颜色
	shooter     = 34 // 射击小人颜色
)

// icon 字符位图：'#' 为普通图标像素，'@' 为射击小人像素
type icon []string

var icons = map[string]icon{
	"reserve_none": {
		"..#####..",
		".#.....#.",
		"#..#.#..#",
		"#...#...#",
		"#..#.#..#",
		".#.....#.",
		"..#####..",
	},
	"reserve_snap": {
		"..@......",
		".@@@.....",
		"..@.###..",
		".@.@.....",
		".@.@.....",
	},
	"reserve_aimed": {
		"..@...#..",
		".@@@.###.",
		"..@...#..",
		".@.@.....",
		".@.@.....",
	},
	"reserve_auto": {
		"..@.#.#.#",
		".@@@.....",
		"..@.#.#.#",
		".@.@.....",
		".@.@.....",
	},
	"kneel": {
		"..#..",
		".###.",
		"..#..",
		".##..",
		".#.##",
	},
	"level_up": {
		"...#...",
		"..###..",
		".#####.",
		"...#...",
		"...#...",
	},
	"level_down": {
		"...#...",
		"...#...",
		".#####.",
		"..###..",
		"...#...",
	},
}

// Names 返回所有可用的图像名称（已排序）
func Names() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Button 生成指定尺寸的按钮基础图像
//
// 参数：
//   - name: 图标名称（见 Names）
//   - width, height: 按钮尺寸，至少要能容纳边框和图标
//   - palette: 图像调色板
//
// 返回：
//   - *image.Paletted: 基础图像，原点为 (0, 0)
//   - error: 图标不存在或尺寸过小
func Button(name string, width, height int, palette color.Palette) (*image.Paletted, error) {
	ic, ok := icons[name]
	if !ok {
		return nil, fmt.Errorf("unknown button sprite %q", name)
	}
	iw, ih := len(ic[0]), len(ic)
	if width < iw+2 || height < ih+2 {
		return nil, fmt.Errorf("button sprite %q needs at least %dx%d, got %dx%d", name, iw+2, ih+2, width, height)
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var p uint8
			switch {
			case y == 0 || x == 0:
				p = borderLight
			case y == height-1 || x == width-1:
				p = borderDark
			default:
				p = face
			}
			img.Pix[y*img.Stride+x] = p
		}
	}

	// 图标居中
	ox, oy := (width-iw)/2, (height-ih)/2
	for y, row := range ic {
		for x, c := range row {
			switch c {
			case '#':
				img.Pix[(oy+y)*img.Stride+ox+x] = glyph
			case '@':
				img.Pix[(oy+y)*img.Stride+ox+x] = shooter
			}
		}
	}
	return img, nil
}
