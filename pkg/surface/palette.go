package surface

import "image/color"

// RampSize 调色板中每条亮度色阶的长度
//
// 战斗界面调色板由 16 条色阶组成，每条 16 个由亮到暗的颜色，
// 按钮的反色效果正是利用这种排列在色阶内做镜像。
const RampSize = 16

// rampHues 每条色阶的基准颜色（最亮端）
var rampHues = [256 / RampSize]color.RGBA{
	{0xfc, 0xfc, 0xfc, 0xff}, // 0: 灰（索引 0 为透明）
	{0xfc, 0xe8, 0x8c, 0xff}, // 1: 金
	{0xe8, 0xa0, 0x50, 0xff}, // 2: 橙（射击图标色 34 所在色阶）
	{0xfc, 0x60, 0x60, 0xff}, // 3: 红
	{0x7c, 0xfc, 0x7c, 0xff}, // 4: 绿
	{0x60, 0xc8, 0xfc, 0xff}, // 5: 天蓝
	{0x80, 0x80, 0xfc, 0xff}, // 6: 蓝
	{0xd8, 0x90, 0xfc, 0xff}, // 7: 紫
	{0xfc, 0xfc, 0x54, 0xff}, // 8: 黄
	{0xb8, 0xd8, 0xb0, 0xff}, // 9: 苔绿
	{0xd0, 0xb0, 0x90, 0xff}, // 10: 土黄
	{0x90, 0xd0, 0xd0, 0xff}, // 11: 青灰
	{0xfc, 0xa8, 0xc8, 0xff}, // 12: 粉
	{0xa8, 0xa8, 0xc0, 0xff}, // 13: 钢蓝
	{0xc0, 0x98, 0x70, 0xff}, // 14: 棕
	{0x98, 0xfc, 0xd8, 0xff}, // 15: 薄荷
}

// BattlescapePalette 生成战斗界面调色板
//
// 返回 256 色调色板：索引 i 属于第 i/16 条色阶，色阶内亮度随 i%16 递减。
// 索引 0 为全透明。
func BattlescapePalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		hue := rampHues[i/RampSize]
		shade := RampSize - i%RampSize // 16..1
		p[i] = color.RGBA{
			R: uint8(int(hue.R) * shade / RampSize),
			G: uint8(int(hue.G) * shade / RampSize),
			B: uint8(int(hue.B) * shade / RampSize),
			A: 0xff,
		}
	}
	p[0] = color.RGBA{}
	return p
}
