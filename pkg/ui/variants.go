package ui

import "github.com/gonewx/battlehud/pkg/surface"

// Variant 按钮派生图像的种类
type Variant int

const (
	// VariantInverted 按下
	VariantInverted Variant = iota
	// VariantSelected 选中（仅保留射击图标）
	VariantSelected
	// VariantInvertedSelected 按下且选中
	VariantInvertedSelected
	// VariantExcluded 排除遮罩
	VariantExcluded

	variantCount
)

// ShooterIconIndex 储备时间单位按钮上射击小人图标使用的调色板索引
const ShooterIconIndex = 34

// tftdColorTable 深海模式的按下颜色查找表（from -> to）
var tftdColorTable = [...][2]uint8{
	{1, 2}, {2, 3}, {3, 4}, {4, 5},
	{7, 11}, {8, 10},
	{31, 2}, {47, 2},
	{153, 96}, {156, 9}, {159, 97},
}

// 所有索引运算都在 int 上完成，再截断为 uint8（模 256 回绕）

// InvertIndex 标准模式的按下颜色：p + 2*(color+3-p)，0 保持透明
func InvertIndex(p, color uint8) uint8 {
	if p == 0 {
		return 0
	}
	return uint8(int(p) + 2*(int(color)+3-int(p)))
}

// SelectIndex 选中颜色：只有射击图标索引被重映射为 p + 2*(color-10-p)，其余变透明
func SelectIndex(p, color uint8) uint8 {
	if p != ShooterIconIndex {
		return 0
	}
	return uint8(int(p) + 2*(int(color)-10-int(p)))
}

// InvertSelectIndex 按下且选中：射击图标用选中颜色，其余非零像素用按下颜色
func InvertSelectIndex(p, color uint8) uint8 {
	if p == ShooterIconIndex {
		return SelectIndex(p, color)
	}
	return InvertIndex(p, color)
}

// ExcludeIndex 排除遮罩的填充颜色：34 + 2*(color+1-34)
func ExcludeIndex(color uint8) uint8 {
	return uint8(ShooterIconIndex + 2*(int(color)+1-ShooterIconIndex))
}

// TFTDIndex 深海模式查表，表外索引原样返回，0 永不重映射
func TFTDIndex(p uint8) uint8 {
	if p == 0 {
		return 0
	}
	for _, entry := range tftdColorTable {
		if entry[0] == p {
			return entry[1]
		}
	}
	return p
}

// generateVariants 根据基础图像生成四张派生图像
//
// 每张派生图像尺寸、位置、调色板都与基础图像相同；
// 深海模式只生成按下图像，其余三张保持全透明。
// 基础图像不会被修改。
func generateVariants(base *surface.Surface, color uint8, strategy PaletteStrategy) [variantCount]*surface.Surface {
	var out [variantCount]*surface.Surface
	for i := range out {
		out[i] = surface.New(base.Width(), base.Height(), base.X(), base.Y())
		out[i].SetPalette(base.Palette())
	}

	if strategy == PaletteTFTD {
		remap(out[VariantInverted], base, func(p uint8, _, _ int) uint8 { return TFTDIndex(p) })
		return out
	}

	remap(out[VariantInverted], base, func(p uint8, _, _ int) uint8 {
		return InvertIndex(p, color)
	})
	remap(out[VariantSelected], base, func(p uint8, _, _ int) uint8 {
		return SelectIndex(p, color)
	})
	remap(out[VariantInvertedSelected], base, func(p uint8, _, _ int) uint8 {
		return InvertSelectIndex(p, color)
	})

	fill := ExcludeIndex(color)
	w, h := base.Width(), base.Height()
	remap(out[VariantExcluded], base, func(_ uint8, x, y int) uint8 {
		if x > 1 && x < w-1 && y > 1 && y < h-1 {
			return fill
		}
		return 0
	})
	return out
}

// remap 在编辑锁内逐像素扫描 src，把 fn 的结果按光栅顺序写入 dst
func remap(dst, src *surface.Surface, fn func(p uint8, x, y int) uint8) {
	dst.Lock()
	defer dst.Unlock()

	for x, y := 0, 0; x < dst.Width() && y < dst.Height(); {
		px, py := x, y
		dst.SetPixelIterative(&x, &y, fn(src.GetPixel(px, py), px, py))
	}
}
