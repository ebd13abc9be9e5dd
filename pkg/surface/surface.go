// Package surface 提供基于调色板索引的绘制表面
//
// 战斗界面的所有按钮图像都以调色板索引（而非 RGBA）存储，
// 这样按钮的"按下/选中"效果可以通过索引重映射生成。
package surface

import (
	"fmt"
	"image"
	"image/color"
)

// Surface 调色板索引绘制表面
//
// 职责：
//   - 持有像素缓冲（每像素一个调色板索引）和调色板
//   - 记录屏幕位置（X, Y），Blit 时作为目标偏移
//   - 提供 Lock/Unlock 编辑锁：批量写像素前必须加锁，写完解锁
//
// 注意：索引 0 视为透明色，Blit 时跳过
type Surface struct {
	img  *image.Paletted
	x, y int

	// locked 编辑锁状态，加锁期间不允许 Blit
	locked bool
	// freed 已释放标记，释放后任何访问都是错误
	freed bool
}

// New 创建指定尺寸和位置的表面，所有像素初始化为 0（透明）
func New(width, height, x, y int) *Surface {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("surface: invalid size %dx%d", width, height))
	}
	return &Surface{
		img: image.NewPaletted(image.Rect(0, 0, width, height), nil),
		x:   x,
		y:   y,
	}
}

// FromPaletted 复制已有的索引图像创建表面，坐标原点统一为 (0, 0)
func FromPaletted(src *image.Paletted, x, y int) *Surface {
	s := New(src.Rect.Dx(), src.Rect.Dy(), x, y)
	s.SetPalette(src.Palette)
	s.Load(src)
	return s
}

// Width 表面宽度（像素）
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height 表面高度（像素）
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// X 表面 X 坐标
func (s *Surface) X() int { return s.x }

// Y 表面 Y 坐标
func (s *Surface) Y() int { return s.y }

// SetX 修改 X 坐标
func (s *Surface) SetX(x int) { s.x = x }

// SetY 修改 Y 坐标
func (s *Surface) SetY(y int) { s.y = y }

// Bounds 返回表面在目标坐标系中的矩形区域
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(s.x, s.y, s.x+s.Width(), s.y+s.Height())
}

// Palette 返回表面调色板
func (s *Surface) Palette() color.Palette { return s.img.Palette }

// SetPalette 设置表面调色板（共享同一个调色板切片）
func (s *Surface) SetPalette(p color.Palette) { s.img.Palette = p }

// Image 返回底层索引图像
func (s *Surface) Image() *image.Paletted {
	s.mustBeAlive()
	return s.img
}

// GetPixel 读取 (x, y) 处的调色板索引，越界返回 0
func (s *Surface) GetPixel(x, y int) uint8 {
	s.mustBeAlive()
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return 0
	}
	return s.img.Pix[y*s.img.Stride+x]
}

// SetPixel 写入 (x, y) 处的调色板索引，越界忽略
//
// 必须在 Lock/Unlock 之间调用
func (s *Surface) SetPixel(x, y int, pixel uint8) {
	s.mustBeLocked()
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return
	}
	s.img.Pix[y*s.img.Stride+x] = pixel
}

// SetPixelIterative 在光标 (*x, *y) 处写入像素，然后按光栅顺序推进光标
//
// 光标到达行尾时换到下一行行首；写完最后一个像素后 *y == Height()
func (s *Surface) SetPixelIterative(x, y *int, pixel uint8) {
	s.mustBeLocked()
	if *x < 0 || *y < 0 || *x >= s.Width() || *y >= s.Height() {
		panic(fmt.Sprintf("surface: iterative write out of bounds at (%d, %d)", *x, *y))
	}
	s.img.Pix[*y*s.img.Stride+*x] = pixel
	*x++
	if *x == s.Width() {
		*x = 0
		*y++
	}
}

// Load 把索引图像的像素写入表面（左上角对齐，超出部分丢弃）
//
// 自行加锁，调用时表面不能处于加锁状态
func (s *Surface) Load(src *image.Paletted) {
	s.Lock()
	defer s.Unlock()

	w := min(s.Width(), src.Rect.Dx())
	h := min(s.Height(), src.Rect.Dy())
	for y := 0; y < h; y++ {
		start := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		copy(s.img.Pix[y*s.img.Stride:y*s.img.Stride+w], src.Pix[start:start+w])
	}
}

// Fill 用同一个索引填充整个表面
func (s *Surface) Fill(pixel uint8) {
	s.mustBeLocked()
	for i := range s.img.Pix {
		s.img.Pix[i] = pixel
	}
}

// Lock 获取编辑锁
//
// 重复加锁是错误：同一时刻只允许一个写者
func (s *Surface) Lock() {
	s.mustBeAlive()
	if s.locked {
		panic("surface: already locked")
	}
	s.locked = true
}

// Unlock 释放编辑锁
func (s *Surface) Unlock() {
	if !s.locked {
		panic("surface: unlock of unlocked surface")
	}
	s.locked = false
}

// Locked 是否处于加锁状态
func (s *Surface) Locked() bool { return s.locked }

// Blit 将本表面绘制到目标表面上，按本表面的 X/Y 偏移，跳过索引 0
//
// 加锁中的表面（正在写入）不允许被读取绘制
func (s *Surface) Blit(dst *Surface) {
	s.mustBeAlive()
	dst.mustBeAlive()
	if s.locked {
		panic("surface: blit from locked surface")
	}

	area := s.Bounds().Intersect(image.Rect(0, 0, dst.Width(), dst.Height()))
	if area.Empty() {
		return
	}

	for dy := area.Min.Y; dy < area.Max.Y; dy++ {
		srcRow := s.img.Pix[(dy-s.y)*s.img.Stride:]
		dstRow := dst.img.Pix[dy*dst.img.Stride:]
		for dx := area.Min.X; dx < area.Max.X; dx++ {
			if p := srcRow[dx-s.x]; p != 0 {
				dstRow[dx] = p
			}
		}
	}
}

// Free 释放像素缓冲，之后该表面不可再使用
func (s *Surface) Free() {
	if s == nil || s.freed {
		return
	}
	s.img.Pix = nil
	s.freed = true
}

// Freed 是否已释放
func (s *Surface) Freed() bool { return s.freed }

func (s *Surface) mustBeAlive() {
	if s.freed {
		panic("surface: use of freed surface")
	}
}

func (s *Surface) mustBeLocked() {
	s.mustBeAlive()
	if !s.locked {
		panic("surface: pixel write without lock")
	}
}
