package surface

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RGBA 将表面转换为 RGBA 图像（按调色板查色，索引 0 透明）
func (s *Surface) RGBA() *image.RGBA {
	s.mustBeAlive()
	out := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	s.writeRGBA(out.Pix)
	return out
}

// writeRGBA 按 RGBA 字节顺序写入 dst（长度必须为 4*W*H）
func (s *Surface) writeRGBA(dst []byte) {
	palette := s.img.Palette
	for i, p := range s.img.Pix {
		var c color.RGBA
		if p != 0 && int(p) < len(palette) {
			c = color.RGBAModel.Convert(palette[p]).(color.RGBA)
		}
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
}

// Presenter 把索引表面呈现到 ebiten 图像上
//
// 每帧复用同一块 RGBA 缓冲和同一张 ebiten.Image，避免重复分配
type Presenter struct {
	buf   []byte
	image *ebiten.Image
}

// NewPresenter 创建呈现器
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present 将 src 转换后按 scale 倍缩放绘制到 screen
func (p *Presenter) Present(screen *ebiten.Image, src *Surface, scale float64) {
	w, h := src.Width(), src.Height()
	if p.image == nil || p.image.Bounds().Dx() != w || p.image.Bounds().Dy() != h {
		p.image = ebiten.NewImage(w, h)
		p.buf = make([]byte, 4*w*h)
	}

	src.writeRGBA(p.buf)
	p.image.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.image, op)
}
