package surface

import (
	"image"
	"testing"
)

// mustPanic 断言 fn 会 panic
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestNew 测试表面创建
func TestNew(t *testing.T) {
	s := New(32, 16, 5, 7)

	if s.Width() != 32 || s.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", s.Width(), s.Height())
	}
	if s.X() != 5 || s.Y() != 7 {
		t.Errorf("position = (%d, %d), want (5, 7)", s.X(), s.Y())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if p := s.GetPixel(x, y); p != 0 {
				t.Fatalf("pixel (%d, %d) = %d, want 0", x, y, p)
			}
		}
	}

	mustPanic(t, "negative size", func() { New(-1, 4, 0, 0) })
}

// TestSetPixelIterative 测试光栅顺序写入光标
func TestSetPixelIterative(t *testing.T) {
	s := New(3, 2, 0, 0)
	s.Lock()

	x, y := 0, 0
	for i := uint8(1); x < s.Width() && y < s.Height(); i++ {
		s.SetPixelIterative(&x, &y, i)
	}
	s.Unlock()

	if x != 0 || y != 2 {
		t.Errorf("cursor after full scan = (%d, %d), want (0, 2)", x, y)
	}

	want := [][]uint8{{1, 2, 3}, {4, 5, 6}}
	for py, row := range want {
		for px, p := range row {
			if got := s.GetPixel(px, py); got != p {
				t.Errorf("pixel (%d, %d) = %d, want %d", px, py, got, p)
			}
		}
	}
}

// TestLockDiscipline 测试编辑锁约束
func TestLockDiscipline(t *testing.T) {
	s := New(4, 4, 0, 0)
	dst := New(4, 4, 0, 0)

	mustPanic(t, "write without lock", func() { s.SetPixel(0, 0, 1) })
	mustPanic(t, "unlock without lock", func() { s.Unlock() })

	s.Lock()
	mustPanic(t, "double lock", func() { s.Lock() })
	mustPanic(t, "blit while locked", func() { s.Blit(dst) })
	s.SetPixel(1, 1, 9)
	s.Unlock()

	if s.Locked() {
		t.Error("surface still locked after Unlock")
	}
	s.Blit(dst)
	if dst.GetPixel(1, 1) != 9 {
		t.Errorf("blitted pixel = %d, want 9", dst.GetPixel(1, 1))
	}

	x, y := 4, 0
	s.Lock()
	mustPanic(t, "iterative write out of bounds", func() { s.SetPixelIterative(&x, &y, 1) })
	s.Unlock()
}

// TestBlit 测试偏移绘制、透明色和裁剪
func TestBlit(t *testing.T) {
	src := New(2, 2, 3, 1)
	src.Lock()
	src.SetPixel(0, 0, 7)
	src.SetPixel(1, 1, 8)
	// (1, 0) 与 (0, 1) 保持 0，应透明
	src.Unlock()

	dst := New(4, 4, 0, 0)
	dst.Lock()
	dst.Fill(1)
	dst.Unlock()

	src.Blit(dst)

	tests := []struct {
		x, y int
		want uint8
	}{
		{3, 1, 7},
		{3, 2, 1}, // 透明，保留背景
		{2, 1, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := dst.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("dst(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	// (4, 2) 超出目标区域被裁剪，不应 panic
}

// TestFree 测试释放后不可使用
func TestFree(t *testing.T) {
	s := New(2, 2, 0, 0)
	s.Free()
	s.Free() // 重复释放无副作用

	if !s.Freed() {
		t.Error("Freed() = false after Free")
	}
	mustPanic(t, "read after free", func() { s.GetPixel(0, 0) })
	mustPanic(t, "lock after free", func() { s.Lock() })

	var nilSurface *Surface
	nilSurface.Free()
}

// TestFromPaletted 测试从非零原点的索引图像创建表面
func TestFromPaletted(t *testing.T) {
	img := image.NewPaletted(image.Rect(10, 10, 13, 12), BattlescapePalette())
	img.SetColorIndex(10, 10, 4)
	img.SetColorIndex(12, 11, 5)

	s := FromPaletted(img, 2, 3)

	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if s.GetPixel(0, 0) != 4 || s.GetPixel(2, 1) != 5 {
		t.Errorf("pixels = %d, %d, want 4, 5", s.GetPixel(0, 0), s.GetPixel(2, 1))
	}

	// 修改源图像不影响表面
	img.SetColorIndex(10, 10, 6)
	if s.GetPixel(0, 0) != 4 {
		t.Error("surface shares pixel buffer with source image")
	}
}

// TestLoad 测试载入较大图像时裁剪且不残留锁
func TestLoad(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 5, 5), nil)
	img.SetColorIndex(1, 1, 3)
	img.SetColorIndex(4, 4, 9)

	s := New(3, 3, 0, 0)
	s.Load(img)

	if s.Locked() {
		t.Error("Load left surface locked")
	}
	if s.GetPixel(1, 1) != 3 {
		t.Errorf("pixel (1, 1) = %d, want 3", s.GetPixel(1, 1))
	}
}

// TestBattlescapePalette 测试调色板色阶排列
func TestBattlescapePalette(t *testing.T) {
	p := BattlescapePalette()

	if len(p) != 256 {
		t.Fatalf("palette size = %d, want 256", len(p))
	}
	if _, _, _, a := p[0].RGBA(); a != 0 {
		t.Error("index 0 should be transparent")
	}

	// 色阶内亮度单调递减
	for ramp := 1; ramp < 256/RampSize; ramp++ {
		prev := uint32(1 << 20)
		for i := ramp * RampSize; i < (ramp+1)*RampSize; i++ {
			r, g, b, _ := p[i].RGBA()
			sum := r + g + b
			if sum > prev {
				t.Errorf("ramp %d not descending at index %d", ramp, i)
				break
			}
			prev = sum
		}
	}
}

// TestRGBA 测试 RGBA 转换
func TestRGBA(t *testing.T) {
	s := New(2, 1, 0, 0)
	s.SetPalette(BattlescapePalette())
	s.Lock()
	s.SetPixel(1, 0, 16)
	s.Unlock()

	rgba := s.RGBA()
	if rgba.RGBAAt(0, 0).A != 0 {
		t.Error("index 0 should convert to transparent")
	}
	if got := rgba.RGBAAt(1, 0); got.A != 0xff || got.R != 0xfc {
		t.Errorf("index 16 = %+v, want opaque gold", got)
	}
}
