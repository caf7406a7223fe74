package quarkgl

import (
	"image"
	"testing"
)

func newTestContext(w, h int) (*Context, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ctx := NewContext(NewRGBATarget(img))
	ctx.ClearColor = RGB(0, 0, 0)
	ctx.Clear()
	return ctx, img
}

func pixel(img *image.RGBA, x, y int) Color {
	c := img.RGBAAt(x, y)
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestFillTriangleBothWindings(t *testing.T) {
	red := []float32{1, 0, 0, 1, 0, 0, 1, 0, 0}
	for _, pos := range [][]float32{
		{-1, -1, 1, -1, 0, 1},
		{-1, -1, 0, 1, 1, -1},
	} {
		ctx, img := newTestContext(11, 11)
		ctx.BufferPositions(pos)
		ctx.BufferColors(red)
		ctx.DrawArrays(ModeTriangles, 0, 3)

		if got := pixel(img, 5, 5); got != RGB(0xFF, 0, 0) {
			t.Fatalf("pos=%v center=%v; want red", pos, got)
		}
		if got := pixel(img, 0, 0); got != RGB(0, 0, 0) {
			t.Fatalf("pos=%v corner=%v; want clear color", pos, got)
		}
	}
}

func TestLineLoopOutline(t *testing.T) {
	ctx, img := newTestContext(11, 11)
	ctx.BufferPositions([]float32{-1, -1, 1, -1, 0, 1})
	ctx.BufferColors([]float32{0, 1, 0, 0, 1, 0, 0, 1, 0})
	ctx.DrawArrays(ModeLineLoop, 0, 3)

	green := RGB(0, 0xFF, 0)
	for _, p := range [][2]int{{0, 10}, {10, 10}, {5, 0}, {5, 10}} {
		if got := pixel(img, p[0], p[1]); got != green {
			t.Fatalf("edge pixel %v=%v; want green", p, got)
		}
	}
	if got := pixel(img, 5, 6); got != RGB(0, 0, 0) {
		t.Fatalf("interior pixel=%v; want clear color", got)
	}
}

func TestDrawArraysRange(t *testing.T) {
	ctx, img := newTestContext(11, 11)
	ctx.BufferPositions([]float32{-1, -1, 1, -1, 0, 1})

	// Past the end and negative ranges draw nothing and must not panic.
	ctx.DrawArrays(ModeTriangles, 3, 3)
	ctx.DrawArrays(ModeTriangles, -1, 3)
	ctx.DrawArrays(ModeLineLoop, 0, 0)
	if got := pixel(img, 5, 5); got != RGB(0, 0, 0) {
		t.Fatalf("pixel=%v; want untouched", got)
	}

	// Truncated count still draws the complete triangle, white without colors.
	ctx.DrawArrays(ModeTriangles, 0, 99)
	if got := pixel(img, 5, 5); got != RGB(0xFF, 0xFF, 0xFF) {
		t.Fatalf("pixel=%v; want white", got)
	}
}

func TestRGB565Target(t *testing.T) {
	tg := &RGB565Target{Buf: make([]byte, 4*2*2), Stride: 4 * 2, W: 4, H: 2}
	tg.Clear(RGB(0xFF, 0xFF, 0xFF))
	tg.SetPixel(1, 1, RGB(0xFF, 0, 0))
	tg.SetPixel(9, 9, RGB(0xFF, 0, 0))

	if tg.Buf[0] != 0xFF || tg.Buf[1] != 0xFF {
		t.Fatalf("clear=%x %x; want ffff", tg.Buf[0], tg.Buf[1])
	}
	off := 1*tg.Stride + 1*2
	if got := uint16(tg.Buf[off]) | uint16(tg.Buf[off+1])<<8; got != 0xF800 {
		t.Fatalf("red pixel=%#04x; want 0xf800", got)
	}
}

func TestRGB565FillRectClips(t *testing.T) {
	tg := NewRGB565Target(make([]byte, 3*(4*2+2)), 4*2+2, 4, 3)
	tg.FillRect(-2, 1, 10, 5, RGB(0, 0, 0xFF))

	at := func(x, y int) uint16 {
		off := y*tg.Stride + x*2
		return uint16(tg.Buf[off]) | uint16(tg.Buf[off+1])<<8
	}
	if got := at(0, 0); got != 0 {
		t.Fatalf("row 0=%#04x; want untouched", got)
	}
	for y := 1; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := at(x, y); got != 0x001F {
				t.Fatalf("pixel %d,%d=%#04x; want 0x001f", x, y, got)
			}
		}
		if pad := tg.Buf[y*tg.Stride+8]; pad != 0 {
			t.Fatalf("row %d padding written", y)
		}
	}

	// Short buffers are ignored rather than indexed out of range.
	NewRGB565Target(make([]byte, 4), 8, 4, 2).FillRect(0, 0, 4, 2, RGB(1, 1, 1))
}

func TestUnitToByte(t *testing.T) {
	for _, tc := range []struct {
		in   float32
		want uint8
	}{{-1, 0}, {0, 0}, {0.5, 128}, {1, 0xFF}, {2, 0xFF}} {
		if got := UnitToByte(tc.in); got != tc.want {
			t.Fatalf("UnitToByte(%v)=%d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestRGBATargetSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	sub := img.SubImage(image.Rect(10, 0, 20, 10)).(*image.RGBA)
	tg := NewRGBATarget(sub)
	if w, h := tg.Size(); w != 10 || h != 10 {
		t.Fatalf("size=%dx%d; want 10x10", w, h)
	}
	tg.SetPixel(0, 0, RGB(1, 2, 3))
	if got := pixel(img, 10, 0); got != RGB(1, 2, 3) {
		t.Fatalf("parent pixel=%v; want offset write", got)
	}
	if got := pixel(img, 0, 0); got != (Color{}) {
		t.Fatalf("outside sub-image touched: %v", got)
	}
}
