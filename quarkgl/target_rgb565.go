package quarkgl

// RGB565Target draws into a little-endian RGB565 pixel buffer, such as the
// panel framebuffer. Rows are Stride bytes apart.
type RGB565Target struct {
	Buf    []byte
	Stride int
	W, H   int
}

// NewRGB565Target wraps buf. A stride below w*2 yields a target that ignores
// all writes.
func NewRGB565Target(buf []byte, stride, w, h int) *RGB565Target {
	return &RGB565Target{Buf: buf, Stride: stride, W: w, H: h}
}

func (t *RGB565Target) Size() (w, h int) {
	if t == nil {
		return 0, 0
	}
	return t.W, t.H
}

func (t *RGB565Target) Clear(c Color) {
	t.FillRect(0, 0, t.W, t.H, c)
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	t.FillRect(x, y, 1, 1, c)
}

// FillRect fills the w x h rectangle at x,y, clipped to the target.
func (t *RGB565Target) FillRect(x, y, w, h int, c Color) {
	if t == nil || t.Stride < t.W*2 || len(t.Buf) < t.Stride*(t.H-1)+t.W*2 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, t.W), min(y+h, t.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	p := PackRGB565(c.R, c.G, c.B)
	lo, hi := byte(p), byte(p>>8)
	for yy := y0; yy < y1; yy++ {
		row := t.Buf[yy*t.Stride+x0*2 : yy*t.Stride+x1*2]
		for i := 0; i < len(row); i += 2 {
			row[i] = lo
			row[i+1] = hi
		}
	}
}

// PackRGB565 packs 8-bit channels as rrrrrggggggbbbbb.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}
