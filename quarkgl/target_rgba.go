package quarkgl

import (
	"image"
	"image/color"
)

// RGBATarget renders into an *image.RGBA, honoring its bounds so sub-images
// can be used as independent viewports.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(img *image.RGBA) *RGBATarget { return &RGBATarget{Img: img} }

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := t.Img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Img.Pix[off+0] = c.R
			t.Img.Pix[off+1] = c.G
			t.Img.Pix[off+2] = c.B
			t.Img.Pix[off+3] = c.A
			off += 4
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}
