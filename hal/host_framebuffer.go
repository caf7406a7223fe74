package hal

import (
	"image"
	"sync"

	"gasket/quarkgl"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := quarkgl.PackRGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// copyRGBA expands the RGB565 buffer into dst, which must be width x height.
func (f *hostFramebuffer) copyRGBA(dst *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for y := 0; y < f.height; y++ {
		src := f.buf[y*f.stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < f.width; x++ {
			r, g, b := rgb888From565(uint16(src[2*x]) | uint16(src[2*x+1])<<8)
			row[4*x+0] = r
			row[4*x+1] = g
			row[4*x+2] = b
			row[4*x+3] = 0xFF
		}
	}
}

// FramebufferImage converts an RGB565 framebuffer to an RGBA image.
func FramebufferImage(fb Framebuffer) *image.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if hf, ok := fb.(*hostFramebuffer); ok {
		hf.copyRGBA(img)
		return img
	}
	buf := fb.Buffer()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			off := y*fb.StrideBytes() + x*2
			if off+1 >= len(buf) {
				continue
			}
			r, g, b := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
			i := img.PixOffset(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 0xFF
		}
	}
	return img
}
