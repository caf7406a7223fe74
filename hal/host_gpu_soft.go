package hal

import (
	"fmt"
	"image"

	"gasket/quarkgl"
)

// softGPU implements GPU with the quarkgl software rasterizer.
type softGPU struct {
	img *image.RGBA
	ctx *quarkgl.Context
}

// NewSoftwareGPU returns a GPU that rasterizes into img on the CPU.
// Sub-images work as independent viewports.
func NewSoftwareGPU(img *image.RGBA) (GPU, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("software target: %w", ErrGraphicsUnavailable)
	}
	return &softGPU{img: img, ctx: quarkgl.NewContext(quarkgl.NewRGBATarget(img))}, nil
}

func (g *softGPU) Viewport() (w, h int) { return g.ctx.Viewport() }

func (g *softGPU) Clear(r, gg, b, a float32) {
	g.ctx.ClearColor = quarkgl.RGBf(r, gg, b, a)
	g.ctx.Clear()
}

func (g *softGPU) BufferPositions(data []float32) { g.ctx.BufferPositions(data) }
func (g *softGPU) BufferColors(data []float32)    { g.ctx.BufferColors(data) }

func (g *softGPU) DrawArrays(mode Primitive, first, count int) {
	switch mode {
	case PrimitiveTriangles:
		g.ctx.DrawArrays(quarkgl.ModeTriangles, first, count)
	case PrimitiveLineLoop:
		g.ctx.DrawArrays(quarkgl.ModeLineLoop, first, count)
	}
}
