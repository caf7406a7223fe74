//go:build cgo

package hal

import (
	"fmt"
	"image"
	"image/color"

	"gasket/quarkgl"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxBatchVertices keeps DrawTriangles indices inside uint16 while staying a
// multiple of three.
const maxBatchVertices = 65535

// ebitenGPU implements GPU on top of ebiten's triangle batcher. It renders
// into an offscreen canvas the window composites every frame, so the scene
// is only re-rasterized when the app draws.
type ebitenGPU struct {
	canvas *ebiten.Image
	src    *ebiten.Image
	w, h   int

	pos []float32
	col []float32

	verts []ebiten.Vertex
	idx   []uint16
	opts  ebiten.DrawTrianglesOptions
}

func newEbitenGPU(w, h int) (*ebitenGPU, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", w, h, ErrGraphicsUnavailable)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &ebitenGPU{
		canvas: ebiten.NewImage(w, h),
		src:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		w:      w,
		h:      h,
		opts:   ebiten.DrawTrianglesOptions{AntiAlias: true},
	}, nil
}

func (g *ebitenGPU) Viewport() (w, h int) { return g.w, g.h }

func (g *ebitenGPU) Clear(r, gg, b, a float32) {
	g.canvas.Fill(color.RGBA{R: quarkgl.UnitToByte(r), G: quarkgl.UnitToByte(gg), B: quarkgl.UnitToByte(b), A: quarkgl.UnitToByte(a)})
}

func (g *ebitenGPU) BufferPositions(data []float32) { g.pos = append(g.pos[:0], data...) }
func (g *ebitenGPU) BufferColors(data []float32)    { g.col = append(g.col[:0], data...) }

func (g *ebitenGPU) DrawArrays(mode Primitive, first, count int) {
	n := len(g.pos) / 2
	if first < 0 || count <= 0 || first >= n {
		return
	}
	if first+count > n {
		count = n - first
	}

	switch mode {
	case PrimitiveTriangles:
		count -= count % 3
		end := first + count
		for start := first; start < end; start += maxBatchVertices {
			stop := min(start+maxBatchVertices, end)
			g.verts = g.verts[:0]
			g.idx = g.idx[:0]
			for i := start; i < stop; i++ {
				x, y := g.screen(i)
				r, gg, b := g.color(i)
				g.verts = append(g.verts, ebiten.Vertex{
					DstX: x, DstY: y,
					SrcX: 1, SrcY: 1,
					ColorR: r, ColorG: gg, ColorB: b, ColorA: 1,
				})
				g.idx = append(g.idx, uint16(i-start))
			}
			g.canvas.DrawTriangles(g.verts, g.idx, g.src, &g.opts)
		}
	case PrimitiveLineLoop:
		if count < 2 {
			return
		}
		for i := 0; i < count; i++ {
			a := first + i
			b := first + (i+1)%count
			x0, y0 := g.screen(a)
			x1, y1 := g.screen(b)
			r, gg, bb := g.color(a)
			c := color.RGBA{R: quarkgl.UnitToByte(r), G: quarkgl.UnitToByte(gg), B: quarkgl.UnitToByte(bb), A: 0xFF}
			vector.StrokeLine(g.canvas, x0, y0, x1, y1, 1, c, true)
		}
	}
}

func (g *ebitenGPU) screen(i int) (x, y float32) {
	px, py := g.pos[2*i], g.pos[2*i+1]
	return (px*0.5 + 0.5) * float32(g.w), (0.5 - py*0.5) * float32(g.h)
}

func (g *ebitenGPU) color(i int) (r, gg, b float32) {
	j := 3 * i
	if j+2 >= len(g.col) {
		return 1, 1, 1
	}
	return g.col[j], g.col[j+1], g.col[j+2]
}
