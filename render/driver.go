// Package render uploads gasket scenes to a GPU and issues the draw calls.
package render

import (
	"gasket/gasket"
	"gasket/hal"

	"github.com/rs/zerolog"
)

// Background is the clear color behind the mesh.
var Background = [4]float32{0.952, 0.933, 0.909, 1.0}

// Driver owns the buffers of one GPU. It is not safe for concurrent use.
type Driver struct {
	gpu hal.GPU
	log zerolog.Logger

	vertices int
}

// New returns a driver drawing with gpu. A nil gpu yields a driver whose
// methods do nothing.
func New(gpu hal.GPU, log zerolog.Logger) *Driver {
	return &Driver{gpu: gpu, log: log}
}

// Upload replaces the GPU's position and color buffers with the scene.
func (d *Driver) Upload(s gasket.Scene) {
	if d == nil || d.gpu == nil {
		return
	}
	d.gpu.BufferPositions(s.Positions2f())
	d.gpu.BufferColors(s.Colors3f())
	d.vertices = s.Vertices()
}

// Vertices reports how many vertices the last Upload sent.
func (d *Driver) Vertices() int {
	if d == nil {
		return 0
	}
	return d.vertices
}

// Draw clears to Background and draws the uploaded mesh, either as one
// filled triangle list or as one closed line loop per triangle.
func (d *Driver) Draw(wireframe bool) {
	if d == nil || d.gpu == nil {
		return
	}
	bg := Background
	d.gpu.Clear(bg[0], bg[1], bg[2], bg[3])

	n := d.vertices - d.vertices%3
	if n == 0 {
		return
	}
	if !wireframe {
		d.gpu.DrawArrays(hal.PrimitiveTriangles, 0, n)
		return
	}
	for i := 0; i < n; i += 3 {
		d.gpu.DrawArrays(hal.PrimitiveLineLoop, i, 3)
	}
}

// Render uploads s and draws it.
func (d *Driver) Render(s gasket.Scene, wireframe bool) {
	d.Upload(s)
	d.Draw(wireframe)
	if d != nil && d.gpu != nil {
		d.log.Debug().
			Int("vertices", d.vertices).
			Bool("wireframe", wireframe).
			Msg("render: drawn")
	}
}
