package quarkgl

// Context is an immediate-mode drawing context bound to one Target.
//
// Create it once and reuse it; uploads copy into internal buffers that are
// grown on demand and kept between frames.
type Context struct {
	ClearColor Color

	t   Target
	pos []float32 // x,y per vertex
	col []float32 // r,g,b per vertex
}

// NewContext creates a context drawing into t.
func NewContext(t Target) *Context {
	return &Context{
		t:          t,
		ClearColor: RGB(0, 0, 0),
	}
}

// Viewport returns the target size in pixels.
func (c *Context) Viewport() (w, h int) {
	if c == nil || c.t == nil {
		return 0, 0
	}
	return c.t.Size()
}

// Clear fills the whole target with ClearColor.
func (c *Context) Clear() {
	if c == nil || c.t == nil {
		return
	}
	c.t.Clear(c.ClearColor)
}

// BufferPositions uploads clip-space positions, two floats per vertex.
func (c *Context) BufferPositions(data []float32) {
	c.pos = append(c.pos[:0], data...)
}

// BufferColors uploads vertex colors, three floats per vertex in [0,1].
func (c *Context) BufferColors(data []float32) {
	c.col = append(c.col[:0], data...)
}

// Vertices returns how many complete vertices the position buffer holds.
func (c *Context) Vertices() int { return len(c.pos) / 2 }

// DrawArrays rasterizes count vertices starting at first.
//
// Ranges past the end of the position buffer are truncated. Triangles use
// the color of their first vertex (flat shading); vertices without a color
// entry are drawn white.
func (c *Context) DrawArrays(mode Mode, first, count int) {
	if c == nil || c.t == nil || first < 0 || count <= 0 {
		return
	}
	n := c.Vertices()
	if first >= n {
		return
	}
	if first+count > n {
		count = n - first
	}
	w, h := c.t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	switch mode {
	case ModeTriangles:
		for i := first; i+2 < first+count; i += 3 {
			x0, y0 := c.screen(i, w, h)
			x1, y1 := c.screen(i+1, w, h)
			x2, y2 := c.screen(i+2, w, h)
			fillTriangle(c.t, w, h, x0, y0, x1, y1, x2, y2, c.color(i))
		}
	case ModeLineLoop:
		if count < 2 {
			return
		}
		for i := 0; i < count; i++ {
			a := first + i
			b := first + (i+1)%count
			x0, y0 := c.screen(a, w, h)
			x1, y1 := c.screen(b, w, h)
			drawLine(c.t, x0, y0, x1, y1, c.color(a))
		}
	}
}

func (c *Context) screen(i, w, h int) (x, y int) {
	return clipToScreen(c.pos[2*i], c.pos[2*i+1], w, h)
}

func (c *Context) color(i int) Color {
	j := 3 * i
	if j+2 >= len(c.col) {
		return RGB(0xFF, 0xFF, 0xFF)
	}
	return RGBf(c.col[j], c.col[j+1], c.col[j+2], 1)
}

// clipToScreen maps clip space ([-1,1], y up) to pixel centers (y down).
func clipToScreen(px, py float32, w, h int) (x, y int) {
	sx := (px*0.5 + 0.5) * float32(w-1)
	sy := (1 - (py*0.5 + 0.5)) * float32(h-1)
	return roundF32(sx), roundF32(sy)
}

func roundF32(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
