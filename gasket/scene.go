package gasket

// Scene is the mesh produced by one pipeline run.
//
// Positions is a flat triangle list: every three vertices form one triangle
// and no vertex is shared. Colors runs parallel to Positions with one color
// repeated for each vertex of a triangle. PaletteIndex has one entry per
// triangle.
type Scene struct {
	Positions    []Vertex
	Colors       []Color
	PaletteIndex []uint8
}

// BuildConfig describes the mesh to build.
type BuildConfig struct {
	Sides   int
	Depth   int
	Radius  float64
	Angle   float64
	Uniform bool

	Polygon PolygonOptions

	// Source drives color selection. Nil means time-seeded.
	Source Source
}

// Build generates the polygon, subdivides every base triangle and emits the
// rotated, colored leaves into a new Scene.
func Build(cfg BuildConfig) Scene {
	bases := GeneratePolygonWith(cfg.Sides, cfg.Radius, cfg.Polygon)
	depth := cfg.Depth
	if depth < 0 {
		depth = 0
	}

	n := LeafCount(len(bases), depth)
	s := Scene{
		Positions:    make([]Vertex, 0, 3*n),
		Colors:       make([]Color, 0, 3*n),
		PaletteIndex: make([]uint8, 0, n),
	}
	col := NewColorizer(cfg.Source)
	emit := func(t Triangle) {
		s.emitLeaf(t, cfg.Angle, cfg.Uniform, col)
	}
	for _, t := range bases {
		Subdivide(t, depth, emit)
	}
	return s
}

func (s *Scene) emitLeaf(t Triangle, theta float64, uniform bool, col *Colorizer) {
	s.Positions = append(s.Positions,
		Rotate(t.A, theta, uniform),
		Rotate(t.B, theta, uniform),
		Rotate(t.C, theta, uniform),
	)
	c, i := col.Next()
	s.Colors = append(s.Colors, c, c, c)
	s.PaletteIndex = append(s.PaletteIndex, uint8(i))
}

func (s Scene) Vertices() int  { return len(s.Positions) }
func (s Scene) Triangles() int { return len(s.Positions) / 3 }

// Positions2f flattens Positions into x,y pairs for a vertex buffer.
func (s Scene) Positions2f() []float32 {
	out := make([]float32, 0, 2*len(s.Positions))
	for _, v := range s.Positions {
		out = append(out, float32(v.X), float32(v.Y))
	}
	return out
}

// Colors3f flattens Colors into r,g,b triples for a vertex buffer.
func (s Scene) Colors3f() []float32 {
	out := make([]float32, 0, 3*len(s.Colors))
	for _, c := range s.Colors {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
