package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Mode selects how DrawArrays assembles vertices.
type Mode uint8

const (
	// ModeTriangles treats every three vertices as one filled triangle.
	ModeTriangles Mode = iota
	// ModeLineLoop strokes the vertices in order and closes back to the first.
	ModeLineLoop
)

func (m Mode) String() string {
	switch m {
	case ModeTriangles:
		return "TRIANGLES"
	case ModeLineLoop:
		return "LINE_LOOP"
	default:
		return "UNKNOWN"
	}
}
