package gasket

import "math"

// Vertex is a 2D point in clip space.
type Vertex struct {
	X, Y float64
}

func V(x, y float64) Vertex { return Vertex{X: x, Y: y} }

func (v Vertex) Add(o Vertex) Vertex  { return Vertex{v.X + o.X, v.Y + o.Y} }
func (v Vertex) Sub(o Vertex) Vertex  { return Vertex{v.X - o.X, v.Y - o.Y} }
func (v Vertex) Mul(s float64) Vertex { return Vertex{v.X * s, v.Y * s} }

// Len returns the distance of v from the origin.
func (v Vertex) Len() float64 { return math.Hypot(v.X, v.Y) }

func Midpoint(a, b Vertex) Vertex { return a.Add(b).Mul(0.5) }

// Triangle is an ordered triple of vertices. Orientation is not enforced.
type Triangle struct {
	A, B, C Vertex
}

// Area returns the unsigned area of t.
func (t Triangle) Area() float64 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return math.Abs(ab.X*ac.Y-ab.Y*ac.X) * 0.5
}
