package gasket

import "math"

// Rotate turns v around the origin.
//
// In uniform mode the angle is theta. Otherwise the angle is scaled by the
// distance of v from the origin, which warps the mesh into a swirl instead of
// spinning it rigidly.
func Rotate(v Vertex, theta float64, uniform bool) Vertex {
	d := 1.0
	if !uniform {
		d = v.Len()
	}
	s, c := math.Sincos(d * theta)
	return Vertex{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}
