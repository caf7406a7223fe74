package gasket

import "math"

// PolygonOptions adjusts how base triangles are produced.
type PolygonOptions struct {
	// FanTriangle builds a three-sided polygon through the general fan
	// (three triangles around the center) instead of the single legacy
	// triangle (-r,-r), (0,r), (r,-r).
	FanTriangle bool
}

// GeneratePolygon returns the base triangles of a regular polygon with the
// given number of sides inscribed in a circle of the given radius.
//
// It returns nil when sides < 3 or radius <= 0.
func GeneratePolygon(sides int, radius float64) []Triangle {
	return GeneratePolygonWith(sides, radius, PolygonOptions{})
}

// GeneratePolygonWith is GeneratePolygon with options.
func GeneratePolygonWith(sides int, radius float64, opt PolygonOptions) []Triangle {
	if sides < 3 || !(radius > 0) {
		return nil
	}
	if sides == 3 && !opt.FanTriangle {
		r := radius
		return []Triangle{{A: V(-r, -r), B: V(0, r), C: V(r, -r)}}
	}

	out := make([]Triangle, 0, sides)
	center := Vertex{}
	step := 2 * math.Pi / float64(sides)

	first := V(radius, 0)
	prev := first
	for i := 1; i < sides; i++ {
		a := step * float64(i)
		p := V(radius*math.Cos(a), radius*math.Sin(a))
		out = append(out, Triangle{A: prev, B: center, C: p})
		prev = p
	}
	// Closing triangle from the last rim point back to the first.
	out = append(out, Triangle{A: prev, B: center, C: first})
	return out
}

// BaseCount reports how many triangles GeneratePolygonWith returns.
func BaseCount(sides int, opt PolygonOptions) int {
	switch {
	case sides < 3:
		return 0
	case sides == 3 && !opt.FanTriangle:
		return 1
	default:
		return sides
	}
}
