// Package params holds the user-tunable gasket parameters and the surface
// that reruns the render pipeline whenever one of them changes.
package params

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Ranges accepted by Validate and enforced by Clamp.
const (
	MinAngle  = -math.Pi
	MaxAngle  = math.Pi
	MinDepth  = 1
	MaxDepth  = 6
	MinSides  = 3
	MaxSides  = 10
	MinRadius = 0.1
	MaxRadius = 1.0
)

var ErrOutOfRange = errors.New("parameter out of range")

// Parameters is one complete set of inputs for a pipeline run.
type Parameters struct {
	Angle     float64 // radians
	Depth     int     // subdivision levels
	Sides     int
	Radius    float64
	Wireframe bool

	// Uniform selects rigid rotation. When false the angle is scaled by
	// each vertex's distance from the origin.
	Uniform bool
}

// Defaults returns the parameters the program starts with.
func Defaults() Parameters {
	return Parameters{
		Angle:  0.2,
		Depth:  2,
		Sides:  4,
		Radius: 0.5,
	}
}

// Validate reports the first field outside its range.
func (p Parameters) Validate() error {
	switch {
	case math.IsNaN(p.Angle) || p.Angle < MinAngle || p.Angle > MaxAngle:
		return fmt.Errorf("angle %v not in [%.4f, %.4f]: %w", p.Angle, MinAngle, MaxAngle, ErrOutOfRange)
	case p.Depth < MinDepth || p.Depth > MaxDepth:
		return fmt.Errorf("depth %d not in [%d, %d]: %w", p.Depth, MinDepth, MaxDepth, ErrOutOfRange)
	case p.Sides < MinSides || p.Sides > MaxSides:
		return fmt.Errorf("sides %d not in [%d, %d]: %w", p.Sides, MinSides, MaxSides, ErrOutOfRange)
	case math.IsNaN(p.Radius) || p.Radius < MinRadius || p.Radius > MaxRadius:
		return fmt.Errorf("radius %v not in [%.1f, %.1f]: %w", p.Radius, MinRadius, MaxRadius, ErrOutOfRange)
	}
	return nil
}

// Clamp pulls every field into its range. NaN floats fall back to defaults.
func (p Parameters) Clamp() Parameters {
	d := Defaults()
	if math.IsNaN(p.Angle) {
		p.Angle = d.Angle
	}
	if math.IsNaN(p.Radius) {
		p.Radius = d.Radius
	}
	p.Angle = clamp(p.Angle, MinAngle, MaxAngle)
	p.Depth = clamp(p.Depth, MinDepth, MaxDepth)
	p.Sides = clamp(p.Sides, MinSides, MaxSides)
	p.Radius = clamp(p.Radius, MinRadius, MaxRadius)
	return p
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
