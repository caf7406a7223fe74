package params

import (
	"fmt"
	"math"
)

// Control identifies one bound panel control.
type Control uint8

const (
	ControlAngle Control = iota
	ControlDepth
	ControlWireframe
	ControlSides
	ControlRadius
	ControlUniform

	numControls
)

const (
	angleStep  = 0.05
	radiusStep = 0.05
)

// Controls lists every control in panel order.
func Controls() []Control {
	out := make([]Control, 0, numControls)
	for c := Control(0); c < numControls; c++ {
		out = append(out, c)
	}
	return out
}

func (c Control) String() string {
	switch c {
	case ControlAngle:
		return "theta"
	case ControlDepth:
		return "subdivide"
	case ControlWireframe:
		return "wireframe"
	case ControlSides:
		return "polygon"
	case ControlRadius:
		return "radius"
	case ControlUniform:
		return "uniform"
	default:
		return fmt.Sprintf("control(%d)", uint8(c))
	}
}

// IsToggle reports whether the control is a boolean checkbox.
func (c Control) IsToggle() bool {
	return c == ControlWireframe || c == ControlUniform
}

// Step moves the control's value one step in the direction of dir's sign
// and returns the clamped result. Toggles flip on any non-zero dir.
func (c Control) Step(p Parameters, dir int) Parameters {
	if dir == 0 {
		return p
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	switch c {
	case ControlAngle:
		// Keep the value on the step grid so repeated steps do not drift.
		p.Angle = math.Round((p.Angle+float64(dir)*angleStep)/angleStep) * angleStep
	case ControlDepth:
		p.Depth += dir
	case ControlWireframe:
		p.Wireframe = !p.Wireframe
	case ControlSides:
		p.Sides += dir
	case ControlRadius:
		p.Radius = math.Round((p.Radius+float64(dir)*radiusStep)/radiusStep) * radiusStep
	case ControlUniform:
		p.Uniform = !p.Uniform
	}
	return p.Clamp()
}

// Format renders the control's current value for display.
func (c Control) Format(p Parameters) string {
	switch c {
	case ControlAngle:
		return fmt.Sprintf("%+.2f", p.Angle)
	case ControlDepth:
		return fmt.Sprintf("%d", p.Depth)
	case ControlWireframe:
		return onOff(p.Wireframe)
	case ControlSides:
		return fmt.Sprintf("%d", p.Sides)
	case ControlRadius:
		return fmt.Sprintf("%.2f", p.Radius)
	case ControlUniform:
		return onOff(p.Uniform)
	default:
		return ""
	}
}

func onOff(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}
