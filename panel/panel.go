// Package panel implements the on-screen control panel: a fixed list of
// bound controls navigated with the keyboard and drawn as bitmap text into
// an RGB565 framebuffer strip.
package panel

import (
	"gasket/hal"
	"gasket/params"
)

// Panel binds keyboard input to a parameter surface.
type Panel struct {
	s        *params.Surface
	controls []params.Control
	sel      int
}

// New returns a panel editing s with the first control selected.
func New(s *params.Surface) *Panel {
	return &Panel{s: s, controls: params.Controls()}
}

func (p *Panel) Selected() params.Control { return p.controls[p.sel] }

// HandleKey applies one key press. It reports whether the parameters were
// mutated (and the pipeline rerun); the error is the pipeline's.
//
// Up/Down (or Tab) move the selection, Left/Right step the selected value,
// Enter flips a checkbox, Home restores defaults. Runes: w toggles the
// wireframe, u the rotation mode, r rebuilds with fresh colors.
func (p *Panel) HandleKey(ev hal.KeyEvent) (bool, error) {
	if p == nil || p.s == nil || !ev.Press {
		return false, nil
	}

	switch ev.Code {
	case hal.KeyUp:
		p.move(-1)
		return false, nil
	case hal.KeyDown, hal.KeyTab:
		p.move(1)
		return false, nil
	case hal.KeyLeft:
		return true, p.s.Step(p.Selected(), -1)
	case hal.KeyRight:
		return true, p.s.Step(p.Selected(), 1)
	case hal.KeyEnter:
		if !p.Selected().IsToggle() {
			return false, nil
		}
		return true, p.s.Step(p.Selected(), 1)
	case hal.KeyHome:
		return true, p.s.Set(params.Defaults())
	}

	switch ev.Rune {
	case 'w', 'W':
		return true, p.s.Step(params.ControlWireframe, 1)
	case 'u', 'U':
		return true, p.s.Step(params.ControlUniform, 1)
	case 'r', 'R':
		return true, p.s.Refresh()
	}
	return false, nil
}

func (p *Panel) move(dir int) {
	n := len(p.controls)
	p.sel = ((p.sel+dir)%n + n) % n
}
