package panel

import (
	"testing"
	"time"

	"gasket/hal"
	"gasket/params"
	"gasket/quarkgl"
)

type testFB struct {
	w, h     int
	stride   int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB { return newPaddedFB(w, h, w*2) }

func newPaddedFB(w, h, stride int) *testFB {
	return &testFB{w: w, h: h, stride: stride, buf: make([]byte, stride*h)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.stride }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }
func (f *testFB) ClearRGB(r, g, b uint8) {
	p := quarkgl.PackRGB565(r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *testFB) at(x, y int) uint16 {
	off := y*f.StrideBytes() + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func press(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code, Press: true} }
func typed(r rune) hal.KeyEvent           { return hal.KeyEvent{Press: true, Rune: r} }

func newTestPanel() (*Panel, *params.Surface, *int) {
	runs := 0
	s := params.NewSurface(params.Defaults(), func(params.Parameters) error {
		runs++
		return nil
	})
	return New(s), s, &runs
}

func TestNavigation(t *testing.T) {
	p, _, runs := newTestPanel()
	if p.Selected() != params.ControlAngle {
		t.Fatalf("initial selection=%v; want theta", p.Selected())
	}

	p.HandleKey(press(hal.KeyUp))
	if p.Selected() != params.ControlUniform {
		t.Fatalf("up from first=%v; want wrap to last", p.Selected())
	}
	p.HandleKey(press(hal.KeyDown))
	p.HandleKey(press(hal.KeyTab))
	if p.Selected() != params.ControlDepth {
		t.Fatalf("selection=%v; want subdivide", p.Selected())
	}
	if *runs != 0 {
		t.Fatalf("navigation ran pipeline %d times", *runs)
	}
}

func TestAdjust(t *testing.T) {
	p, s, runs := newTestPanel()

	p.HandleKey(press(hal.KeyDown)) // subdivide
	changed, err := p.HandleKey(press(hal.KeyRight))
	if err != nil || !changed {
		t.Fatalf("right: changed=%v err=%v", changed, err)
	}
	if s.Params().Depth != 3 {
		t.Fatalf("depth=%d; want 3", s.Params().Depth)
	}

	// Enter does nothing on a stepper.
	if changed, _ := p.HandleKey(press(hal.KeyEnter)); changed {
		t.Fatalf("enter on stepper changed parameters")
	}

	p.HandleKey(press(hal.KeyDown)) // wireframe
	p.HandleKey(press(hal.KeyEnter))
	if !s.Params().Wireframe {
		t.Fatalf("enter on checkbox did not toggle wireframe")
	}

	p.HandleKey(typed('u'))
	if !s.Params().Uniform {
		t.Fatalf("u did not toggle uniform")
	}
	p.HandleKey(typed('r'))
	p.HandleKey(press(hal.KeyHome))
	if s.Params() != params.Defaults() {
		t.Fatalf("home: params=%+v; want defaults", s.Params())
	}
	if *runs != 5 {
		t.Fatalf("runs=%d; want 5", *runs)
	}

	// Releases and unknown runes are ignored.
	if changed, _ := p.HandleKey(hal.KeyEvent{Code: hal.KeyRight}); changed {
		t.Fatalf("release changed parameters")
	}
	if changed, _ := p.HandleKey(typed('z')); changed {
		t.Fatalf("unbound rune changed parameters")
	}
}

func TestDraw(t *testing.T) {
	p, _, _ := newTestPanel()
	fb := newTestFB(176, 320)
	p.Draw(fb, Stats{Triangles: 64, Vertices: 192, Build: 1500 * time.Microsecond, Runs: 1})

	bg := quarkgl.PackRGB565(colorBackground.R, colorBackground.G, colorBackground.B)
	hl := quarkgl.PackRGB565(colorHighlight.R, colorHighlight.G, colorHighlight.B)

	if got := fb.at(fb.w-1, fb.h/2); got != bg {
		t.Fatalf("background pixel=%#04x; want %#04x", got, bg)
	}
	// The right edge of the selected row is highlight, not text.
	if got := fb.at(fb.w-1, rowsTop+1); got != hl {
		t.Fatalf("highlight pixel=%#04x; want %#04x", got, hl)
	}

	text := 0
	for y := 0; y < rowsTop; y++ {
		for x := 0; x < fb.w; x++ {
			if fb.at(x, y) != bg {
				text++
			}
		}
	}
	if text == 0 {
		t.Fatalf("title row has no text pixels")
	}
	if fb.presents != 0 {
		t.Fatalf("Draw presented %d times; presenting belongs to the caller", fb.presents)
	}
}

func TestDrawPaddedStride(t *testing.T) {
	p, _, _ := newTestPanel()
	p.HandleKey(press(hal.KeyDown))
	fb := newPaddedFB(100, 200, 100*2+8)
	p.Draw(fb, Stats{})

	bg := quarkgl.PackRGB565(colorBackground.R, colorBackground.G, colorBackground.B)
	hl := quarkgl.PackRGB565(colorHighlight.R, colorHighlight.G, colorHighlight.B)

	y := rowsTop + lineHeight + 1
	if got := fb.at(fb.w-1, y); got != hl {
		t.Fatalf("second row edge=%#04x; want highlight %#04x", got, hl)
	}
	if got := fb.at(fb.w-1, rowsTop+1); got != bg {
		t.Fatalf("first row edge=%#04x; want background %#04x", got, bg)
	}
	// Row padding past the width is never drawn into.
	if got := fb.at(fb.w, y); got != bg {
		t.Fatalf("padding=%#04x; want untouched %#04x", got, bg)
	}
}
