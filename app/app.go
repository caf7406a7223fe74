// Package app wires the parameter panel, the gasket builder and the render
// driver onto a HAL.
package app

import (
	"math/rand"
	"time"

	"gasket/gasket"
	"gasket/hal"
	"gasket/panel"
	"gasket/params"
	"gasket/render"

	"github.com/rs/zerolog"
)

// Config is the startup configuration.
type Config struct {
	Params  params.Parameters
	Polygon gasket.PolygonOptions
	// Seed fixes the color sequence. Zero picks colors from the clock.
	Seed int64
}

type system struct {
	log     zerolog.Logger
	fb      hal.Framebuffer
	kbd     hal.Keyboard
	driver  *render.Driver
	surface *params.Surface
	panel   *panel.Panel
	polygon gasket.PolygonOptions
	src     gasket.Source
	stats   panel.Stats
}

// New acquires the GPU, runs the pipeline once with cfg.Params and returns
// the per-frame step. The step drains pending key events; it returns
// hal.ErrQuit on Escape or q.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	d := h.Display()
	gpu, err := d.GPU()
	if err != nil {
		return nil, err
	}

	s := &system{
		log:     h.Logger(),
		fb:      d.Framebuffer(),
		driver:  render.New(gpu, h.Logger()),
		polygon: cfg.Polygon,
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}
	if cfg.Seed != 0 {
		s.src = rand.New(rand.NewSource(cfg.Seed))
	}
	s.surface = params.NewSurface(cfg.Params, s.rebuild)
	s.panel = panel.New(s.surface)

	w, hgt := gpu.Viewport()
	s.log.Info().
		Int("width", w).
		Int("height", hgt).
		Int64("seed", cfg.Seed).
		Msg("app: loaded")

	if err := s.surface.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild is the surface's change handler: a full scene rebuild and redraw.
func (s *system) rebuild(p params.Parameters) error {
	start := time.Now()
	scene := gasket.Build(gasket.BuildConfig{
		Sides:   p.Sides,
		Depth:   p.Depth,
		Radius:  p.Radius,
		Angle:   p.Angle,
		Uniform: p.Uniform,
		Polygon: s.polygon,
		Source:  s.src,
	})
	s.driver.Render(scene, p.Wireframe)

	s.stats = panel.Stats{
		Triangles: scene.Triangles(),
		Vertices:  scene.Vertices(),
		Build:     time.Since(start),
		Runs:      s.surface.Runs(),
	}
	s.log.Debug().
		Float64("angle", p.Angle).
		Int("depth", p.Depth).
		Int("sides", p.Sides).
		Float64("radius", p.Radius).
		Bool("wireframe", p.Wireframe).
		Bool("uniform", p.Uniform).
		Int("triangles", s.stats.Triangles).
		Dur("took", s.stats.Build).
		Msg("app: rebuilt")

	return s.drawPanel()
}

func (s *system) drawPanel() error {
	if s.fb == nil {
		return nil
	}
	s.panel.Draw(s.fb, s.stats)
	return s.fb.Present()
}

func (s *system) step() error {
	if s.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.kbd.Events():
			if err := s.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *system) handle(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	if ev.Code == hal.KeyEscape || ev.Rune == 'q' || ev.Rune == 'Q' {
		return hal.ErrQuit
	}
	mutated, err := s.panel.HandleKey(ev)
	if err != nil {
		return err
	}
	if !mutated {
		// Selection moved: only the highlight changes.
		return s.drawPanel()
	}
	return nil
}
