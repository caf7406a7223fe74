// Command gasketsheet renders a contact sheet of gaskets: one column per
// polygon side count and one row per subdivision depth.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"gasket/gasket"
	"gasket/hal"
	"gasket/params"
	"gasket/render"
	"gasket/snapshot"

	"github.com/rs/zerolog"
)

type sheetConfig struct {
	Out       string
	Cell      int
	Depth     int
	Radius    float64
	Angle     float64
	Uniform   bool
	Wireframe bool
	Seed      int64
}

func main() {
	var cfg sheetConfig
	var logLevel string
	flag.StringVar(&cfg.Out, "out", "sheet.png", "Output PNG path.")
	flag.IntVar(&cfg.Cell, "cell", 160, "Tile side in pixels.")
	flag.IntVar(&cfg.Depth, "depth", 4, "Deepest subdivision row.")
	flag.Float64Var(&cfg.Radius, "radius", 0.9, "Polygon radius in clip space.")
	flag.Float64Var(&cfg.Angle, "angle", 0.2, "Rotation angle in radians.")
	flag.BoolVar(&cfg.Uniform, "uniform", false, "Rotate every vertex by the same angle.")
	flag.BoolVar(&cfg.Wireframe, "wireframe", false, "Draw triangle outlines only.")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Color seed (0 = from the clock).")
	flag.StringVar(&logLevel, "log-level", "info", "Log level.")
	flag.Parse()

	log, err := hal.NewLogger(os.Stderr, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gasketsheet:", err)
		os.Exit(2)
	}
	if err := run(cfg, log); err != nil {
		fmt.Fprintln(os.Stderr, "gasketsheet:", err)
		os.Exit(1)
	}
}

func run(cfg sheetConfig, log zerolog.Logger) error {
	p := params.Parameters{
		Angle:     cfg.Angle,
		Depth:     cfg.Depth,
		Sides:     params.MinSides,
		Radius:    cfg.Radius,
		Wireframe: cfg.Wireframe,
		Uniform:   cfg.Uniform,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	var src gasket.Source
	if cfg.Seed != 0 {
		src = rand.New(rand.NewSource(cfg.Seed))
	}

	cols := params.MaxSides - params.MinSides + 1
	total := 0
	sheet, err := snapshot.Grid(cols, cfg.Depth, cfg.Cell, func(c snapshot.Cell) (string, error) {
		sides, depth := params.MinSides+c.Col, 1+c.Row
		scene := gasket.Build(gasket.BuildConfig{
			Sides:   sides,
			Depth:   depth,
			Radius:  cfg.Radius,
			Angle:   cfg.Angle,
			Uniform: cfg.Uniform,
			Source:  src,
		})
		render.New(c.GPU, log).Render(scene, cfg.Wireframe)
		total += scene.Triangles()
		return fmt.Sprintf("n=%d d=%d", sides, depth), nil
	})
	if err != nil {
		return err
	}
	if err := snapshot.Save(cfg.Out, sheet); err != nil {
		return err
	}
	log.Info().
		Str("path", cfg.Out).
		Int("cells", cols*cfg.Depth).
		Int("triangles", total).
		Msg("gasketsheet: written")
	return nil
}
