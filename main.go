package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gasket/app"
	"gasket/gasket"
	"gasket/hal"
	"gasket/internal/buildinfo"
	"gasket/params"
	"gasket/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gasket:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var script, out, logLevel string
	var fan bool

	p := params.Defaults()
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window, rendering on the CPU.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&script, "script", "", "Headless key script, one key per tick (e.g. \"down,right,w,esc\").")
	flag.StringVar(&out, "out", "", "Write the final headless frame to this PNG file.")
	flag.IntVar(&cfg.SceneSize, "scene-size", hal.DefaultSceneSize, "Scene viewport side in pixels.")
	flag.Float64Var(&p.Angle, "angle", p.Angle, "Rotation angle in radians.")
	flag.IntVar(&p.Depth, "depth", p.Depth, "Subdivision depth.")
	flag.IntVar(&p.Sides, "sides", p.Sides, "Polygon sides.")
	flag.Float64Var(&p.Radius, "radius", p.Radius, "Polygon radius in clip space.")
	flag.BoolVar(&p.Wireframe, "wireframe", p.Wireframe, "Draw triangle outlines only.")
	flag.BoolVar(&p.Uniform, "uniform", p.Uniform, "Rotate every vertex by the same angle instead of swirling.")
	flag.BoolVar(&fan, "fan-triangle", false, "Build a three-sided polygon as a fan around the center.")
	flag.Int64Var(&appCfg.Seed, "seed", 0, "Color seed (0 = from the clock).")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.Parse()

	if err := p.Validate(); err != nil {
		return err
	}
	appCfg.Params = p
	appCfg.Polygon = gasket.PolygonOptions{FanTriangle: fan}

	log, err := hal.NewLogger(os.Stderr, logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	cfg.Log = log
	log.Info().Str("version", buildinfo.Short()).Bool("headless", cfg.Enabled).Msg("gasket: starting")

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, appCfg)
	}

	if !cfg.Enabled {
		if out != "" || script != "" {
			return errors.New("-out and -script need -headless")
		}
		return hal.RunWindow(cfg.Config, newApp)
	}

	if cfg.Script, err = hal.ParseScript(script); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, err := hal.RunHeadless(ctx, cfg, newApp)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if out == "" || frame.Scene == nil {
		return nil
	}
	if err := snapshot.Save(out, snapshot.Compose(frame.Scene, frame.Panel)); err != nil {
		return err
	}
	log.Info().Str("path", out).Msg("gasket: snapshot written")
	return nil
}
