package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Config

	Enabled bool
	Hz      int
	// Ticks stops the run after N ticks (0 = run until ctx is done).
	Ticks uint64
	// Script is fed to the keyboard one event per tick (see ParseScript).
	Script []KeyEvent
}

// Frame is the last rendered output of a headless run.
type Frame struct {
	Scene *image.RGBA
	Panel *image.RGBA
}

// RunHeadless runs the app without opening a window, rendering the scene
// with the software rasterizer. It returns the final frame.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (func() error, error)) (Frame, error) {
	cfg.Config = cfg.Config.withDefaults()
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return Frame{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	scene := image.NewRGBA(image.Rect(0, 0, cfg.SceneSize, cfg.SceneSize))
	gpu, gpuErr := NewSoftwareGPU(scene)
	kbd := newHostKeyboard()
	h := newHost(cfg.Config, kbd, gpu, gpuErr)

	frame := func() Frame {
		return Frame{Scene: scene, Panel: FramebufferImage(h.fb)}
	}

	step, err := newApp(h)
	if err != nil {
		return Frame{}, err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	script := cfg.Script
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return frame(), ctx.Err()
		case <-t.C:
			if len(script) > 0 {
				kbd.push(script[0])
				script = script[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return frame(), nil
					}
					return frame(), err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return frame(), nil
			}
		}
	}
}
