package hal

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	DefaultSceneSize  = 512
	DefaultPanelWidth = 176
)

// Config sizes the host display and carries the logger.
type Config struct {
	// SceneSize is the side of the square scene viewport in pixels.
	SceneSize int
	// PanelWidth is the width of the control strip right of the scene.
	PanelWidth int

	Log zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.SceneSize <= 0 {
		c.SceneSize = DefaultSceneSize
	}
	if c.PanelWidth <= 0 {
		c.PanelWidth = DefaultPanelWidth
	}
	return c
}

type hostHAL struct {
	log    zerolog.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	gpu    GPU
	gpuErr error
}

func newHost(cfg Config, kbd *hostKeyboard, gpu GPU, gpuErr error) *hostHAL {
	if gpu == nil && gpuErr == nil {
		gpuErr = ErrGraphicsUnavailable
	}
	return &hostHAL{
		log:    cfg.Log,
		fb:     newHostFramebuffer(cfg.PanelWidth, cfg.SceneSize),
		kbd:    kbd,
		gpu:    gpu,
		gpuErr: gpuErr,
	}
}

func (h *hostHAL) Logger() zerolog.Logger { return h.log }
func (h *hostHAL) Display() Display       { return hostDisplay{h: h} }
func (h *hostHAL) Input() Input           { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.h.fb }

func (d hostDisplay) GPU() (GPU, error) {
	if d.h.gpuErr != nil {
		return nil, fmt.Errorf("acquire gpu: %w", d.h.gpuErr)
	}
	return d.h.gpu, nil
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
