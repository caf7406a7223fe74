//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"image"

	"gasket/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window with the scene on the left and the
// panel framebuffer on the right, and forwards keyboard input. newApp runs
// once the window is up; an error from it (for example
// ErrGraphicsUnavailable) stops the window and is returned.
//
// It blocks until the window closes or Escape is pressed.
func RunWindow(cfg Config, newApp func(HAL) (func() error, error)) error {
	cfg = cfg.withDefaults()
	g := &hostGame{cfg: cfg, newApp: newApp}
	ebiten.SetWindowTitle(buildinfo.Title("gasket"))
	ebiten.SetWindowSize(cfg.SceneSize+cfg.PanelWidth, cfg.SceneSize)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	switch {
	case err == nil || errors.Is(err, ebiten.Termination):
		return nil
	case g.h == nil:
		// The window never came up far enough to load the app.
		return fmt.Errorf("%w: %v", ErrGraphicsUnavailable, err)
	default:
		return err
	}
}

type hostGame struct {
	cfg    Config
	newApp func(HAL) (func() error, error)

	h    *hostHAL
	step func() error

	gpu   *ebitenGPU
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *hostGame) load() error {
	kbd := newHostKeyboard()
	gpu, err := newEbitenGPU(g.cfg.SceneSize, g.cfg.SceneSize)
	if err != nil {
		g.h = newHost(g.cfg, kbd, nil, err)
	} else {
		g.gpu = gpu
		g.h = newHost(g.cfg, kbd, gpu, nil)
	}
	step, err := g.newApp(g.h)
	if err != nil {
		return err
	}
	g.step = step
	return nil
}

func (g *hostGame) Update() error {
	if g.h == nil {
		if err := g.load(); err != nil {
			return err
		}
	}
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.h == nil {
		return
	}
	if g.gpu != nil {
		screen.DrawImage(g.gpu.canvas, nil)
	}

	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	fb.copyRGBA(g.img)
	g.fbImg.WritePixels(g.img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.cfg.SceneSize), 0)
	screen.DrawImage(g.fbImg, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.SceneSize + g.cfg.PanelWidth, g.cfg.SceneSize
}
