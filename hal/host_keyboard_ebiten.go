//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	repeatDelayTicks    = 24
	repeatIntervalTicks = 4
)

var ebitenKeys = [...]struct {
	key    ebiten.Key
	code   KeyCode
	repeat bool
}{
	{ebiten.KeyArrowUp, KeyUp, true},
	{ebiten.KeyArrowDown, KeyDown, true},
	{ebiten.KeyArrowLeft, KeyLeft, true},
	{ebiten.KeyArrowRight, KeyRight, true},
	{ebiten.KeyEnter, KeyEnter, false},
	{ebiten.KeyEscape, KeyEscape, false},
	{ebiten.KeyTab, KeyTab, false},
	{ebiten.KeyHome, KeyHome, false},
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	for _, m := range ebitenKeys {
		if inpututil.IsKeyJustReleased(m.key) {
			k.push(KeyEvent{Code: m.code, Press: false})
			continue
		}
		d := inpututil.KeyPressDuration(m.key)
		if d == 0 {
			continue
		}
		// Held arrows auto-repeat so sliders can be dragged with the keyboard.
		if d == 1 || (m.repeat && d >= repeatDelayTicks && (d-repeatDelayTicks)%repeatIntervalTicks == 0) {
			k.push(KeyEvent{Code: m.code, Press: true})
		}
	}
}
