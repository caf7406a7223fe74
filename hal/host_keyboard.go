package hal

import (
	"fmt"
	"strings"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// push queues ev, dropping it when the queue is full.
func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

var keyNames = map[string]KeyCode{
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
	"enter": KeyEnter,
	"esc":   KeyEscape,
	"tab":   KeyTab,
	"home":  KeyHome,
}

// ParseScript parses a comma or space separated list of key names
// (up, down, left, right, enter, esc, tab, home) or single characters into
// key press events.
func ParseScript(s string) ([]KeyEvent, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]KeyEvent, 0, len(fields))
	for _, f := range fields {
		if code, ok := keyNames[strings.ToLower(f)]; ok {
			out = append(out, KeyEvent{Code: code, Press: true})
			continue
		}
		r := []rune(f)
		if len(r) != 1 {
			return nil, fmt.Errorf("script: unknown key %q", f)
		}
		out = append(out, KeyEvent{Press: true, Rune: r[0]})
	}
	return out, nil
}
