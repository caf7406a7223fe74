package hal

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrGraphicsUnavailable is returned when no rendering context can be
// acquired. It is fatal: nothing is drawn without one.
var ErrGraphicsUnavailable = errors.New("graphics context unavailable")

// ErrQuit is returned by an app step to end the run loop normally.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Primitive selects how GPU.DrawArrays assembles vertices.
type Primitive uint8

const (
	PrimitiveTriangles Primitive = iota + 1
	PrimitiveLineLoop
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveTriangles:
		return "TRIANGLES"
	case PrimitiveLineLoop:
		return "LINE_LOOP"
	default:
		return "UNKNOWN"
	}
}

// GPU is a minimal immediate-mode rasterization context.
//
// Positions are clip-space x,y pairs in [-1,1] with y up. Colors are r,g,b
// triples in [0,1], one per vertex. Buffers stay bound until replaced.
type GPU interface {
	Viewport() (w, h int)
	Clear(r, g, b, a float32)
	BufferPositions(data []float32)
	BufferColors(data []float32)
	DrawArrays(mode Primitive, first, count int)
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyHome
)

// KeyEvent is a keyboard event. Code is KeyUnknown for text input, in which
// case Rune holds the character.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides the panel framebuffer and the scene rendering context.
type Display interface {
	Framebuffer() Framebuffer
	GPU() (GPU, error)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the program and the host.
type HAL interface {
	Logger() zerolog.Logger
	Display() Display
	Input() Input
}
