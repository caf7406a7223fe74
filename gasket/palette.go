package gasket

import (
	"image/color"
	"math/rand"
	"time"
)

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R, G, B float32
}

// RGBA returns c as an opaque 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: 0xFF}
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

// Palette holds the colors leaf triangles are painted with.
var Palette = [4]Color{
	{R: 0.937, G: 0.113, B: 0.372},
	{R: 0.058, G: 0.662, B: 0.329},
	{R: 0.0, G: 0.682, B: 1.0},
	{R: 0.329, G: 0.223, B: 0.431},
}

// Source picks palette entries. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Colorizer assigns one palette color per leaf triangle.
type Colorizer struct {
	src Source
}

// NewColorizer returns a Colorizer drawing from src.
//
// A nil src uses a time-seeded generator, so colors differ between runs.
func NewColorizer(src Source) *Colorizer {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Colorizer{src: src}
}

// Next returns the next color and its palette index.
func (c *Colorizer) Next() (Color, int) {
	n := len(Palette)
	i := c.src.Intn(n) % n
	if i < 0 {
		i += n
	}
	return Palette[i], i
}
