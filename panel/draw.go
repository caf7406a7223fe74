package panel

import (
	"fmt"
	"image/color"
	"time"

	"gasket/hal"
	"gasket/quarkgl"

	"golang.org/x/image/colornames"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Stats is the pipeline summary shown under the controls.
type Stats struct {
	Triangles int
	Vertices  int
	Build     time.Duration
	Runs      uint64
}

const (
	marginX    = 8
	lineHeight = 14
	baseline   = 11
	rowsTop    = 34
)

var (
	colorBackground = colornames.Whitesmoke
	colorTitle      = colornames.Black
	colorLabel      = colornames.Dimgray
	colorSelected   = colornames.Crimson
	colorHighlight  = colornames.Lightsteelblue
	colorStats      = colornames.Darkslategray
	colorHelp       = colornames.Gray
)

var helpLines = []string{
	"up/down  select",
	"left/right  adjust",
	"enter  toggle",
	"home  reset",
	"w wire  u uniform",
	"r recolor  esc quit",
}

var font tinyfont.Fonter = &proggy.TinySZ8pt7b

// Draw renders the panel into fb, which must be RGB565. Presenting fb is
// left to the caller.
func (p *Panel) Draw(fb hal.Framebuffer, st Stats) {
	if p == nil || p.s == nil || fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	bg := colorBackground
	fb.ClearRGB(bg.R, bg.G, bg.B)
	d := newFBDisplayer(fb)
	w := int16(fb.Width())

	writeLine(d, marginX, 0, "gasket", colorTitle)

	cur := p.s.Params()
	for i, c := range p.controls {
		y := int16(rowsTop + i*lineHeight)
		fg := colorLabel
		if i == p.sel {
			d.fillRect(0, y, w, lineHeight, colorHighlight)
			fg = colorSelected
		}
		writeLine(d, marginX, y, c.String(), fg)
		v := c.Format(cur)
		_, vw := tinyfont.LineWidth(font, v)
		writeLine(d, w-marginX-int16(vw), y, v, fg)
	}

	y := int16(rowsTop + (len(p.controls)+1)*lineHeight)
	for _, s := range []string{
		fmt.Sprintf("triangles %d", st.Triangles),
		fmt.Sprintf("vertices %d", st.Vertices),
		fmt.Sprintf("build %.1fms", float64(st.Build.Microseconds())/1000),
		fmt.Sprintf("runs %d", st.Runs),
	} {
		writeLine(d, marginX, y, s, colorStats)
		y += lineHeight
	}

	y = int16(fb.Height()) - int16(len(helpLines))*lineHeight - 4
	for _, s := range helpLines {
		writeLine(d, marginX, y, s, colorHelp)
		y += lineHeight
	}
}

func writeLine(d drivers.Displayer, x, top int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, x, top+baseline, s, c)
}

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer.
type fbDisplayer struct {
	t *quarkgl.RGB565Target
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func newFBDisplayer(fb hal.Framebuffer) *fbDisplayer {
	return &fbDisplayer{t: quarkgl.NewRGB565Target(fb.Buffer(), fb.StrideBytes(), fb.Width(), fb.Height())}
}

func (d *fbDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), quarkgl.RGB(c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) fillRect(x, y, w, h int16, c color.RGBA) {
	d.t.FillRect(int(x), int(y), int(w), int(h), quarkgl.RGB(c.R, c.G, c.B))
}
