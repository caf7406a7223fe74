// Package snapshot composes rendered frames into images and writes them as
// PNG files.
package snapshot

import (
	"fmt"
	"image"

	"gasket/hal"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Compose places scene and panel side by side, top-aligned. Either may be nil.
func Compose(scene, panel image.Image) *image.RGBA {
	var sb, pb image.Rectangle
	if scene != nil {
		sb = scene.Bounds()
	}
	if panel != nil {
		pb = panel.Bounds()
	}
	w := sb.Dx() + pb.Dx()
	h := max(sb.Dy(), pb.Dy())
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(colornames.Whitesmoke)
	dc.Clear()
	if scene != nil {
		dc.DrawImage(scene, 0, 0)
	}
	if panel != nil {
		dc.DrawImage(panel, sb.Dx(), 0)
	}
	return dc.Image().(*image.RGBA)
}

// Save writes img to path as PNG.
func Save(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("save %q: nil image", path)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}

// Cell is one tile of a Grid.
type Cell struct {
	Col, Row int
	GPU      hal.GPU
}

// Grid renders cols x rows square tiles of size cell. draw is called once
// per tile with a software GPU whose viewport is that tile, and returns the
// caption printed in the tile's corner.
func Grid(cols, rows, cell int, draw func(c Cell) (string, error)) (*image.RGBA, error) {
	if cols <= 0 || rows <= 0 || cell <= 0 {
		return nil, fmt.Errorf("grid %dx%d of %dpx: empty", cols, rows, cell)
	}
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	captions := make([]string, 0, cols*rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			gpu, err := hal.NewSoftwareGPU(sheet.SubImage(r).(*image.RGBA))
			if err != nil {
				return nil, err
			}
			caption, err := draw(Cell{Col: col, Row: row, GPU: gpu})
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", col, row, err)
			}
			captions = append(captions, caption)
		}
	}

	dc := gg.NewContextForRGBA(sheet)
	dc.SetColor(colornames.Darkslategray)
	for i, caption := range captions {
		if caption == "" {
			continue
		}
		col, row := i%cols, i/cols
		dc.DrawString(caption, float64(col*cell+4), float64(row*cell+14))
	}
	dc.SetColor(colornames.Silver)
	dc.SetLineWidth(1)
	for col := 1; col < cols; col++ {
		x := float64(col*cell) + 0.5
		dc.DrawLine(x, 0, x, float64(rows*cell))
	}
	for row := 1; row < rows; row++ {
		y := float64(row*cell) + 0.5
		dc.DrawLine(0, y, float64(cols*cell), y)
	}
	dc.Stroke()
	return sheet, nil
}
