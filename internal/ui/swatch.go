package ui

import (
	"image"
	"image/color"
)

// Swatch is one selectable element on the HUD palette.
type Swatch struct {
	ID    uint8
	Label string
	Color color.RGBA
}

// swatchColumns returns how many swatches fit on one row of a panel.
func swatchColumns(width int) int {
	usable := width - 2*panelPadding + swatchGap
	cols := usable / (swatchSize + swatchGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// layoutSwatches places n swatches in rows starting at top and returns their
// rectangles along with the bottom edge of the grid.
func layoutSwatches(n, width, top int) ([]image.Rectangle, int) {
	if n == 0 {
		return nil, top
	}
	cols := swatchColumns(width)
	rects := make([]image.Rectangle, n)
	for i := range rects {
		col, row := i%cols, i/cols
		x := panelPadding + col*(swatchSize+swatchGap)
		y := top + row*(swatchSize+swatchGap)
		rects[i] = image.Rect(x, y, x+swatchSize, y+swatchSize)
	}
	rows := (n + cols - 1) / cols
	return rects, top + rows*(swatchSize+swatchGap)
}

// swatchAt returns the index of the swatch under (x, y), or -1.
func swatchAt(rects []image.Rectangle, x, y int) int {
	for i, r := range rects {
		if pointInRect(x, y, r) {
			return i
		}
	}
	return -1
}
