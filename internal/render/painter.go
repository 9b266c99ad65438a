//go:build ebiten

package render

import (
	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette-indexed cells into an image with one pixel per
// cell and draws it scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.Resize(w, h)
	return gp
}

// Resize reallocates the backing image when the grid dimensions change.
func (gp *GridPainter) Resize(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = nil
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
}

// Draw uploads the cells of sim into the painter image, following its size,
// and draws it scaled by scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, sim core.PalettedSim, tint Tint, scale int) {
	size := sim.Size()
	gp.Resize(size.W, size.H)
	cells := sim.Cells()
	if gp.img == nil || len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, sim.Palette(), tint)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
