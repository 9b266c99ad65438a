package app

import (
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/ui"
)

// hiddenFromPalette are transient states that only reactions produce.
var hiddenFromPalette = map[sand.Element]bool{
	sand.FuseIgniting: true,
}

// Swatches lists the paintable elements in id order, eraser first.
func Swatches(world *sand.World) []ui.Swatch {
	out := make([]ui.Swatch, 0, sand.NumElements)
	for i := 0; i < sand.NumElements; i++ {
		e := sand.Element(i)
		if hiddenFromPalette[e] {
			continue
		}
		out = append(out, ui.Swatch{ID: uint8(e), Label: e.String(), Color: world.ColorOf(e)})
	}
	return out
}
