package sand

import "image/color"

// Palette maps element ids to display colors. Empty is transparent so the
// renderer's background shows through.
func (w *World) Palette() []color.RGBA {
	if w.palette == nil {
		w.palette = buildPalette(w.reg)
	}
	return w.palette
}

func buildPalette(reg *Registry) []color.RGBA {
	palette := make([]color.RGBA, NumElements)
	for i := range palette {
		if e := Element(i); e != Empty {
			palette[i] = reg.ColorOf(e)
		}
	}
	return palette
}
