package render

import "image/color"

// Tint overrides the palette color of cell i. It reports false to keep the
// palette color.
type Tint func(i int, v uint8) (color.RGBA, bool)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values
// beyond the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA, tint Tint) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		if tint != nil {
			if t, ok := tint(i, c); ok {
				col = t
			}
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
