package sand

// Paint places e in a disk around (cx, cy). The radius in cells is half the
// brush diameter, which is given in screen pixels.
//
// Static solids and Empty overwrite anything; every other element only fills
// empty cells, so sand drawn over water leaves the water alone.
func (w *World) Paint(cx, cy int, e Element, brushPx int) {
	if w.grid == nil || !e.Valid() {
		return
	}
	radius := brushPx / CellSize / 2
	if radius < 0 {
		radius = 0
	}
	force := e == Empty || w.reg.IsStaticSolid(e)
	r2 := radius * radius
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i*i+j*j > r2 {
				continue
			}
			cur, ok := w.at(cx+i, cy+j)
			if !ok {
				continue
			}
			if force || cur == Empty {
				w.set(cx+i, cy+j, e)
			}
		}
	}
}

// PaintLine stamps the brush at every cell of the line from (x0, y0) to
// (x1, y1) so fast pointer drags leave no gaps.
func (w *World) PaintLine(x0, y0, x1, y1 int, e Element, brushPx int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		w.Paint(x0, y0, e, brushPx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
