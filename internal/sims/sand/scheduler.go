package sand

// Advance runs one tick in three passes:
//
//   - A: rows bottom to top, each scanned in a random horizontal direction;
//   - B: static solids that have not had their turn yet (interaction only);
//   - C: rows top to bottom for buoyant cells that have not had their turn,
//     so gas created earlier in the tick can still rise.
//
// A cell's turn is taken at most once per tick. The visited set marks the
// cell when its turn starts and the destination of every swap. Empty cells
// have no turn, so particles written into previously empty cells by a
// reaction are still eligible later in the same tick.
func (w *World) Advance() {
	if w.grid == nil {
		return
	}
	w.visited.ClearAll()
	width, height := w.grid.Width(), w.grid.Height()

	for y := height - 1; y >= 0; y-- {
		if w.rng.Bool() {
			for x := 0; x < width; x++ {
				w.process(x, y)
			}
			continue
		}
		for x := width - 1; x >= 0; x-- {
			w.process(x, y)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if w.reg.IsStaticSolid(w.grid.get(w.grid.index(x, y))) {
				w.process(x, y)
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if w.reg.IsBuoyant(w.grid.get(w.grid.index(x, y))) {
				w.process(x, y)
			}
		}
	}

	w.tick++
}

// process gives the cell at (x, y) its turn: movement first, then, if the
// particle stayed put, its reaction.
func (w *World) process(x, y int) {
	i := w.grid.index(x, y)
	if w.visited.Test(uint(i)) {
		return
	}
	e := w.grid.get(i)
	if e == Empty {
		return
	}
	w.visited.Set(uint(i))
	if w.onProcess != nil {
		w.onProcess(x, y, e)
	}

	if !w.reg.IsStaticSolid(e) && w.move(x, y, e) {
		return
	}
	if react := reactions[e]; react != nil {
		react(w, x, y)
	}
}

// swap exchanges two cells and marks the destination as done for the tick.
func (w *World) swap(x, y, nx, ny int) {
	a, b := w.grid.index(x, y), w.grid.index(nx, ny)
	w.grid.cells.Swap(a, b)
	w.visited.Set(uint(b))
}

// at is a bounds-checked read; ok is false outside the grid.
func (w *World) at(x, y int) (Element, bool) { return w.grid.At(x, y) }

func (w *World) is(x, y int, e Element) bool {
	got, ok := w.grid.At(x, y)
	return ok && got == e
}

func (w *World) isEmpty(x, y int) bool { return w.is(x, y, Empty) }

// set writes e at (x, y); out-of-range writes are dropped.
func (w *World) set(x, y int, e Element) { w.grid.Set(x, y, e) }
