package sand

import "github.com/bits-and-blooms/bitset"

// Initialize sizes the grid for a canvas of pixelWidth×pixelHeight. When the
// cell dimensions are unchanged nothing happens. Otherwise a fresh grid is
// allocated and seeded, centered, from the previous grid or, on first use,
// from the stored snapshot.
func (w *World) Initialize(pixelWidth, pixelHeight int, walls bool) {
	newW := pixelWidth / CellSize
	newH := pixelHeight / CellSize
	if newW < 0 {
		newW = 0
	}
	if newH < 0 {
		newH = 0
	}
	if w.grid != nil && w.grid.Width() == newW && w.grid.Height() == newH {
		return
	}
	w.walls = walls

	var (
		src    Snapshot
		hasSrc bool
	)
	if w.grid != nil {
		src, hasSrc = snapshotOf(w.grid), true
	} else {
		src, hasSrc = w.loadSnapshot()
	}

	next := NewGrid(newW, newH, walls)
	if hasSrc {
		paste(next, src)
		next.SetWalls(walls)
	}
	w.log.Debug("grid resized", "width", newW, "height", newH, "seeded", hasSrc)

	w.grid = next
	w.visited = bitset.New(uint(next.Len()))
}

// paste copies src into dst centered, skipping source walls and anything
// that falls outside dst.
func paste(dst *Grid, src Snapshot) {
	offX := floorDiv(dst.Width()-src.W, 2)
	offY := floorDiv(dst.Height()-src.H, 2)
	for y := 0; y < src.H; y++ {
		ny := y + offY
		if ny < 0 || ny >= dst.Height() {
			continue
		}
		for x := 0; x < src.W; x++ {
			nx := x + offX
			if nx < 0 || nx >= dst.Width() {
				continue
			}
			if e := src.at(x, y); e != Wall {
				dst.Set(nx, ny, e)
			}
		}
	}
}

func (w *World) loadSnapshot() (Snapshot, bool) {
	if w.store == nil {
		return Snapshot{}, false
	}
	blob, ok, err := w.store.Load()
	if err != nil {
		w.log.Warn("load snapshot", "error", err)
		return Snapshot{}, false
	}
	if !ok {
		return Snapshot{}, false
	}
	snap, ok := DecodeSnapshot(blob)
	if !ok {
		w.log.Warn("discarding malformed snapshot", "bytes", len(blob))
	}
	return snap, ok
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
