package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len reports the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). The second result is false when the
// coordinates fall outside the grid.
func (g *ByteGrid) At(x, y int) (uint8, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.data[y*g.W+x], true
}

// Set writes v at (x, y). Out-of-range writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Swap exchanges the values stored at linear indices a and b.
func (g *ByteGrid) Swap(a, b int) {
	g.data[a], g.data[b] = g.data[b], g.data[a]
}

// Fill writes v into every cell.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }

// FillRing writes v into the outermost ring of cells: the first and last
// rows and columns.
func (g *ByteGrid) FillRing(v uint8) {
	if g.W == 0 || g.H == 0 {
		return
	}
	for x := 0; x < g.W; x++ {
		g.data[x] = v
		g.data[(g.H-1)*g.W+x] = v
	}
	for y := 0; y < g.H; y++ {
		g.data[y*g.W] = v
		g.data[y*g.W+g.W-1] = v
	}
}

// OnRing reports whether (x, y) lies on the outermost ring.
func (g *ByteGrid) OnRing(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}
