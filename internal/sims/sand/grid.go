package sand

import "mad-sand/internal/core"

// Grid is the row-major store of element ids together with the walls flag.
// With walls enabled the outer ring always holds Wall.
type Grid struct {
	cells *core.ByteGrid
	walls bool
}

// NewGrid allocates a w×h grid of Empty cells and applies walls if enabled.
func NewGrid(w, h int, walls bool) *Grid {
	g := &Grid{cells: core.NewByteGrid(w, h)}
	g.SetWalls(walls)
	return g
}

func (g *Grid) Width() int  { return g.cells.W }
func (g *Grid) Height() int { return g.cells.H }

// Walls reports whether the border ring is walled.
func (g *Grid) Walls() bool { return g.walls }

// Len reports the number of cells.
func (g *Grid) Len() int { return g.cells.Len() }

// Cells exposes the backing ids for rendering and encoding.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// At returns the element at (x, y); ok is false outside the grid.
func (g *Grid) At(x, y int) (Element, bool) {
	v, ok := g.cells.At(x, y)
	return Element(v), ok
}

// OnWallRing reports whether (x, y) belongs to the enabled wall ring.
func (g *Grid) OnWallRing(x, y int) bool {
	return g.walls && g.cells.InBounds(x, y) && g.cells.OnRing(x, y)
}

// Set writes e at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, e Element) { g.cells.Set(x, y, uint8(e)) }

// SetWalls writes Wall (enabled) or Empty (disabled) into the outer ring.
func (g *Grid) SetWalls(enabled bool) {
	g.walls = enabled
	if enabled {
		g.cells.FillRing(uint8(Wall))
		return
	}
	g.cells.FillRing(uint8(Empty))
}

// Clear empties every cell and re-applies the walls.
func (g *Grid) Clear() {
	g.cells.Clear()
	if g.walls {
		g.cells.FillRing(uint8(Wall))
	}
}

func (g *Grid) index(x, y int) int { return g.cells.Index(x, y) }

func (g *Grid) get(i int) Element { return Element(g.cells.Cells()[i]) }
