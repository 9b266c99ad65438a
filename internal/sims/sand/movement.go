package sand

// move runs the movement phase for e at (x, y). It reports true when the
// cell's turn is over, either because the particle moved, left the world or
// sat out the tick.
func (w *World) move(x, y int, e Element) bool {
	if !w.grid.Walls() && w.exits(x, y, e) {
		w.set(x, y, Empty)
		return true
	}

	switch w.reg.Class(e) {
	case ClassBuoyant:
		return w.rise(x, y)
	case ClassMobile:
		return w.sink(x, y, e)
	}
	return false
}

// exits reports whether e at (x, y) would leave an unwalled world: buoyant
// particles through the top row, anything with mass through the other edges.
func (w *World) exits(x, y int, e Element) bool {
	if y <= 0 && w.reg.IsBuoyant(e) {
		return true
	}
	if w.reg.Density(e) <= w.reg.Density(Empty) {
		return false
	}
	return y >= w.grid.Height()-1 || x <= 0 || x >= w.grid.Width()-1
}

// rise moves a buoyant particle up, diagonally up, or sideways into empty
// space. Gas only tries to move some of the time.
func (w *World) rise(x, y int) bool {
	if !w.rng.Chance(w.params.GasMoveChance) {
		return false
	}
	dir := w.rng.Sign()
	switch {
	case w.isEmpty(x, y-1):
		w.swap(x, y, x, y-1)
	case w.isEmpty(x+dir, y-1):
		w.swap(x, y, x+dir, y-1)
	case w.isEmpty(x+dir, y):
		w.swap(x, y, x+dir, y)
	default:
		return false
	}
	return true
}

// sink moves powders and liquids down, diagonally down and, for liquids,
// sideways.
func (w *World) sink(x, y int, e Element) bool {
	if w.rng.Chance(w.params.Viscosity(e)) {
		return true
	}

	density := w.reg.Density(e)
	// Only strictly denser particles sink, so a lighter one can never rise
	// through a column that is still falling.
	if below, ok := w.at(x, y+1); ok && w.sinksInto(density, below) {
		w.swap(x, y, x, y+1)
		return true
	}

	dir := w.rng.Sign()
	if n, ok := w.at(x+dir, y+1); ok && w.sinksInto(density, n) {
		w.swap(x, y, x+dir, y+1)
		return true
	}
	if n, ok := w.at(x-dir, y+1); ok && w.sinksInto(density, n) {
		w.swap(x, y, x-dir, y+1)
		return true
	}

	if !w.reg.IsLiquid(e) {
		return false
	}
	if w.isEmpty(x+dir, y) {
		w.swap(x, y, x+dir, y)
		return true
	}
	if w.isEmpty(x-dir, y) {
		w.swap(x, y, x-dir, y)
		return true
	}
	return false
}

// sinksInto reports whether a particle of the given density may displace
// target: target must be strictly lighter and not a static solid.
func (w *World) sinksInto(density float64, target Element) bool {
	return density > w.reg.Density(target) && !w.reg.IsStaticSolid(target)
}
