// Package sand implements a falling-sand cellular automaton: a grid of typed
// particles that sink, rise, flow and react with their neighbors once per tick.
//
// A World is not safe for concurrent use. Advance, Paint and Initialize each
// run to completion and must be serialized by the host.
package sand

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/bits-and-blooms/bitset"

	"mad-sand/internal/core"
)

// Persistence stores the encoded grid between sessions.
type Persistence interface {
	// Load returns the stored blob; ok is false when nothing is stored.
	Load() (blob string, ok bool, err error)
	Save(blob string) error
	Discard() error
}

// Option customizes a World at construction.
type Option func(*World)

// WithPersistence attaches a snapshot store consulted on first
// initialization and written by Save.
func WithPersistence(p Persistence) Option {
	return func(w *World) { w.store = p }
}

// WithRegistry replaces the built-in element registry.
func WithRegistry(r *Registry) Option {
	return func(w *World) { w.reg = r }
}

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// World is the complete simulation state: grid, tuning, random source and
// per-tick bookkeeping.
type World struct {
	cfg    Config
	params Params
	reg    *Registry

	grid  *Grid
	walls bool

	visited *bitset.BitSet
	rng     *core.RNG
	tick    uint64

	store   Persistence
	log     *slog.Logger
	palette []color.RGBA

	// onProcess observes every cell evaluation; used by tests.
	onProcess func(x, y int, e Element)
}

// New returns a World with a w×h cell grid using the default tuning.
func New(w, h int, opts ...Option) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig validates cfg and the element registry, then allocates a
// grid of cfg.Width×cfg.Height cells.
func NewWithConfig(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		params: cfg.Params,
		walls:  cfg.Walls,
		rng:    core.NewRNG(cfg.Seed),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.reg == nil {
		reg, err := DefaultRegistry()
		if err != nil {
			return nil, fmt.Errorf("element registry: %w", err)
		}
		w.reg = reg
	}
	w.Initialize(cfg.Width*CellSize, cfg.Height*CellSize, cfg.Walls)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions in cells.
func (w *World) Size() core.Size {
	if w.grid == nil {
		return core.Size{}
	}
	return core.Size{W: w.grid.Width(), H: w.grid.Height()}
}

// Cells exposes the current element ids in row-major order.
func (w *World) Cells() []uint8 {
	if w.grid == nil {
		return nil
	}
	return w.grid.Cells()
}

// Width returns the grid width in cells.
func (w *World) Width() int { return w.Size().W }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.Size().H }

// CellSizePixels returns the edge length of one cell on screen.
func (w *World) CellSizePixels() int { return CellSize }

// Walls reports whether the border ring is walled.
func (w *World) Walls() bool { return w.walls }

// Tick returns the number of completed Advance calls.
func (w *World) Tick() uint64 { return w.tick }

// Registry exposes the element metadata in use.
func (w *World) Registry() *Registry { return w.reg }

// ColorOf returns the display color of e.
func (w *World) ColorOf(e Element) color.RGBA { return w.reg.ColorOf(e) }

// CellAt returns the element at (x, y), or Empty outside the grid.
func (w *World) CellAt(x, y int) Element {
	if w.grid == nil {
		return Empty
	}
	e, _ := w.grid.At(x, y)
	return e
}

// SetCell writes e at (x, y) unconditionally. Out-of-range coordinates and
// unknown elements are ignored.
func (w *World) SetCell(x, y int, e Element) {
	if w.grid == nil || !e.Valid() {
		return
	}
	w.grid.Set(x, y, e)
}

// Reset reseeds the random source and empties the grid. A zero seed reuses
// the configured seed. The persisted snapshot is left untouched.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Seed(seed)
	w.tick = 0
	if w.grid != nil {
		w.grid.Clear()
	}
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Advance() }

// SetWalls toggles the border ring. Before a grid exists only the desired
// state is recorded.
func (w *World) SetWalls(enabled bool) {
	w.walls = enabled
	if w.grid == nil {
		return
	}
	w.grid.SetWalls(enabled)
}

// Clear empties the grid, re-applies walls and discards any stored snapshot.
func (w *World) Clear() {
	if w.grid != nil {
		w.grid.Clear()
	}
	if w.store == nil {
		return
	}
	if err := w.store.Discard(); err != nil {
		w.log.Warn("discard snapshot", "error", err)
	}
}

// Snapshot encodes the current grid. It returns "" before initialization.
func (w *World) Snapshot() string {
	if w.grid == nil {
		return ""
	}
	return EncodeSnapshot(w.grid)
}

// Save writes the current grid to the attached store. It is a no-op without
// a store or grid.
func (w *World) Save() error {
	if w.store == nil || w.grid == nil {
		return nil
	}
	if err := w.store.Save(EncodeSnapshot(w.grid)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Census counts cells per element.
type Census [elementCount]int

// Count returns the number of cells holding e.
func (c Census) Count(e Element) int {
	if !e.Valid() {
		return 0
	}
	return c[e]
}

// Census tallies the current grid.
func (w *World) Census() Census {
	var c Census
	for _, v := range w.Cells() {
		c[v]++
	}
	return c
}
