package sand

import (
	"slices"
	"testing"
)

func newWorld(t *testing.T, w, h int, walls bool, tune func(*Params)) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Walls = walls
	if tune != nil {
		tune(&cfg.Params)
	}
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return world
}

type memPersistence struct {
	blob      string
	stored    bool
	saves     int
	discards  int
	loadError error
}

func (m *memPersistence) Load() (string, bool, error) {
	if m.loadError != nil {
		return "", false, m.loadError
	}
	return m.blob, m.stored, nil
}

func (m *memPersistence) Save(blob string) error {
	m.blob, m.stored = blob, true
	m.saves++
	return nil
}

func (m *memPersistence) Discard() error {
	m.blob, m.stored = "", false
	m.discards++
	return nil
}

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := New(10, -1); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestQuerySurface(t *testing.T) {
	world := newWorld(t, 12, 7, true, nil)
	if world.Width() != 12 || world.Height() != 7 {
		t.Fatalf("expected 12x7, got %dx%d", world.Width(), world.Height())
	}
	if world.CellSizePixels() != CellSize {
		t.Fatalf("expected cell size %d, got %d", CellSize, world.CellSizePixels())
	}
	if world.Name() != "sand" {
		t.Fatalf("unexpected name %q", world.Name())
	}
	if got := world.CellAt(-1, 3); got != Empty {
		t.Fatalf("out of range read should be empty, got %v", got)
	}
	if got := world.CellAt(0, 0); got != Wall {
		t.Fatalf("expected wall at corner, got %v", got)
	}
	if world.ColorOf(Water) != world.Registry().ColorOf(Water) {
		t.Fatal("ColorOf should delegate to the registry")
	}
}

func TestSetCellIgnoresInvalid(t *testing.T) {
	world := newWorld(t, 6, 6, false, nil)
	world.SetCell(2, 2, Element(200))
	world.SetCell(99, 2, Sand)
	world.SetCell(2, 2, Sand)
	c := world.Census()
	if c.Count(Sand) != 1 {
		t.Fatalf("expected one sand cell, got %d", c.Count(Sand))
	}
	if c.Count(Empty) != 35 {
		t.Fatalf("expected 35 empty cells, got %d", c.Count(Empty))
	}
}

func TestResetClearsAndReseeds(t *testing.T) {
	world := newWorld(t, 16, 16, true, nil)
	world.Paint(8, 4, Sand, 20)
	for i := 0; i < 5; i++ {
		world.Advance()
	}
	world.Reset(0)
	if world.Tick() != 0 {
		t.Fatalf("expected tick 0 after reset, got %d", world.Tick())
	}
	c := world.Census()
	if c.Count(Sand) != 0 {
		t.Fatal("reset should empty the grid")
	}
	if c.Count(Wall) != 2*16+2*14 {
		t.Fatalf("reset should keep the wall ring, got %d walls", c.Count(Wall))
	}
}

func TestClearDiscardsSnapshot(t *testing.T) {
	store := &memPersistence{}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	world, err := NewWithConfig(cfg, WithPersistence(store))
	if err != nil {
		t.Fatal(err)
	}
	world.SetCell(3, 3, Stone)
	if err := world.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !store.stored || store.saves != 1 {
		t.Fatal("expected a stored snapshot")
	}

	world.Clear()

	if store.stored || store.discards != 1 {
		t.Fatal("clear should discard the stored snapshot")
	}
	if world.CellAt(3, 3) != Empty {
		t.Fatal("clear should empty interior cells")
	}
	if world.CellAt(0, 4) != Wall {
		t.Fatal("clear should keep walls when enabled")
	}
}

func TestDeterministicAdvance(t *testing.T) {
	build := func() *World {
		world := newWorld(t, 40, 30, true, nil)
		world.Paint(10, 5, Sand, 30)
		world.Paint(25, 5, Water, 30)
		world.Paint(20, 20, Lava, 20)
		world.Paint(30, 25, Gunpowder, 15)
		world.Paint(5, 25, Plant, 15)
		world.Paint(15, 28, Fire, 10)
		return world
	}
	a, b := build(), build()
	for i := 0; i < 60; i++ {
		a.Advance()
		b.Advance()
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds and inputs should produce identical grids")
	}
}

func TestCensusCountsInvalid(t *testing.T) {
	var c Census
	if c.Count(Element(99)) != 0 {
		t.Fatal("unknown elements have no count")
	}
}
