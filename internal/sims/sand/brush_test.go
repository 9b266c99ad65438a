package sand

import "testing"

func TestPaintDoesNotOverwriteMobileMatter(t *testing.T) {
	world := newWorld(t, 10, 10, true, nil)
	world.SetCell(5, 5, Water)
	world.Paint(5, 5, Sand, 5)
	if got := world.CellAt(5, 5); got != Water {
		t.Fatalf("sand must not replace water, got %v", got)
	}
}

func TestPaintStaticAndEraseAlwaysWin(t *testing.T) {
	world := newWorld(t, 10, 10, true, nil)
	world.SetCell(5, 5, Sand)
	world.Paint(5, 5, Stone, 5)
	if got := world.CellAt(5, 5); got != Stone {
		t.Fatalf("static solids overwrite, got %v", got)
	}
	world.Paint(5, 5, Empty, 5)
	if got := world.CellAt(5, 5); got != Empty {
		t.Fatalf("erasing overwrites, got %v", got)
	}
}

func TestPaintDisk(t *testing.T) {
	world := newWorld(t, 20, 20, false, nil)
	// 20px brush: radius 2, 13 cells.
	world.Paint(10, 10, Sand, 20)
	if got := world.Census().Count(Sand); got != 13 {
		t.Fatalf("expected 13 painted cells, got %d", got)
	}
	if world.CellAt(12, 10) != Sand || world.CellAt(12, 11) != Empty {
		t.Fatal("disk edge mismatch")
	}
}

func TestPaintClipsToGrid(t *testing.T) {
	world := newWorld(t, 6, 6, false, nil)
	world.Paint(0, 0, Stone, 20)
	// Quarter disk of radius 2 inside the grid.
	if got := world.Census().Count(Stone); got != 6 {
		t.Fatalf("expected 6 cells, got %d", got)
	}
	world.Paint(-50, -50, Stone, 20)
	if got := world.Census().Count(Stone); got != 6 {
		t.Fatal("fully out of range paint should be ignored")
	}
}

func TestPaintLineHasNoGaps(t *testing.T) {
	world := newWorld(t, 30, 30, false, nil)
	world.PaintLine(2, 3, 20, 11, Stone, 1)
	for _, p := range [][2]int{{2, 3}, {20, 11}, {11, 7}} {
		if world.CellAt(p[0], p[1]) != Stone {
			t.Fatalf("expected stone at %v", p)
		}
	}
	// A single-cell brush stamps one cell per step along the major axis.
	if got := world.Census().Count(Stone); got != 19 {
		t.Fatalf("expected 19 stamped cells, got %d", got)
	}
}
