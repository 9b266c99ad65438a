package sand

import "testing"

func TestSandFallsOneCellPerTick(t *testing.T) {
	world := newWorld(t, 10, 10, false, nil)
	world.SetCell(5, 0, Sand)
	for i := 0; i < 9; i++ {
		world.Advance()
	}
	if world.CellAt(5, 9) != Sand {
		t.Fatal("sand should rest at (5,9) after 9 ticks")
	}
	if got := world.Census().Count(Sand); got != 1 {
		t.Fatalf("expected a single sand cell, got %d", got)
	}
	if world.Tick() != 9 {
		t.Fatalf("expected tick 9, got %d", world.Tick())
	}
}

func TestEachCellTakesOneTurnPerTick(t *testing.T) {
	world := newWorld(t, 30, 30, true, nil)
	world.Paint(8, 6, Sand, 30)
	world.Paint(20, 6, Water, 30)
	world.Paint(15, 20, Lava, 25)
	world.Paint(6, 24, Gunpowder, 20)
	world.Paint(24, 24, Fire, 20)
	world.Paint(15, 27, Plant, 20)

	for tick := 0; tick < 40; tick++ {
		seen := make(map[[2]int]int)
		world.onProcess = func(x, y int, e Element) {
			if e == Empty {
				t.Fatalf("empty cell (%d,%d) took a turn", x, y)
			}
			seen[[2]int{x, y}]++
		}
		world.Advance()
		for pos, n := range seen {
			if n > 1 {
				t.Fatalf("tick %d: cell %v processed %d times", tick, pos, n)
			}
		}
	}
}

func TestInertSwapsConserveMatter(t *testing.T) {
	world := newWorld(t, 24, 24, true, nil)
	world.Paint(6, 4, Sand, 25)
	world.Paint(12, 6, Water, 25)
	world.Paint(18, 4, Oil, 25)
	world.Paint(12, 14, Gel, 25)
	before := world.Census()

	for i := 0; i < 100; i++ {
		world.Advance()
	}
	if after := world.Census(); after != before {
		t.Fatalf("census changed: before %v after %v", before, after)
	}
}

func TestWaterOverLavaBecomesStoneAshAndSmoke(t *testing.T) {
	world := newWorld(t, 3, 5, true, func(p *Params) {
		p.LavaCoolChance = 0
		p.GasMoveChance = 0
		p.SmokeDissipateChance = 0
		p.StoneAshHardenChance = 0
	})
	world.SetCell(1, 3, Lava)
	world.SetCell(1, 2, Water)

	for i := 0; i < 200 && world.CellAt(1, 3) != StoneAsh; i++ {
		world.Advance()
	}
	if got := world.CellAt(1, 3); got != StoneAsh {
		t.Fatalf("expected lava to become stone ash, got %v", got)
	}
	if got := world.CellAt(1, 2); got != Smoke {
		t.Fatalf("expected water to become smoke, got %v", got)
	}
}

func TestBlastOverwritesCellThatAlreadyMoved(t *testing.T) {
	world := newWorld(t, 12, 12, true, func(p *Params) {
		p.GasMoveChance = 0
		p.FireBurnoutChance = 0
		p.SmokeDissipateChance = 0
	})
	for x := 4; x <= 6; x++ {
		world.SetCell(x, 6, Stone)
	}
	world.SetCell(5, 5, Gunpowder)
	world.SetCell(6, 5, Fire)
	world.SetCell(5, 7, Sand)

	world.Advance()

	if world.Census().Count(Sand) != 0 {
		t.Fatal("sand that fell this tick should still be caught by the blast")
	}
	if got := world.CellAt(5, 8); got != Fire && got != Smoke {
		t.Fatalf("expected blast debris where the sand landed, got %v", got)
	}
}

func TestGunpowderNextToFireExplodes(t *testing.T) {
	world := newWorld(t, 20, 20, true, func(p *Params) {
		p.GasMoveChance = 0
		p.FireBurnoutChance = 0
		p.SmokeDissipateChance = 0
	})
	world.SetCell(10, 18, Gunpowder)
	world.SetCell(11, 18, Fire)

	world.Advance()

	if world.CellAt(10, 18) != Fire {
		t.Fatalf("blast center should be fire, got %v", world.CellAt(10, 18))
	}
	for j := -3; j <= 3; j++ {
		for i := -3; i <= 3; i++ {
			if i*i+j*j > 9 {
				continue
			}
			x, y := 10+i, 18+j
			if y >= world.Height() {
				continue
			}
			got := world.CellAt(x, y)
			if y == 19 {
				if got != Wall {
					t.Fatalf("blast must not break the wall at (%d,%d)", x, y)
				}
				continue
			}
			if got != Fire && got != Smoke {
				t.Fatalf("cell (%d,%d) in blast radius is %v", x, y, got)
			}
		}
	}
	if world.Census().Count(Gunpowder) != 0 {
		t.Fatal("gunpowder should be consumed")
	}
}

func TestBlastDebrisBelowActsSameTick(t *testing.T) {
	world := newWorld(t, 20, 20, true, func(p *Params) {
		p.GasMoveChance = 0
		p.FireBurnoutChance = 0
		p.SmokeDissipateChance = 0
	})
	for x := 9; x <= 11; x++ {
		world.SetCell(x, 12, Stone)
	}
	world.SetCell(10, 11, Gunpowder)
	world.SetCell(11, 11, Fire)

	var debris Element
	world.onProcess = func(x, y int, e Element) {
		if x == 10 && y == 14 {
			debris = e
		}
	}
	world.Advance()

	if debris != Fire && debris != Smoke {
		t.Fatalf("cell below the blast should take its turn in the riser pass, saw %v", debris)
	}
}

func TestGasRises(t *testing.T) {
	world := newWorld(t, 3, 6, true, func(p *Params) {
		p.GasMoveChance = 1
		p.GasDissipateChance = 0
	})
	world.SetCell(1, 4, Gas)
	world.Advance()
	if world.CellAt(1, 3) != Gas {
		t.Fatal("gas should rise one cell per tick")
	}
	for i := 0; i < 5; i++ {
		world.Advance()
	}
	if world.CellAt(1, 1) != Gas {
		t.Fatal("gas should stop under the ceiling")
	}
}

func TestDenserLiquidSinks(t *testing.T) {
	world := newWorld(t, 3, 6, true, nil)
	world.SetCell(1, 4, Oil)
	world.SetCell(1, 3, Water)
	world.Advance()
	if world.CellAt(1, 4) != Water || world.CellAt(1, 3) != Oil {
		t.Fatal("water should sink below oil")
	}
}

func TestSandSinksThroughWaterNotStone(t *testing.T) {
	world := newWorld(t, 3, 7, true, nil)
	world.SetCell(1, 5, Stone)
	world.SetCell(1, 4, Water)
	world.SetCell(1, 3, Sand)
	world.Advance()
	if world.CellAt(1, 4) != Sand || world.CellAt(1, 3) != Water {
		t.Fatal("sand should displace water")
	}
	world.Advance()
	if world.CellAt(1, 5) != Stone || world.CellAt(1, 4) != Sand {
		t.Fatal("static solids are never displaced")
	}
}

func TestFullViscosityHoldsStill(t *testing.T) {
	world := newWorld(t, 10, 10, true, func(p *Params) { p.GelViscosity = 1 })
	world.SetCell(5, 1, Gel)
	for i := 0; i < 20; i++ {
		world.Advance()
	}
	if world.CellAt(5, 1) != Gel {
		t.Fatal("gel with viscosity 1 should never move")
	}
}

func TestLiquidSpreadsSideways(t *testing.T) {
	world := newWorld(t, 7, 3, true, nil)
	world.SetCell(3, 1, Water)
	world.Advance()
	if world.CellAt(3, 1) != Empty {
		t.Fatal("water on a flat floor should flow sideways")
	}
	if world.CellAt(2, 1) != Water && world.CellAt(4, 1) != Water {
		t.Fatal("water should move one cell left or right")
	}
}

func TestPowderDoesNotSpreadSideways(t *testing.T) {
	world := newWorld(t, 7, 3, true, nil)
	world.SetCell(3, 1, Sand)
	world.Advance()
	if world.CellAt(3, 1) != Sand {
		t.Fatal("sand on a flat floor should stay put")
	}
}

func TestOpenBoundaryDissipation(t *testing.T) {
	world := newWorld(t, 8, 8, false, func(p *Params) { p.GasMoveChance = 0 })
	world.SetCell(4, 0, Smoke)
	world.SetCell(0, 4, Sand)
	world.SetCell(7, 3, Water)
	world.SetCell(4, 7, Stone)
	world.SetCell(3, 7, Ash)

	world.Advance()

	for _, p := range [][2]int{{4, 0}, {0, 4}, {7, 3}, {3, 7}} {
		if got := world.CellAt(p[0], p[1]); got != Empty {
			t.Fatalf("edge particle at %v should leave the world, got %v", p, got)
		}
	}
	if world.CellAt(4, 7) != Stone {
		t.Fatal("static solids stay on the edge")
	}
}

func TestWalledEdgesContain(t *testing.T) {
	world := newWorld(t, 8, 8, true, nil)
	world.SetCell(1, 6, Sand)
	for i := 0; i < 10; i++ {
		world.Advance()
	}
	if world.Census().Count(Sand) != 1 {
		t.Fatal("walls should keep particles inside")
	}
	ringIsWalled(t, world)
}
