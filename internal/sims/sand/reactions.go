package sand

// reaction is the interaction phase of one element. It runs only when the
// particle did not move this tick. Once the acting cell is consumed or
// transformed the routine returns.
type reaction func(w *World, x, y int)

var reactions = [elementCount]reaction{
	Lava:         reactLava,
	Acid:         reactAcid,
	Fire:         reactFire,
	HotAsh:       reactHotAsh,
	StoneAsh:     reactStoneAsh,
	Stone:        reactStone,
	Plant:        reactPlant,
	Smoke:        fadeWith(func(p Params) float64 { return p.SmokeDissipateChance }),
	Gas:          fadeWith(func(p Params) float64 { return p.GasDissipateChance }),
	Ice:          reactIce,
	Gunpowder:    reactGunpowder,
	Virus:        reactVirus,
	Oil:          reactOil,
	Fuse:         reactFuse,
	FuseIgniting: reactFuseIgniting,
	BurningFuse:  reactBurningFuse,
	Nitrogen:     reactNitrogen,
	Antimatter:   reactAntimatter,
	BlackHole:    reactBlackHole,
	WaterSpout:   emit(Water),
	LavaSpout:    emit(Lava),
	FireSpout:    emit(Fire),
	SmokeSpout:   emit(Smoke),
	Cloner:       reactCloner,
}

// moore lists the 8-neighborhood offsets in evaluation order.
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// cardinal lists the 4-neighborhood offsets in evaluation order.
var cardinal = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

var clonable = map[Element]bool{
	Sand:      true,
	Water:     true,
	Diamond:   true,
	Oil:       true,
	Gunpowder: true,
}

func reactLava(w *World, x, y int) {
	if w.rng.Chance(w.params.LavaCoolChance) {
		w.set(x, y, Stone)
		return
	}
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok || w.reg.IsLavaImmune(n) {
			continue
		}
		switch {
		case n == Water:
			w.set(x, y, StoneAsh)
			w.set(nx, ny, Smoke)
			return
		case n != Empty && n != Lava:
			if w.rng.Chance(w.params.LavaIgniteChance) {
				w.set(nx, ny, Fire)
			}
		}
	}
}

func reactAcid(w *World, x, y int) {
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok || n == Wall || n == Acid || n == Diamond || n == Empty || n == Gel {
			continue
		}
		if n == Lava {
			w.set(nx, ny, Smoke)
			w.set(x, y, Smoke)
			return
		}
		switch n {
		case Stone, StoneAsh, Ash:
			if w.rng.Chance(w.params.AcidDurableChance) {
				w.set(nx, ny, Empty)
			}
		default:
			w.set(nx, ny, Fire)
		}
		if w.rng.Chance(w.params.AcidConsumeChance) {
			w.set(x, y, Empty)
			return
		}
	}
}

func reactFire(w *World, x, y int) {
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok {
			continue
		}
		switch n {
		case Plant, Oil, Gas, Fuse:
			if !w.rng.Chance(w.params.FireIgniteChance) {
				continue
			}
			if n == Fuse {
				w.set(nx, ny, BurningFuse)
			} else {
				w.set(nx, ny, Fire)
			}
			if w.rng.Chance(w.params.FireAshChance) {
				w.set(x, y, Ash)
				return
			}
		case Gunpowder:
			w.explode(nx, ny, w.params.GunpowderBlastRadius)
			return
		case Water:
			if w.rng.Chance(w.params.FireEvaporateChance) {
				w.set(nx, ny, Smoke)
			}
		case Ice:
			w.set(x, y, Smoke)
			w.set(nx, ny, Water)
			return
		case Virus:
			w.set(nx, ny, Empty)
		}
	}

	if w.rng.Chance(w.params.FireBurnoutChance) {
		if w.rng.Chance(w.params.FireSmokeChance) {
			w.set(x, y, Smoke)
		} else {
			w.set(x, y, Empty)
		}
	}
}

func reactHotAsh(w *World, x, y int) {
	if w.rng.Chance(w.params.HotAshCoolChance) {
		w.set(x, y, Ash)
		return
	}
	lava := w.reg.Density(Lava)
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok {
			continue
		}
		switch {
		case n == Water:
			w.set(x, y, Ash)
			w.set(nx, ny, Smoke)
			return
		case n == Ice:
			w.set(x, y, Ash)
			w.set(nx, ny, Water)
			return
		case n == Gunpowder:
			w.explode(nx, ny, w.params.HotAshBlastRadius)
			return
		case n == Ash || n == HotAsh:
			if w.rng.Chance(w.params.HotAshAshIgniteChance) {
				w.set(nx, ny, Fire)
				w.set(x, y, Ash)
				return
			}
		case n == Plant || (w.reg.Density(n) > 0 && w.reg.Density(n) < lava):
			if w.rng.Chance(w.params.HotAshIgniteChance) {
				w.set(nx, ny, Fire)
				w.set(x, y, Ash)
				return
			}
		}
	}
}

func reactStoneAsh(w *World, x, y int) {
	if w.touches(x, y, Lava) && w.rng.Chance(w.params.StoneAshMeltChance) {
		w.set(x, y, Lava)
		return
	}
	below, ok := w.at(x, y+1)
	if ok && w.reg.Density(below) >= w.reg.Density(StoneAsh) && w.rng.Chance(w.params.StoneAshHardenChance) {
		w.set(x, y, Stone)
	}
}

func reactStone(w *World, x, y int) {
	if w.touches(x, y, Lava) && w.rng.Chance(w.params.StoneMeltChance) {
		w.set(x, y, Lava)
	}
}

// reactPlant grows away from water: for every watered side the opposite
// side sprouts if it is empty.
func reactPlant(w *World, x, y int) {
	if !w.rng.Chance(w.params.PlantGrowChance) {
		return
	}
	for _, d := range moore {
		if w.is(x+d[0], y+d[1], Water) && w.isEmpty(x-d[0], y-d[1]) {
			w.set(x-d[0], y-d[1], Plant)
		}
	}
}

func fadeWith(chance func(Params) float64) reaction {
	return func(w *World, x, y int) {
		if w.rng.Chance(chance(w.params)) {
			w.set(x, y, Empty)
		}
	}
}

func reactIce(w *World, x, y int) {
	if w.touchesHeat(x, y) {
		w.set(x, y, Water)
	}
}

func reactGunpowder(w *World, x, y int) {
	if w.touchesHeat(x, y) || w.touches(x, y, BurningFuse) {
		w.explode(x, y, w.params.GunpowderBlastRadius)
	}
}

func reactVirus(w *World, x, y int) {
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok {
			continue
		}
		switch n {
		case Water, Sand, Oil, Gel:
			if w.rng.Chance(w.params.VirusSpreadChance) {
				w.set(nx, ny, Virus)
			}
		}
		if w.reg.IsHeatSource(n) || n == Acid {
			w.set(x, y, Empty)
			return
		}
	}
}

func reactOil(w *World, x, y int) {
	for _, d := range moore {
		n, ok := w.at(x+d[0], y+d[1])
		if ok && w.reg.IsHeatSource(n) && w.rng.Chance(w.params.OilIgniteChance) {
			w.set(x, y, Fire)
			return
		}
	}
}

func reactFuse(w *World, x, y int) {
	if w.touchesHeat(x, y) || w.touches(x, y, BurningFuse) {
		w.set(x, y, FuseIgniting)
	}
}

func reactFuseIgniting(w *World, x, y int) {
	if w.rng.Chance(w.params.FuseIgniteChance) {
		w.set(x, y, BurningFuse)
	}
}

// reactBurningFuse passes the spark to every adjacent fuse and burns out.
func reactBurningFuse(w *World, x, y int) {
	for _, d := range moore {
		if w.is(x+d[0], y+d[1], Fuse) {
			w.set(x+d[0], y+d[1], BurningFuse)
		}
	}
	w.set(x, y, Ash)
}

func reactNitrogen(w *World, x, y int) {
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok {
			continue
		}
		switch {
		case n == Water:
			w.set(nx, ny, Ice)
		case n == Lava:
			w.set(x, y, Gas)
			w.set(nx, ny, Stone)
			return
		case w.reg.IsHeatSource(n):
			w.set(x, y, Gas)
			w.set(nx, ny, Empty)
			return
		case n == Plant:
			w.set(nx, ny, Empty)
		}
	}
	if w.rng.Chance(w.params.NitrogenBoilChance) {
		w.set(x, y, Gas)
	}
}

// reactAntimatter annihilates itself together with the first neighbor that
// holds matter.
func reactAntimatter(w *World, x, y int) {
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if ok && n != Empty && n != Wall && n != Antimatter {
			w.set(x, y, Empty)
			w.set(nx, ny, Empty)
			return
		}
	}
}

func reactBlackHole(w *World, x, y int) {
	for _, d := range moore {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if ok && n != Empty && n != Wall && n != Diamond {
			w.set(nx, ny, Empty)
		}
	}
}

// emit writes e into the cell above every tick unless that cell is part of
// the wall ring.
func emit(e Element) reaction {
	return func(w *World, x, y int) {
		if w.grid.OnWallRing(x, y-1) {
			return
		}
		w.set(x, y-1, e)
	}
}

// reactCloner copies the last clonable cardinal neighbor into the last empty
// cardinal neighbor.
func reactCloner(w *World, x, y int) {
	var (
		particle     Element
		hasParticle  bool
		spotX, spotY int
		hasSpot      bool
	)
	for _, d := range cardinal {
		nx, ny := x+d[0], y+d[1]
		n, ok := w.at(nx, ny)
		if !ok {
			continue
		}
		if clonable[n] {
			particle, hasParticle = n, true
		} else if n == Empty {
			spotX, spotY, hasSpot = nx, ny, true
		}
	}
	if hasParticle && hasSpot {
		w.set(spotX, spotY, particle)
	}
}

// explode overwrites the disk of the given radius around (cx, cy) with a
// random mix of fire and smoke, leaving walls intact, and sets the center
// on fire.
func (w *World) explode(cx, cy, radius int) {
	r2 := radius * radius
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i*i+j*j > r2 {
				continue
			}
			n, ok := w.at(cx+i, cy+j)
			if !ok || n == Wall {
				continue
			}
			if w.rng.Chance(w.params.ExplosionFireChance) {
				w.set(cx+i, cy+j, Fire)
			} else {
				w.set(cx+i, cy+j, Smoke)
			}
		}
	}
	w.set(cx, cy, Fire)
}

func (w *World) touches(x, y int, e Element) bool {
	for _, d := range moore {
		if w.is(x+d[0], y+d[1], e) {
			return true
		}
	}
	return false
}

func (w *World) touchesHeat(x, y int) bool {
	for _, d := range moore {
		if n, ok := w.at(x+d[0], y+d[1]); ok && w.reg.IsHeatSource(n) {
			return true
		}
	}
	return false
}
