package main

import "mad-sand/internal/sims/sand"

// stroke is one brush dab placed at a fraction of the grid size.
type stroke struct {
	fx, fy float64
	e      sand.Element
	brush  int
}

// benchScene exercises most reaction paths: a volcano under a pool, a fuse
// leading to gunpowder, plants by the water and spouts feeding everything.
var benchScene = []stroke{
	{0.50, 0.85, sand.Stone, 60},
	{0.50, 0.75, sand.Lava, 40},
	{0.50, 0.55, sand.Water, 50},
	{0.20, 0.30, sand.Sand, 45},
	{0.80, 0.30, sand.Oil, 35},
	{0.15, 0.80, sand.Plant, 30},
	{0.85, 0.80, sand.Gunpowder, 35},
	{0.70, 0.80, sand.Fuse, 10},
	{0.75, 0.80, sand.Fuse, 10},
	{0.65, 0.80, sand.Fire, 10},
	{0.35, 0.20, sand.Acid, 15},
	{0.60, 0.20, sand.Ice, 20},
	{0.30, 0.65, sand.Gel, 20},
	{0.10, 0.10, sand.WaterSpout, 1},
	{0.90, 0.10, sand.SmokeSpout, 1},
	{0.40, 0.40, sand.Virus, 5},
	{0.55, 0.35, sand.Nitrogen, 15},
	{0.45, 0.10, sand.Cloner, 1},
	{0.45, 0.08, sand.Diamond, 1},
}

// stageScene paints benchScene scaled to the world.
func stageScene(w benchSim) {
	size := w.Size()
	for _, s := range benchScene {
		w.Paint(int(s.fx*float64(size.W)), int(s.fy*float64(size.H)), s.e, s.brush)
	}
}
