package render

import (
	"image/color"

	"github.com/ojrac/opensimplex-go"
)

var (
	flameOrange = color.RGBA{R: 0xff, G: 0x50, B: 0x00, A: 0xff}
	flameRed    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Flicker shades one cell value between orange and red with smooth noise that
// drifts over frames. It only changes what is drawn, never the grid.
type Flicker struct {
	noise  opensimplex.Noise
	value  uint8
	width  int
	frame  uint64
	scale  float64
	speed  float64
	lo, hi color.RGBA
}

// NewFlicker returns a Flicker for cells holding value in a grid of the given
// width.
func NewFlicker(seed int64, value uint8, width int) *Flicker {
	return &Flicker{
		noise: opensimplex.NewNormalized(seed),
		value: value,
		width: width,
		scale: 0.35,
		speed: 0.25,
		lo:    flameOrange,
		hi:    flameRed,
	}
}

// Resize updates the grid width used to map indices to coordinates.
func (f *Flicker) Resize(width int) { f.width = width }

// Advance moves the noise field one frame forward.
func (f *Flicker) Advance() { f.frame++ }

// Tint implements the Tint signature for fillPaletteRGBA.
func (f *Flicker) Tint(i int, v uint8) (color.RGBA, bool) {
	if v != f.value || f.width <= 0 {
		return color.RGBA{}, false
	}
	x, y := i%f.width, i/f.width
	return f.At(x, y), true
}

// At returns the flame color of cell (x, y) for the current frame.
func (f *Flicker) At(x, y int) color.RGBA {
	t := f.noise.Eval3(float64(x)*f.scale, float64(y)*f.scale, float64(f.frame)*f.speed)
	return lerp(f.lo, f.hi, t)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = max(0, min(t, 1))
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
