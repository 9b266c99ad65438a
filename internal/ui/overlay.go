//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const ringSegments = 32

var (
	brushRing   = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	statusColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	statusShade = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

// Overlay draws the brush outline under the cursor and a status line over
// the simulation view. F1 toggles the status line.
type Overlay struct {
	pixel      *ebiten.Image
	showStatus bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles overlay hotkeys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the brush ring centred on (cx, cy) with the given diameter in
// pixels, and the status line along the top edge of a view viewW wide.
// A negative cx hides the ring.
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy, diameter, viewW int, status Status) {
	if cx >= 0 && diameter > 0 {
		o.drawRing(screen, float64(cx), float64(cy), float64(diameter)/2)
	}
	if !o.showStatus {
		return
	}
	line := status.String()
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	width := bounds.Dx() + 12
	if width > viewW {
		width = viewW
	}
	o.fill(screen, 0, 0, float64(width), 20, statusShade)
	text.Draw(screen, line, face, 6, 14, statusColor)
}

func (o *Overlay) drawRing(screen *ebiten.Image, cx, cy, r float64) {
	if r < 1 {
		r = 1
	}
	step := 2 * math.Pi / ringSegments
	for i := 0; i < ringSegments; i++ {
		a0, a1 := float64(i)*step, float64(i+1)*step
		o.drawLine(screen,
			cx+r*math.Cos(a0), cy+r*math.Sin(a0),
			cx+r*math.Cos(a1), cy+r*math.Sin(a1),
			1, brushRing)
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
