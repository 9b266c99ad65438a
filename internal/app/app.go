//go:build ebiten

package app

import (
	"image/color"

	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// Game adapts a Session to the ebiten.Game interface. The grid fills the
// window left of the HUD and follows window resizes.
type Game struct {
	session *Session
	painter *render.GridPainter
	flicker *render.Flicker
	hud     *ui.HUD
	overlay *ui.Overlay

	viewW, viewH int
}

// New constructs a Game for the provided session.
func New(session *Session, hudWidth int, seed int64) *Game {
	world := session.World()
	size := world.Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		flicker: render.NewFlicker(seed, uint8(sand.Fire), size.W),
		hud:     ui.NewHUD(world, hudWidth, Swatches(world)),
		overlay: ui.NewOverlay(),
		viewW:   size.W * sand.CellSize,
		viewH:   size.H * sand.CellSize,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	s.Resize(g.viewW, g.viewH)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.ToggleWalls()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		s.AdjustBrush(-2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		s.AdjustBrush(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.AdjustSpeed(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.AdjustSpeed(1)
	}
	g.overlay.Update()

	if id, ok := g.hud.Update(g.viewW, g.viewH); ok {
		s.SelectElement(sand.Element(id))
	}

	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && my >= 0 && mx < g.viewW && my < g.viewH
	if inView {
		if _, dy := ebiten.Wheel(); dy != 0 {
			s.AdjustBrush(int(dy) * 2)
		}
	}
	if inView && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.Stroke(mx/sand.CellSize, my/sand.CellSize)
	} else {
		s.EndStroke()
	}

	s.Update()
	return nil
}

// Draw renders the grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	world := g.session.World()
	size := world.Size()
	g.flicker.Resize(size.W)
	g.flicker.Advance()
	g.painter.Draw(screen, world, g.flicker.Tint, sand.CellSize)

	controls := g.session.Controls()
	mx, my := ebiten.CursorPosition()
	if mx >= g.viewW || my >= g.viewH {
		mx = -1
	}
	g.overlay.Draw(screen, mx, my, controls.Brush, g.viewW, ui.Status{
		Element: controls.Element.String(),
		Brush:   controls.Brush,
		Speed:   controls.Speed,
		Walls:   controls.Walls,
		Paused:  g.session.Paused(),
		Tick:    world.Tick(),
		TPS:     ebiten.ActualTPS(),
	})
	g.hud.Draw(screen, g.viewW, g.viewH, uint8(controls.Element))
}

// Layout gives the grid everything left of the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW = max(0, outsideWidth-g.hud.Width())
	g.viewH = outsideHeight
	return outsideWidth, outsideHeight
}
