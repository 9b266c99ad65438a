//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim         = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	swatchEmpty     = color.RGBA{R: 40, G: 40, B: 46, A: 255}
	swatchSelected  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

// HUD renders the element palette and the parameter steppers to the right of
// the simulation view. The stepper list scrolls with the mouse wheel.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image
	title string

	swatches    []Swatch
	swatchRects []image.Rectangle
	steppersTop int

	steppers []stepper
	set      setters
	scroll   int
}

// NewHUD constructs a HUD for the provided simulation, panel width and
// selectable elements.
func NewHUD(sim core.Sim, width int, swatches []Swatch) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, swatches: swatches, title: titleFor(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	top := panelPadding + headerBaseline + 8
	h.swatchRects, top = layoutSwatches(len(swatches), width, top)
	h.steppersTop = top + infoSpacing
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.steppers = newSteppers(provider.ParameterControls())
		layoutSteppers(h.steppers, width, h.steppersTop)
	}
	h.set = settersOf(sim)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes stepper values and handles clicks on the panel. It returns
// the id of a swatch picked this frame.
func (h *HUD) Update(offsetX, height int) (picked uint8, ok bool) {
	if h == nil || h.width <= 0 {
		return 0, false
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		params := indexParameters(provider.Parameters())
		for i := range h.steppers {
			h.steppers[i].refresh(params)
		}
	}

	mx, my := ebiten.CursorPosition()
	px := mx - offsetX
	if px < 0 || px >= h.width {
		return 0, false
	}
	if _, dy := ebiten.Wheel(); dy != 0 && my >= h.steppersTop {
		h.scroll -= int(dy * scrollStep)
	}
	h.scroll = clampScroll(h.scroll, contentHeight(h.steppers), height)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	if i := swatchAt(h.swatchRects, px, my); i >= 0 {
		return h.swatches[i].ID, true
	}
	if my < h.steppersTop {
		return 0, false
	}
	cy := my + h.scroll
	for i := range h.steppers {
		s := &h.steppers[i]
		if pointInRect(px, cy, s.minusRect) {
			s.adjust(h.set, -1)
			break
		}
		if pointInRect(px, cy, s.plusRect) {
			s.adjust(h.set, 1)
			break
		}
	}
	return 0, false
}

// Draw paints the panel at offsetX with the selected swatch highlighted.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, selected uint8) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)
	h.drawSteppers(height)
	h.drawHeader(selected)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawHeader covers the scrolled rows with the title and palette.
func (h *HUD) drawHeader(selected uint8) {
	face := basicfont.Face7x13
	h.fillRect(image.Rect(0, 0, h.width, h.steppersTop), panelBackground)
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, textBright)

	label := ""
	for i, sw := range h.swatches {
		rect := h.swatchRects[i]
		if sw.ID == selected {
			h.fillRect(rect.Inset(-2), swatchSelected)
			label = sw.Label
		}
		fill := sw.Color
		if fill.A == 0 {
			fill = swatchEmpty
		}
		h.fillRect(rect, fill)
	}
	if label != "" {
		labelY := h.steppersTop - infoSpacing + labelBaseline
		text.Draw(h.panel, label, face, panelPadding, labelY, textBright)
	}
}

func (h *HUD) drawSteppers(height int) {
	face := basicfont.Face7x13
	if len(h.steppers) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, h.steppersTop+labelBaseline, textDim)
		return
	}
	for i := range h.steppers {
		s := &h.steppers[i]
		top := s.top - h.scroll
		if top+lineHeight < h.steppersTop || top > height {
			continue
		}
		labelY := top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, labelY, textBright)

		valueColor := textBright
		if !s.hasValue {
			valueColor = textDim
		}
		minus := s.minusRect.Sub(image.Pt(0, h.scroll))
		plus := s.plusRect.Sub(image.Pt(0, h.scroll))
		valueWidth := text.BoundString(face, s.value).Dx()
		text.Draw(h.panel, s.value, face, minus.Min.X-buttonGap-valueWidth, labelY, valueColor)

		h.drawButton(minus, "-", s.canAdjust(h.set, -1))
		h.drawButton(plus, "+", s.canAdjust(h.set, 1))
	}
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
