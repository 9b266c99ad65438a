package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"mad-sand/internal/core"
)

// stepper is one +/- row on the HUD bound to a parameter control.
type stepper struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	// top is measured in panel content coordinates, before scrolling.
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newSteppers(controls []core.ParameterControl) []stepper {
	out := make([]stepper, len(controls))
	for i, ctrl := range controls {
		out[i] = stepper{control: ctrl, value: "--"}
	}
	return out
}

func indexParameters(snap core.ParameterSnapshot) map[string]core.Parameter {
	params := map[string]core.Parameter{}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			params[p.Key] = p
		}
	}
	return params
}

func (s *stepper) refresh(params map[string]core.Parameter) {
	s.hasValue = false
	s.value = "--"
	param, ok := params[s.control.Key]
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
	default:
		return
	}
	s.hasValue = true
}

func (s *stepper) step() float64 {
	step := s.control.Step
	if s.control.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
		return step
	}
	if step <= 0 {
		step = 0.05
	}
	return step
}

// target returns the value one step away in direction, clamped to the
// control bounds. ok is false when the step would not change anything.
func (s *stepper) target(direction int) (value float64, ok bool) {
	if !s.hasValue || direction == 0 {
		return s.floatValue, false
	}
	t := s.floatValue + float64(direction)*s.step()
	if s.control.HasMin && t < s.control.Min {
		t = s.control.Min
	}
	if s.control.HasMax && t > s.control.Max {
		t = s.control.Max
	}
	if s.control.Type == core.ParamTypeInt {
		t = math.Round(t)
	}
	if math.Abs(t-s.floatValue) < 1e-9 {
		return s.floatValue, false
	}
	return t, true
}

// setters carries whichever parameter setters the simulation implements.
type setters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

func settersOf(sim core.Sim) setters {
	var s setters
	if setter, ok := sim.(core.IntParameterSetter); ok {
		s.ints = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		s.floats = setter
	}
	return s
}

func (s setters) supports(t core.ParamType) bool {
	switch t {
	case core.ParamTypeInt:
		return s.ints != nil
	case core.ParamTypeFloat:
		return s.floats != nil
	}
	return false
}

func (s *stepper) canAdjust(set setters, direction int) bool {
	if !set.supports(s.control.Type) {
		return false
	}
	_, ok := s.target(direction)
	return ok
}

// adjust pushes one step to the simulation and mirrors the accepted value.
func (s *stepper) adjust(set setters, direction int) bool {
	if !set.supports(s.control.Type) {
		return false
	}
	t, ok := s.target(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if !set.ints.SetIntParameter(s.control.Key, int(t)) {
			return false
		}
		s.value = strconv.Itoa(int(t))
	case core.ParamTypeFloat:
		if !set.floats.SetFloatParameter(s.control.Key, t) {
			return false
		}
		s.value = formatFloat(s.control, t)
	}
	s.floatValue = t
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// layoutSteppers stacks the rows from top with the buttons flush right.
func layoutSteppers(rows []stepper, width, top int) {
	for i := range rows {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		rows[i].top = rowTop
		rows[i].minusRect = minus
		rows[i].plusRect = plus
	}
}

// contentHeight is the bottom edge of the last row.
func contentHeight(rows []stepper) int {
	if len(rows) == 0 {
		return 0
	}
	return rows[len(rows)-1].top + lineHeight
}

// clampScroll keeps the scroll offset within [0, content-visible].
func clampScroll(scroll, content, visible int) int {
	limit := content - visible
	if limit < 0 {
		limit = 0
	}
	return max(0, min(scroll, limit))
}

// titleFor names the panel after the simulation.
func titleFor(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 30
	swatchSize     = 22
	swatchGap      = 4
	scrollStep     = lineHeight
)
