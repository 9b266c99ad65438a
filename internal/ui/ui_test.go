package ui

import (
	"image"
	"math"
	"strings"
	"testing"

	"mad-sand/internal/core"
)

type fakeSim struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSim) Name() string    { return "fake" }
func (f *fakeSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (f *fakeSim) Reset(int64)     {}
func (f *fakeSim) Step()           {}
func (f *fakeSim) Cells() []uint8  { return []uint8{0} }

func (f *fakeSim) SetIntParameter(key string, v int) bool {
	if _, ok := f.ints[key]; !ok {
		return false
	}
	f.ints[key] = v
	return true
}
func (f *fakeSim) SetFloatParameter(key string, v float64) bool {
	if _, ok := f.floats[key]; !ok {
		return false
	}
	f.floats[key] = v
	return true
}

func snapshotOf(params ...core.Parameter) map[string]core.Parameter {
	return indexParameters(core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "g", Params: params}}})
}

func TestStepperRefresh(t *testing.T) {
	rows := newSteppers([]core.ParameterControl{
		{Key: "chance", Type: core.ParamTypeFloat, Step: 0.01},
		{Key: "radius", Type: core.ParamTypeInt, Step: 1},
		{Key: "missing", Type: core.ParamTypeInt},
	})
	params := snapshotOf(core.FloatParam("chance", "Chance", 0.25), core.IntParam("radius", "Radius", 4))
	for i := range rows {
		rows[i].refresh(params)
	}
	if !rows[0].hasValue || rows[0].value != "0.25" {
		t.Fatalf("unexpected float row %+v", rows[0])
	}
	if !rows[1].hasValue || rows[1].value != "4" {
		t.Fatalf("unexpected int row %+v", rows[1])
	}
	if rows[2].hasValue || rows[2].value != "--" {
		t.Fatalf("missing parameter should show a placeholder, got %+v", rows[2])
	}
}

func TestStepperTargetClamps(t *testing.T) {
	s := stepper{
		control:    core.ParameterControl{Key: "p", Type: core.ParamTypeFloat, Step: 0.05, HasMin: true, HasMax: true, Max: 1},
		floatValue: 0.98,
		hasValue:   true,
	}
	if v, ok := s.target(1); !ok || v != 1 {
		t.Fatalf("expected clamp to 1, got %v %v", v, ok)
	}
	s.floatValue = 1
	if _, ok := s.target(1); ok {
		t.Fatal("no step above the maximum")
	}
	if v, ok := s.target(-1); !ok || math.Abs(v-0.95) > 1e-9 {
		t.Fatalf("expected 0.95, got %v", v)
	}
	s.hasValue = false
	if _, ok := s.target(-1); ok {
		t.Fatal("rows without a value cannot step")
	}
}

func TestStepperAdjustPushesToSim(t *testing.T) {
	sim := &fakeSim{ints: map[string]int{"radius": 3}, floats: map[string]float64{}}
	set := settersOf(sim)
	s := stepper{
		control:    core.ParameterControl{Key: "radius", Type: core.ParamTypeInt, Step: 1, HasMin: true, Min: 0, HasMax: true, Max: 4},
		floatValue: 3,
		hasValue:   true,
	}
	if !s.adjust(set, 1) || sim.ints["radius"] != 4 || s.value != "4" {
		t.Fatalf("expected radius 4, sim=%d row=%q", sim.ints["radius"], s.value)
	}
	if s.canAdjust(set, 1) || s.adjust(set, 1) {
		t.Fatal("should not step past the maximum")
	}
	if !s.canAdjust(set, -1) {
		t.Fatal("should be able to step down")
	}

	f := stepper{control: core.ParameterControl{Key: "chance", Type: core.ParamTypeFloat, Step: 0.1}, hasValue: true}
	if f.adjust(set, 1) || f.floatValue != 0 {
		t.Fatal("a rejected update must not move the row")
	}
}

func TestStepperWithoutSetter(t *testing.T) {
	s := stepper{control: core.ParameterControl{Key: "x", Type: core.ParamTypeFloat}, hasValue: true}
	if s.canAdjust(setters{}, 1) || s.adjust(setters{}, 1) {
		t.Fatal("a sim without setters is read-only")
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	cases := []struct {
		step  float64
		value float64
		want  string
	}{
		{0.0005, 0.12346, "0.1235"},
		{0.005, 0.5, "0.500"},
		{0.01, 0.25, "0.25"},
		{0.5, 2, "2.0"},
		{0, 0.3, "0.30"},
	}
	for _, c := range cases {
		if got := formatFloat(core.ParameterControl{Step: c.step}, c.value); got != c.want {
			t.Fatalf("formatFloat(step %v, %v) = %q, want %q", c.step, c.value, got, c.want)
		}
	}
}

func TestLayoutSteppersAndScroll(t *testing.T) {
	rows := newSteppers(make([]core.ParameterControl, 3))
	layoutSteppers(rows, 200, 100)
	if rows[2].top != 100+2*lineHeight {
		t.Fatalf("unexpected top %d", rows[2].top)
	}
	if rows[0].plusRect.Max.X != 200-panelPadding {
		t.Fatal("plus button should be flush right")
	}
	if rows[0].minusRect.Max.X+buttonGap != rows[0].plusRect.Min.X {
		t.Fatal("minus button sits left of plus")
	}
	content := contentHeight(rows)
	if content != 100+3*lineHeight {
		t.Fatalf("unexpected content height %d", content)
	}
	if got := clampScroll(500, content, 150); got != content-150 {
		t.Fatalf("scroll should stop at the last row, got %d", got)
	}
	if got := clampScroll(-20, content, 150); got != 0 {
		t.Fatalf("scroll cannot go negative, got %d", got)
	}
	if got := clampScroll(40, content, 1000); got != 0 {
		t.Fatalf("short content never scrolls, got %d", got)
	}
}

func TestLayoutSwatches(t *testing.T) {
	width := 220
	cols := swatchColumns(width)
	if cols != 7 {
		t.Fatalf("expected 7 columns, got %d", cols)
	}
	rects, bottom := layoutSwatches(9, width, 40)
	if len(rects) != 9 {
		t.Fatalf("expected 9 rects, got %d", len(rects))
	}
	if rects[7].Min != image.Pt(panelPadding, 40+swatchSize+swatchGap) {
		t.Fatalf("eighth swatch should wrap, got %v", rects[7])
	}
	if bottom != 40+2*(swatchSize+swatchGap) {
		t.Fatalf("unexpected bottom %d", bottom)
	}
	if got := swatchAt(rects, rects[3].Min.X+1, rects[3].Min.Y+1); got != 3 {
		t.Fatalf("expected hit on swatch 3, got %d", got)
	}
	if got := swatchAt(rects, 0, 0); got != -1 {
		t.Fatalf("expected miss, got %d", got)
	}
	if _, bottom := layoutSwatches(0, width, 40); bottom != 40 {
		t.Fatal("no swatches take no space")
	}
	if swatchColumns(10) != 1 {
		t.Fatal("narrow panels still get one column")
	}
}

func TestStatusString(t *testing.T) {
	s := Status{Element: "sand", Brush: 20, Speed: 3, Walls: true, Tick: 42, TPS: 60}
	got := s.String()
	for _, want := range []string{"sand", "brush 20", "speed 3x", "walls", "tick 42", "60 tps"} {
		if !strings.Contains(got, want) {
			t.Fatalf("status %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "paused") {
		t.Fatal("not paused")
	}
	s.Paused = true
	s.Walls = false
	got = s.String()
	if !strings.Contains(got, "[paused]") || strings.Contains(got, "walls") {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestTitleFor(t *testing.T) {
	if got := titleFor(nil); got != "Controls" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := titleFor(&fakeSim{}); got != "Fake Controls" {
		t.Fatalf("unexpected title %q", got)
	}
}
