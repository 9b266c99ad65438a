package app

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"mad-sand/internal/sims/sand"
	"mad-sand/internal/store"
)

// Store keys shared with earlier saves.
const (
	GridKey     = "sandSimulationGrid"
	ControlsKey = "sandSimControlsState_v3"
)

// Brush and speed bounds exposed to the player.
const (
	MinBrush = 1
	MaxBrush = 50
	MinSpeed = 1
	MaxSpeed = 10
)

// Controls are the player's tool settings, restored across sessions.
type Controls struct {
	Element sand.Element
	Walls   bool
	Brush   int
	Speed   int
}

type controlsYAML struct {
	Element string `yaml:"element"`
	Walls   *bool  `yaml:"walls"`
	Brush   int    `yaml:"brush"`
	Speed   *int   `yaml:"speed"`
}

// DefaultControls selects sand with walls on, a 20 px brush and one tick per
// frame.
func DefaultControls() Controls {
	return Controls{Element: sand.Sand, Walls: true, Brush: 20, Speed: 1}
}

// Normalize clamps the brush and speed into range and falls back to sand for
// elements the palette does not offer.
func (c Controls) Normalize() Controls {
	c.Brush = max(MinBrush, min(c.Brush, MaxBrush))
	c.Speed = max(MinSpeed, min(c.Speed, MaxSpeed))
	if !c.Element.Valid() {
		c.Element = sand.Sand
	}
	return c
}

// MarshalYAML stores the element by name so ids can be read by people.
func (c Controls) MarshalYAML() (any, error) {
	return controlsYAML{Element: c.Element.String(), Walls: &c.Walls, Brush: c.Brush, Speed: &c.Speed}, nil
}

// UnmarshalYAML fills missing fields from DefaultControls.
func (c *Controls) UnmarshalYAML(node *yaml.Node) error {
	var raw controlsYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := DefaultControls()
	if e, ok := sand.ParseElement(raw.Element); ok {
		out.Element = e
	}
	if raw.Walls != nil {
		out.Walls = *raw.Walls
	}
	if raw.Brush > 0 {
		out.Brush = raw.Brush
	}
	if raw.Speed != nil {
		out.Speed = *raw.Speed
	}
	*c = out.Normalize()
	return nil
}

// LoadControls reads the saved controls. A missing entry yields the
// defaults; an unreadable one yields the defaults and the error.
func LoadControls(kv store.KV) (Controls, error) {
	raw, err := kv.Get(ControlsKey)
	if errors.Is(err, store.ErrNotFound) {
		return DefaultControls(), nil
	}
	if err != nil {
		return DefaultControls(), fmt.Errorf("load controls: %w", err)
	}
	c := DefaultControls()
	if err := yaml.Unmarshal([]byte(raw), &c); err != nil {
		return DefaultControls(), fmt.Errorf("decode controls: %w", err)
	}
	return c, nil
}

// SaveControls writes c under ControlsKey.
func SaveControls(kv store.KV, c Controls) error {
	raw, err := yaml.Marshal(c.Normalize())
	if err != nil {
		return fmt.Errorf("encode controls: %w", err)
	}
	if err := kv.Set(ControlsKey, string(raw)); err != nil {
		return fmt.Errorf("save controls: %w", err)
	}
	return nil
}
