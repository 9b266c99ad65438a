package sand

import "mad-sand/internal/core"

var knobGroups = []string{"Movement", "Heat", "Fire", "Chemistry"}

// Parameters reports the world dimensions and the current tuning grouped for
// the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.Width()),
				core.IntParam("h", "Height", w.Height()),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.BoolParam("walls", "Walls", w.walls),
			},
		},
	}
	for _, name := range knobGroups {
		g := core.ParameterGroup{Name: name}
		for _, k := range floatKnobs {
			if k.group == name {
				g.Params = append(g.Params, core.FloatParam(k.key, k.label, *k.field(&w.params)))
			}
		}
		groups = append(groups, g)
	}
	blast := core.ParameterGroup{Name: "Explosions"}
	for _, k := range intKnobs {
		blast.Params = append(blast.Params, core.IntParam(k.key, k.label, *k.field(&w.params)))
	}
	groups = append(groups, blast)
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists every tuning knob as an adjustable HUD control.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(floatKnobs)+len(intKnobs))
	for _, k := range floatKnobs {
		controls = append(controls, core.ParameterControl{
			Key:    k.key,
			Label:  k.label,
			Type:   core.ParamTypeFloat,
			Step:   0.01,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		})
	}
	for _, k := range intKnobs {
		controls = append(controls, core.ParameterControl{
			Key:    k.key,
			Label:  k.label,
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    float64(k.max),
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

// SetFloatParameter updates a probability knob, clamping into [0, 1]. It
// reports false for unknown keys.
func (w *World) SetFloatParameter(key string, value float64) bool {
	for _, k := range floatKnobs {
		if k.key != key {
			continue
		}
		value = max(0, min(value, 1))
		*k.field(&w.params) = value
		*k.field(&w.cfg.Params) = value
		return true
	}
	return false
}

// SetIntParameter updates an integer knob, clamping into its range.
func (w *World) SetIntParameter(key string, value int) bool {
	for _, k := range intKnobs {
		if k.key != key {
			continue
		}
		value = max(0, min(value, k.max))
		*k.field(&w.params) = value
		*k.field(&w.cfg.Params) = value
		return true
	}
	return false
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
