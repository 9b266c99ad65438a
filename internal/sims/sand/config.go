package sand

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CellSize is the edge length of one cell in screen pixels.
const CellSize = 5

// ErrInvalidParam is returned when a tuning value is out of range.
var ErrInvalidParam = errors.New("sand: invalid parameter")

// Params holds the reaction probabilities and gates of the rule set. Every
// chance is evaluated once per tick per eligible cell.
type Params struct {
	GasMoveChance float64 `yaml:"gas_move_chance"`
	LavaViscosity float64 `yaml:"lava_viscosity"`
	GelViscosity  float64 `yaml:"gel_viscosity"`

	LavaCoolChance   float64 `yaml:"lava_cool_chance"`
	LavaIgniteChance float64 `yaml:"lava_ignite_chance"`

	AcidDurableChance float64 `yaml:"acid_durable_chance"`
	AcidConsumeChance float64 `yaml:"acid_consume_chance"`

	FireIgniteChance    float64 `yaml:"fire_ignite_chance"`
	FireAshChance       float64 `yaml:"fire_ash_chance"`
	FireEvaporateChance float64 `yaml:"fire_evaporate_chance"`
	FireBurnoutChance   float64 `yaml:"fire_burnout_chance"`
	FireSmokeChance     float64 `yaml:"fire_smoke_chance"`

	HotAshCoolChance      float64 `yaml:"hot_ash_cool_chance"`
	HotAshIgniteChance    float64 `yaml:"hot_ash_ignite_chance"`
	HotAshAshIgniteChance float64 `yaml:"hot_ash_ash_ignite_chance"`

	StoneAshMeltChance   float64 `yaml:"stone_ash_melt_chance"`
	StoneAshHardenChance float64 `yaml:"stone_ash_harden_chance"`
	StoneMeltChance      float64 `yaml:"stone_melt_chance"`

	PlantGrowChance      float64 `yaml:"plant_grow_chance"`
	SmokeDissipateChance float64 `yaml:"smoke_dissipate_chance"`
	GasDissipateChance   float64 `yaml:"gas_dissipate_chance"`
	VirusSpreadChance    float64 `yaml:"virus_spread_chance"`
	OilIgniteChance      float64 `yaml:"oil_ignite_chance"`
	FuseIgniteChance     float64 `yaml:"fuse_ignite_chance"`
	NitrogenBoilChance   float64 `yaml:"nitrogen_boil_chance"`
	ExplosionFireChance  float64 `yaml:"explosion_fire_chance"`

	GunpowderBlastRadius int `yaml:"gunpowder_blast_radius"`
	HotAshBlastRadius    int `yaml:"hot_ash_blast_radius"`
}

// Config controls the dimensions, seeding and tuning of a World.
type Config struct {
	// Width and Height are in cells.
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
	Walls  bool  `yaml:"walls"`

	Params Params `yaml:"params"`
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		GasMoveChance: 0.6,
		LavaViscosity: 0.5,
		GelViscosity:  0.9,

		LavaCoolChance:   0.001,
		LavaIgniteChance: 0.2,

		AcidDurableChance: 0.05,
		AcidConsumeChance: 0.2,

		FireIgniteChance:    0.3,
		FireAshChance:       0.1,
		FireEvaporateChance: 0.5,
		FireBurnoutChance:   0.05,
		FireSmokeChance:     0.3,

		HotAshCoolChance:      0.05,
		HotAshIgniteChance:    0.05,
		HotAshAshIgniteChance: 0.001,

		StoneAshMeltChance:   0.002,
		StoneAshHardenChance: 0.005,
		StoneMeltChance:      0.0005,

		PlantGrowChance:      0.01,
		SmokeDissipateChance: 0.01,
		GasDissipateChance:   0.01,
		VirusSpreadChance:    0.1,
		OilIgniteChance:      0.8,
		FuseIgniteChance:     0.15,
		NitrogenBoilChance:   0.01,
		ExplosionFireChance:  0.5,

		GunpowderBlastRadius: 3,
		HotAshBlastRadius:    2,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 120,
		Seed:   1337,
		Walls:  true,
		Params: DefaultParams(),
	}
}

// Viscosity returns the chance that e sits out a tick instead of flowing.
func (p Params) Viscosity(e Element) float64 {
	switch e {
	case Lava:
		return p.LavaViscosity
	case Gel:
		return p.GelViscosity
	}
	return 0
}

// Validate reports the first chance outside [0, 1] or negative blast radius.
func (p *Params) Validate() error {
	for _, k := range floatKnobs {
		v := *k.field(p)
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrInvalidParam, k.key, v)
		}
	}
	for _, k := range intKnobs {
		if v := *k.field(p); v < 0 || v > k.max {
			return fmt.Errorf("%w: %s=%d outside [0,%d]", ErrInvalidParam, k.key, v, k.max)
		}
	}
	return nil
}

// Validate checks the dimensions and tuning.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidParam, c.Width, c.Height)
	}
	return c.Params.Validate()
}

// LoadConfig reads a YAML tuning file on top of DefaultConfig. Keys missing
// from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["walls"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Walls = parsed
		}
	}
	for _, k := range floatKnobs {
		v, ok := cfg[k.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			*k.field(&c.Params) = parsed
		}
	}
	for _, k := range intKnobs {
		v, ok := cfg[k.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= k.max {
			*k.field(&c.Params) = parsed
		}
	}
	return c
}

// Map flattens the config into the keys FromMap understands, so a Config
// can travel through a registry factory.
func (c Config) Map() map[string]string {
	m := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"walls": strconv.FormatBool(c.Walls),
	}
	for _, k := range floatKnobs {
		m[k.key] = strconv.FormatFloat(*k.field(&c.Params), 'g', -1, 64)
	}
	for _, k := range intKnobs {
		m[k.key] = strconv.Itoa(*k.field(&c.Params))
	}
	return m
}

type floatKnob struct {
	key   string
	label string
	group string
	field func(*Params) *float64
}

type intKnob struct {
	key   string
	label string
	max   int
	field func(*Params) *int
}

var floatKnobs = []floatKnob{
	{"gas_move_chance", "Gas move", "Movement", func(p *Params) *float64 { return &p.GasMoveChance }},
	{"lava_viscosity", "Lava viscosity", "Movement", func(p *Params) *float64 { return &p.LavaViscosity }},
	{"gel_viscosity", "Gel viscosity", "Movement", func(p *Params) *float64 { return &p.GelViscosity }},

	{"lava_cool_chance", "Lava cool", "Heat", func(p *Params) *float64 { return &p.LavaCoolChance }},
	{"lava_ignite_chance", "Lava ignite", "Heat", func(p *Params) *float64 { return &p.LavaIgniteChance }},
	{"stone_ash_melt_chance", "Stone ash melt", "Heat", func(p *Params) *float64 { return &p.StoneAshMeltChance }},
	{"stone_ash_harden_chance", "Stone ash harden", "Heat", func(p *Params) *float64 { return &p.StoneAshHardenChance }},
	{"stone_melt_chance", "Stone melt", "Heat", func(p *Params) *float64 { return &p.StoneMeltChance }},
	{"nitrogen_boil_chance", "Nitrogen boil", "Heat", func(p *Params) *float64 { return &p.NitrogenBoilChance }},

	{"fire_ignite_chance", "Fire ignite", "Fire", func(p *Params) *float64 { return &p.FireIgniteChance }},
	{"fire_ash_chance", "Fire to ash", "Fire", func(p *Params) *float64 { return &p.FireAshChance }},
	{"fire_evaporate_chance", "Fire evaporate", "Fire", func(p *Params) *float64 { return &p.FireEvaporateChance }},
	{"fire_burnout_chance", "Fire burnout", "Fire", func(p *Params) *float64 { return &p.FireBurnoutChance }},
	{"fire_smoke_chance", "Fire to smoke", "Fire", func(p *Params) *float64 { return &p.FireSmokeChance }},
	{"hot_ash_cool_chance", "Hot ash cool", "Fire", func(p *Params) *float64 { return &p.HotAshCoolChance }},
	{"hot_ash_ignite_chance", "Hot ash ignite", "Fire", func(p *Params) *float64 { return &p.HotAshIgniteChance }},
	{"hot_ash_ash_ignite_chance", "Hot ash ash ignite", "Fire", func(p *Params) *float64 { return &p.HotAshAshIgniteChance }},
	{"oil_ignite_chance", "Oil ignite", "Fire", func(p *Params) *float64 { return &p.OilIgniteChance }},
	{"fuse_ignite_chance", "Fuse ignite", "Fire", func(p *Params) *float64 { return &p.FuseIgniteChance }},
	{"explosion_fire_chance", "Blast fire share", "Fire", func(p *Params) *float64 { return &p.ExplosionFireChance }},

	{"acid_durable_chance", "Acid vs durable", "Chemistry", func(p *Params) *float64 { return &p.AcidDurableChance }},
	{"acid_consume_chance", "Acid consumed", "Chemistry", func(p *Params) *float64 { return &p.AcidConsumeChance }},
	{"virus_spread_chance", "Virus spread", "Chemistry", func(p *Params) *float64 { return &p.VirusSpreadChance }},
	{"plant_grow_chance", "Plant grow", "Chemistry", func(p *Params) *float64 { return &p.PlantGrowChance }},
	{"smoke_dissipate_chance", "Smoke fade", "Chemistry", func(p *Params) *float64 { return &p.SmokeDissipateChance }},
	{"gas_dissipate_chance", "Gas fade", "Chemistry", func(p *Params) *float64 { return &p.GasDissipateChance }},
}

var intKnobs = []intKnob{
	{"gunpowder_blast_radius", "Gunpowder blast", 16, func(p *Params) *int { return &p.GunpowderBlastRadius }},
	{"hot_ash_blast_radius", "Hot ash blast", 16, func(p *Params) *int { return &p.HotAshBlastRadius }},
}
