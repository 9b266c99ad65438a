package sand

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Element identifies the kind of matter occupying a cell. The numeric values
// are persisted in snapshots and must not be renumbered.
type Element uint8

const (
	Empty Element = iota
	Wall
	Sand
	Water
	Plant
	Fire
	Lava
	Acid
	Smoke
	Stone
	StoneAsh
	Ash
	HotAsh
	Gas
	Oil
	Gunpowder
	Ice
	Virus
	Nitrogen
	Methane
	BlackHole
	Antimatter
	WaterSpout
	Fuse
	BurningFuse
	Gel
	Cloner
	Diamond
	LavaSpout
	FireSpout
	SmokeSpout
	FuseIgniting

	elementCount
)

// NumElements is the number of defined element kinds.
const NumElements = int(elementCount)

// Immovable is the density carried by elements that never move.
var Immovable = math.Inf(1)

var elementNames = [elementCount]string{
	Empty:        "empty",
	Wall:         "wall",
	Sand:         "sand",
	Water:        "water",
	Plant:        "plant",
	Fire:         "fire",
	Lava:         "lava",
	Acid:         "acid",
	Smoke:        "smoke",
	Stone:        "stone",
	StoneAsh:     "stone_ash",
	Ash:          "ash",
	HotAsh:       "hot_ash",
	Gas:          "gas",
	Oil:          "oil",
	Gunpowder:    "gunpowder",
	Ice:          "ice",
	Virus:        "virus",
	Nitrogen:     "nitrogen",
	Methane:      "methane",
	BlackHole:    "black_hole",
	Antimatter:   "antimatter",
	WaterSpout:   "water_spout",
	Fuse:         "fuse",
	BurningFuse:  "burning_fuse",
	Gel:          "gel",
	Cloner:       "cloner",
	Diamond:      "diamond",
	LavaSpout:    "lava_spout",
	FireSpout:    "fire_spout",
	SmokeSpout:   "smoke_spout",
	FuseIgniting: "fuse_igniting",
}

// Valid reports whether e is one of the defined elements.
func (e Element) Valid() bool { return e < elementCount }

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("element(%d)", uint8(e))
	}
	return elementNames[e]
}

// ParseElement resolves an element by its snake_case name.
func ParseElement(name string) (Element, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range elementNames {
		if n == name {
			return Element(i), true
		}
	}
	return Empty, false
}

// Class is the movement behavior of an element.
type Class uint8

const (
	// ClassNone is only used by Empty.
	ClassNone Class = iota
	// ClassBuoyant rises into empty space.
	ClassBuoyant
	// ClassMobile sinks below less dense neighbors.
	ClassMobile
	// ClassStatic never moves but still reacts.
	ClassStatic
)

// ElementInfo is the static metadata for one element.
type ElementInfo struct {
	Density    float64
	Class      Class
	Liquid     bool
	LavaImmune bool
	HeatSource bool
	Color      color.RGBA
}

// ErrIncompleteRegistry is returned when an element lacks metadata.
var ErrIncompleteRegistry = errors.New("sand: incomplete element registry")

// Registry answers read-only metadata lookups for every element.
type Registry struct {
	infos [elementCount]ElementInfo
}

// NewRegistry validates defs and builds a Registry. Every element must be
// present with a usable density; static solids must be immovable and Empty
// must be the lightest element.
func NewRegistry(defs map[Element]ElementInfo) (*Registry, error) {
	r := &Registry{}
	var missing []string
	for e := Element(0); e < elementCount; e++ {
		info, ok := defs[e]
		if !ok || math.IsNaN(info.Density) || info.Density < 0 {
			missing = append(missing, e.String())
			continue
		}
		if info.Class == ClassStatic && !math.IsInf(info.Density, 1) {
			return nil, fmt.Errorf("%w: static %s must be immovable", ErrIncompleteRegistry, e)
		}
		r.infos[e] = info
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: no density for %s", ErrIncompleteRegistry, strings.Join(missing, ", "))
	}
	if r.infos[Empty].Density != 0 {
		return nil, fmt.Errorf("%w: empty must have density 0", ErrIncompleteRegistry)
	}
	return r, nil
}

// DefaultRegistry builds the registry for the built-in element table.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultElements())
}

// Info returns the metadata of e.
func (r *Registry) Info(e Element) ElementInfo {
	if !e.Valid() {
		return ElementInfo{}
	}
	return r.infos[e]
}

func (r *Registry) Density(e Element) float64 { return r.Info(e).Density }

func (r *Registry) Class(e Element) Class { return r.Info(e).Class }

func (r *Registry) IsStaticSolid(e Element) bool { return r.Info(e).Class == ClassStatic }

func (r *Registry) IsBuoyant(e Element) bool { return r.Info(e).Class == ClassBuoyant }

func (r *Registry) IsLiquid(e Element) bool { return r.Info(e).Liquid }

func (r *Registry) IsLavaImmune(e Element) bool { return r.Info(e).LavaImmune }

func (r *Registry) IsHeatSource(e Element) bool { return r.Info(e).HeatSource }

func (r *Registry) ColorOf(e Element) color.RGBA { return r.Info(e).Color }

// DefaultElements returns a fresh copy of the built-in element table.
func DefaultElements() map[Element]ElementInfo {
	static := func(c color.RGBA) ElementInfo {
		return ElementInfo{Density: Immovable, Class: ClassStatic, Color: c}
	}
	immune := func(c color.RGBA) ElementInfo {
		info := static(c)
		info.LavaImmune = true
		return info
	}
	mobile := func(d float64, c color.RGBA) ElementInfo {
		return ElementInfo{Density: d, Class: ClassMobile, Color: c}
	}
	liquid := func(d float64, c color.RGBA) ElementInfo {
		return ElementInfo{Density: d, Class: ClassMobile, Liquid: true, Color: c}
	}
	buoyant := func(d float64, c color.RGBA) ElementInfo {
		return ElementInfo{Density: d, Class: ClassBuoyant, Color: c}
	}

	defs := map[Element]ElementInfo{
		Empty:        {Density: 0, Class: ClassNone, Color: rgb(0x00, 0x00, 0x00)},
		Wall:         immune(rgb(0x50, 0x50, 0x50)),
		Sand:         mobile(15, rgb(0xf0, 0xd9, 0xa5)),
		Water:        liquid(10, rgb(0x34, 0x98, 0xdb)),
		Plant:        static(rgb(0x2e, 0xcc, 0x71)),
		Fire:         buoyant(1, rgb(0xe7, 0x4c, 0x3c)),
		Lava:         liquid(22, rgb(0xd3, 0x54, 0x00)),
		Acid:         liquid(11, rgb(0x9b, 0x59, 0xb6)),
		Smoke:        buoyant(1, rgb(0x88, 0x88, 0x88)),
		Stone:        static(rgb(0x80, 0x80, 0x80)),
		StoneAsh:     mobile(25, rgb(0x6b, 0x6b, 0x6b)),
		Ash:          mobile(12, rgb(0x2b, 0x2b, 0x2b)),
		HotAsh:       mobile(12, rgb(0xdb, 0x4f, 0x27)),
		Gas:          buoyant(0.5, rgb(0xc2, 0xc2, 0xc2)),
		Oil:          liquid(8, rgb(0x3b, 0x2e, 0x26)),
		Gunpowder:    mobile(16, rgb(0x40, 0x40, 0x40)),
		Ice:          static(rgb(0xae, 0xd6, 0xf1)),
		Virus:        mobile(10, rgb(0x7d, 0xff, 0x7d)),
		Nitrogen:     liquid(9.5, rgb(0x77, 0xb5, 0xfe)),
		Methane:      buoyant(0.4, rgb(0xbc, 0xa0, 0xd1)),
		BlackHole:    static(rgb(0x0d, 0x0d, 0x0d)),
		Antimatter:   mobile(17, rgb(0xf0, 0xf0, 0xf0)),
		WaterSpout:   immune(rgb(0x50, 0x78, 0xa0)),
		Fuse:         static(rgb(0x4a, 0x2a, 0x0c)),
		BurningFuse:  mobile(17, rgb(0xff, 0xaa, 0x00)),
		Gel:          liquid(10.5, rgb(0xb9, 0x78, 0xc7)),
		Cloner:       static(rgb(0xff, 0x00, 0xff)),
		Diamond:      immune(rgb(0xb9, 0xf2, 0xff)),
		LavaSpout:    immune(rgb(0xa0, 0x68, 0x50)),
		FireSpout:    immune(rgb(0xa0, 0x50, 0x50)),
		SmokeSpout:   immune(rgb(0x60, 0x60, 0x60)),
		FuseIgniting: static(rgb(0x8f, 0x4f, 0x1b)),
	}
	for _, e := range []Element{Fire, Lava, HotAsh} {
		info := defs[e]
		info.HeatSource = true
		defs[e] = info
	}
	return defs
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }
