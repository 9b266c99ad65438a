package app

import (
	"log/slog"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/store"
)

// Session is the host-side state around a World: the player's controls, the
// autosave cadence, pausing and the stroke in progress. The GUI drives it
// once per frame; it holds no ebiten types.
type Session struct {
	world    *sand.World
	kv       store.KV
	controls Controls
	autosave *core.Cadence
	log      *slog.Logger

	paused   bool
	stepOnce bool

	stroking     bool
	lastX, lastY int
}

// NewSession restores the saved controls from kv and applies the walls
// setting to world.
func NewSession(world *sand.World, kv store.KV, autosave time.Duration, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	controls, err := LoadControls(kv)
	if err != nil {
		log.Warn("controls unreadable, using defaults", "error", err)
	}
	if world.Walls() != controls.Walls {
		world.SetWalls(controls.Walls)
	}
	return &Session{
		world:    world,
		kv:       kv,
		controls: controls,
		autosave: core.NewCadence(autosave),
		log:      log,
	}
}

// NewWorld builds the world a Session drives. The walls setting saved with
// the controls is applied before the stored grid is restored.
func NewWorld(cfg sand.Config, kv store.KV, log *slog.Logger) (*sand.World, error) {
	if log == nil {
		log = slog.Default()
	}
	if controls, err := LoadControls(kv); err == nil {
		cfg.Walls = controls.Walls
	}
	return sand.NewWithConfig(cfg,
		sand.WithPersistence(store.Slot{KV: kv, Key: GridKey}),
		sand.WithLogger(log),
	)
}

func (s *Session) World() *sand.World { return s.world }
func (s *Session) Controls() Controls { return s.controls }
func (s *Session) Paused() bool       { return s.paused }

// SelectElement switches the brush element. Unknown ids are ignored.
func (s *Session) SelectElement(e sand.Element) {
	if !e.Valid() || e == s.controls.Element {
		return
	}
	s.controls.Element = e
	s.persist()
}

// AdjustBrush changes the brush diameter by delta pixels within range.
func (s *Session) AdjustBrush(delta int) {
	s.update(func(c *Controls) { c.Brush += delta })
}

// AdjustSpeed changes the ticks per frame by delta within range.
func (s *Session) AdjustSpeed(delta int) {
	s.update(func(c *Controls) { c.Speed += delta })
}

// ToggleWalls flips the border ring.
func (s *Session) ToggleWalls() {
	s.controls.Walls = !s.controls.Walls
	s.world.SetWalls(s.controls.Walls)
	s.persist()
}

func (s *Session) TogglePause() { s.paused = !s.paused }

// StepOnce advances a single tick on the next Update while paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Clear empties the world, forgets the stored grid and restores the default
// controls.
func (s *Session) Clear() {
	s.controls = DefaultControls()
	if err := s.kv.Delete(ControlsKey); err != nil {
		s.log.Warn("discard controls", "error", err)
	}
	s.world.SetWalls(s.controls.Walls)
	s.world.Clear()
	s.EndStroke()
}

// Stroke paints at cell (x, y). While a stroke is in progress the brush is
// dragged along a line from the previous point so fast moves leave no gaps.
func (s *Session) Stroke(x, y int) {
	e, brush := s.controls.Element, s.controls.Brush
	if s.stroking && (x != s.lastX || y != s.lastY) {
		s.world.PaintLine(s.lastX, s.lastY, x, y, e, brush)
	} else {
		s.world.Paint(x, y, e, brush)
	}
	s.stroking = true
	s.lastX, s.lastY = x, y
}

// EndStroke forgets the previous stroke point.
func (s *Session) EndStroke() { s.stroking = false }

// Update runs one frame: speed ticks unless paused, then the autosave when
// due. It returns the number of ticks advanced.
func (s *Session) Update() int {
	ticks := s.controls.Speed
	if s.paused {
		ticks = 0
		if s.stepOnce {
			ticks = 1
		}
	}
	s.stepOnce = false
	for i := 0; i < ticks; i++ {
		s.world.Advance()
	}
	if s.autosave.Due() {
		if err := s.world.Save(); err != nil {
			s.log.Warn("autosave failed", "error", err)
		}
	}
	return ticks
}

// Resize rebuilds the grid for a canvas of the given pixel size.
func (s *Session) Resize(pixelWidth, pixelHeight int) {
	s.world.Initialize(pixelWidth, pixelHeight, s.controls.Walls)
}

// Flush writes the grid and the controls. Call it before exiting.
func (s *Session) Flush() error {
	if err := s.world.Save(); err != nil {
		return err
	}
	return SaveControls(s.kv, s.controls)
}

func (s *Session) update(fn func(*Controls)) {
	next := s.controls
	fn(&next)
	next = next.Normalize()
	if next == s.controls {
		return
	}
	s.controls = next
	s.persist()
}

func (s *Session) persist() {
	if err := SaveControls(s.kv, s.controls); err != nil {
		s.log.Warn("save controls", "error", err)
	}
}
