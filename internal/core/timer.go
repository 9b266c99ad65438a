package core

import "time"

// Cadence reports when a recurring host task is due, such as the periodic
// snapshot save. It accumulates elapsed wall time between polls.
type Cadence struct {
	every       time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewCadence constructs a Cadence that fires once per interval. Non-positive
// intervals default to one second.
func NewCadence(every time.Duration) *Cadence {
	c := &Cadence{now: time.Now}
	c.SetInterval(every)
	return c
}

// SetInterval changes the firing interval. It is safe to call from the main loop.
func (c *Cadence) SetInterval(every time.Duration) {
	if every <= 0 {
		every = time.Second
	}
	c.every = every
}

// Due reports whether the interval has elapsed since the previous firing.
// The first poll only starts the clock.
func (c *Cadence) Due() bool {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return false
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.every {
		// Drop backlog so a stalled frame triggers one save, not a burst.
		c.accumulator = 0
		return true
	}
	return false
}
