package ui

import (
	"fmt"
	"strings"
)

// Status is the state summarized on the overlay status line.
type Status struct {
	Element string
	Brush   int
	Speed   int
	Walls   bool
	Paused  bool
	Tick    uint64
	TPS     float64
}

func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  brush %d  speed %dx", s.Element, s.Brush, s.Speed)
	if s.Walls {
		b.WriteString("  walls")
	}
	if s.Paused {
		b.WriteString("  [paused]")
	}
	fmt.Fprintf(&b, "  tick %d  %.0f tps", s.Tick, s.TPS)
	return b.String()
}
