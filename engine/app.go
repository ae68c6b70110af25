// Package engine owns the demo state, maps keypad events to state changes and
// runs the single-goroutine session against a display host
package engine

import (
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
)

// App is one demo variant: its state, its input mapping and its frame
// Only the session goroutine calls these methods
type App interface {
	// Name identifies the variant in logs
	Name() string

	// HandleInput mutates state for one event
	HandleInput(ev input.Event) Outcome

	// Draw renders the full frame from current state
	Draw(c render.Canvas)

	// Running is false once Back was handled
	Running() bool
}

// stepSide moves side by delta if the result stays within [lo, hi]
func stepSide(side, delta, lo, hi int) (int, bool) {
	next := side + delta
	if next < lo || next > hi {
		return side, false
	}
	return next, true
}
