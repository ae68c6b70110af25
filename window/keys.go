package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/karl-eido/input"
)

// keyBinding lists the keyboard keys that act as one keypad button
type keyBinding struct {
	pad  input.Key
	keys []ebiten.Key
}

var defaultBindings = []keyBinding{
	{input.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyK}},
	{input.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyJ}},
	{input.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyH}},
	{input.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyL}},
	{input.KeyOK, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
	{input.KeyBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace, ebiten.KeyQ}},
}

// keyScanner converts polled keyboard state into keypad events
type keyScanner struct {
	bindings []keyBinding
	tracker  *input.HoldTracker
}

func newKeyScanner() *keyScanner {
	return &keyScanner{bindings: defaultBindings, tracker: input.NewHoldTracker()}
}

// scan compares pressed against the held set and advances hold timers
func (s *keyScanner) scan(now time.Time, pressed func(ebiten.Key) bool) []input.Event {
	var events []input.Event
	for _, b := range s.bindings {
		down := false
		for _, k := range b.keys {
			if pressed(k) {
				down = true
				break
			}
		}
		if down {
			events = append(events, s.tracker.Down(b.pad, now)...)
		} else {
			events = append(events, s.tracker.Up(b.pad, now)...)
		}
	}
	return append(events, s.tracker.Tick(now)...)
}

// releaseAll ends every hold, used when the window loses focus
func (s *keyScanner) releaseAll(now time.Time) []input.Event {
	return s.tracker.ReleaseAll(now)
}
