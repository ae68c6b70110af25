package input

import (
	"time"

	"github.com/lixenwraith/karl-eido/constants"
)

// HitFilter classifies key hits from hosts that only report key-down, such as
// terminals. A hit of the same key within Gap of the previous one is treated
// as terminal auto-repeat.
type HitFilter struct {
	Gap time.Duration

	last    Key
	lastAt  time.Time
	hasLast bool
}

func NewHitFilter() *HitFilter {
	return &HitFilter{Gap: constants.HitRepeatGap}
}

// Hit returns the event for a key-down of k at now
func (f *HitFilter) Hit(k Key, now time.Time) Event {
	typ := TypePress
	if f.hasLast && f.last == k && now.Sub(f.lastAt) < f.Gap {
		typ = TypeRepeat
	}
	f.last, f.lastAt, f.hasLast = k, now, true
	return Event{Key: k, Type: typ}
}

// Reset forgets the previous hit
func (f *HitFilter) Reset() {
	f.hasLast = false
}
