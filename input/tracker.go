package input

import (
	"time"

	"github.com/lixenwraith/karl-eido/constants"
)

type hold struct {
	down  bool
	long  bool
	since time.Time
	next  time.Time
}

// HoldTracker turns raw key-down and key-up transitions into keypad events.
// A held key reports Press, then Long once after LongDelay, then Repeat every
// RepeatInterval. Releasing reports Short (only if Long was not reached) and Release.
// Not safe for concurrent use; the window host drives it from its update loop.
type HoldTracker struct {
	LongDelay      time.Duration
	RepeatInterval time.Duration

	keys [keyCount]hold
}

func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		LongDelay:      constants.LongPressDelay,
		RepeatInterval: constants.RepeatInterval,
	}
}

// Down records a key-down; repeated calls while held are ignored
func (t *HoldTracker) Down(k Key, now time.Time) []Event {
	if k >= keyCount || t.keys[k].down {
		return nil
	}
	t.keys[k] = hold{down: true, since: now}
	return []Event{{Key: k, Type: TypePress}}
}

// Up records a key-up for a held key
func (t *HoldTracker) Up(k Key, now time.Time) []Event {
	if k >= keyCount || !t.keys[k].down {
		return nil
	}
	h := t.keys[k]
	t.keys[k] = hold{}

	if h.long {
		return []Event{{Key: k, Type: TypeRelease}}
	}
	return []Event{{Key: k, Type: TypeShort}, {Key: k, Type: TypeRelease}}
}

// Tick emits Long and Repeat events for held keys, at most one per key per call
func (t *HoldTracker) Tick(now time.Time) []Event {
	var events []Event
	for k := Key(0); k < keyCount; k++ {
		h := &t.keys[k]
		if !h.down {
			continue
		}

		if !h.long {
			if now.Sub(h.since) >= t.LongDelay {
				h.long = true
				h.next = h.since.Add(t.LongDelay + t.RepeatInterval)
				events = append(events, Event{Key: k, Type: TypeLong})
			}
			continue
		}

		if !now.Before(h.next) {
			events = append(events, Event{Key: k, Type: TypeRepeat})
			h.next = h.next.Add(t.RepeatInterval)
			// A stalled caller gets one repeat, not a burst
			if !now.Before(h.next) {
				h.next = now.Add(t.RepeatInterval)
			}
		}
	}
	return events
}

// Held reports whether k is currently down
func (t *HoldTracker) Held(k Key) bool {
	return k < keyCount && t.keys[k].down
}

// ReleaseAll reports key-ups for every held key, used when the host loses focus or closes
func (t *HoldTracker) ReleaseAll(now time.Time) []Event {
	var events []Event
	for k := Key(0); k < keyCount; k++ {
		events = append(events, t.Up(k, now)...)
	}
	return events
}
