package constants

import "time"

// Event Loop Constants
const (
	// EventQueueCapacity is the number of pending input events the queue holds
	EventQueueCapacity = 8

	// EventPollTimeout is how long the session waits for an event before re-checking the running flag
	EventPollTimeout = 100 * time.Millisecond

	// ViewportName is the name under which the display handle is acquired
	ViewportName = "gui"
)

// Key Hold Timing
const (
	// LongPressDelay is how long a key must be held before a long press is reported
	LongPressDelay = 300 * time.Millisecond

	// RepeatInterval is the period of repeat events after a long press
	RepeatInterval = 150 * time.Millisecond

	// HitRepeatGap is the maximum gap between terminal key hits treated as auto-repeat
	HitRepeatGap = 100 * time.Millisecond
)
