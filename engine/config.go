package engine

import (
	"time"

	"github.com/lixenwraith/karl-eido/constants"
)

// Config holds session tunables
type Config struct {
	QueueCapacity int           // pending input events before producers block
	PollTimeout   time.Duration // max wait per loop iteration
	ViewportName  string        // name passed to Host.OpenViewport
}

// DefaultConfig returns the configuration every binary runs with
func DefaultConfig() Config {
	return Config{
		QueueCapacity: constants.EventQueueCapacity,
		PollTimeout:   constants.EventPollTimeout,
		ViewportName:  constants.ViewportName,
	}
}
