package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/lixenwraith/karl-eido/input"
)

var (
	// ErrQueueClosed is returned by Put and Get after Close
	ErrQueueClosed = errors.New("event queue closed")

	// ErrQueueTimeout is returned by Get when no event arrived in time
	ErrQueueTimeout = errors.New("event queue timeout")
)

// EventQueue is a bounded multi-producer, single-consumer queue of input events.
// Producers are host input goroutines; the session goroutine is the consumer.
type EventQueue struct {
	ch        chan input.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewEventQueue creates a queue holding up to capacity pending events
func NewEventQueue(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &EventQueue{
		ch:   make(chan input.Event, capacity),
		done: make(chan struct{}),
	}
}

// Put enqueues ev, blocking while the queue is full
func (q *EventQueue) Put(ev input.Event) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case q.ch <- ev:
		return nil
	case <-q.done:
		return ErrQueueClosed
	}
}

// Get dequeues one event, waiting at most timeout
func (q *EventQueue) Get(timeout time.Duration) (input.Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-q.ch:
		return ev, nil
	case <-q.done:
		return input.Event{}, ErrQueueClosed
	case <-timer.C:
		return input.Event{}, ErrQueueTimeout
	}
}

// Len returns the number of pending events
func (q *EventQueue) Len() int { return len(q.ch) }

// Close unblocks all producers and the consumer; pending events are dropped
func (q *EventQueue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
