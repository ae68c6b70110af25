package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/karl-eido/input"
)

// ErrNoHost is returned when a session is created without a display host
var ErrNoHost = errors.New("no display host")

// Session connects one App to one Viewport through a bounded event queue
type Session struct {
	cfg      Config
	app      App
	queue    *EventQueue
	viewport Viewport
	notifier Notifier

	closeOnce sync.Once
	closeErr  error
}

// NewSession acquires the event queue and the viewport for app.
// On failure everything acquired so far is released in reverse order.
func NewSession(cfg Config, app App, host Host) (*Session, error) {
	if app == nil {
		return nil, errors.New("session: nil app")
	}
	if host == nil {
		return nil, fmt.Errorf("session: %w", ErrNoHost)
	}

	queue := NewEventQueue(cfg.QueueCapacity)

	viewport, err := host.OpenViewport(cfg.ViewportName)
	if err != nil {
		queue.Close()
		return nil, fmt.Errorf("session: open viewport %q: %w", cfg.ViewportName, err)
	}

	s := &Session{
		cfg:      cfg,
		app:      app,
		queue:    queue,
		viewport: viewport,
		notifier: silentNotifier{},
	}

	viewport.SetDrawCallback(app.Draw)
	viewport.SetInputCallback(s.enqueue)

	log.Printf("session: %s started on viewport %q", app.Name(), cfg.ViewportName)
	return s, nil
}

// SetNotifier installs feedback; nil restores silence
func (s *Session) SetNotifier(n Notifier) {
	if n == nil {
		n = silentNotifier{}
	}
	s.notifier = n
}

func (s *Session) enqueue(ev input.Event) {
	if err := s.queue.Put(ev); err != nil {
		log.Printf("session: dropped %v: %v", ev, err)
	}
}

// Run draws the first frame and processes events until the app stops running,
// ctx is cancelled or the queue is closed
func (s *Session) Run(ctx context.Context) error {
	s.viewport.Update()

	for s.app.Running() {
		if ctx.Err() != nil {
			log.Printf("session: %s cancelled", s.app.Name())
			return nil
		}

		ev, err := s.queue.Get(s.cfg.PollTimeout)
		if errors.Is(err, ErrQueueTimeout) {
			continue
		}
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}

		s.dispatch(ev)
	}

	log.Printf("session: %s exited", s.app.Name())
	return nil
}

func (s *Session) dispatch(ev input.Event) {
	switch s.app.HandleInput(ev) {
	case OutcomeChanged:
		s.viewport.Update()
		s.notifier.Click()
	case OutcomeRefused:
		s.notifier.Buzz()
	case OutcomeExit:
		log.Printf("session: %s exit requested by %v", s.app.Name(), ev)
	}
}

// Close releases the viewport then the queue; safe to call more than once
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.viewport.Close(); err != nil {
			s.closeErr = fmt.Errorf("session: close viewport: %w", err)
		}
		s.queue.Close()
	})
	return s.closeErr
}
