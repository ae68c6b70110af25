package engine

import (
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
)

// DrawCallback renders a full frame; called synchronously from Viewport.Update
type DrawCallback func(c render.Canvas)

// InputCallback receives keypad events from the host's input goroutine
type InputCallback func(ev input.Event)

// Host provides display viewports
type Host interface {
	OpenViewport(name string) (Viewport, error)
}

// Viewport is a 128x64 display surface with keypad input
type Viewport interface {
	SetDrawCallback(cb DrawCallback)
	SetInputCallback(cb InputCallback)

	// Update runs the draw callback and presents the frame
	Update()

	// Close stops input delivery and releases the display
	Close() error
}

// Notifier gives audible feedback on state changes and refused steps
type Notifier interface {
	Click()
	Buzz()
}

type silentNotifier struct{}

func (silentNotifier) Click() {}
func (silentNotifier) Buzz()  {}
