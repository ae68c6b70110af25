package terminal

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/engine"
)

// ErrScreenInit is returned when the terminal cannot be taken over
var ErrScreenInit = errors.New("terminal screen init failed")

// Host opens viewports on a tcell screen
type Host struct {
	screen tcell.Screen
	keys   *KeyTable
}

// NewHost wraps screen; it is initialized by OpenViewport and finalized by Viewport.Close
func NewHost(screen tcell.Screen) *Host {
	return &Host{screen: screen, keys: DefaultKeyTable()}
}

// NewScreenHost creates a host on the controlling terminal
func NewScreenHost() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScreenInit, err)
	}
	return NewHost(screen), nil
}

// OpenViewport initializes the screen and starts input polling
func (h *Host) OpenViewport(name string) (engine.Viewport, error) {
	if err := h.screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScreenInit, err)
	}
	core.SetCrashTerminal(h.screen)

	h.screen.HideCursor()
	h.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	h.screen.Clear()

	w, ht := h.screen.Size()
	log.Printf("terminal: viewport %q on %dx%d terminal", name, w, ht)

	v := newViewport(h.screen, h.keys)
	core.Go(v.poll)
	return v, nil
}
