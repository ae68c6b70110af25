// Package window presents the 128x64 display in a desktop window through ebiten.
// Unlike terminals, windows report key-up, so hold durations are real.
package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/engine"
)

var (
	ErrViewportOpen = errors.New("window viewport already open")
	ErrNoViewport   = errors.New("window has no viewport")
)

// Host owns the single window; Run must be called from the main goroutine
type Host struct {
	Scale int

	name string
	game *Game
}

func NewHost() *Host {
	return &Host{Scale: constants.WindowScale}
}

// OpenViewport prepares the window; it appears once Run is called
func (h *Host) OpenViewport(name string) (engine.Viewport, error) {
	if h.game != nil {
		return nil, ErrViewportOpen
	}
	vp := newViewport()
	h.name = name
	h.game = newGame(vp, h.Scale)
	log.Printf("window: viewport %q at scale %d", name, h.Scale)
	return vp, nil
}

// Run shows the window and blocks until the viewport is closed
func (h *Host) Run() error {
	if h.game == nil {
		return ErrNoViewport
	}

	ebiten.SetWindowSize(constants.ScreenWidth*h.Scale, constants.ScreenHeight*h.Scale)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(h.game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	log.Printf("window: viewport %q closed", h.name)
	return nil
}
