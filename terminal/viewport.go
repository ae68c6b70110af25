package terminal

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/engine"
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
)

var (
	pixelOn  = tcell.NewHexColor(constants.PixelOnColor)
	pixelOff = tcell.NewHexColor(constants.PixelOffColor)
)

// Viewport renders the display bitmap as half-block cells
type Viewport struct {
	screen tcell.Screen
	keys   *KeyTable

	// Guards frame; Update and resize both present it
	frameMu sync.Mutex
	frame   *render.Bitmap

	// Poll goroutine only
	hits *input.HitFilter

	mu      sync.Mutex
	draw    engine.DrawCallback
	onInput engine.InputCallback

	closeOnce sync.Once
}

func newViewport(screen tcell.Screen, keys *KeyTable) *Viewport {
	return &Viewport{
		screen: screen,
		keys:   keys,
		frame:  render.NewBitmap(constants.ScreenWidth, constants.ScreenHeight),
		hits:   input.NewHitFilter(),
	}
}

func (v *Viewport) SetDrawCallback(cb engine.DrawCallback) {
	v.mu.Lock()
	v.draw = cb
	v.mu.Unlock()
}

func (v *Viewport) SetInputCallback(cb engine.InputCallback) {
	v.mu.Lock()
	v.onInput = cb
	v.mu.Unlock()
}

// Update runs the draw callback on the frame and presents it
func (v *Viewport) Update() {
	v.mu.Lock()
	draw := v.draw
	v.mu.Unlock()

	v.frameMu.Lock()
	defer v.frameMu.Unlock()
	if draw != nil {
		draw(v.frame)
	}
	v.present()
}

// present maps pixel rows 2y and 2y+1 onto terminal row y; caller holds frameMu
func (v *Viewport) present() {
	w, h := v.screen.Size()
	ox := max(0, (w-constants.TerminalColumns)/2)
	oy := max(0, (h-constants.TerminalRows)/2)

	for y := 0; y < constants.TerminalRows; y++ {
		for x := 0; x < constants.TerminalColumns; x++ {
			style := tcell.StyleDefault.
				Foreground(pixelColor(v.frame.IsSet(x, 2*y))).
				Background(pixelColor(v.frame.IsSet(x, 2*y+1)))
			v.screen.SetContent(ox+x, oy+y, constants.HalfBlock, nil, style)
		}
	}
	v.screen.Show()
}

func pixelColor(on bool) tcell.Color {
	if on {
		return pixelOn
	}
	return pixelOff
}

// poll reads terminal events until the screen is finalized
func (v *Viewport) poll() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		v.handleEvent(ev, time.Now())
	}
}

func (v *Viewport) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b, ok := v.keys.Lookup(ev)
		if !ok {
			return
		}
		if b.long {
			v.hits.Reset()
			v.deliver(input.Event{Key: b.key, Type: input.TypeLong})
			return
		}
		e := v.hits.Hit(b.key, now)
		v.deliver(e)
		if b.tap && e.Type == input.TypePress {
			v.deliver(input.Event{Key: b.key, Type: input.TypeShort})
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.frameMu.Lock()
		v.present()
		v.frameMu.Unlock()
	}
}

func (v *Viewport) deliver(e input.Event) {
	v.mu.Lock()
	cb := v.onInput
	v.mu.Unlock()

	if cb != nil {
		cb(e)
	}
}

// Close restores the terminal; the poll goroutine exits once PollEvent returns nil
func (v *Viewport) Close() error {
	v.closeOnce.Do(func() {
		v.screen.Fini()
		core.SetCrashTerminal(nil)
		log.Printf("terminal: viewport closed")
	})
	return nil
}
