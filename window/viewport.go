package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/engine"
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
)

// Viewport hands frames from the session goroutine to the ebiten draw loop
type Viewport struct {
	// Session goroutine only
	frame *render.Bitmap

	mu      sync.Mutex
	draw    engine.DrawCallback
	onInput engine.InputCallback
	pix     []byte // RGBA of the latest frame
	dirty   bool
	closed  bool
}

func newViewport() *Viewport {
	return &Viewport{
		frame: render.NewBitmap(constants.ScreenWidth, constants.ScreenHeight),
		pix:   make([]byte, constants.ScreenWidth*constants.ScreenHeight*4),
		dirty: true,
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

// Update renders a frame and publishes it for the next ebiten Draw
func (v *Viewport) Update() {
	v.mu.Lock()
	draw := v.draw
	v.mu.Unlock()

	if draw != nil {
		draw(v.frame)
	}

	v.mu.Lock()
	fillRGBA(v.pix, v.frame)
	v.dirty = true
	v.mu.Unlock()
}

// Close makes the game loop terminate on its next tick
func (v *Viewport) Close() error {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	return nil
}

func (v *Viewport) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *Viewport) deliver(ev input.Event) {
	v.mu.Lock()
	cb := v.onInput
	v.mu.Unlock()

	if cb != nil {
		cb(ev)
	}
}

// writeTo uploads the latest frame to img if it changed; game thread only
func (v *Viewport) writeTo(img *ebiten.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.dirty {
		return
	}
	img.WritePixels(v.pix)
	v.dirty = false
}

// fillRGBA expands the 1-bit frame into panel colors
func fillRGBA(pix []byte, frame *render.Bitmap) {
	w, h := frame.Width(), frame.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := constants.PixelOffColor
			if frame.IsSet(x, y) {
				c = constants.PixelOnColor
			}
			i := (y*w + x) * 4
			pix[i] = byte(c >> 16)
			pix[i+1] = byte(c >> 8)
			pix[i+2] = byte(c)
			pix[i+3] = 0xFF
		}
	}
}
