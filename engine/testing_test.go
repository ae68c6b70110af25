package engine

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
)

// fakeViewport draws into an in-memory bitmap and signals every Update
type fakeViewport struct {
	mu      sync.Mutex
	draw    DrawCallback
	input   InputCallback
	frame   *render.Bitmap
	updates chan struct{}
	closed  bool
	order   *[]string
	onClose func()
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{
		frame:   render.NewBitmap(constants.ScreenWidth, constants.ScreenHeight),
		updates: make(chan struct{}, 64),
	}
}

func (v *fakeViewport) SetDrawCallback(cb DrawCallback)   { v.draw = cb }
func (v *fakeViewport) SetInputCallback(cb InputCallback) { v.input = cb }

func (v *fakeViewport) Update() {
	if v.draw != nil {
		v.draw(v.frame)
	}
	v.updates <- struct{}{}
}

func (v *fakeViewport) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.onClose != nil {
		v.onClose()
	}
	if v.order != nil {
		*v.order = append(*v.order, "viewport")
	}
	return nil
}

func (v *fakeViewport) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *fakeViewport) press(k input.Key) {
	v.input(input.Event{Key: k, Type: input.TypePress})
}

func (v *fakeViewport) waitUpdate(t *testing.T) {
	t.Helper()
	select {
	case <-v.updates:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for viewport update")
	}
}

type fakeHost struct {
	vp     *fakeViewport
	err    error
	opened []string
}

func (h *fakeHost) OpenViewport(name string) (Viewport, error) {
	h.opened = append(h.opened, name)
	if h.err != nil {
		return nil, h.err
	}
	return h.vp, nil
}

type countingNotifier struct {
	mu     sync.Mutex
	clicks int
	buzzes int
}

func (n *countingNotifier) Click() { n.mu.Lock(); n.clicks++; n.mu.Unlock() }
func (n *countingNotifier) Buzz()  { n.mu.Lock(); n.buzzes++; n.mu.Unlock() }

func (n *countingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.clicks, n.buzzes
}

var errHostDown = errors.New("host down")
