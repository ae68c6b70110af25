package engine

import (
	"log"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/pattern"
	"github.com/lixenwraith/karl-eido/render"
	"github.com/lixenwraith/karl-eido/render/renderers"
	"github.com/lixenwraith/karl-eido/vmath"
)

// MirrorState is the user-adjustable state of the mirror variant
type MirrorState struct {
	SideLength      int  // [MirrorMinSideLength, MirrorMaxSideLength], step SideLengthStep
	NumRandomPixels int  // sampling trials per regeneration, >= 0
	ShowCenters     bool // draw centroid discs and count them
	Running         bool
}

// DefaultMirrorState returns the startup state
func DefaultMirrorState() MirrorState {
	return MirrorState{
		SideLength:      constants.MirrorInitialSideLength,
		NumRandomPixels: constants.InitialRandomPixels,
		Running:         true,
	}
}

// MirrorApp stamps a random pixel set into every lattice cell
type MirrorApp struct {
	state    MirrorState
	stamp    *pattern.Stamp
	rng      *vmath.FastRand
	renderer *renderers.MirrorRenderer
	stats    renderers.MirrorStats
}

// NewMirrorApp creates the mirror variant with default state; seed drives the pixel sampler
func NewMirrorApp(seed uint64) *MirrorApp {
	a := &MirrorApp{
		state:    DefaultMirrorState(),
		stamp:    pattern.NewStamp(constants.MaxPixels),
		rng:      vmath.NewFastRand(seed),
		renderer: renderers.NewMirrorRenderer(),
	}
	a.regenerate()
	return a
}

func (a *MirrorApp) Name() string { return "mirror" }

func (a *MirrorApp) Running() bool { return a.state.Running }

// State returns a copy of the current state
func (a *MirrorApp) State() MirrorState { return a.state }

// Stamp returns the sampled point set; owned by the app
func (a *MirrorApp) Stamp() *pattern.Stamp { return a.stamp }

// Stats returns the figures of the last drawn frame
func (a *MirrorApp) Stats() renderers.MirrorStats { return a.stats }

func (a *MirrorApp) HandleInput(ev input.Event) Outcome {
	if !ev.IsStep() {
		return OutcomeNone
	}

	switch ev.Key {
	case input.KeyUp, input.KeyDown:
		delta := constants.SideLengthStep
		if ev.Key == input.KeyDown {
			delta = -delta
		}
		side, ok := stepSide(a.state.SideLength, delta, constants.MirrorMinSideLength, constants.MirrorMaxSideLength)
		if !ok {
			return OutcomeRefused
		}
		a.state.SideLength = side
		a.regenerate()

	case input.KeyLeft:
		if a.state.NumRandomPixels == 0 {
			return OutcomeRefused
		}
		a.state.NumRandomPixels--
		a.regenerate()

	case input.KeyRight:
		a.state.NumRandomPixels++
		a.regenerate()

	case input.KeyOK:
		if ev.Type != input.TypePress {
			return OutcomeNone
		}
		a.state.ShowCenters = !a.state.ShowCenters

	case input.KeyBack:
		a.state.Running = false
		return OutcomeExit

	default:
		return OutcomeNone
	}

	log.Printf("mirror: side=%d pixels=%d centers=%v stamp=%d",
		a.state.SideLength, a.state.NumRandomPixels, a.state.ShowCenters, a.stamp.Len())
	return OutcomeChanged
}

func (a *MirrorApp) Draw(c render.Canvas) {
	a.stats = a.renderer.Render(c, renderers.MirrorScene{
		Side:        a.state.SideLength,
		Stamp:       a.stamp,
		ShowCenters: a.state.ShowCenters,
	})
}

func (a *MirrorApp) regenerate() {
	a.stamp.Regenerate(a.state.SideLength, a.state.NumRandomPixels, a.rng)
}
