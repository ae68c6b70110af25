package engine

import (
	"log"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/input"
	"github.com/lixenwraith/karl-eido/render"
	"github.com/lixenwraith/karl-eido/render/renderers"
)

// LatticeState is the user-adjustable state of the lattice variant
type LatticeState struct {
	SideLength int
	ShowLines  bool
	ShowInfo   bool
	Running    bool
}

func DefaultLatticeState() LatticeState {
	return LatticeState{
		SideLength: constants.LatticeInitialSideLength,
		ShowLines:  true,
		ShowInfo:   true,
		Running:    true,
	}
}

// LatticeApp draws the solid line set with visibility statistics
type LatticeApp struct {
	state    LatticeState
	renderer *renderers.LatticeRenderer
	stats    renderers.LatticeStats
}

func NewLatticeApp() *LatticeApp {
	return &LatticeApp{
		state:    DefaultLatticeState(),
		renderer: renderers.NewLatticeRenderer(),
	}
}

func (a *LatticeApp) Name() string { return "lattice" }

func (a *LatticeApp) Running() bool { return a.state.Running }

func (a *LatticeApp) State() LatticeState { return a.state }

func (a *LatticeApp) Stats() renderers.LatticeStats { return a.stats }

// HandleInput toggles info on a short OK and lines on a long OK, so one
// hold never flips both
func (a *LatticeApp) HandleInput(ev input.Event) Outcome {
	switch {
	case ev.Key == input.KeyOK && ev.Type == input.TypeShort:
		a.state.ShowInfo = !a.state.ShowInfo
	case ev.Key == input.KeyOK && ev.Type == input.TypeLong:
		a.state.ShowLines = !a.state.ShowLines

	case !ev.IsStep():
		return OutcomeNone

	case ev.Key == input.KeyUp, ev.Key == input.KeyDown:
		delta := constants.SideLengthStep
		if ev.Key == input.KeyDown {
			delta = -delta
		}
		side, ok := stepSide(a.state.SideLength, delta, constants.LatticeMinSideLength, constants.LatticeMaxSideLength)
		if !ok {
			return OutcomeRefused
		}
		a.state.SideLength = side

	case ev.Key == input.KeyBack:
		a.state.Running = false
		return OutcomeExit

	default:
		return OutcomeNone
	}

	log.Printf("lattice: side=%d lines=%v info=%v", a.state.SideLength, a.state.ShowLines, a.state.ShowInfo)
	return OutcomeChanged
}

func (a *LatticeApp) Draw(c render.Canvas) {
	a.stats = a.renderer.Render(c, renderers.LatticeScene{
		Side:      a.state.SideLength,
		ShowLines: a.state.ShowLines,
		ShowInfo:  a.state.ShowInfo,
	})
}
