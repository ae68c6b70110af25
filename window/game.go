package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/input"
)

// Game is the ebiten loop of the window host; it only scans keys and presents frames
type Game struct {
	vp      *Viewport
	keys    *keyScanner
	scale   int
	img     *ebiten.Image
	focused bool
	closing bool
}

func newGame(vp *Viewport, scale int) *Game {
	return &Game{vp: vp, keys: newKeyScanner(), scale: scale, focused: true}
}

func (g *Game) Update() error {
	if g.vp.isClosed() {
		return ebiten.Termination
	}
	now := time.Now()

	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		g.vp.deliver(input.Event{Key: input.KeyBack, Type: input.TypePress})
		return nil
	}

	focused := ebiten.IsFocused()
	if !focused {
		if g.focused {
			g.dispatch(g.keys.releaseAll(now))
		}
		g.focused = false
		return nil
	}
	g.focused = true

	g.dispatch(g.keys.scan(now, ebiten.IsKeyPressed))
	return nil
}

func (g *Game) dispatch(events []input.Event) {
	for _, ev := range events {
		g.vp.deliver(ev)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(constants.ScreenWidth, constants.ScreenHeight)
	}
	g.vp.writeTo(g.img)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.ScreenWidth * g.scale, constants.ScreenHeight * g.scale
}
