package renderers

import (
	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/render"
	"github.com/lixenwraith/karl-eido/vmath"
)

// LatticeScene is the read-only view of the lattice variant state needed for a frame
type LatticeScene struct {
	Side      int
	ShowLines bool
	ShowInfo  bool
}

// LatticeStats are the debug figures of one frame
type LatticeStats struct {
	Side    int
	Lines   int // segments emitted, 0 when lines are hidden
	Full    int // cells with every vertex on screen
	Partial int // visible cells with a vertex off screen
	Area    int // area of one cell; all cells are congruent
}

// LatticeRenderer draws the deduplicated solid line set and classifies cell visibility
type LatticeRenderer struct{}

func NewLatticeRenderer() *LatticeRenderer {
	return &LatticeRenderer{}
}

// Render draws a full frame and returns its statistics
func (r *LatticeRenderer) Render(c render.Canvas, scene LatticeScene) LatticeStats {
	c.Clear()
	c.SetColor(render.ColorBlack)

	width, height := c.Width(), c.Height()
	stats := LatticeStats{
		Side: scene.Side,
		Area: vmath.Area(vmath.Reference(scene.Side).V),
	}

	if scene.ShowLines {
		// Vertical edges: only right-pointing cells own theirs
		ForEachCell(scene.Side, width, height, func(tri vmath.Triangle) {
			if !tri.PointingRight {
				return
			}
			c.DrawLine(tri.V[0].X, tri.V[0].Y, tri.V[1].X, tri.V[1].Y)
			stats.Lines++
		})

		// Diagonals: each is shared by one right- and one left-pointing cell; emit from the right one
		ForEachCell(scene.Side, width, height, func(tri vmath.Triangle) {
			if !tri.PointingRight {
				return
			}
			c.DrawLine(tri.V[0].X, tri.V[0].Y, tri.V[2].X, tri.V[2].Y)
			c.DrawLine(tri.V[1].X, tri.V[1].Y, tri.V[2].X, tri.V[2].Y)
			stats.Lines += 2
		})
	}

	screen := core.Area{Width: width, Height: height}
	ForEachCell(scene.Side, width, height, func(tri vmath.Triangle) {
		if vmath.IsFullyVisible(tri.V, width, height) {
			stats.Full++
		} else {
			stats.Partial++
		}

		if scene.ShowInfo {
			center := vmath.Centroid(tri.V)
			if screen.Contains(center) {
				c.DrawDisc(center.X, center.Y, constants.CenterDiscRadius)
			}
		}
	})

	if scene.ShowInfo {
		drawLatticeBanner(c, stats)
	}
	return stats
}
