package renderers

import (
	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/pattern"
	"github.com/lixenwraith/karl-eido/render"
	"github.com/lixenwraith/karl-eido/vmath"
)

// MirrorScene is the read-only view of the mirror variant state needed for a frame
type MirrorScene struct {
	Side        int
	Stamp       *pattern.Stamp
	ShowCenters bool
}

// MirrorStats are the debug figures of one frame
type MirrorStats struct {
	Cells     int // visible cells drawn
	TotalArea int // mirrored pixels actually drawn
	Visible   int // centroids drawn
	AvgArea   int // TotalArea / Visible, 0 when no centroid was drawn
}

// MirrorRenderer draws dash-dot outlines and stamps the sampled pixels into every cell
type MirrorRenderer struct{}

func NewMirrorRenderer() *MirrorRenderer {
	return &MirrorRenderer{}
}

// Render draws a full frame and returns its statistics
func (r *MirrorRenderer) Render(c render.Canvas, scene MirrorScene) MirrorStats {
	c.Clear()
	c.SetColor(render.ColorBlack)

	var stats MirrorStats
	if scene.Side < constants.MirrorMinSideLength {
		return stats
	}

	width, height := c.Width(), c.Height()
	screen := core.Area{Width: width, Height: height}
	anchor := vmath.Centroid(vmath.Reference(scene.Side).V)

	var points []core.Point
	if scene.Stamp != nil {
		points = scene.Stamp.Points()
	}

	ForEachCell(scene.Side, width, height, func(tri vmath.Triangle) {
		render.DashDotTriangle(c, tri.V)

		center := vmath.Centroid(tri.V)
		offset := center.Sub(anchor)
		area := 0
		for _, p := range points {
			q := p.Add(offset)
			if screen.Contains(q) {
				c.DrawDot(q.X, q.Y)
				area++
			}
		}

		if scene.ShowCenters && screen.Contains(center) {
			c.DrawDisc(center.X, center.Y, constants.CenterDiscRadius)
			stats.Visible++
		}

		stats.TotalArea += area
		stats.Cells++
	})

	if stats.Visible > 0 {
		stats.AvgArea = stats.TotalArea / stats.Visible
	}

	drawMirrorInfo(c, stats)
	return stats
}
