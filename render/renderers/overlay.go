package renderers

import (
	"fmt"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/render"
)

// drawMirrorInfo writes "# <avg area> T: <centroids>" on a white box in the top-right corner
func drawMirrorInfo(c render.Canvas, stats MirrorStats) {
	c.SetColor(render.ColorWhite)
	c.DrawBox(constants.MirrorInfoBoxX, 0, constants.MirrorInfoBoxWidth, constants.MirrorInfoBoxHeight)

	c.SetColor(render.ColorBlack)
	c.DrawStr(constants.MirrorInfoTextX, constants.MirrorInfoTextY,
		fmt.Sprintf(constants.MirrorInfoFormat, stats.AvgArea, stats.Visible))
}

// drawLatticeBanner writes side, lines, full, partial and area across the top of the screen
func drawLatticeBanner(c render.Canvas, stats LatticeStats) {
	c.SetColor(render.ColorWhite)
	c.DrawBox(0, 0, c.Width(), constants.LatticeBannerHeight)

	c.SetColor(render.ColorBlack)
	c.DrawStr(constants.LatticeBannerTextX, constants.LatticeBannerTextY,
		fmt.Sprintf(constants.LatticeBannerFormat, stats.Side, stats.Lines, stats.Full, stats.Partial, stats.Area))
}
