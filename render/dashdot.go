package render

import (
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/vmath"
)

// dashDotPattern is ". .. " : on, off, on, on, off
var dashDotPattern = [...]bool{true, false, true, true, false}

// DashDotLine draws a Bresenham line from p1 to p2 through the dash-dot pattern.
// The pattern cursor starts at 0 on every call and advances once per visited pixel.
func DashDotLine(c Canvas, p1, p2 core.Point) {
	idx := 0
	s := vmath.NewLineStepper(p1, p2)
	for s.Next() {
		if dashDotPattern[idx] {
			c.DrawDot(s.Pos())
		}
		idx = (idx + 1) % len(dashDotPattern)
	}
}

// DashDotTriangle outlines a triangle edge by edge: v0-v1, v1-v2, v2-v0
func DashDotTriangle(c Canvas, v [3]core.Point) {
	DashDotLine(c, v[0], v[1])
	DashDotLine(c, v[1], v[2])
	DashDotLine(c, v[2], v[0])
}
