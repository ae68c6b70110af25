package vmath

import (
	"math"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/core"
)

// Triangle is one lattice cell: three vertices, orientation and grid address
// Never stored across frames; derive with Cell
type Triangle struct {
	V             [3]core.Point
	PointingRight bool
	Col, Row      int
}

// TriangleHeight returns side * sqrt(3)/2 in float32, the horizontal extent of one cell
func TriangleHeight(side int) float32 {
	return float32(side) * constants.HeightFactor
}

// PointsRight applies the checkerboard rule; Go remainder keeps negative odd sums left-pointing
func PointsRight(col, row int) bool {
	return (col+row)%2 == 0
}

// Vertices computes the corners of cell (col, row)
// Right-pointing: vertical edge at base_x, apex at base_x+h
// Left-pointing: apex at base_x, vertical edge at base_x+h
func Vertices(col, row, side int, pointingRight bool) [3]core.Point {
	h := TriangleHeight(side)
	ih := int(h)
	baseX := int(float32(col) * h)
	baseY := constants.CenterY + (row * side / 2)
	half := side / 2

	if pointingRight {
		return [3]core.Point{
			{X: baseX, Y: baseY - half},
			{X: baseX, Y: baseY + half},
			{X: baseX + ih, Y: baseY},
		}
	}
	return [3]core.Point{
		{X: baseX, Y: baseY},
		{X: baseX + ih, Y: baseY - half},
		{X: baseX + ih, Y: baseY + half},
	}
}

// Cell returns the lattice triangle at (col, row) with checkerboard orientation
func Cell(col, row, side int) Triangle {
	right := PointsRight(col, row)
	return Triangle{
		V:             Vertices(col, row, side, right),
		PointingRight: right,
		Col:           col,
		Row:           row,
	}
}

// Reference returns the canonical right-pointing triangle at (0, 0)
func Reference(side int) Triangle {
	return Triangle{V: Vertices(0, 0, side, true), PointingRight: true}
}

// Centroid averages the vertices with truncating integer division
func Centroid(v [3]core.Point) core.Point {
	return core.Point{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
	}
}

// Area returns the shoelace area, halved and truncated
func Area(v [3]core.Point) int {
	twice := v[0].X*(v[1].Y-v[2].Y) + v[1].X*(v[2].Y-v[0].Y) + v[2].X*(v[0].Y-v[1].Y)
	return AbsInt(twice) / 2
}

// PointInTriangle is a barycentric inclusion test in exact integer arithmetic
// Collinear vertices never contain anything; points on edges are inside
func PointInTriangle(p core.Point, v [3]core.Point) bool {
	x0, y0 := v[0].X, v[0].Y
	x1, y1 := v[1].X, v[1].Y
	x2, y2 := v[2].X, v[2].Y

	denom := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if denom == 0 {
		return false
	}

	// Weights are a/denom, b/denom, c/denom with a+b+c == denom
	a := (y1-y2)*(p.X-x2) + (x2-x1)*(p.Y-y2)
	b := (y2-y0)*(p.X-x2) + (x0-x2)*(p.Y-y2)
	c := denom - a - b

	if denom < 0 {
		a, b, c = -a, -b, -c
	}
	return a >= 0 && b >= 0 && c >= 0
}

// IsVisible culls triangles whose vertices all lie past the same screen side
// Separating-axis approximation; may keep triangles that miss the screen
func IsVisible(v [3]core.Point, width, height int) bool {
	switch {
	case v[0].X >= width && v[1].X >= width && v[2].X >= width:
		return false
	case v[0].X < 0 && v[1].X < 0 && v[2].X < 0:
		return false
	case v[0].Y >= height && v[1].Y >= height && v[2].Y >= height:
		return false
	case v[0].Y < 0 && v[1].Y < 0 && v[2].Y < 0:
		return false
	}
	return true
}

// IsFullyVisible reports whether every vertex lies within [0,width) x [0,height)
func IsFullyVisible(v [3]core.Point, width, height int) bool {
	screen := core.Area{Width: width, Height: height}
	return screen.Contains(v[0]) && screen.Contains(v[1]) && screen.Contains(v[2])
}

// GridSize returns how many columns and rows (each way from the center row) over-cover the viewport
func GridSize(side, width, height int) (cols, rows int) {
	h := float64(TriangleHeight(side))
	cols = int(math.Ceil(float64(width)/h)) + 2
	rows = int(math.Ceil(float64(height)/(float64(side)/2))) + 2
	return cols, rows
}
