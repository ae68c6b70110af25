// Package renderers draws the triangle lattice variants onto a render.Canvas
package renderers

import "github.com/lixenwraith/karl-eido/vmath"

// ForEachCell visits every lattice cell that survives the visibility cull,
// columns left to right, rows top to bottom within a column
func ForEachCell(side, width, height int, fn func(tri vmath.Triangle)) {
	cols, rows := vmath.GridSize(side, width, height)
	for col := 0; col < cols; col++ {
		for row := -rows; row < rows; row++ {
			tri := vmath.Cell(col, row, side)
			if !vmath.IsVisible(tri.V, width, height) {
				continue
			}
			fn(tri)
		}
	}
}
