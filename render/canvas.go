package render

import "image/color"

// Color selects what subsequent draw calls write
type Color uint8

const (
	// ColorWhite clears pixels (display background)
	ColorWhite Color = iota
	// ColorBlack sets pixels
	ColorBlack
)

// RGBA returns the 8-bit color used when a Color crosses into color.RGBA based APIs
func (c Color) RGBA() color.RGBA {
	if c == ColorBlack {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// Canvas is the host display surface the core draws into
// All primitives clip to the canvas; there is no read-back
type Canvas interface {
	Width() int
	Height() int

	SetColor(c Color)
	Clear()

	DrawDot(x, y int)
	DrawDisc(cx, cy, r int)
	DrawLine(x1, y1, x2, y2 int)
	DrawBox(x, y, w, h int)

	// DrawStr writes s with its baseline at y
	DrawStr(x, y int, s string)
}
