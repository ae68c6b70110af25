package vmath

import "github.com/lixenwraith/karl-eido/core"

// LineStepper implements a zero-allocation iterator for integer Bresenham traversal.
// Both endpoints are visited; a degenerate line visits its single point once.
type LineStepper struct {
	x, y   int
	x2, y2 int
	dx, dy int
	sx, sy int
	err    int

	started bool
	done    bool
}

// NewLineStepper creates an iterator from p1 to p2
func NewLineStepper(p1, p2 core.Point) LineStepper {
	s := LineStepper{
		x: p1.X, y: p1.Y,
		x2: p2.X, y2: p2.Y,
		dx: AbsInt(p2.X - p1.X),
		dy: AbsInt(p2.Y - p1.Y),
		sx: 1, sy: 1,
	}
	if p1.X >= p2.X {
		s.sx = -1
	}
	if p1.Y >= p2.Y {
		s.sy = -1
	}
	s.err = s.dx - s.dy
	return s
}

// Next advances to the next pixel.
// Returns true if a pixel is available via Pos().
func (s *LineStepper) Next() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		return true
	}

	if s.x == s.x2 && s.y == s.y2 {
		s.done = true
		return false
	}

	e2 := 2 * s.err
	if e2 > -s.dy {
		s.err -= s.dy
		s.x += s.sx
	}
	if e2 < s.dx {
		s.err += s.dx
		s.y += s.sy
	}
	return true
}

// Pos returns the current pixel
func (s *LineStepper) Pos() (int, int) {
	return s.x, s.y
}
