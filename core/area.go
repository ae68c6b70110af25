package core

// Area represents a rectangular region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether p lies in [X, X+Width) x [Y, Y+Height)
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}
