// Package pattern samples the pixel stamp that is mirrored into every lattice cell
package pattern

import (
	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/vmath"
)

// Stamp is a bounded set of points inside the reference triangle
// Anchor is the reference centroid the points are mirrored relative to
type Stamp struct {
	points []core.Point
	anchor core.Point
	side   int
}

// NewStamp allocates an empty stamp holding at most capacity points
func NewStamp(capacity int) *Stamp {
	if capacity < 0 {
		capacity = 0
	}
	return &Stamp{points: make([]core.Point, 0, capacity)}
}

// Regenerate replaces the stamp with up to trials samples for the given side.
// Each trial draws one point from the reference bounding box; points outside the
// triangle or on its centroid are dropped without retry, so Len() <= trials.
// Sampling stops early once the stamp is full.
func (s *Stamp) Regenerate(side, trials int, rng *vmath.FastRand) {
	s.points = s.points[:0]
	s.side = side
	if side < constants.MirrorMinSideLength {
		s.anchor = core.Point{}
		return
	}

	ref := vmath.Reference(side)
	s.anchor = vmath.Centroid(ref.V)
	width := int(vmath.TriangleHeight(side)) + 1
	height := side + 1

	for i := 0; i < trials && len(s.points) < cap(s.points); i++ {
		p := core.Point{
			X: ref.V[0].X + rng.Intn(width),
			Y: ref.V[0].Y + rng.Intn(height),
		}
		if !vmath.PointInTriangle(p, ref.V) {
			continue
		}
		if p == s.anchor {
			continue
		}
		s.points = append(s.points, p)
	}
}

// Points returns the sampled points; the slice is reused by the next Regenerate
func (s *Stamp) Points() []core.Point { return s.points }

// Anchor returns the reference centroid
func (s *Stamp) Anchor() core.Point { return s.anchor }

// Side returns the side length the stamp was sampled for
func (s *Stamp) Side() int { return s.side }

func (s *Stamp) Len() int { return len(s.points) }
func (s *Stamp) Cap() int { return cap(s.points) }
