package pattern

import (
	"testing"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/vmath"
)

func TestRegenerateWithinReferenceTriangle(t *testing.T) {
	s := NewStamp(constants.MaxPixels)
	s.Regenerate(20, 50, vmath.NewFastRand(1234))

	if s.Len() > 50 {
		t.Fatalf("Len = %d, want <= 50 trials", s.Len())
	}

	ref := vmath.Reference(20)
	center := vmath.Centroid(ref.V)
	if s.Anchor() != center {
		t.Errorf("Anchor = %v, want %v", s.Anchor(), center)
	}
	for _, p := range s.Points() {
		if !vmath.PointInTriangle(p, ref.V) {
			t.Errorf("point %v outside reference triangle", p)
		}
		if p == center {
			t.Errorf("point %v on centroid", p)
		}
	}
}

func TestRegenerateTrialsNotSuccesses(t *testing.T) {
	// The reference triangle fills roughly half its bounding box, so a large
	// number of trials realizes clearly fewer points than requested
	s := NewStamp(1000)
	s.Regenerate(63, 900, vmath.NewFastRand(99))

	if s.Len() == 0 {
		t.Fatal("no points accepted")
	}
	if s.Len() >= 900 {
		t.Errorf("Len = %d, expected rejected trials to reduce the count", s.Len())
	}
}

func TestRegenerateCapacityCap(t *testing.T) {
	s := NewStamp(constants.MaxPixels)
	s.Regenerate(63, 5000, vmath.NewFastRand(7))

	if s.Len() != constants.MaxPixels {
		t.Errorf("Len = %d, want capacity %d", s.Len(), constants.MaxPixels)
	}
	if s.Cap() != constants.MaxPixels {
		t.Errorf("Cap = %d, want %d", s.Cap(), constants.MaxPixels)
	}
}

func TestRegenerateReplacesPreviousSet(t *testing.T) {
	s := NewStamp(constants.MaxPixels)
	rng := vmath.NewFastRand(5)

	s.Regenerate(41, 100, rng)
	if s.Len() == 0 {
		t.Fatal("expected points for 100 trials")
	}

	s.Regenerate(41, 0, rng)
	if s.Len() != 0 {
		t.Errorf("Len = %d after zero trials, want 0", s.Len())
	}

	s.Regenerate(9, 10, rng)
	ref := vmath.Reference(9)
	for _, p := range s.Points() {
		if !vmath.PointInTriangle(p, ref.V) {
			t.Errorf("point %v outside side-9 triangle", p)
		}
	}
	if s.Side() != 9 {
		t.Errorf("Side = %d, want 9", s.Side())
	}
}

func TestRegenerateDeterministic(t *testing.T) {
	a := NewStamp(constants.MaxPixels)
	b := NewStamp(constants.MaxPixels)
	a.Regenerate(25, 120, vmath.NewFastRand(2024))
	b.Regenerate(25, 120, vmath.NewFastRand(2024))

	if a.Len() != b.Len() {
		t.Fatalf("Len differs: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Points() {
		if a.Points()[i] != b.Points()[i] {
			t.Errorf("point %d differs: %v vs %v", i, a.Points()[i], b.Points()[i])
		}
	}
}

func TestRegenerateBelowMinimumSide(t *testing.T) {
	s := NewStamp(constants.MaxPixels)
	s.Regenerate(3, 100, vmath.NewFastRand(1))
	if s.Len() != 0 {
		t.Errorf("Len = %d for side below minimum, want 0", s.Len())
	}
}
