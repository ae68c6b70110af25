package renderers

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/karl-eido/constants"
	"github.com/lixenwraith/karl-eido/vmath"
)

func countCells(side int) (right, visible int) {
	ForEachCell(side, constants.ScreenWidth, constants.ScreenHeight, func(tri vmath.Triangle) {
		visible++
		if tri.PointingRight {
			right++
		}
	})
	return right, visible
}

func TestLatticeRenderStats(t *testing.T) {
	for _, side := range []int{10, 20, 40, 62} {
		stats := NewLatticeRenderer().Render(newScreen(), LatticeScene{Side: side, ShowLines: true, ShowInfo: true})
		right, visible := countCells(side)

		if stats.Lines != 3*right {
			t.Errorf("side %d: Lines = %d, want %d", side, stats.Lines, 3*right)
		}
		if stats.Full+stats.Partial != visible {
			t.Errorf("side %d: Full+Partial = %d, want %d", side, stats.Full+stats.Partial, visible)
		}
		if stats.Side != side {
			t.Errorf("Side = %d, want %d", stats.Side, side)
		}
	}
}

func TestLatticeRenderArea(t *testing.T) {
	stats := NewLatticeRenderer().Render(newScreen(), LatticeScene{Side: 20})
	if stats.Area != 170 {
		t.Errorf("Area = %d, want 170", stats.Area)
	}
}

func TestLatticeRenderHiddenLines(t *testing.T) {
	stats := NewLatticeRenderer().Render(newScreen(), LatticeScene{Side: 20, ShowInfo: true})
	if stats.Lines != 0 {
		t.Errorf("Lines = %d with lines hidden, want 0", stats.Lines)
	}
	if stats.Full+stats.Partial == 0 {
		t.Error("visibility counts skipped with lines hidden")
	}

	b := newScreen()
	NewLatticeRenderer().Render(b, LatticeScene{Side: 20})
	if b.Count() != 0 {
		t.Errorf("Count = %d with lines and info hidden, want 0", b.Count())
	}
}

func TestLatticeRenderDrawsEdges(t *testing.T) {
	side := 20
	b := newScreen()
	NewLatticeRenderer().Render(b, LatticeScene{Side: side, ShowLines: true})

	ForEachCell(side, constants.ScreenWidth, constants.ScreenHeight, func(tri vmath.Triangle) {
		if !tri.PointingRight || !vmath.IsFullyVisible(tri.V, constants.ScreenWidth, constants.ScreenHeight) {
			return
		}
		for _, v := range tri.V {
			if !b.IsSet(v.X, v.Y) {
				t.Errorf("cell (%d,%d): vertex %v not drawn", tri.Col, tri.Row, v)
			}
		}
	})
}

func TestLatticeBannerOverwritesLines(t *testing.T) {
	side := 20

	plain := newScreen()
	NewLatticeRenderer().Render(plain, LatticeScene{Side: side, ShowLines: true})

	banner := newScreen()
	NewLatticeRenderer().Render(banner, LatticeScene{Side: side, ShowLines: true, ShowInfo: true})

	// The vertical edge at x=0 crosses the banner rows
	lineCrossesBanner := false
	for y := 0; y < constants.LatticeBannerHeight; y++ {
		if plain.IsSet(0, y) {
			lineCrossesBanner = true
		}
		if banner.IsSet(0, y) {
			t.Errorf("pixel (0,%d) under banner is set", y)
		}
	}
	if !lineCrossesBanner {
		t.Error("expected lattice geometry under the banner region")
	}
}

func TestLatticeRenderIdempotent(t *testing.T) {
	scene := LatticeScene{Side: 34, ShowLines: true, ShowInfo: true}
	r := NewLatticeRenderer()
	b := newScreen()

	first := r.Render(b, scene)
	snap := b.Snapshot()
	second := r.Render(b, scene)

	if !bytes.Equal(snap, b.Snapshot()) {
		t.Error("second render produced different pixels")
	}
	if first != second {
		t.Errorf("stats differ: %+v vs %+v", first, second)
	}
}

func TestForEachCellCullsInvisible(t *testing.T) {
	ForEachCell(10, constants.ScreenWidth, constants.ScreenHeight, func(tri vmath.Triangle) {
		if !vmath.IsVisible(tri.V, constants.ScreenWidth, constants.ScreenHeight) {
			t.Errorf("cell (%d,%d) invisible but visited", tri.Col, tri.Row)
		}
	})
}
