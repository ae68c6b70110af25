package render

import (
	"image/color"
	"testing"
)

func TestBitmapDotAndClip(t *testing.T) {
	b := NewBitmap(128, 64)

	b.DrawDot(0, 0)
	b.DrawDot(127, 63)
	b.DrawDot(-1, 5)
	b.DrawDot(128, 5)
	b.DrawDot(5, 64)

	if !b.IsSet(0, 0) || !b.IsSet(127, 63) {
		t.Error("expected corner pixels set")
	}
	if got := b.Count(); got != 2 {
		t.Errorf("Count = %d, want 2 (out-of-bounds dots clipped)", got)
	}
	if b.IsSet(-1, 5) {
		t.Error("out-of-bounds pixel reported set")
	}
}

func TestBitmapClear(t *testing.T) {
	b := NewBitmap(128, 64)
	b.DrawBox(0, 0, 128, 64)
	if got := b.Count(); got != 128*64 {
		t.Fatalf("full box Count = %d, want %d", got, 128*64)
	}
	b.Clear()
	if got := b.Count(); got != 0 {
		t.Errorf("Count after Clear = %d, want 0", got)
	}
}

func TestBitmapWhiteErases(t *testing.T) {
	b := NewBitmap(128, 64)
	b.DrawBox(10, 10, 20, 10)
	b.SetColor(ColorWhite)
	b.DrawBox(10, 10, 10, 10)

	if got := b.Count(); got != 100 {
		t.Errorf("Count = %d, want 100", got)
	}
	if b.IsSet(15, 15) {
		t.Error("white box left pixel set")
	}
	if !b.IsSet(25, 15) {
		t.Error("pixel outside white box cleared")
	}
}

func TestBitmapDiscRadiusOne(t *testing.T) {
	b := NewBitmap(128, 64)
	b.DrawDisc(10, 10, 1)

	want := map[[2]int]bool{{10, 10}: true, {9, 10}: true, {11, 10}: true, {10, 9}: true, {10, 11}: true}
	if got := b.Count(); got != len(want) {
		t.Errorf("Count = %d, want %d", got, len(want))
	}
	for p := range want {
		if !b.IsSet(p[0], p[1]) {
			t.Errorf("pixel %v not set", p)
		}
	}
}

func TestBitmapLineSolid(t *testing.T) {
	b := NewBitmap(128, 64)
	b.DrawLine(0, 21, 17, 31)
	if got := b.Count(); got != 18 {
		t.Errorf("Count = %d, want 18", got)
	}
	if !b.IsSet(0, 21) || !b.IsSet(17, 31) {
		t.Error("endpoints not set")
	}
}

func TestBitmapDrawStr(t *testing.T) {
	b := NewBitmap(128, 64)
	b.DrawStr(70, 8, "# 12 T: 3")

	if b.Count() == 0 {
		t.Fatal("text drew nothing")
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if !b.IsSet(x, y) {
				continue
			}
			if x < 70 || y > 9 {
				t.Fatalf("text pixel (%d,%d) outside expected region", x, y)
			}
		}
	}
}

func TestBitmapDisplayerContract(t *testing.T) {
	b := NewBitmap(128, 64)

	w, h := b.Size()
	if w != 128 || h != 64 {
		t.Errorf("Size = (%d,%d), want (128,64)", w, h)
	}

	b.SetPixel(3, 4, color.RGBA{A: 0xFF})
	b.SetPixel(5, 6, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	b.SetPixel(-1, -1, color.RGBA{A: 0xFF})

	if !b.IsSet(3, 4) {
		t.Error("black pixel not set")
	}
	if b.IsSet(5, 6) {
		t.Error("white pixel set")
	}
	if err := b.Display(); err != nil {
		t.Errorf("Display() = %v", err)
	}
}

func TestBitmapSnapshotIsCopy(t *testing.T) {
	b := NewBitmap(128, 64)
	b.DrawDot(1, 1)
	snap := b.Snapshot()
	b.Clear()

	nonZero := false
	for _, v := range snap {
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("snapshot changed after Clear")
	}
}
