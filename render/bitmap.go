package render

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/lixenwraith/karl-eido/core"
	"github.com/lixenwraith/karl-eido/vmath"
)

// Bitmap is a 1-bit frame in SSD1306 page layout
// It implements Canvas for the core and drivers.Displayer for tinyfont
type Bitmap struct {
	img    *image1bit.VerticalLSB
	bounds core.Area
	color  Color
	font   tinyfont.Fonter
}

// NewBitmap allocates a cleared frame with the draw color set to black
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		img:    image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
		bounds: core.Area{Width: width, Height: height},
		color:  ColorBlack,
		font:   &tinyfont.TomThumb,
	}
}

func (b *Bitmap) Width() int  { return b.bounds.Width }
func (b *Bitmap) Height() int { return b.bounds.Height }

// Image exposes the frame for image/draw consumers
func (b *Bitmap) Image() image.Image { return b.img }

func (b *Bitmap) SetColor(c Color) { b.color = c }

// Clear turns every pixel off
func (b *Bitmap) Clear() {
	clear(b.img.Pix)
}

// IsSet reports whether the pixel is on; out-of-bounds pixels are off
func (b *Bitmap) IsSet(x, y int) bool {
	if !b.bounds.Contains(core.Point{X: x, Y: y}) {
		return false
	}
	return bool(b.img.BitAt(x, y))
}

// Count returns the number of pixels that are on
func (b *Bitmap) Count() int {
	n := 0
	for y := 0; y < b.bounds.Height; y++ {
		for x := 0; x < b.bounds.Width; x++ {
			if b.img.BitAt(x, y) {
				n++
			}
		}
	}
	return n
}

// Snapshot copies the raw page buffer
func (b *Bitmap) Snapshot() []byte {
	out := make([]byte, len(b.img.Pix))
	copy(out, b.img.Pix)
	return out
}

func (b *Bitmap) DrawDot(x, y int) {
	if !b.bounds.Contains(core.Point{X: x, Y: y}) {
		return
	}
	b.img.SetBit(x, y, image1bit.Bit(b.color == ColorBlack))
}

// DrawDisc fills every pixel within Euclidean distance r of the center
func (b *Bitmap) DrawDisc(cx, cy, r int) {
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				b.DrawDot(cx+dx, cy+dy)
			}
		}
	}
}

// DrawLine draws a solid Bresenham line including both endpoints
func (b *Bitmap) DrawLine(x1, y1, x2, y2 int) {
	s := vmath.NewLineStepper(core.Point{X: x1, Y: y1}, core.Point{X: x2, Y: y2})
	for s.Next() {
		b.DrawDot(s.Pos())
	}
}

// DrawBox fills the w x h rectangle with its top-left corner at (x, y)
func (b *Bitmap) DrawBox(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			b.DrawDot(px, py)
		}
	}
}

func (b *Bitmap) DrawStr(x, y int, s string) {
	tinyfont.WriteLine(b, b.font, int16(x), int16(y), s, b.color.RGBA())
}

// --- drivers.Displayer ---

var _ drivers.Displayer = (*Bitmap)(nil)

func (b *Bitmap) Size() (x, y int16) {
	return int16(b.bounds.Width), int16(b.bounds.Height)
}

// SetPixel maps dark colors to on and light colors to off, ignoring the current draw color
func (b *Bitmap) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if !b.bounds.Contains(core.Point{X: ix, Y: iy}) {
		return
	}
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	b.img.SetBit(ix, iy, image1bit.Bit(lum < 0x80))
}

// Display is a no-op; hosts present the frame through their viewport
func (b *Bitmap) Display() error {
	return nil
}
