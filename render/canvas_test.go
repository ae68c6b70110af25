package render

import "github.com/lixenwraith/karl-eido/core"

// recorder is a Canvas that logs dots in call order
type recorder struct {
	width, height int
	color         Color
	dots          []core.Point
	lines         [][2]core.Point
	discs         []core.Point
	boxes         []core.Area
	strs          []string
	clears        int
}

func newRecorder() *recorder {
	return &recorder{width: 128, height: 64, color: ColorBlack}
}

func (r *recorder) Width() int           { return r.width }
func (r *recorder) Height() int          { return r.height }
func (r *recorder) SetColor(c Color)     { r.color = c }
func (r *recorder) Clear()               { r.clears++ }
func (r *recorder) DrawDot(x, y int)     { r.dots = append(r.dots, core.Point{X: x, Y: y}) }
func (r *recorder) DrawDisc(x, y, _ int) { r.discs = append(r.discs, core.Point{X: x, Y: y}) }
func (r *recorder) DrawLine(x1, y1, x2, y2 int) {
	r.lines = append(r.lines, [2]core.Point{{X: x1, Y: y1}, {X: x2, Y: y2}})
}
func (r *recorder) DrawBox(x, y, w, h int) {
	r.boxes = append(r.boxes, core.Area{X: x, Y: y, Width: w, Height: h})
}
func (r *recorder) DrawStr(_, _ int, s string) { r.strs = append(r.strs, s) }

var _ Canvas = (*recorder)(nil)
var _ Canvas = (*Bitmap)(nil)
