package render

import (
	"github.com/iburimskiy/lissajous-table/internal/motion"
	"github.com/iburimskiy/lissajous-table/internal/trail"
)

const (
	DefaultLineWidth = 2.0
	GuideAlpha       = 0.2
	CellDotSize      = 3.0
	guideLineWidth   = 2.0
	dotSizeRatio     = 1.75
)

// Renderer issues the table's draw calls. It keeps no per-frame state apart
// from a reusable segment buffer.
type Renderer struct {
	Canvas    Canvas
	Palette   Palette
	Radius    float64
	ColWidth  float64
	LineWidth float64

	segs []trail.Segment
}

// NewRenderer binds a canvas to the geometry of g.
func NewRenderer(c Canvas, g motion.Grid, lineWidth float64) *Renderer {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	r := &Renderer{
		Canvas:    c,
		Palette:   NewPalette(g.HueOffset),
		LineWidth: lineWidth,
	}
	r.SetGrid(g)
	return r
}

// SetGrid updates the geometry after a resize or a row/column change.
func (r *Renderer) SetGrid(g motion.Grid) {
	r.Radius = g.Radius
	r.ColWidth = g.ColWidth
	r.Palette.HueOffset = g.HueOffset
}

// DotSize is the default moving-dot radius, scaled to the line width.
func (r *Renderer) DotSize() float64 {
	return r.LineWidth * dotSizeRatio
}

// ColorFor is the palette colour for index.
func (r *Renderer) ColorFor(index int, alpha float64) Paint {
	return r.Palette.ColorFor(index, alpha)
}

func (r *Renderer) Clear() {
	r.Canvas.Clear()
}

// DrawCircle strokes a dial outline of the grid radius at (x, y).
func (r *Renderer) DrawCircle(x, y float64, index int) {
	r.Canvas.StrokeCircle(x, y, r.Radius, r.LineWidth, r.ColorFor(index, 1))
}

// DrawMovingDot fills a disc at (x, y). A size of zero or less uses DotSize.
func (r *Renderer) DrawMovingDot(x, y float64, index int, size float64) {
	if size <= 0 {
		size = r.DotSize()
	}
	r.Canvas.FillCircle(x, y, size, r.ColorFor(index, 1))
}

// DrawGuideLine strokes a faint line from (x, y) to the surface edge. Points
// below the first cell row belong to side dials and run right; the others
// belong to header dials and run down.
func (r *Renderer) DrawGuideLine(x, y float64, index int) {
	w, h := r.Canvas.Size()
	clr := r.ColorFor(index, GuideAlpha)
	if y > r.ColWidth {
		r.Canvas.StrokeLine(x, y, w, y, guideLineWidth, clr)
		return
	}
	r.Canvas.StrokeLine(x, y, x, h, guideLineWidth, clr)
}

// DrawTrail strokes t as one connected path.
func (r *Renderer) DrawTrail(t *trail.Trail, index int) {
	r.segs = t.Segments(r.segs[:0])
	if len(r.segs) == 0 {
		return
	}
	r.Canvas.StrokePath(r.segs, r.LineWidth, r.ColorFor(index, 1))
}

// DrawDial draws a dial's circle, its moving dot and its guide line.
func (r *Renderer) DrawDial(d motion.Dial) {
	p := d.Position()
	r.DrawCircle(d.Center.X, d.Center.Y, d.Index)
	r.DrawMovingDot(p.X, p.Y, d.Index, 0)
	r.DrawGuideLine(p.X, p.Y, d.Index)
}
