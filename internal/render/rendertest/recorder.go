// Package rendertest provides a Canvas that records draw calls instead of drawing.
package rendertest

import (
	"image/color"

	"github.com/iburimskiy/lissajous-table/internal/trail"
)

type Op string

const (
	OpClear        Op = "clear"
	OpStrokeCircle Op = "stroke-circle"
	OpFillCircle   Op = "fill-circle"
	OpStrokeLine   Op = "stroke-line"
	OpStrokePath   Op = "stroke-path"
)

// Call is one recorded draw call. Unused fields are zero.
type Call struct {
	Op     Op
	X0, Y0 float64
	X1, Y1 float64
	R      float64
	Width  float64
	Color  color.Color
	Segs   []trail.Segment
}

// Recorder is a render.Canvas of fixed size that keeps every call since the last Reset.
type Recorder struct {
	W, H  float64
	Calls []Call
}

func New(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (w, h float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, X0: cx, Y0: cy, R: radius, Width: width, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, X0: cx, Y0: cy, R: radius, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

func (r *Recorder) StrokePath(segs []trail.Segment, width float64, clr color.Color) {
	cp := make([]trail.Segment, len(segs))
	copy(cp, segs)
	r.Calls = append(r.Calls, Call{Op: OpStrokePath, Segs: cp, Width: width, Color: clr})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of op in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
