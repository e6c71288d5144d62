// Package render draws the curve table onto an abstract drawing surface.
//
// The surface is any Canvas implementation. Paint state (colour, stroke width)
// is passed with every call, so nothing leaks from one draw call or frame into
// the next.
package render

import (
	"image/color"

	"github.com/iburimskiy/lissajous-table/internal/trail"
)

// Canvas is the drawing surface capability. Coordinates are pixels with the
// origin at the top-left corner and y growing downward.
type Canvas interface {
	Size() (w, h float64)
	Clear()
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	// StrokePath strokes all segments as a single path with round caps.
	StrokePath(segs []trail.Segment, width float64, clr color.Color)
}
