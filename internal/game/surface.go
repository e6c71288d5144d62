package game

import "github.com/iburimskiy/lissajous-table/internal/render"

// Surface owns the drawing surface and its logical size. Components that
// derive geometry from the size register with OnResize instead of polling.
type Surface struct {
	Canvas render.Canvas

	width, height float64
	callbacks     []func(w, h float64)
}

func NewSurface(c render.Canvas, w, h float64) *Surface {
	return &Surface{Canvas: c, width: w, height: h}
}

func (s *Surface) Size() (w, h float64) {
	return s.width, s.height
}

// OnResize registers cb to run after every size change, in registration order.
func (s *Surface) OnResize(cb func(w, h float64)) {
	s.callbacks = append(s.callbacks, cb)
}

// Resize records the new size and notifies the callbacks. Unchanged or
// non-positive sizes are ignored.
func (s *Surface) Resize(w, h float64) bool {
	if w <= 0 || h <= 0 || (w == s.width && h == s.height) {
		return false
	}
	s.width, s.height = w, h
	for _, cb := range s.callbacks {
		cb(w, h)
	}
	return true
}
