package trail

import (
	"math"

	"github.com/iburimskiy/lissajous-table/internal/motion"
)

// Segment is one stroke of a trail's polyline.
type Segment struct {
	From, To motion.Point
}

// Trail records the last N points of a curve into a ring buffer so the
// renderer can draw them as one connected path, oldest first.
type Trail struct {
	buffer    []motion.Point
	nextIndex int
	full      bool
}

// New creates a trail holding at most capacity points.
func New(capacity int) *Trail {
	if capacity <= 0 {
		panic("trail: capacity must be positive")
	}
	return &Trail{
		buffer: make([]motion.Point, capacity),
	}
}

// Push appends p, evicting the oldest point once the trail is full.
func (t *Trail) Push(p motion.Point) {
	t.buffer[t.nextIndex] = p
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
		t.full = true
	}
}

// Len is the number of points currently held.
func (t *Trail) Len() int {
	if t.full {
		return len(t.buffer)
	}
	return t.nextIndex
}

// Cap is the fixed capacity.
func (t *Trail) Cap() int { return len(t.buffer) }

// Reset drops every point but keeps the capacity.
func (t *Trail) Reset() {
	t.nextIndex = 0
	t.full = false
}

// at returns the i-th point in insertion order.
func (t *Trail) at(i int) motion.Point {
	if !t.full {
		return t.buffer[i]
	}
	return t.buffer[(t.nextIndex+i)%len(t.buffer)]
}

// Points returns a copy of the held points in chronological order (most recent last).
func (t *Trail) Points() []motion.Point {
	n := t.Len()
	out := make([]motion.Point, 0, n)
	if t.full {
		out = append(out, t.buffer[t.nextIndex:]...)
		out = append(out, t.buffer[:t.nextIndex]...)
	} else {
		out = append(out, t.buffer[:n]...)
	}
	return out
}

// Segments appends the trail's strokes to dst and returns it. Each point is
// joined to its predecessor; the first point is joined to itself, giving a
// zero-length first segment.
func (t *Trail) Segments(dst []Segment) []Segment {
	n := t.Len()
	if n == 0 {
		return dst
	}
	prev := t.at(0)
	for i := 0; i < n; i++ {
		p := t.at(i)
		dst = append(dst, Segment{From: prev, To: p})
		prev = p
	}
	return dst
}

// FullCapacity holds one revolution at the base frequency.
func FullCapacity(stepSize float64) int {
	return periodLength(1, stepSize)
}

// Capacity sizes the trail of cell (row, col). A diagonal cell holds exactly
// one period of its own frequency so its loop closes without a seam; every
// other cell holds a full base revolution.
func Capacity(row, col int, stepSize float64) int {
	if row == col {
		return periodLength(row+1, stepSize)
	}
	return FullCapacity(stepSize)
}

func periodLength(freq int, stepSize float64) int {
	if stepSize <= 0 {
		return 1
	}
	n := int(math.Floor(motion.TwoPi / (stepSize * float64(freq))))
	return max(n, 1)
}
