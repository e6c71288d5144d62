package motion

// Dial is one control circle and the current position of its moving dot.
type Dial struct {
	Index  int
	Center Point
	Offset Point
}

// Position is where the dial's dot sits on its circle.
func (d Dial) Position() Point {
	return d.Center.Add(d.Offset)
}

// Frame is every position the table needs for one phase angle.
type Frame struct {
	Angle  float64
	Header []Dial    // one per column
	Side   []Dial    // one per row
	Cells  [][]Point // [row][col]
}

// Frame computes all dial and cell positions at angle. It has no side effects.
func (g Grid) Frame(angle float64) Frame {
	f := Frame{
		Angle:  angle,
		Header: make([]Dial, g.Cols),
		Side:   make([]Dial, g.Rows),
		Cells:  make([][]Point, g.Rows),
	}
	for c := 0; c < g.Cols; c++ {
		f.Header[c] = g.HeaderDial(c, angle)
	}
	for r := 0; r < g.Rows; r++ {
		f.Side[r] = g.SideDial(r, angle)
		f.Cells[r] = make([]Point, g.Cols)
		for c := 0; c < g.Cols; c++ {
			f.Cells[r][c] = g.CellPoint(r, c, angle)
		}
	}
	return f
}
