package motion

import "math"

const (
	TwoPi  = 2 * math.Pi
	HalfPi = math.Pi / 2

	// RadiusRatio is the dial radius as a fraction of the cell width (a 0.75 diameter).
	RadiusRatio = 0.375
)

// Point is a position in surface pixels, origin top-left, y growing downward.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid holds the geometry shared by every dial and cell of the table.
// The first row and column of cells are reserved for the header and side dials.
type Grid struct {
	Rows      int
	Cols      int
	ColWidth  float64
	Radius    float64
	StepSize  float64
	HueOffset float64
}

// NewGrid derives the cell width and dial radius from the surface width.
// Rows and cols below one are clamped to one.
func NewGrid(width float64, rows, cols int, stepSize, hueOffset float64) Grid {
	rows = max(rows, 1)
	cols = max(cols, 1)

	colWidth := math.Floor(width / float64(max(rows, cols)+1))
	if colWidth < 0 {
		colWidth = 0
	}

	return Grid{
		Rows:      rows,
		Cols:      cols,
		ColWidth:  colWidth,
		Radius:    colWidth * RadiusRatio,
		StepSize:  stepSize,
		HueOffset: hueOffset,
	}
}

// offset is the circular motion of a dial oscillating at k+1 cycles per revolution.
func (g Grid) offset(k int, angle float64) Point {
	f := angle * float64(k+1)
	return Point{
		X: g.Radius * math.Sin(f+HalfPi),
		Y: g.Radius * math.Sin(f),
	}
}

// cellCenter returns the center coordinate of the k-th cell after the dial strip.
func (g Grid) cellCenter(k int) float64 {
	return g.ColWidth + float64(k)*g.ColWidth + g.ColWidth/2
}

// HeaderDial returns the dial at the top of column k. Its horizontal motion
// drives the x coordinate of every cell in that column.
func (g Grid) HeaderDial(k int, angle float64) Dial {
	return Dial{
		Index:  k,
		Center: Point{X: g.cellCenter(k), Y: g.ColWidth / 2},
		Offset: g.offset(k, angle),
	}
}

// SideDial returns the dial at the left of row k. It is the header dial with
// its center transposed; its vertical motion drives the y coordinate of every
// cell in that row.
func (g Grid) SideDial(k int, angle float64) Dial {
	return Dial{
		Index:  k,
		Center: Point{X: g.ColWidth / 2, Y: g.cellCenter(k)},
		Offset: g.offset(k, angle),
	}
}

// CellCenter returns the resting center of cell (row, col).
func (g Grid) CellCenter(row, col int) Point {
	return Point{X: g.cellCenter(col), Y: g.cellCenter(row)}
}

// CellPoint returns the interference point of cell (row, col): horizontal
// motion at the column's frequency, vertical motion at the row's.
func (g Grid) CellPoint(row, col int, angle float64) Point {
	c := g.CellCenter(row, col)
	return Point{
		X: c.X + g.Radius*math.Sin(angle*float64(col+1)+HalfPi),
		Y: c.Y + g.Radius*math.Sin(angle*float64(row+1)),
	}
}

// CellAt maps a surface position to the cell containing it.
func (g Grid) CellAt(p Point) (row, col int, ok bool) {
	if g.ColWidth <= 0 || p.X < g.ColWidth || p.Y < g.ColWidth {
		return 0, 0, false
	}
	col = int((p.X - g.ColWidth) / g.ColWidth)
	row = int((p.Y - g.ColWidth) / g.ColWidth)
	if row >= g.Rows || col >= g.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// Extent is the pixel size covered by the dial strips and cells.
func (g Grid) Extent() (w, h float64) {
	return g.ColWidth * float64(g.Cols+1), g.ColWidth * float64(g.Rows+1)
}
