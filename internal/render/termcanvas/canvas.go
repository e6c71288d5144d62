// Package termcanvas implements render.Canvas on a tcell screen.
//
// Every terminal cell is split into the 2x4 dot matrix of a braille glyph,
// so one cell covers two pixels across and four down. Stroke widths are
// ignored: every line is one dot wide.
package termcanvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/lissajous-table/internal/trail"
)

const brailleBase = 0x2800

// dotBits[y][x] is the braille bit for the dot at column x, row y of a cell.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	bits  uint8
	r, g  uint8
	b     uint8
	alpha float64
}

// Canvas rasterises draw calls into a braille buffer and writes it to the
// screen on Flush.
type Canvas struct {
	screen     tcell.Screen
	cols, rows int
	cells      []cell
	style      tcell.Style
}

func New(screen tcell.Screen) *Canvas {
	c := &Canvas{
		screen: screen,
		style:  tcell.StyleDefault,
	}
	c.Resize()
	return c
}

// Resize re-reads the screen size and drops the buffer.
func (c *Canvas) Resize() {
	c.cols, c.rows = c.screen.Size()
	c.cells = make([]cell, c.cols*c.rows)
}

// Size is the pixel size: two dots per column and four per row.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.cols * 2), float64(c.rows * 4)
}

func (c *Canvas) Clear() {
	clear(c.cells)
	c.screen.Clear()
}

// Flush writes the buffer to the screen and shows it.
func (c *Canvas) Flush() {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			if cl.bits == 0 {
				continue
			}
			fg := tcell.NewRGBColor(int32(cl.r), int32(cl.g), int32(cl.b))
			c.screen.SetContent(x, y, rune(brailleBase+int(cl.bits)), nil, c.style.Foreground(fg))
		}
	}
	c.screen.Show()
}

// set lights the dot at pixel (px, py). Fainter colours never repaint a cell
// already lit by a more opaque one.
func (c *Canvas) set(px, py int, r, g, b uint8, alpha float64) {
	if px < 0 || py < 0 {
		return
	}
	x, y := px/2, py/4
	if x >= c.cols || y >= c.rows {
		return
	}
	cl := &c.cells[y*c.cols+x]
	cl.bits |= dotBits[py%4][px%2]
	if alpha >= cl.alpha {
		cl.r, cl.g, cl.b, cl.alpha = r, g, b, alpha
	}
}

// rgb returns clr composited over black as 8-bit channels, plus its alpha.
func rgb(clr color.Color) (r, g, b uint8, alpha float64) {
	pr, pg, pb, pa := clr.RGBA()
	if pa == 0 {
		return 0, 0, 0, 0
	}
	return uint8(pr >> 8), uint8(pg >> 8), uint8(pb >> 8), float64(pa) / 0xffff
}

func (c *Canvas) line(x0, y0, x1, y1 float64, r, g, b uint8, alpha float64) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.set(int(math.Floor(x0)), int(math.Floor(y0)), r, g, b, alpha)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.set(int(math.Floor(x0+dx*t)), int(math.Floor(y0+dy*t)), r, g, b, alpha)
	}
}

func (c *Canvas) StrokeCircle(cx, cy, radius, _ float64, clr color.Color) {
	r, g, b, a := rgb(clr)
	if a == 0 || radius <= 0 {
		return
	}
	n := max(8, int(math.Ceil(2*math.Pi*radius)))
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		c.set(int(math.Floor(cx+radius*math.Cos(theta))), int(math.Floor(cy+radius*math.Sin(theta))), r, g, b, a)
	}
}

func (c *Canvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	r, g, b, a := rgb(clr)
	if a == 0 || radius <= 0 {
		return
	}
	rr := radius * radius
	for py := int(math.Floor(cy - radius)); py <= int(math.Ceil(cy+radius)); py++ {
		for px := int(math.Floor(cx - radius)); px <= int(math.Ceil(cx+radius)); px++ {
			ddx := float64(px) + 0.5 - cx
			ddy := float64(py) + 0.5 - cy
			if ddx*ddx+ddy*ddy <= rr {
				c.set(px, py, r, g, b, a)
			}
		}
	}
	c.set(int(math.Floor(cx)), int(math.Floor(cy)), r, g, b, a)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	r, g, b, a := rgb(clr)
	if a == 0 {
		return
	}
	c.line(x0, y0, x1, y1, r, g, b, a)
}

func (c *Canvas) StrokePath(segs []trail.Segment, _ float64, clr color.Color) {
	r, g, b, a := rgb(clr)
	if a == 0 {
		return
	}
	for _, s := range segs {
		c.line(s.From.X, s.From.Y, s.To.X, s.To.Y, r, g, b, a)
	}
}
