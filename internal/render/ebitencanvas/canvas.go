// Package ebitencanvas implements render.Canvas on an ebiten image.
package ebitencanvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lissajous-table/internal/trail"
)

// Segments stroked per DrawTriangles call; keeps the uint16 index space from overflowing.
const pathChunk = 512

var whiteSubImage *ebiten.Image

// source returns the 1x1 white texture stroked paths sample from.
func source() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Canvas draws onto the image handed to it for the current frame.
type Canvas struct {
	target    *ebiten.Image
	antialias bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func New(antialias bool) *Canvas {
	return &Canvas{antialias: antialias}
}

// SetTarget points the canvas at this frame's screen.
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

func (c *Canvas) Size() (w, h float64) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Clear() {
	if c.target == nil {
		return
	}
	c.target.Clear()
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	if c.target == nil {
		return
	}
	vector.StrokeCircle(c.target, float32(cx), float32(cy), float32(r), float32(width), clr, c.antialias)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), clr, c.antialias)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, c.antialias)
}

// StrokePath joins contiguous segments into sub-paths and strokes them with
// round caps and joins. Zero-length segments add nothing to the stroke.
func (c *Canvas) StrokePath(segs []trail.Segment, width float64, clr color.Color) {
	if c.target == nil || len(segs) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	if a == 0 {
		return
	}
	// Vertex colours are straight alpha.
	cr := float32(r) / float32(a)
	cg := float32(g) / float32(a)
	cb := float32(b) / float32(a)
	ca := float32(a) / 0xffff

	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}

	for start := 0; start < len(segs); start += pathChunk {
		end := min(start+pathChunk, len(segs))

		var path vector.Path
		open := false
		var lastX, lastY float32
		for _, s := range segs[start:end] {
			if s.From == s.To {
				continue
			}
			fx, fy := float32(s.From.X), float32(s.From.Y)
			if !open || fx != lastX || fy != lastY {
				path.MoveTo(fx, fy)
				open = true
			}
			lastX, lastY = float32(s.To.X), float32(s.To.Y)
			path.LineTo(lastX, lastY)
		}
		if !open {
			continue
		}

		c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
		for i := range c.vertices {
			c.vertices[i].SrcX = 1
			c.vertices[i].SrcY = 1
			c.vertices[i].ColorR = cr
			c.vertices[i].ColorG = cg
			c.vertices[i].ColorB = cb
			c.vertices[i].ColorA = ca
		}
		c.target.DrawTriangles(c.vertices, c.indices, source(), &ebiten.DrawTrianglesOptions{
			AntiAlias: c.antialias,
		})
	}
}
