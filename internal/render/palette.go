package render

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultHueOffset  = 190
	DefaultSaturation = 0.85
	DefaultLightness  = 0.60

	hueStep = 30
	hueMod  = 361
)

// Paint is an HSL colour with straight alpha. It satisfies color.Color.
type Paint struct {
	Hue        float64 // degrees
	Saturation float64 // 0-1
	Lightness  float64 // 0-1
	Alpha      float64 // 0-1
}

// RGBA implements color.Color with alpha-premultiplied components.
func (p Paint) RGBA() (r, g, b, a uint32) {
	c := colorful.Hsl(p.Hue, p.Saturation, p.Lightness).Clamped()
	alpha := clamp01(p.Alpha)
	return scale16(c.R * alpha), scale16(c.G * alpha), scale16(c.B * alpha), scale16(alpha)
}

// RGB255 returns the opaque colour as 8-bit channels, ignoring alpha.
func (p Paint) RGB255() (r, g, b uint8) {
	return colorful.Hsl(p.Hue, p.Saturation, p.Lightness).Clamped().RGB255()
}

// String renders the paint as a CSS hsla() value.
func (p Paint) String() string {
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)",
		p.Hue, math.Round(p.Saturation*100), math.Round(p.Lightness*100), p.Alpha)
}

func scale16(v float64) uint32 {
	return uint32(v*0xffff + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette maps a row, column or diagonal index to a stable colour so that
// every element drawn for that index shares a hue.
type Palette struct {
	HueOffset  float64
	Saturation float64
	Lightness  float64
}

// NewPalette returns the default 85% saturation, 60% lightness palette.
func NewPalette(hueOffset float64) Palette {
	return Palette{
		HueOffset:  hueOffset,
		Saturation: DefaultSaturation,
		Lightness:  DefaultLightness,
	}
}

// Hue is ((index+1)*30 + offset) mod 361.
func (p Palette) Hue(index int) float64 {
	h := math.Mod(float64((index+1)*hueStep)+p.HueOffset, hueMod)
	if h < 0 {
		h += hueMod
	}
	return h
}

// ColorFor returns the paint for index at the given alpha.
func (p Palette) ColorFor(index int, alpha float64) Paint {
	return Paint{
		Hue:        p.Hue(index),
		Saturation: p.Saturation,
		Lightness:  p.Lightness,
		Alpha:      alpha,
	}
}
