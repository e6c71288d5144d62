package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	WindowWidth  = 600
	WindowHeight = 600

	// Grid parameters
	DefaultRows      = 5
	DefaultCols      = 5
	DefaultStepSize  = 0.014
	DefaultHueOffset = 190
	DefaultLineWidth = 2

	MinGrid = 1
	MaxGrid = 24

	// The angle keeps four significant digits, so above 1 radian a smaller
	// step rounds away and the phase stops advancing.
	MinStepSize = 0.001

	// Window resize is applied once the size has been stable this long.
	ResizeDebounceMs = 160

	// Tone parameters
	ToneBaseFrequency = 110.0
	ToneVolume        = 0.2
	ToneSampleRate    = 44100
	ToneExportSeconds = 5
)

var (
	ErrInvalidStep = errors.New("step size must be at least 0.001 and below 2π")
	ErrInvalidSize = errors.New("surface size must be positive")
	ErrInvalidGrid = errors.New("grid size must look like ROWSxCOLS")
)

// Config is everything a table needs at start-up.
type Config struct {
	Rows        int
	Cols        int
	StepSize    float64
	HueOffset   float64
	LineWidth   float64
	Width       int
	Height      int
	FullHistory bool
	Audio       bool
	Verbose     bool
}

func Default() Config {
	return Config{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		StepSize:  DefaultStepSize,
		HueOffset: DefaultHueOffset,
		LineWidth: DefaultLineWidth,
		Width:     WindowWidth,
		Height:    WindowHeight,
	}
}

// Bind registers the config's flags on fs, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of curve rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of curve columns")
	fs.Float64Var(&c.StepSize, "step", c.StepSize, "phase advance per frame, in radians")
	fs.Float64Var(&c.HueOffset, "hue", c.HueOffset, "hue offset of the palette, in degrees")
	fs.Float64Var(&c.LineWidth, "line-width", c.LineWidth, "stroke width of dials and trails")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.FullHistory, "full-history", c.FullHistory, "keep a full base revolution in every trail")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play the selected cell as a stereo tone")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Validate clamps rows and cols into [MinGrid, MaxGrid] and rejects values
// that cannot be clamped meaningfully.
func (c *Config) Validate() error {
	c.Rows = ClampGrid(c.Rows)
	c.Cols = ClampGrid(c.Cols)
	if c.StepSize < MinStepSize || c.StepSize >= 2*math.Pi {
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.StepSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	return nil
}

// ClampGrid keeps a row or column count within [MinGrid, MaxGrid].
func ClampGrid(n int) int {
	if n < MinGrid {
		return MinGrid
	}
	if n > MaxGrid {
		return MaxGrid
	}
	return n
}

// ParseGridSize reads "ROWSxCOLS" (also "ROWS COLS" or a single number for a
// square grid). The counts are clamped.
func ParseGridSize(s string) (rows, cols int, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == 'x' || r == '×' || r == ' ' || r == ','
	})

	switch len(fields) {
	case 1:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidGrid, s)
		}
		return ClampGrid(n), ClampGrid(n), nil
	case 2:
		r, err1 := strconv.Atoi(fields[0])
		c, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidGrid, s)
		}
		return ClampGrid(r), ClampGrid(c), nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidGrid, s)
	}
}
