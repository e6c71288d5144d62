package config_test

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/lissajous-table/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, 5, c.Rows)
	require.Equal(t, 5, c.Cols)
	require.Equal(t, 0.014, c.StepSize)
	require.Equal(t, 190.0, c.HueOffset)
}

func TestBindParsesFlags(t *testing.T) {
	c := config.Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-rows", "3", "-cols=7", "-step", "0.02", "-full-history", "-audio"}))
	require.Equal(t, 3, c.Rows)
	require.Equal(t, 7, c.Cols)
	require.Equal(t, 0.02, c.StepSize)
	require.True(t, c.FullHistory)
	require.True(t, c.Audio)
	require.Equal(t, config.WindowWidth, c.Width, "unset flags keep their defaults")
}

func TestValidateClampsGrid(t *testing.T) {
	c := config.Default()
	c.Rows = 0
	c.Cols = -2
	c.LineWidth = 0
	require.NoError(t, c.Validate())
	require.Equal(t, 1, c.Rows)
	require.Equal(t, 1, c.Cols)
	require.Equal(t, float64(config.DefaultLineWidth), c.LineWidth)

	c.Rows = 100
	require.NoError(t, c.Validate())
	require.Equal(t, config.MaxGrid, c.Rows)
}

func TestValidateRejects(t *testing.T) {
	c := config.Default()
	c.StepSize = 0
	require.ErrorIs(t, c.Validate(), config.ErrInvalidStep)

	c = config.Default()
	c.StepSize = 0.0004
	require.ErrorIs(t, c.Validate(), config.ErrInvalidStep, "too small to survive rounding")

	c = config.Default()
	c.StepSize = config.MinStepSize
	require.NoError(t, c.Validate())

	c = config.Default()
	c.StepSize = 7
	require.ErrorIs(t, c.Validate(), config.ErrInvalidStep)

	c = config.Default()
	c.Height = 0
	require.ErrorIs(t, c.Validate(), config.ErrInvalidSize)
}

func TestParseGridSize(t *testing.T) {
	cases := []struct {
		in         string
		rows, cols int
	}{
		{"3x4", 3, 4},
		{" 6 X 2 ", 6, 2},
		{"5×5", 5, 5},
		{"8", 8, 8},
		{"2,9", 2, 9},
		{"0x0", 1, 1},
		{"99x3", config.MaxGrid, 3},
	}
	for _, tc := range cases {
		rows, cols, err := config.ParseGridSize(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.rows, rows, tc.in)
		require.Equal(t, tc.cols, cols, tc.in)
	}

	for _, bad := range []string{"", "axb", "1x2x3", "x"} {
		_, _, err := config.ParseGridSize(bad)
		require.ErrorIs(t, err, config.ErrInvalidGrid, bad)
	}
}
