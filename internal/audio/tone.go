// Package audio plays a cell of the table as sound.
package audio

import (
	"math"

	"github.com/faiface/beep"
)

// Tone streams one cell's Lissajous figure as stereo audio. The left channel
// oscillates at the column's multiple of the base frequency with a quarter
// cycle lead, the right at the row's, so an oscilloscope in X-Y mode traces
// the same curve as the cell.
type Tone struct {
	sampleRate beep.SampleRate
	base       float64
	volume     float64

	colFreq float64
	rowFreq float64
	phase   float64 // fraction of one base cycle
}

// NewTone returns a tone for cell (0, 0).
func NewTone(sr beep.SampleRate, base, volume float64) *Tone {
	return &Tone{
		sampleRate: sr,
		base:       base,
		volume:     volume,
		colFreq:    1,
		rowFreq:    1,
	}
}

// SetCell switches the figure to cell (row, col) without resetting the phase.
func (t *Tone) SetCell(row, col int) {
	t.rowFreq = float64(row + 1)
	t.colFreq = float64(col + 1)
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	step := t.base / float64(t.sampleRate)
	for i := range samples {
		a := 2 * math.Pi * t.phase
		samples[i][0] = t.volume * math.Sin(a*t.colFreq+math.Pi/2)
		samples[i][1] = t.volume * math.Sin(a*t.rowFreq)
		t.phase += step
		if t.phase >= 1 {
			t.phase--
		}
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }
