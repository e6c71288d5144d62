package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

var ErrInvalidDuration = errors.New("export duration must be positive")

// Export writes d of cell (row, col)'s tone to w as 16-bit stereo WAV.
func Export(w io.WriteSeeker, row, col int, d time.Duration, sampleRate int, base, volume float64) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	sr := beep.SampleRate(sampleRate)
	tone := NewTone(sr, base, volume)
	tone.SetCell(row, col)

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, beep.Take(sr.N(d), tone), format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

// ExportFile is Export to a newly created file at path.
func ExportFile(path string, row, col int, d time.Duration, sampleRate int, base, volume float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(f, row, col, d, sampleRate, base, volume); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
