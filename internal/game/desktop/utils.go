package desktop

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iburimskiy/lissajous-table/internal/game"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// hudText is the status line: grid, step, counters, elapsed time and the
// selected cell's frequency ratio.
func hudText(t *game.Table, elapsed time.Duration, tone bool) string {
	cfg := t.Config()
	p := t.Phase()

	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d  step %g  frame %s  rev %s  %s",
		cfg.Rows, cfg.Cols, cfg.StepSize,
		humanize.Comma(int64(p.Frame)), humanize.Comma(int64(p.Revolutions)),
		formatDuration(elapsed))
	if cfg.FullHistory {
		b.WriteString("  full")
	}
	if row, col, ok := t.Selected(); ok {
		fmt.Fprintf(&b, "  cell %d:%d", col+1, row+1)
		if tone {
			b.WriteString(" (tone)")
		}
	}
	return b.String()
}

// resizeDebounce applies a new surface size only once it has stopped changing.
type resizeDebounce struct {
	delay   time.Duration
	w, h    int
	changed time.Time
	pending bool
}

// observe records the size reported at now.
func (d *resizeDebounce) observe(w, h int, now time.Time) {
	if d.pending && w == d.w && h == d.h {
		return
	}
	d.w, d.h = w, h
	d.changed = now
	d.pending = true
}

// ready returns the settled size once delay has passed since the last change.
func (d *resizeDebounce) ready(now time.Time) (w, h int, ok bool) {
	if !d.pending || now.Sub(d.changed) < d.delay {
		return 0, 0, false
	}
	d.pending = false
	return d.w, d.h, true
}
