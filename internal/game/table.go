package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/iburimskiy/lissajous-table/internal/anim"
	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/motion"
	"github.com/iburimskiy/lissajous-table/internal/render"
	"github.com/iburimskiy/lissajous-table/internal/trail"
)

var ErrUnknownProperty = errors.New("unknown property")

// ParamChange asks the table to change its row or column count.
type ParamChange struct {
	Property string // "rows" or "cols"
	Value    int
}

// Table is the composition root: it owns the trails and the phase, and
// draws one frame of the curve table each time the loop fires.
type Table struct {
	cfg      config.Config
	surface  *Surface
	loop     *anim.Loop
	renderer *render.Renderer
	log      *slog.Logger

	grid   motion.Grid
	trails [][]*trail.Trail // [row][col]
	phase  anim.Phase

	selRow, selCol int
	selected       bool
}

// NewTable wires a table to its surface and scheduler. Nothing is drawn
// until Init.
func NewTable(cfg config.Config, surface *Surface, sched anim.Scheduler, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.Rows = max(cfg.Rows, config.MinGrid)
	cfg.Cols = max(cfg.Cols, config.MinGrid)

	t := &Table{
		cfg:     cfg,
		surface: surface,
		loop:    anim.NewLoop(sched),
		log:     logger,
	}
	t.renderer = render.NewRenderer(surface.Canvas, t.gridFor(surface.Size()), cfg.LineWidth)
	surface.OnResize(func(w, h float64) {
		t.log.Debug("surface resized", "width", w, "height", h)
		t.Restart()
	})
	return t
}

// Init builds the geometry and starts the animation.
func (t *Table) Init() {
	t.rebuild()
	t.loop.Start(t.Frame)
}

// Restart stops the loop, rebuilds geometry and trails, and starts again
// from angle zero.
func (t *Table) Restart() {
	t.loop.Stop()
	t.renderer.Clear()
	t.rebuild()
	t.loop.Start(t.Frame)
	t.log.Debug("animation restarted", "rows", t.grid.Rows, "cols", t.grid.Cols)
}

// Stop halts the animation. Safe to call more than once.
func (t *Table) Stop() {
	t.loop.Stop()
}

func (t *Table) Running() bool {
	return t.loop.State() == anim.Running
}

// gridFor sizes the grid to the shorter side so the table fits the surface.
func (t *Table) gridFor(w, h float64) motion.Grid {
	return motion.NewGrid(math.Min(w, h), t.cfg.Rows, t.cfg.Cols, t.cfg.StepSize, t.cfg.HueOffset)
}

func (t *Table) rebuild() {
	t.grid = t.gridFor(t.surface.Size())
	t.renderer.SetGrid(t.grid)
	t.phase = anim.Phase{}

	t.trails = make([][]*trail.Trail, t.grid.Rows)
	for r := range t.trails {
		t.trails[r] = make([]*trail.Trail, t.grid.Cols)
		for c := range t.trails[r] {
			t.trails[r][c] = trail.New(t.capacity(r, c))
		}
	}
	if t.selected && (t.selRow >= t.grid.Rows || t.selCol >= t.grid.Cols) {
		t.selected = false
	}

	t.log.Info("grid rebuilt",
		"rows", t.grid.Rows,
		"cols", t.grid.Cols,
		"col_width", t.grid.ColWidth,
		"radius", t.grid.Radius,
		"max_vertices", trail.FullCapacity(t.cfg.StepSize),
		"full_history", t.cfg.FullHistory,
	)
}

func (t *Table) capacity(row, col int) int {
	if t.cfg.FullHistory {
		return trail.FullCapacity(t.cfg.StepSize)
	}
	return trail.Capacity(row, col, t.cfg.StepSize)
}

// Frame draws the table at the current angle and advances the phase.
func (t *Table) Frame() {
	r := t.renderer
	f := t.grid.Frame(t.phase.Angle)

	r.Clear()
	for _, d := range f.Side {
		r.DrawDial(d)
	}
	for _, d := range f.Header {
		r.DrawDial(d)
	}
	for row, cells := range f.Cells {
		for col, p := range cells {
			index := max(row, col)
			t.trails[row][col].Push(p)
			r.DrawTrail(t.trails[row][col], index)
			r.DrawMovingDot(p.X, p.Y, index, render.CellDotSize)
		}
	}
	if t.selected {
		c := t.grid.CellCenter(t.selRow, t.selCol)
		r.DrawCircle(c.X, c.Y, max(t.selRow, t.selCol))
	}

	t.phase = t.phase.Step(t.cfg.StepSize)
}

// Apply handles a row or column change from the controls. Counts are
// clamped to at least one; the table restarts on every accepted change.
func (t *Table) Apply(ev ParamChange) error {
	v := config.ClampGrid(ev.Value)
	switch ev.Property {
	case "rows":
		t.cfg.Rows = v
	case "cols":
		t.cfg.Cols = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, ev.Property)
	}
	t.Restart()
	return nil
}

// SetFullHistory switches every trail to a full base revolution, or back to
// per-cell capacities.
func (t *Table) SetFullHistory(on bool) {
	if t.cfg.FullHistory == on {
		return
	}
	t.cfg.FullHistory = on
	t.Restart()
}

// Select marks cell (row, col). It returns false if the cell is outside the grid.
func (t *Table) Select(row, col int) bool {
	if row < 0 || col < 0 || row >= t.grid.Rows || col >= t.grid.Cols {
		return false
	}
	t.selRow, t.selCol, t.selected = row, col, true
	return true
}

func (t *Table) Selected() (row, col int, ok bool) {
	return t.selRow, t.selCol, t.selected
}

func (t *Table) Config() config.Config { return t.cfg }
func (t *Table) Grid() motion.Grid     { return t.grid }
func (t *Table) Phase() anim.Phase     { return t.phase }

// Trail returns the trail of cell (row, col), or nil outside the grid.
func (t *Table) Trail(row, col int) *trail.Trail {
	if row < 0 || col < 0 || row >= len(t.trails) || col >= len(t.trails[row]) {
		return nil
	}
	return t.trails[row][col]
}
