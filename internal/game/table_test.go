package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/iburimskiy/lissajous-table/internal/anim"
	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/motion"
	"github.com/iburimskiy/lissajous-table/internal/render/rendertest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type TableSuite struct {
	suite.Suite
	rec     *rendertest.Recorder
	surface *Surface
	sched   *anim.TickScheduler
	table   *Table
}

func (s *TableSuite) SetupTest() {
	s.rec = rendertest.New(600, 600)
	s.surface = NewSurface(s.rec, 600, 600)
	s.sched = anim.NewTickScheduler()
	s.table = NewTable(config.Default(), s.surface, s.sched, discardLogger())
	s.table.Init()
}

func (s *TableSuite) TestInitStartsLoopAndSizesTrails() {
	require := require.New(s.T())

	require.True(s.table.Running())
	require.Equal(1, s.sched.Pending())
	require.Equal(100.0, s.table.Grid().ColWidth)

	require.Equal(448, s.table.Trail(0, 1).Cap(), "off-diagonal holds one base revolution")
	require.Equal(448, s.table.Trail(0, 0).Cap())
	require.Equal(149, s.table.Trail(2, 2).Cap(), "diagonal holds one period of its own frequency")
	require.Equal(89, s.table.Trail(4, 4).Cap())
	require.Nil(s.table.Trail(5, 0))
	require.Nil(s.table.Trail(-1, 0))
}

func (s *TableSuite) TestFrameDrawCalls() {
	require := require.New(s.T())

	require.Equal(1, s.sched.Tick())
	require.Equal(rendertest.OpClear, s.rec.Calls[0].Op, "every frame starts from a clear surface")
	require.Equal(1, s.rec.Count(rendertest.OpClear))
	require.Equal(10, s.rec.Count(rendertest.OpStrokeCircle), "5 header and 5 side dials")
	require.Equal(10, s.rec.Count(rendertest.OpStrokeLine), "one guide line per dial")
	require.Equal(35, s.rec.Count(rendertest.OpFillCircle), "dial dots plus cell dots")
	require.Equal(25, s.rec.Count(rendertest.OpStrokePath), "one trail per cell")
}

func (s *TableSuite) TestFirstFrameAtAngleZero() {
	require := require.New(s.T())
	s.sched.Tick()

	g := s.table.Grid()
	dots := s.rec.Filter(rendertest.OpFillCircle)

	// Side dial 0 is drawn first; at angle 0 its dot sits at center + (R, 0).
	require.InDelta(50+g.Radius, dots[0].X0, 1e-9)
	require.InDelta(150, dots[0].Y0, 1e-9)

	// Every trail holds its cell's point at angle 0.
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			pts := s.table.Trail(row, col).Points()
			require.Len(pts, 1)
			require.Equal(g.CellPoint(row, col, 0), pts[0])
		}
	}
	require.Equal(0.014, s.table.Phase().Angle)
	require.Equal(uint64(1), s.table.Phase().Frame)
}

func (s *TableSuite) TestTrailsStayBounded() {
	require := require.New(s.T())

	for i := 0; i < 500; i++ {
		s.sched.Tick()
	}
	require.Equal(149, s.table.Trail(2, 2).Len())
	require.Equal(448, s.table.Trail(1, 3).Len())
	require.Equal(uint64(500), s.table.Phase().Frame)
	require.Equal(uint64(1), s.table.Phase().Revolutions)
}

func (s *TableSuite) TestTrailColourFollowsLargerIndex() {
	require := require.New(s.T())
	s.sched.Tick()

	paths := s.rec.Filter(rendertest.OpStrokePath)
	// Cells are drawn row by row: path 1*5+3 is cell (1, 3).
	require.Equal(s.table.renderer.ColorFor(3, 1), paths[1*5+3].Color)
	require.Equal(s.table.renderer.ColorFor(4, 1), paths[4*5+0].Color)
}

func (s *TableSuite) TestApplyClampsAndRestarts() {
	require := require.New(s.T())
	s.sched.Tick()
	s.sched.Tick()

	require.NoError(s.table.Apply(ParamChange{Property: "rows", Value: 0}))
	require.Equal(1, s.table.Grid().Rows)
	require.Equal(5, s.table.Grid().Cols)
	require.Zero(s.table.Phase().Angle, "restart begins at angle zero")
	require.Zero(s.table.Trail(0, 0).Len(), "trails are rebuilt")
	require.Equal(1, s.sched.Pending(), "exactly one recurrence after restart")

	require.NoError(s.table.Apply(ParamChange{Property: "cols", Value: -5}))
	require.Equal(1, s.table.Grid().Cols)
	require.Equal(300.0, s.table.Grid().ColWidth)

	require.NoError(s.table.Apply(ParamChange{Property: "cols", Value: 3}))
	s.rec.Reset()
	s.sched.Tick()
	require.Equal(3, s.rec.Count(rendertest.OpStrokePath))
}

func (s *TableSuite) TestApplyRejectsUnknownProperty() {
	require := require.New(s.T())

	err := s.table.Apply(ParamChange{Property: "depth", Value: 3})
	require.ErrorIs(err, ErrUnknownProperty)
	require.True(s.table.Running())
	require.Equal(1, s.sched.Pending())
}

func (s *TableSuite) TestResizeRebuildsGeometry() {
	require := require.New(s.T())
	s.sched.Tick()

	require.True(s.surface.Resize(1200, 900))
	require.Equal(150.0, s.table.Grid().ColWidth, "the shorter side decides the cell width")
	require.Equal(56.25, s.table.Grid().Radius)
	require.Zero(s.table.Phase().Frame)
	require.Equal(1, s.sched.Pending())

	require.False(s.surface.Resize(1200, 900), "same size is not a change")
	require.False(s.surface.Resize(0, 900))
}

func (s *TableSuite) TestStopIsIdempotent() {
	require := require.New(s.T())

	s.table.Stop()
	s.table.Stop()
	require.False(s.table.Running())
	require.Zero(s.sched.Pending())
	require.Zero(s.sched.Tick())
}

func (s *TableSuite) TestFullHistory() {
	require := require.New(s.T())

	s.table.SetFullHistory(true)
	for row := 0; row < 5; row++ {
		require.Equal(448, s.table.Trail(row, row).Cap())
	}
	s.table.SetFullHistory(false)
	require.Equal(149, s.table.Trail(2, 2).Cap())
}

func (s *TableSuite) TestSelect() {
	require := require.New(s.T())

	_, _, ok := s.table.Selected()
	require.False(ok)
	require.False(s.table.Select(5, 0))
	require.True(s.table.Select(1, 2))

	row, col, ok := s.table.Selected()
	require.True(ok)
	require.Equal(1, row)
	require.Equal(2, col)

	s.sched.Tick()
	require.Equal(11, s.rec.Count(rendertest.OpStrokeCircle), "selected cell is outlined")

	// Shrinking the grid past the selection drops it.
	require.NoError(s.table.Apply(ParamChange{Property: "rows", Value: 1}))
	_, _, ok = s.table.Selected()
	require.False(ok)
}

func (s *TableSuite) TestExecute() {
	require := require.New(s.T())

	handled, err := s.table.Execute(CmdRowsUp)
	require.True(handled)
	require.NoError(err)
	require.Equal(6, s.table.Grid().Rows)

	handled, err = s.table.Execute(CmdColsDown)
	require.True(handled)
	require.NoError(err)
	require.Equal(4, s.table.Grid().Cols)

	handled, _ = s.table.Execute(CmdToggleHistory)
	require.True(handled)
	require.True(s.table.Config().FullHistory)

	handled, _ = s.table.Execute(CmdToggleHUD)
	require.False(handled, "HUD belongs to the front end")
}

func (s *TableSuite) TestRowsAndColsMayDiffer() {
	require := require.New(s.T())

	require.NoError(s.table.Apply(ParamChange{Property: "rows", Value: 2}))
	s.rec.Reset()
	s.sched.Tick()

	require.Equal(7, s.rec.Count(rendertest.OpStrokeCircle), "5 header dials and 2 side dials")
	require.Equal(10, s.rec.Count(rendertest.OpStrokePath))

	g := s.table.Grid()
	last := s.table.Trail(1, 4).Points()[0]
	require.Equal(g.CellPoint(1, 4, 0), last)
	require.Equal(motion.Point{X: 550, Y: 250}.Y, g.CellCenter(1, 4).Y)
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}
