package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/lissajous-table/internal/config"
)

func newTestTerm(t *testing.T) (*term, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	tm := newTerm(screen, config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	tm.table.Init()
	return tm, screen
}

func TestTermGeometryUsesDots(t *testing.T) {
	tm, _ := newTestTerm(t)

	// 80x24 cells are 160x96 dots; the grid fits the shorter side.
	require.Equal(t, 16.0, tm.table.Grid().ColWidth)
}

func TestTermFrameDrawsBraille(t *testing.T) {
	tm, screen := newTestTerm(t)

	tm.frame()
	require.Equal(t, uint64(1), tm.table.Phase().Frame)

	braille := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r >= 0x2800 && r <= 0x28ff {
				braille++
			}
		}
	}
	require.Positive(t, braille)
}

func TestTermKeys(t *testing.T) {
	tm, _ := newTestTerm(t)

	require.True(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)))
	require.Equal(t, 6, tm.table.Grid().Rows)

	require.True(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	require.Equal(t, 4, tm.table.Grid().Cols)

	require.True(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)))
	require.True(t, tm.table.Config().FullHistory)

	require.False(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestTermResize(t *testing.T) {
	tm, screen := newTestTerm(t)

	screen.SetSize(120, 40)
	require.True(t, tm.handleEvent(tcell.NewEventResize(120, 40)))

	w, h := tm.surface.Size()
	require.Equal(t, 240.0, w)
	require.Equal(t, 160.0, h)
	require.Equal(t, 26.0, tm.table.Grid().ColWidth)
	require.True(t, tm.table.Running())
}

func TestTermLogsDesktopOnlyCommands(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tm := newTerm(screen, config.Default(), logger)
	tm.table.Init()

	for _, r := range []rune{'a', 'h', 'g', 'w'} {
		require.True(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
	out := logs.String()
	for _, name := range []string{"tone", "hud", "grid-dialog", "export-tone"} {
		require.Contains(t, out, "command="+name)
	}
	require.Equal(t, 4, strings.Count(out, "command not available in the terminal"))

	logs.Reset()
	require.True(t, tm.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
	require.Empty(t, logs.String(), "unmapped keys are ignored quietly")
}
