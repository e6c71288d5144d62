// Command lissajous-term draws the curve table in a terminal with braille glyphs.
//
// Keys: arrows or + - [ ] change rows and columns, f toggles full history,
// Esc, q or Ctrl-C quits. The tone, HUD, grid dialog and export belong to the
// desktop build.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/lissajous-table/internal/anim"
	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/game"
	"github.com/iburimskiy/lissajous-table/internal/render/termcanvas"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type term struct {
	screen  tcell.Screen
	canvas  *termcanvas.Canvas
	surface *game.Surface
	sched   *anim.TickScheduler
	table   *game.Table
	log     *slog.Logger
}

func newTerm(screen tcell.Screen, cfg config.Config, logger *slog.Logger) *term {
	canvas := termcanvas.New(screen)
	w, h := canvas.Size()
	surface := game.NewSurface(canvas, w, h)
	sched := anim.NewTickScheduler()
	return &term{
		screen:  screen,
		canvas:  canvas,
		surface: surface,
		sched:   sched,
		table:   game.NewTable(cfg, surface, sched, logger),
		log:     logger,
	}
}

// handleEvent applies one terminal event. It returns false when the program should exit.
func (t *term) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := game.CmdNone
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			cmd = game.CmdQuit
		case tcell.KeyUp:
			cmd = game.CmdRowsUp
		case tcell.KeyDown:
			cmd = game.CmdRowsDown
		case tcell.KeyRight:
			cmd = game.CmdColsUp
		case tcell.KeyLeft:
			cmd = game.CmdColsDown
		case tcell.KeyRune:
			cmd = game.CommandForRune(ev.Rune())
		}
		if cmd == game.CmdQuit {
			return false
		}
		handled, err := t.table.Execute(cmd)
		if err != nil {
			t.log.Warn("command failed", "command", cmd, "error", err)
		} else if !handled && cmd != game.CmdNone {
			t.log.Debug("command not available in the terminal", "command", cmd)
		}

	case *tcell.EventResize:
		t.canvas.Resize()
		t.surface.Resize(t.canvas.Size())
		t.screen.Sync()
	}
	return true
}

// frame fires the pending frame request and shows the result.
func (t *term) frame() {
	if t.sched.Tick() > 0 {
		t.canvas.Flush()
	}
}

func (t *term) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// The terminal is the display, so logs go to a file or nowhere.
	logOut := os.Stderr
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	} else {
		devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err == nil {
			defer devNull.Close()
			logOut = devNull
		}
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	t := newTerm(screen, cfg, logger)
	t.table.Init()
	defer t.table.Stop()

	t.run()
}
