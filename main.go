package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/game/desktop"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Lissajous Curve Table - Arrows: rows/cols, G: grid, F: full history, A: tone, W: export tone, H: HUD, Esc/Q: Quit")

	app := desktop.NewApp(cfg, logger)
	app.Init()
	defer app.Close()

	slog.Info("starting", "rows", cfg.Rows, "cols", cfg.Cols, "step", cfg.StepSize, "size", [2]int{cfg.Width, cfg.Height})
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "error", err)
		_ = zenity.Error(err.Error(), zenity.Title("Lissajous Curve Table"))
		os.Exit(1)
	}
}
