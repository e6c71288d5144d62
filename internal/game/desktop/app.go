package desktop

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/lissajous-table/internal/anim"
	"github.com/iburimskiy/lissajous-table/internal/audio"
	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/game"
	"github.com/iburimskiy/lissajous-table/internal/motion"
	"github.com/iburimskiy/lissajous-table/internal/render/ebitencanvas"
)

// App runs a Table inside an ebiten window. Draw is the display refresh that
// fires the table's frame requests.
type App struct {
	table   *game.Table
	sched   *anim.TickScheduler
	canvas  *ebitencanvas.Canvas
	surface *game.Surface
	player  *audio.Player
	log     *slog.Logger

	resize  resizeDebounce
	started time.Time

	// state
	showHUD bool
	quit    bool
	lastErr error

	// dialog and saveDialog replace the zenity prompts in tests.
	dialog     func(current string) (string, error)
	saveDialog func(name string) (string, error)
	now        func() time.Time
}

func NewApp(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	canvas := ebitencanvas.New(true)
	surface := game.NewSurface(canvas, float64(cfg.Width), float64(cfg.Height))
	sched := anim.NewTickScheduler()

	a := &App{
		table:      game.NewTable(cfg, surface, sched, logger),
		sched:      sched,
		canvas:     canvas,
		surface:    surface,
		log:        logger,
		resize:     resizeDebounce{delay: config.ResizeDebounceMs * time.Millisecond},
		showHUD:    true,
		dialog:     gridDialog,
		saveDialog: exportDialog,
		now:        time.Now,
	}
	if cfg.Audio {
		a.player = audio.NewPlayer(config.ToneSampleRate, config.ToneBaseFrequency, config.ToneVolume, logger)
	}
	return a
}

// Init starts the animation and, when enabled, the tone.
func (a *App) Init() {
	a.started = a.now()
	a.table.Init()
	if a.player != nil {
		a.table.Select(0, 0)
		if err := a.player.Toggle(); err != nil {
			// Non-fatal, the table runs without sound
			a.log.Warn("audio initialization failed", "error", err)
			a.player = nil
		}
	}
}

func (a *App) Table() *game.Table { return a.table }

func (a *App) Update() error {
	if w, h, ok := a.resize.ready(a.now()); ok {
		a.surface.Resize(float64(w), float64(h))
	}

	for _, cmd := range a.pressedCommands() {
		a.execute(cmd)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.selectAt(float64(x), float64(y))
	}

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

var keyCommands = map[ebiten.Key]game.Command{
	ebiten.KeyArrowUp:    game.CmdRowsUp,
	ebiten.KeyArrowDown:  game.CmdRowsDown,
	ebiten.KeyArrowRight: game.CmdColsUp,
	ebiten.KeyArrowLeft:  game.CmdColsDown,
	ebiten.KeyEscape:     game.CmdQuit,
}

func (a *App) pressedCommands() []game.Command {
	var cmds []game.Command
	for k, cmd := range keyCommands {
		if inpututil.IsKeyJustPressed(k) {
			cmds = append(cmds, cmd)
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if cmd := game.CommandForRune(r); cmd != game.CmdNone {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (a *App) execute(cmd game.Command) {
	handled, err := a.table.Execute(cmd)
	if err != nil {
		a.lastErr = err
		return
	}
	if handled {
		a.followSelection()
		return
	}

	switch cmd {
	case game.CmdToggleHUD:
		a.showHUD = !a.showHUD
	case game.CmdToggleTone:
		a.toggleTone()
	case game.CmdGridDialog:
		if err := a.openGridDialog(); err != nil {
			a.lastErr = err
		}
	case game.CmdExportTone:
		if err := a.exportTone(); err != nil {
			a.lastErr = err
		}
	case game.CmdQuit:
		a.quit = true
	}
}

func (a *App) selectAt(x, y float64) {
	row, col, ok := a.table.Grid().CellAt(motion.Point{X: x, Y: y})
	if !ok {
		return
	}
	a.table.Select(row, col)
	a.followSelection()
	a.log.Debug("cell selected", "row", row, "col", col)
}

// followSelection keeps the tone on the selected cell.
func (a *App) followSelection() {
	if a.player == nil {
		return
	}
	if row, col, ok := a.table.Selected(); ok {
		a.player.Select(row, col)
	}
}

func (a *App) toggleTone() {
	if a.player == nil {
		a.player = audio.NewPlayer(config.ToneSampleRate, config.ToneBaseFrequency, config.ToneVolume, a.log)
	}
	if _, _, ok := a.table.Selected(); !ok {
		a.table.Select(0, 0)
	}
	a.followSelection()
	if err := a.player.Toggle(); err != nil {
		a.lastErr = fmt.Errorf("audio: %w", err)
		a.player = nil
	}
}

func (a *App) openGridDialog() error {
	cfg := a.table.Config()
	answer, err := a.dialog(fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols))
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return err
	}
	rows, cols, err := config.ParseGridSize(answer)
	if err != nil {
		return err
	}
	if rows != cfg.Rows {
		if err := a.table.Apply(game.ParamChange{Property: "rows", Value: rows}); err != nil {
			return err
		}
	}
	if cols != cfg.Cols {
		if err := a.table.Apply(game.ParamChange{Property: "cols", Value: cols}); err != nil {
			return err
		}
	}
	a.followSelection()
	return nil
}

func gridDialog(current string) (string, error) {
	return zenity.Entry("Grid size (rows x cols):",
		zenity.Title("Lissajous table"),
		zenity.EntryText(current))
}

// exportTone saves a few seconds of the selected cell's tone, or cell (0, 0)'s
// when nothing is selected.
func (a *App) exportTone() error {
	row, col, ok := a.table.Selected()
	if !ok {
		row, col = 0, 0
	}
	path, err := a.saveDialog(fmt.Sprintf("lissajous-%dx%d.wav", col+1, row+1))
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return err
	}
	err = audio.ExportFile(path, row, col, config.ToneExportSeconds*time.Second,
		config.ToneSampleRate, config.ToneBaseFrequency, config.ToneVolume)
	if err != nil {
		return fmt.Errorf("export tone: %w", err)
	}
	a.log.Info("tone exported", "path", path, "row", row, "col", col)
	return nil
}

func exportDialog(name string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Export Tone"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "WAV audio",
			Patterns: []string{"*.wav"},
		}},
	)
}

func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.sched.Tick()

	if !a.showHUD {
		return
	}
	status := hudText(a.table, a.now().Sub(a.started), a.player != nil && a.player.Playing())
	if a.lastErr != nil {
		status += " | Error: " + a.lastErr.Error()
	}
	_, h := a.surface.Size()
	ebitenutil.DebugPrintAt(screen, status, 8, int(h)-20)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.surface.Size()
	if outsideWidth != int(w) || outsideHeight != int(h) {
		a.resize.observe(outsideWidth, outsideHeight, a.now())
	}
	return int(w), int(h)
}

// Close stops the animation and the tone.
func (a *App) Close() {
	a.table.Stop()
	if a.player != nil {
		a.player.Close()
	}
}
