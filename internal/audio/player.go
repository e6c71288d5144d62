package audio

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player owns the speaker and the tone playing through it. The tone is read
// from the speaker's goroutine, so every change goes through speaker.Lock.
type Player struct {
	sampleRate beep.SampleRate
	tone       *Tone
	ctrl       *beep.Ctrl
	initDone   bool
	log        *slog.Logger
}

func NewPlayer(sampleRate int, base, volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	sr := beep.SampleRate(sampleRate)
	return &Player{
		sampleRate: sr,
		tone:       NewTone(sr, base, volume),
		log:        logger,
	}
}

// Playing reports whether the tone is audible.
func (p *Player) Playing() bool {
	return p.ctrl != nil && !p.ctrl.Paused
}

// Toggle starts the speaker on first use and pauses or resumes it afterwards.
func (p *Player) Toggle() error {
	if !p.initDone {
		bufferSize := p.sampleRate.N(time.Second / 20)
		if err := speaker.Init(p.sampleRate, bufferSize); err != nil {
			return err
		}
		p.initDone = true
		p.ctrl = &beep.Ctrl{Streamer: p.tone, Paused: false}
		speaker.Play(p.ctrl)
		p.log.Info("tone started", "sample_rate", int(p.sampleRate))
		return nil
	}

	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	paused := p.ctrl.Paused
	speaker.Unlock()
	p.log.Debug("tone toggled", "paused", paused)
	return nil
}

// Select plays cell (row, col).
func (p *Player) Select(row, col int) {
	if p.initDone {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.tone.SetCell(row, col)
}

// Close silences the speaker.
func (p *Player) Close() {
	if !p.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.ctrl = nil
	p.initDone = false
}
