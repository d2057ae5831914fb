package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/config"
)

// Player plays cues on the system speaker. A Player whose speaker failed to
// open, or that was muted, drops every cue.
type Player struct {
	logger *slog.Logger
	rate   beep.SampleRate
	gain   float64
	ready  bool
}

// New - opens the speaker unless audio is muted. Speaker errors are logged
// and leave the game silent.
func New(logger *slog.Logger, conf config.Audio) *Player {
	log := logger.With("component", "audio")

	p := &Player{
		logger: log,
		rate:   beep.SampleRate(conf.SampleRate),
		gain:   conf.Volume,
	}

	if conf.Muted {
		log.Info("audio muted")
		return p
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		log.Warn("audio initialization failed, continuing without sound", "error", err)
		return p
	}
	p.ready = true

	return p
}

func (p *Player) Play(cue Cue) {
	if !p.ready {
		return
	}

	s := Effect(cue, p.rate, p.gain)
	if s == nil {
		p.logger.Debug("no sound for cue", "cue", cue)
		return
	}

	speaker.Play(s)
}

func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
