package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is a game event that has a sound.
type Cue uint8

const (
	CuePlaceX Cue = iota
	CuePlaceO
	CueReject
	CueWin
	CueDraw
)

type WaveType uint8

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

const (
	placeDuration  = 70 * time.Millisecond
	rejectDuration = 90 * time.Millisecond
	noteDuration   = 110 * time.Millisecond
	attack         = 5 * time.Millisecond
	release        = 40 * time.Millisecond
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator - a mono wave copied to both channels for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}

	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps the volume up over attack samples and down over release samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			gain = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume wraps s with a linear gain; log2 of zero is -Inf so zero is silent.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func tone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, rate)
}

// Effect - builds the streamer for a cue at the given master gain.
func Effect(cue Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer

	switch cue {
	case CuePlaceX:
		s = tone(659.25, placeDuration, WaveSine, rate)
	case CuePlaceO:
		s = tone(523.25, placeDuration, WaveSine, rate)
	case CueReject:
		s = tone(110, rejectDuration, WaveSaw, rate)
	case CueWin:
		s = beep.Seq(
			tone(523.25, noteDuration, WaveSquare, rate),
			tone(659.25, noteDuration, WaveSquare, rate),
			tone(783.99, noteDuration*2, WaveSquare, rate),
		)
	case CueDraw:
		s = beep.Seq(
			tone(392, noteDuration, WaveSine, rate),
			tone(329.63, noteDuration*2, WaveSine, rate),
		)
	default:
		return nil
	}

	return volume(s, gain)
}
