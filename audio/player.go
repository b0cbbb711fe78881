package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-field/parameter"
)

const (
	clickDuration = 40 * time.Millisecond
	clickFreqPos  = 880.0
	clickFreqNeg  = 440.0
)

// Player owns the speaker, a mixer with the sensor probe and one-shot clicks
// Any speaker failure leaves the player silent, the sandbox keeps running
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	probe       *Probe
	ctrl        *beep.Ctrl
	initialized bool
	muted       bool

	// Speaker hooks, replaced in tests
	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewPlayer creates an uninitialized, muted player
func NewPlayer() *Player {
	rate := beep.SampleRate(parameter.ProbeSampleRate)
	probe := NewProbe(rate)
	p := &Player{
		rate:        rate,
		mixer:       &beep.Mixer{},
		probe:       probe,
		ctrl:        &beep.Ctrl{Streamer: probe, Paused: true},
		muted:       true,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
	p.mixer.Add(p.ctrl)
	return p
}

// Start initializes the speaker once and begins streaming the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := p.initSpeaker(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	p.play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports an initialized, unmuted player
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}

// SetMuted pauses or resumes the probe tone
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	speaker.Lock()
	p.ctrl.Paused = muted
	speaker.Unlock()
}

// SetLevel forwards the normalized sensor field strength to the probe
func (p *Player) SetLevel(level float64) {
	p.probe.SetLevel(level)
}

// Level returns the probe level
func (p *Player) Level() float64 {
	return p.probe.Level()
}

// Click plays a short tone, higher for positive charges
func (p *Player) Click(positive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	freq := clickFreqNeg
	if positive {
		freq = clickFreqPos
	}
	tone, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(beep.Take(p.rate.N(clickDuration), tone))
	speaker.Unlock()
}

// Close silences all streamers
// beep keeps the speaker device open for the process lifetime
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}
