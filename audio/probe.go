package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-field/parameter"
)

// Probe is a continuous sine streamer whose pitch tracks the field strength at a sensor
// Level is written by the engine goroutine and read by the speaker goroutine
type Probe struct {
	sr    beep.SampleRate
	level atomic.Uint64 // math.Float64bits of [0, 1]

	freq  float64
	amp   float64
	phase float64
}

// NewProbe creates a silent probe at the low end of the pitch range
func NewProbe(sr beep.SampleRate) *Probe {
	return &Probe{
		sr:   sr,
		freq: parameter.ProbeFreqLow,
	}
}

// SetLevel sets normalized field strength, clamped to [0, 1]; zero silences the tone
func (p *Probe) SetLevel(level float64) {
	if math.IsNaN(level) || level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	p.level.Store(math.Float64bits(level))
}

// Level returns the current normalized level
func (p *Probe) Level() float64 {
	return math.Float64frombits(p.level.Load())
}

// Stream implements beep.Streamer, never drains
func (p *Probe) Stream(samples [][2]float64) (n int, ok bool) {
	level := p.Level()
	targetFreq := parameter.ProbeFreqLow + (parameter.ProbeFreqHigh-parameter.ProbeFreqLow)*level
	targetAmp := 0.0
	if level > 0 {
		targetAmp = parameter.ProbeVolume
	}

	for i := range samples {
		// Glide toward target to avoid clicks on level jumps
		p.freq += (targetFreq - p.freq) * parameter.ProbeGlide
		p.amp += (targetAmp - p.amp) * parameter.ProbeGlide

		sample := p.amp * math.Sin(2*math.Pi*p.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		p.phase += p.freq / float64(p.sr)
		p.phase -= math.Floor(p.phase)
	}
	return len(samples), true
}

func (p *Probe) Err() error {
	return nil
}

// LevelFor maps a field magnitude to a probe level using the grid normalization
func LevelFor(magnitude float64) float64 {
	if magnitude <= 0 {
		return 0
	}
	return math.Min(1, magnitude/parameter.GridMagnitudeNorm)
}
