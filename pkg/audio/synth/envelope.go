// ABOUTME: Percussive amplitude envelope
// ABOUTME: Linear attack followed by exponential decay
package synth

import (
	"math"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// Envelope is a percussive gain curve. Attack is the ramp length in seconds,
// Decay the exponential decay rate per second once the ramp has finished.
type Envelope struct {
	Attack float64 `yaml:"attack"`
	Decay  float64 `yaml:"decay"`
}

// Gain returns the envelope gain at sample index i
func (e Envelope) Gain(sampleRate, i int) float64 {
	attackSamples := audio.SampleCount(sampleRate, e.Attack)
	if i < attackSamples {
		return float64(i) / float64(attackSamples)
	}
	sinceAttack := float64(i-attackSamples) / float64(sampleRate)
	return math.Exp(-e.Decay * sinceAttack)
}

// Apply multiplies buf by the envelope in place and returns it
func (e Envelope) Apply(sampleRate int, buf []float64) []float64 {
	for i := range buf {
		buf[i] *= e.Gain(sampleRate, i)
	}
	return buf
}
