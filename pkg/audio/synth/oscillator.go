// ABOUTME: Oscillator for raw waveform generation
// ABOUTME: Renders sine and triangle waves into float buffers
package synth

import (
	"fmt"
	"math"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// Generate renders duration seconds of the waveform at frequency, scaled by
// amplitude. The result always holds audio.SampleCount(sampleRate, duration)
// samples.
func Generate(sampleRate int, w Waveform, frequency, duration, amplitude float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if duration < 0 {
		return nil, fmt.Errorf("invalid duration: %f", duration)
	}

	var wave func(phase float64) float64
	switch w {
	case Sine:
		wave = sine
	case Triangle:
		wave = triangle
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWaveform, int(w))
	}

	n := audio.SampleCount(sampleRate, duration)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = wave(frequency*t) * amplitude
	}

	return samples, nil
}

// sine takes the phase in cycles
func sine(cycles float64) float64 {
	return math.Sin(2 * math.Pi * cycles)
}

// triangle folds the phase into a unit-amplitude triangle starting at -1
func triangle(cycles float64) float64 {
	return 2*math.Abs(2*(cycles-math.Floor(cycles+0.5))) - 1
}
