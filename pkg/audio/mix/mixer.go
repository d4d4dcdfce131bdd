// ABOUTME: Additive track mixer
// ABOUTME: Places tracks at their start offsets and truncates at the end
package mix

import (
	"math"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// Track is a buffer scheduled to start at Start seconds
type Track struct {
	Samples []float64
	Start   float64
}

// Mix sums tracks into a zeroed buffer of audio.SampleCount(sampleRate,
// totalDuration) samples. Track samples landing outside the buffer are
// dropped.
func Mix(sampleRate int, tracks []Track, totalDuration float64) []float64 {
	out := make([]float64, audio.SampleCount(sampleRate, totalDuration))

	for _, track := range tracks {
		Add(sampleRate, out, track)
	}

	return out
}

// Add accumulates a single track into out
func Add(sampleRate int, out []float64, track Track) {
	offset := int(math.Round(float64(sampleRate) * track.Start))

	for i, sample := range track.Samples {
		idx := offset + i
		if idx < 0 {
			continue
		}
		if idx >= len(out) {
			break
		}
		out[idx] += sample
	}
}
