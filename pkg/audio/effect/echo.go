// ABOUTME: Feedback delay echo
// ABOUTME: Recursive comb filter producing a decaying echo train
package effect

import "github.com/Resonate-Protocol/chime-go/pkg/audio"

// Echo is a feedback comb filter. Delay is in seconds, Decay is the gain
// applied to each fed-back copy.
type Echo struct {
	Delay float64 `yaml:"delay"`
	Decay float64 `yaml:"decay"`
}

// DelaySamples returns the delay line length at sampleRate
func (e Echo) DelaySamples(sampleRate int) int {
	return audio.SampleCount(sampleRate, e.Delay)
}

// Apply runs the filter over buf in place and returns it. A delay shorter
// than one sample leaves buf untouched.
func (e Echo) Apply(sampleRate int, buf []float64) []float64 {
	d := e.DelaySamples(sampleRate)
	if d < 1 {
		return buf
	}

	// Indices must be visited in increasing order: buf[i-d] already holds
	// its own echoes when it is fed back into buf[i].
	for i := d; i < len(buf); i++ {
		buf[i] += buf[i-d] * e.Decay
	}

	return buf
}
