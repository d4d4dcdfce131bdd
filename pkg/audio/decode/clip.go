// ABOUTME: Decoded audio clip
// ABOUTME: Interleaved samples with format and inspection helpers
package decode

import (
	"time"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// Info holds the INFO list entries of a WAV file
type Info struct {
	Title    string
	Artist   string
	Software string
	Comment  string
}

// Clip is a fully decoded file
type Clip struct {
	Format  audio.Format
	Samples []int32 // interleaved
	Info    *Info
}

// Frames returns the number of multi-channel frames
func (c *Clip) Frames() int {
	if c.Format.Channels < 1 {
		return 0
	}
	return len(c.Samples) / c.Format.Channels
}

// Duration returns the playback length
func (c *Clip) Duration() time.Duration {
	return c.Format.Duration(c.Frames())
}

// Peak returns the largest absolute sample value across all channels
func (c *Clip) Peak() int32 {
	var peak int32
	for _, s := range c.Samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// Channel extracts one channel
func (c *Clip) Channel(ch int) []int32 {
	if ch < 0 || ch >= c.Format.Channels {
		return nil
	}
	out := make([]int32, c.Frames())
	for i := range out {
		out[i] = c.Samples[i*c.Format.Channels+ch]
	}
	return out
}

// ChannelsIdentical reports whether every frame carries the same value on
// all channels
func (c *Clip) ChannelsIdentical() bool {
	n := c.Format.Channels
	if n < 1 {
		return false
	}
	for i := 0; i+n <= len(c.Samples); i += n {
		for ch := 1; ch < n; ch++ {
			if c.Samples[i+ch] != c.Samples[i] {
				return false
			}
		}
	}
	return true
}

// Mono returns the first channel as floats in [-1, 1]
func (c *Clip) Mono() []float64 {
	left := c.Channel(0)
	out := make([]float64, len(left))
	for i, s := range left {
		out[i] = audio.Dequantize(s, c.Format.BitDepth)
	}
	return out
}
