// ABOUTME: Encoder interface definition
// ABOUTME: Common interface and constructor for all audio encoders
package encode

import (
	"fmt"
	"io"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// Encoder encodes mono float samples to an output stream
type Encoder interface {
	// Encode quantizes samples and writes them to every channel
	Encode(samples []float64) error

	// Close finalizes the stream. The underlying writer is not closed.
	Close() error
}

// New returns the encoder matching format.Codec
func New(w io.WriteSeeker, format audio.Format, meta *Metadata) (Encoder, error) {
	switch format.Codec {
	case "wav":
		return NewWAV(w, format, meta)
	case "pcm":
		return NewPCM(w, format)
	default:
		return nil, fmt.Errorf("unsupported codec: %s (supported: wav, pcm)", format.Codec)
	}
}

func validateFormat(format audio.Format) error {
	if format.BitDepth != 16 && format.BitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}
	if format.Channels < 1 {
		return fmt.Errorf("invalid channel count: %d", format.Channels)
	}
	if format.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", format.SampleRate)
	}
	return nil
}

// Interleave quantizes samples and repeats each one across format.Channels
func Interleave(samples []float64, format audio.Format) []int {
	out := make([]int, len(samples)*format.Channels)
	for i, sample := range samples {
		v := int(audio.Quantize(sample, format.BitDepth))
		for ch := 0; ch < format.Channels; ch++ {
			out[i*format.Channels+ch] = v
		}
	}
	return out
}
