// ABOUTME: Raw PCM audio encoder
// ABOUTME: Encodes float samples to headerless 16-bit or 24-bit PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// PCMEncoder writes headerless little-endian PCM
type PCMEncoder struct {
	w      io.Writer
	format audio.Format
}

// NewPCM creates a new PCM encoder
func NewPCM(w io.Writer, format audio.Format) (Encoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	return &PCMEncoder{
		w:      w,
		format: format,
	}, nil
}

// Encode converts float samples to PCM bytes and writes them
func (e *PCMEncoder) Encode(samples []float64) error {
	data := EncodePCM(Interleave(samples, e.format), e.format.BitDepth)
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("failed to write pcm data: %w", err)
	}
	return nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}

// EncodePCM packs interleaved integer samples as little-endian bytes
func EncodePCM(samples []int, bitDepth int) []byte {
	if bitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample
		output := make([]byte, len(samples)*3)
		for i, sample := range samples {
			bytes := audio.SampleTo24Bit(int32(sample))
			output[i*3] = bytes[0]
			output[i*3+1] = bytes[1]
			output[i*3+2] = bytes[2]
		}
		return output
	}

	// 16-bit PCM: 2 bytes per sample
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(int16(sample)))
	}
	return output
}
