// ABOUTME: WAV container encoder
// ABOUTME: Writes RIFF/WAVE PCM through go-audio with optional INFO metadata
package encode

import (
	"fmt"
	"io"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatPCM is the WAVE format tag for linear PCM
const wavFormatPCM = 1

// Metadata is written to the WAV INFO list
type Metadata struct {
	Title    string
	Artist   string
	Software string
	Comment  string
}

// WAVEncoder writes a WAV container
type WAVEncoder struct {
	encoder *wav.Encoder
	format  audio.Format
}

// NewWAV creates a new WAV encoder writing to w. The header is finalized on
// Close, which seeks back into w.
func NewWAV(w io.WriteSeeker, format audio.Format, meta *Metadata) (Encoder, error) {
	if format.Codec != "wav" {
		return nil, fmt.Errorf("invalid codec for WAV encoder: %s", format.Codec)
	}
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	enc := wav.NewEncoder(w, format.SampleRate, format.BitDepth, format.Channels, wavFormatPCM)
	if meta != nil {
		enc.Metadata = &wav.Metadata{
			Title:    infoValue(meta.Title),
			Artist:   infoValue(meta.Artist),
			Software: infoValue(meta.Software),
			Comments: infoValue(meta.Comment),
		}
	}

	return &WAVEncoder{
		encoder: enc,
		format:  format,
	}, nil
}

// Encode quantizes samples and appends them to the data chunk
func (e *WAVEncoder) Encode(samples []float64) error {
	buf := &goaudio.IntBuffer{
		Data: Interleave(samples, e.format),
		Format: &goaudio.Format{
			NumChannels: e.format.Channels,
			SampleRate:  e.format.SampleRate,
		},
		SourceBitDepth: e.format.BitDepth,
	}
	if err := e.encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write wav data: %w", err)
	}
	return nil
}

// Close writes the metadata and patches the chunk sizes
func (e *WAVEncoder) Close() error {
	if err := e.encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return nil
}

// infoValue keeps INFO entry sizes (value plus NUL) even. go-audio skips a
// pad byte after odd-sized entries when reading but never writes one.
func infoValue(s string) string {
	if s == "" || len(s)%2 == 1 {
		return s
	}
	return s + " "
}
