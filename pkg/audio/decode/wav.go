// ABOUTME: WAV file reader
// ABOUTME: Decodes a RIFF/WAVE PCM file with go-audio into a Clip
package decode

import (
	"fmt"
	"io"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	"github.com/go-audio/wav"
)

// ReadWAV decodes the whole PCM payload and INFO metadata of a WAV file
func ReadWAV(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("invalid wav file: %w", err)
	}
	if d.NumChans < 1 {
		return nil, fmt.Errorf("invalid wav file: no channels")
	}
	if d.WavAudioFormat != 1 {
		return nil, fmt.Errorf("unsupported wav format tag: %d (only PCM)", d.WavAudioFormat)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav data: %w", err)
	}

	clip := &Clip{
		Format: audio.Format{
			Codec:      "wav",
			SampleRate: int(d.SampleRate),
			Channels:   int(d.NumChans),
			BitDepth:   int(d.BitDepth),
		},
		Samples: make([]int32, len(buf.Data)),
	}
	for i, v := range buf.Data {
		clip.Samples[i] = int32(v)
	}

	info, err := readInfo(r)
	if err != nil {
		return nil, err
	}
	clip.Info = info

	return clip, nil
}

// readInfo scans the file again for a trailing INFO list
func readInfo(r io.ReadSeeker) (*Info, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind wav file: %w", err)
	}

	d := wav.NewDecoder(r)
	d.ReadMetadata()
	if d.Metadata == nil {
		return nil, nil
	}

	return &Info{
		Title:    d.Metadata.Title,
		Artist:   d.Metadata.Artist,
		Software: d.Metadata.Software,
		Comment:  d.Metadata.Comments,
	}, nil
}

// ReadPCM decodes headerless PCM data described by format
func ReadPCM(r io.Reader, format audio.Format) (*Clip, error) {
	decoder, err := NewPCM(format)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pcm data: %w", err)
	}

	samples, err := decoder.Decode(data)
	if err != nil {
		return nil, err
	}

	return &Clip{Format: format, Samples: samples}, nil
}
