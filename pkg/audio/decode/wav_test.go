// ABOUTME: Tests for the WAV reader
// ABOUTME: Round-trips files written by the encoder and rejects bad input
package decode

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/encode"
)

func writeTestWAV(t *testing.T, samples []float64, format audio.Format, meta *encode.Metadata) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	if err := encode.WriteFile(path, samples, format, meta); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func openClip(t *testing.T, path string) *Clip {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	clip, err := ReadWAV(f)
	if err != nil {
		t.Fatalf("ReadWAV() failed: %v", err)
	}
	return clip
}

func TestReadWAV(t *testing.T) {
	samples := []float64{0, 0.5, -0.5, 1.0, -1.0, 0.25}
	path := writeTestWAV(t, samples, audio.DefaultFormat(), nil)

	clip := openClip(t, path)

	if clip.Format.SampleRate != 48000 {
		t.Errorf("expected 48000 Hz, got %d", clip.Format.SampleRate)
	}
	if clip.Format.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", clip.Format.Channels)
	}
	if clip.Format.BitDepth != 16 {
		t.Errorf("expected 16-bit, got %d", clip.Format.BitDepth)
	}
	if clip.Frames() != len(samples) {
		t.Fatalf("expected %d frames, got %d", len(samples), clip.Frames())
	}
	if !clip.ChannelsIdentical() {
		t.Error("expected identical channels")
	}

	left := clip.Channel(0)
	for i, s := range samples {
		expected := audio.Quantize(s, 16)
		if left[i] != expected {
			t.Errorf("frame %d: expected %d, got %d", i, expected, left[i])
		}
	}
	if clip.Info != nil {
		t.Errorf("expected no metadata, got %+v", clip.Info)
	}
}

func TestReadWAV24Bit(t *testing.T) {
	format := audio.Format{Codec: "wav", SampleRate: 44100, Channels: 2, BitDepth: 24}
	samples := []float64{0.5, -0.5, 1.0, -1.0}
	path := writeTestWAV(t, samples, format, nil)

	clip := openClip(t, path)

	if clip.Format.BitDepth != 24 || clip.Format.SampleRate != 44100 {
		t.Fatalf("unexpected format: %+v", clip.Format)
	}
	left := clip.Channel(0)
	for i, s := range samples {
		expected := audio.Quantize(s, 24)
		if left[i] != expected {
			t.Errorf("frame %d: expected %d, got %d", i, expected, left[i])
		}
	}
}

func TestReadWAVMetadata(t *testing.T) {
	meta := &encode.Metadata{
		Title:    "Payment Success",
		Artist:   "Resonate",
		Software: "chime-go 0.1.0",
		Comment:  "asset 1b4e28ba-2fa1-51d2-883f-0016d3cca427",
	}
	path := writeTestWAV(t, []float64{0.1, 0.2, 0.3}, audio.DefaultFormat(), meta)

	clip := openClip(t, path)

	if clip.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", clip.Frames())
	}
	if clip.Info == nil {
		t.Fatal("expected metadata")
	}
	if clip.Info.Title != meta.Title {
		t.Errorf("expected title %q, got %q", meta.Title, clip.Info.Title)
	}
	// Values may carry a trailing pad space
	if got := bytes.TrimRight([]byte(clip.Info.Artist), " "); string(got) != meta.Artist {
		t.Errorf("expected artist %q, got %q", meta.Artist, clip.Info.Artist)
	}
	if got := bytes.TrimRight([]byte(clip.Info.Software), " "); string(got) != meta.Software {
		t.Errorf("expected software %q, got %q", meta.Software, clip.Info.Software)
	}
	if got := bytes.TrimRight([]byte(clip.Info.Comment), " "); string(got) != meta.Comment {
		t.Errorf("expected comment %q, got %q", meta.Comment, clip.Info.Comment)
	}
}

func TestReadWAVInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", []byte{}},
		{"not riff", []byte("this is not a wav file at all, just text")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadWAV(bytes.NewReader(tt.input)); err == nil {
				t.Error("expected error for invalid input")
			}
		})
	}
}

func TestReadPCM(t *testing.T) {
	format := audio.Format{Codec: "pcm", SampleRate: 48000, Channels: 2, BitDepth: 16}
	data := []byte{0xFF, 0x7F, 0xFF, 0x7F, 0x01, 0x80, 0x01, 0x80}

	clip, err := ReadPCM(bytes.NewReader(data), format)
	if err != nil {
		t.Fatalf("ReadPCM() failed: %v", err)
	}
	if clip.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", clip.Frames())
	}
	if clip.Peak() != 32767 {
		t.Errorf("expected peak 32767, got %d", clip.Peak())
	}
	if !clip.ChannelsIdentical() {
		t.Error("expected identical channels")
	}
}
