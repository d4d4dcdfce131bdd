// ABOUTME: Unit tests for PCM encoder
// ABOUTME: Tests 16-bit and 24-bit PCM encoding
package encode

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

func TestNewPCM(t *testing.T) {
	tests := []struct {
		name        string
		format      audio.Format
		wantErr     bool
		errContains string
	}{
		{
			name: "valid 16-bit PCM",
			format: audio.Format{
				Codec:      "pcm",
				SampleRate: 48000,
				Channels:   2,
				BitDepth:   16,
			},
			wantErr: false,
		},
		{
			name: "valid 24-bit PCM",
			format: audio.Format{
				Codec:      "pcm",
				SampleRate: 48000,
				Channels:   2,
				BitDepth:   24,
			},
			wantErr: false,
		},
		{
			name: "invalid codec",
			format: audio.Format{
				Codec:      "wav",
				SampleRate: 48000,
				Channels:   2,
				BitDepth:   16,
			},
			wantErr:     true,
			errContains: "invalid codec",
		},
		{
			name: "unsupported bit depth",
			format: audio.Format{
				Codec:      "pcm",
				SampleRate: 48000,
				Channels:   2,
				BitDepth:   32,
			},
			wantErr:     true,
			errContains: "unsupported bit depth",
		},
		{
			name: "no channels",
			format: audio.Format{
				Codec:      "pcm",
				SampleRate: 48000,
				Channels:   0,
				BitDepth:   16,
			},
			wantErr:     true,
			errContains: "invalid channel count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewPCM(&bytes.Buffer{}, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewPCM() expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewPCM() error = %v, want error containing %v", err, tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("NewPCM() unexpected error = %v", err)
				}
				if encoder == nil {
					t.Errorf("NewPCM() returned nil encoder")
				}
			}
		})
	}
}

func TestPCMEncoder_Encode16Bit(t *testing.T) {
	format := audio.Format{
		Codec:      "pcm",
		SampleRate: 48000,
		Channels:   2,
		BitDepth:   16,
	}

	var out bytes.Buffer
	encoder, err := NewPCM(&out, format)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []float64{
		0,    // silence
		1.0,  // full scale
		-1.0, // negative full scale
		0.95, // normalization ceiling
		2.0,  // clipped
	}
	expected := []int16{0, 32767, -32767, 31129, 32767}

	if err := encoder.Encode(samples); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	// 2 channels x 2 bytes per sample
	output := out.Bytes()
	if len(output) != len(samples)*4 {
		t.Fatalf("Encode() output size = %d, want %d", len(output), len(samples)*4)
	}

	for i, want := range expected {
		left := int16(binary.LittleEndian.Uint16(output[i*4:]))
		right := int16(binary.LittleEndian.Uint16(output[i*4+2:]))
		if left != want || right != want {
			t.Errorf("Sample %d: got (%d, %d), want %d on both channels", i, left, right, want)
		}
	}
}

func TestPCMEncoder_Encode24Bit(t *testing.T) {
	format := audio.Format{
		Codec:      "pcm",
		SampleRate: 48000,
		Channels:   1,
		BitDepth:   24,
	}

	var out bytes.Buffer
	encoder, err := NewPCM(&out, format)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []float64{0, 1.0, -1.0, 0.5}
	if err := encoder.Encode(samples); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	// Check output size: 3 bytes per sample for 24-bit
	output := out.Bytes()
	if len(output) != len(samples)*3 {
		t.Fatalf("Encode() output size = %d, want %d", len(output), len(samples)*3)
	}

	for i, sample := range samples {
		expected := audio.SampleTo24Bit(audio.Quantize(sample, 24))
		actual := [3]byte{
			output[i*3],
			output[i*3+1],
			output[i*3+2],
		}
		if actual != expected {
			t.Errorf("Sample %d: got %v, want %v", i, actual, expected)
		}
	}
}

func TestPCMEncoder_Close(t *testing.T) {
	format := audio.Format{
		Codec:      "pcm",
		SampleRate: 48000,
		Channels:   2,
		BitDepth:   16,
	}

	encoder, err := NewPCM(&bytes.Buffer{}, format)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}

	err = encoder.Close()
	if err != nil {
		t.Errorf("Close() unexpected error = %v", err)
	}
}

func TestInterleave(t *testing.T) {
	format := audio.Format{Codec: "pcm", SampleRate: 48000, Channels: 3, BitDepth: 16}
	out := Interleave([]float64{0.5, -0.25}, format)

	expected := []int{16384, 16384, 16384, -8192, -8192, -8192}
	if len(out) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(out))
	}
	for i := range expected {
		if out[i] != expected[i] {
			t.Errorf("index %d: expected %d, got %d", i, expected[i], out[i])
		}
	}
}
