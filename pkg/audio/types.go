// ABOUTME: Audio type definitions
// ABOUTME: Defines output formats, sample counting and quantization
package audio

import (
	"math"
	"time"
)

const (
	// 16-bit audio range constants
	Max16Bit = 32767
	Min16Bit = -32768

	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

const (
	DefaultSampleRate = 48000
	DefaultChannels   = 2
	DefaultBitDepth   = 16
)

// Format describes an encoded output stream
type Format struct {
	Codec      string // "wav" or "pcm"
	SampleRate int
	Channels   int
	BitDepth   int
}

// DefaultFormat returns 48kHz 16-bit stereo WAV
func DefaultFormat() Format {
	return Format{
		Codec:      "wav",
		SampleRate: DefaultSampleRate,
		Channels:   DefaultChannels,
		BitDepth:   DefaultBitDepth,
	}
}

// BytesPerFrame returns the size of one interleaved frame
func (f Format) BytesPerFrame() int {
	return f.Channels * f.BitDepth / 8
}

// Duration returns the playback length of the given number of frames
func (f Format) Duration(frames int) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

// SampleCount returns the number of samples covering seconds at sampleRate,
// rounded to the nearest sample
func SampleCount(sampleRate int, seconds float64) int {
	n := int(math.Round(float64(sampleRate) * seconds))
	if n < 0 {
		return 0
	}
	return n
}

// Clamp limits a float sample to [-1, 1]
func Clamp(sample float64) float64 {
	switch {
	case sample > 1.0:
		return 1.0
	case sample < -1.0:
		return -1.0
	case math.IsNaN(sample):
		return 0
	}
	return sample
}

// MaxValue returns the positive full-scale integer for a bit depth
func MaxValue(bitDepth int) int32 {
	if bitDepth == 24 {
		return Max24Bit
	}
	return Max16Bit
}

// Quantize clamps a float sample and rounds it to a signed integer of the given bit depth
func Quantize(sample float64, bitDepth int) int32 {
	return int32(math.Round(Clamp(sample) * float64(MaxValue(bitDepth))))
}

// Dequantize converts a signed integer sample back to the [-1, 1] float range
func Dequantize(sample int32, bitDepth int) float64 {
	return float64(sample) / float64(MaxValue(bitDepth))
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	// Take lower 24 bits, pack little-endian
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	// Reconstruct 24-bit value and sign-extend to 32-bit
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF // Set upper 8 bits to 1 for negative values
	}
	return val
}
