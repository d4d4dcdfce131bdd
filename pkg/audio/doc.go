// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format and sample quantization helpers
// Package audio provides the types shared by the synthesis pipeline.
//
// Sample buffers are plain []float64 slices in the nominal range [-1, 1].
// Index i of a buffer corresponds to time i / sampleRate seconds; the sample
// rate is always passed explicitly and never stored globally.
//
// This package defines:
//   - Format: Describes an encoded output (codec, sample rate, channels, bit depth)
//   - SampleCount: Converts a duration in seconds to a rounded sample count
//   - Quantize/Dequantize: Float ↔ signed 16-bit or 24-bit integer conversion
//
// Example:
//
//	format := audio.DefaultFormat() // wav, 48000 Hz, 2 channels, 16-bit
//	n := audio.SampleCount(format.SampleRate, 1.2) // 57600
//	v := audio.Quantize(0.95, format.BitDepth)      // 31129
package audio
