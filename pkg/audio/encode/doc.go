// ABOUTME: Audio encoder package for writing synthesized buffers
// ABOUTME: Provides Encoder interface and implementations for WAV and raw PCM
// Package encode writes mono float buffers as multi-channel integer PCM.
//
// Supports: WAV (RIFF/WAVE, 16-bit and 24-bit), raw little-endian PCM
//
// Every sample is clamped to [-1, 1], quantized with rounding and
// duplicated into each output channel.
//
// Example:
//
//	err := encode.WriteFile("assets/sounds/chime.wav", samples, audio.DefaultFormat(), nil)
package encode
