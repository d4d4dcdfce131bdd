// ABOUTME: Audio decoder package for reading rendered output back
// ABOUTME: Provides Decoder interface and implementations for WAV and raw PCM
// Package decode reads files written by package encode.
//
// Supports: WAV (via go-audio), raw PCM (16-bit and 24-bit)
//
// Decoded samples are interleaved int32 values at the source bit depth.
//
// Example:
//
//	f, _ := os.Open("assets/sounds/payment_success.wav")
//	clip, err := decode.ReadWAV(f)
//	fmt.Println(clip.Frames(), clip.ChannelsIdentical())
package decode
