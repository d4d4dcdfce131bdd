// ABOUTME: Post-mix effects package
// ABOUTME: Provides the feedback echo and peak normalization
// Package effect processes a mixed buffer in place.
//
// Supports: feedback comb echo, peak normalization.
//
// Example:
//
//	effect.Echo{Delay: 0.04, Decay: 0.2}.Apply(48000, buf)
//	peak := effect.Normalize(buf, 0.95)
package effect
