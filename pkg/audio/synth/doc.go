// ABOUTME: Synthesis package for oscillators and envelopes
// ABOUTME: Produces raw and shaped float sample buffers
// Package synth generates sample buffers from mathematical oscillators.
//
// Supports: sine and triangle waveforms, linear-attack / exponential-decay
// envelopes.
//
// Every function takes the sample rate explicitly. Buffers are []float64 in
// the nominal range [-1, 1].
//
// Example:
//
//	buf, err := synth.Generate(48000, synth.Sine, 1046.50, 0.6, 0.5)
//	env := synth.Envelope{Attack: 0.01, Decay: 8.0}
//	env.Apply(48000, buf)
package synth
