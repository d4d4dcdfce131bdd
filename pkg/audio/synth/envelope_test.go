// ABOUTME: Tests for the percussive envelope
// ABOUTME: Tests attack ramp, decay curve and in-place application
package synth

import (
	"math"
	"testing"
)

func TestEnvelopeGain(t *testing.T) {
	sampleRate := 48000
	env := Envelope{Attack: 0.01, Decay: 0.2}
	attackSamples := 480

	if g := env.Gain(sampleRate, 0); g != 0 {
		t.Errorf("expected gain 0 at index 0, got %f", g)
	}
	if g := env.Gain(sampleRate, attackSamples); g != 1 {
		t.Errorf("expected gain 1 at end of attack, got %f", g)
	}

	// Attack ramp rises monotonically
	prev := env.Gain(sampleRate, 0)
	for i := 1; i <= attackSamples; i++ {
		g := env.Gain(sampleRate, i)
		if g <= prev {
			t.Fatalf("gain not increasing at index %d: %f <= %f", i, g, prev)
		}
		prev = g
	}

	// Decay falls strictly after the attack window
	for i := attackSamples + 1; i < sampleRate; i++ {
		g := env.Gain(sampleRate, i)
		if g >= prev {
			t.Fatalf("gain not decreasing at index %d: %f >= %f", i, g, prev)
		}
		prev = g
	}
}

func TestEnvelopeDecayCurve(t *testing.T) {
	sampleRate := 48000
	env := Envelope{Attack: 0.01, Decay: 8.0}

	// Half a second past the attack
	i := 480 + sampleRate/2
	expected := math.Exp(-4.0)
	if g := env.Gain(sampleRate, i); math.Abs(g-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, g)
	}
}

func TestEnvelopeNoAttack(t *testing.T) {
	env := Envelope{Attack: 0, Decay: 8.0}
	if g := env.Gain(48000, 0); g != 1 {
		t.Errorf("expected immediate full gain, got %f", g)
	}
}

func TestEnvelopeApply(t *testing.T) {
	sampleRate := 48000
	env := Envelope{Attack: 0.01, Decay: 8.0}

	buf := make([]float64, 1000)
	for i := range buf {
		buf[i] = 0.5
	}

	out := env.Apply(sampleRate, buf)
	if len(out) != len(buf) {
		t.Fatalf("expected %d samples, got %d", len(buf), len(out))
	}
	if &out[0] != &buf[0] {
		t.Error("expected envelope to be applied in place")
	}
	for i, v := range out {
		expected := 0.5 * env.Gain(sampleRate, i)
		if v != expected {
			t.Fatalf("index %d: expected %f, got %f", i, expected, v)
		}
	}
}
