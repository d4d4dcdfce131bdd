// ABOUTME: Recipe types describing a layered chime
// ABOUTME: Notes, oscillator layers and the built-in payment success sound
package chime

import (
	"errors"
	"fmt"

	"github.com/Resonate-Protocol/chime-go/pkg/audio/effect"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/synth"
)

// Layer is one oscillator voice of a note. Ratio multiplies the note
// frequency, so 1.002 detunes a few cents sharp.
type Layer struct {
	Name      string         `yaml:"name"`
	Waveform  synth.Waveform `yaml:"waveform"`
	Ratio     float64        `yaml:"ratio"`
	Amplitude float64        `yaml:"amplitude"`
}

// Note is a pitch started at Start seconds and voiced by its layers
type Note struct {
	Name      string  `yaml:"name"`
	Frequency float64 `yaml:"frequency"`
	Start     float64 `yaml:"start"`
	Layers    []Layer `yaml:"layers"`
}

// Recipe fully describes a rendered sound
type Recipe struct {
	Name          string         `yaml:"name"`
	NoteDuration  float64        `yaml:"noteDuration"`
	TotalDuration float64        `yaml:"totalDuration"`
	Envelope      synth.Envelope `yaml:"envelope"`
	Echo          effect.Echo    `yaml:"echo"`
	Ceiling       float64        `yaml:"ceiling"`
	Notes         []Note         `yaml:"notes"`
}

// chimeLayers is the four-voice stack used for every payment success note:
// a pure sine, a quieter triangle for body and two detuned sines for width.
func chimeLayers() []Layer {
	return []Layer{
		{Name: "main", Waveform: synth.Sine, Ratio: 1.0, Amplitude: 0.5},
		{Name: "body", Waveform: synth.Triangle, Ratio: 1.0, Amplitude: 0.2},
		{Name: "detune-up", Waveform: synth.Sine, Ratio: 1.002, Amplitude: 0.15},
		{Name: "detune-down", Waveform: synth.Sine, Ratio: 0.998, Amplitude: 0.15},
	}
}

// PaymentSuccess returns the C6 major arpeggio chime
func PaymentSuccess() Recipe {
	return Recipe{
		Name:          "Payment Success",
		NoteDuration:  0.6,
		TotalDuration: 1.2,
		Envelope:      synth.Envelope{Attack: 0.01, Decay: 8.0},
		Echo:          effect.Echo{Delay: 0.04, Decay: 0.2},
		Ceiling:       0.95,
		Notes: []Note{
			{Name: "C6", Frequency: 1046.50, Start: 0.00, Layers: chimeLayers()},
			{Name: "E6", Frequency: 1318.51, Start: 0.07, Layers: chimeLayers()},
			{Name: "G6", Frequency: 1567.98, Start: 0.14, Layers: chimeLayers()},
		},
	}
}

// Validate checks that the recipe can be rendered
func (r Recipe) Validate() error {
	if r.NoteDuration <= 0 {
		return fmt.Errorf("note duration must be positive, got %g", r.NoteDuration)
	}
	if r.TotalDuration <= 0 {
		return fmt.Errorf("total duration must be positive, got %g", r.TotalDuration)
	}
	if r.Ceiling <= 0 || r.Ceiling > 1 {
		return fmt.Errorf("ceiling must be in (0, 1], got %g", r.Ceiling)
	}
	if r.Envelope.Attack < 0 || r.Envelope.Decay < 0 {
		return fmt.Errorf("envelope attack and decay must not be negative")
	}
	if r.Echo.Delay < 0 {
		return fmt.Errorf("echo delay must not be negative, got %g", r.Echo.Delay)
	}
	if r.Echo.Decay < 0 || r.Echo.Decay >= 1 {
		return fmt.Errorf("echo decay must be in [0, 1), got %g", r.Echo.Decay)
	}
	if len(r.Notes) == 0 {
		return errors.New("recipe has no notes")
	}

	for i, note := range r.Notes {
		if err := note.validate(); err != nil {
			return fmt.Errorf("note %d (%s): %w", i, note.Name, err)
		}
	}
	return nil
}

func (n Note) validate() error {
	if n.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %g", n.Frequency)
	}
	if len(n.Layers) == 0 {
		return errors.New("note has no layers")
	}
	for i, layer := range n.Layers {
		if !layer.Waveform.Valid() {
			return fmt.Errorf("layer %d (%s): %w: %d", i, layer.Name, synth.ErrUnknownWaveform, int(layer.Waveform))
		}
		if layer.Ratio <= 0 {
			return fmt.Errorf("layer %d (%s): ratio must be positive, got %g", i, layer.Name, layer.Ratio)
		}
	}
	return nil
}
