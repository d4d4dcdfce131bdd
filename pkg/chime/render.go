// ABOUTME: Synthesis pipeline
// ABOUTME: Renders a recipe through oscillators, mixer, echo and normalizer
package chime

import (
	"fmt"

	"github.com/Resonate-Protocol/chime-go/pkg/audio/effect"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/mix"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/synth"
)

// Tracks renders every layer of every note as an enveloped track
func Tracks(r Recipe, sampleRate int) ([]mix.Track, error) {
	var tracks []mix.Track

	for _, note := range r.Notes {
		for _, layer := range note.Layers {
			samples, err := synth.Generate(sampleRate, layer.Waveform, note.Frequency*layer.Ratio, r.NoteDuration, layer.Amplitude)
			if err != nil {
				return nil, fmt.Errorf("note %s layer %s: %w", note.Name, layer.Name, err)
			}
			tracks = append(tracks, mix.Track{
				Samples: r.Envelope.Apply(sampleRate, samples),
				Start:   note.Start,
			})
		}
	}

	return tracks, nil
}

// Render validates the recipe and returns the normalized mono buffer
func Render(r Recipe, sampleRate int) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}

	tracks, err := Tracks(r, sampleRate)
	if err != nil {
		return nil, err
	}

	out := mix.Mix(sampleRate, tracks, r.TotalDuration)
	r.Echo.Apply(sampleRate, out)
	effect.Normalize(out, r.Ceiling)

	return out, nil
}
