// ABOUTME: Waveform enumeration
// ABOUTME: Closed set of oscillator shapes with text parsing
package synth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWaveform is returned for any waveform outside the supported set
var ErrUnknownWaveform = errors.New("unknown waveform")

// Waveform selects an oscillator shape. The zero value is not a valid
// waveform so that missing recipe fields are rejected.
type Waveform int

const (
	Sine Waveform = iota + 1
	Triangle
)

// Waveforms lists every supported waveform
var Waveforms = []Waveform{Sine, Triangle}

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("waveform(%d)", int(w))
}

// Valid reports whether w is one of the supported waveforms
func (w Waveform) Valid() bool {
	return w == Sine || w == Triangle
}

// ParseWaveform converts a name such as "sine" or "triangle" to a Waveform
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return Sine, nil
	case "triangle":
		return Triangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, name)
}

// MarshalText implements encoding.TextMarshaler
func (w Waveform) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWaveform, int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *Waveform) UnmarshalText(text []byte) error {
	parsed, err := ParseWaveform(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
