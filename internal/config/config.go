// ABOUTME: Runtime configuration for the chime generator
// ABOUTME: Output path, sample format and optional recipe and log files
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// DefaultOutput is where the payment success chime is written
const DefaultOutput = "assets/sounds/payment_success.wav"

// Config holds settings for a single generator run.
type Config struct {
	Output     string
	SampleRate int
	BitDepth   int
	RecipePath string
	LogFile    string
}

// Default returns the configuration that reproduces the built-in asset.
func Default() *Config {
	return &Config{
		Output:     DefaultOutput,
		SampleRate: audio.DefaultSampleRate,
		BitDepth:   audio.DefaultBitDepth,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.BitDepth != 16 && c.BitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", c.BitDepth)
	}
	return nil
}

// Format returns the output format. Files ending in .pcm or .raw are written
// as headerless PCM, anything else as WAV.
func (c *Config) Format() audio.Format {
	format := audio.DefaultFormat()
	format.SampleRate = c.SampleRate
	format.BitDepth = c.BitDepth

	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".pcm", ".raw":
		format.Codec = "pcm"
	}

	return format
}
