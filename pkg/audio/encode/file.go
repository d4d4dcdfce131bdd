// ABOUTME: File output helper
// ABOUTME: Creates parent directories and encodes a buffer to disk
package encode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
)

// WriteFile encodes samples to path, creating missing parent directories.
// A failed write may leave a partial file behind.
func WriteFile(path string, samples []float64, format audio.Format, meta *Metadata) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	encoder, err := New(f, format, meta)
	if err != nil {
		return err
	}
	if err := encoder.Encode(samples); err != nil {
		return err
	}
	return encoder.Close()
}
