// ABOUTME: Log output setup for the generator
// ABOUTME: Mirrors the standard logger to stdout and an optional log file
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Resonate-Protocol/chime-go/internal/config"
)

// SetupLogging sends log output to both stdout and cfg.LogFile. With no log
// file the logger is left alone. The returned func restores the previous
// output and closes the file.
func SetupLogging(cfg *config.Config) (func(), error) {
	if cfg.LogFile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	prev := log.Writer()
	log.SetOutput(io.MultiWriter(os.Stdout, f))

	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}
