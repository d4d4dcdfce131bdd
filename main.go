// ABOUTME: Entry point for the chime generator
// ABOUTME: Parses CLI flags and writes the payment success sound
package main

import (
	"flag"
	"log"

	"github.com/Resonate-Protocol/chime-go/internal/app"
	"github.com/Resonate-Protocol/chime-go/internal/config"
	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	"github.com/Resonate-Protocol/chime-go/pkg/chime"
)

var (
	output     = flag.String("out", config.DefaultOutput, "Output file (.wav, or .pcm/.raw for headerless PCM)")
	sampleRate = flag.Int("rate", audio.DefaultSampleRate, "Output sample rate in Hz")
	bitDepth   = flag.Int("bits", audio.DefaultBitDepth, "Output bit depth (16 or 24)")
	recipePath = flag.String("recipe", "", "YAML recipe file (default: built-in payment success chime)")
	dumpRecipe = flag.String("dump-recipe", "", "Write the built-in recipe as YAML to this path and exit")
	logFile    = flag.String("log-file", "", "Also append logs to this file")
)

func main() {
	flag.Parse()

	cfg := &config.Config{
		Output:     *output,
		SampleRate: *sampleRate,
		BitDepth:   *bitDepth,
		RecipePath: *recipePath,
		LogFile:    *logFile,
	}

	closeLog, err := app.SetupLogging(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closeLog()

	if *dumpRecipe != "" {
		if err := chime.SaveRecipe(*dumpRecipe, chime.PaymentSuccess()); err != nil {
			log.Fatalf("Failed to write recipe: %v", err)
		}
		log.Printf("Wrote recipe to %s", *dumpRecipe)
		return
	}

	if _, err := app.New(cfg).Run(); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}
