// ABOUTME: Inspector for generated chime assets
// ABOUTME: Decodes a WAV or raw PCM file and reports its format and levels
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Resonate-Protocol/chime-go/pkg/audio"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/decode"
	"github.com/Resonate-Protocol/chime-go/pkg/audio/effect"
)

var (
	rate     = flag.Int("rate", audio.DefaultSampleRate, "Sample rate of raw PCM input")
	bits     = flag.Int("bits", audio.DefaultBitDepth, "Bit depth of raw PCM input")
	channels = flag.Int("channels", audio.DefaultChannels, "Channel count of raw PCM input")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.wav|file.pcm>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	raw := audio.Format{Codec: "pcm", SampleRate: *rate, Channels: *channels, BitDepth: *bits}
	if err := inspect(os.Stdout, flag.Arg(0), raw); err != nil {
		log.Fatalf("Inspect failed: %v", err)
	}
}

// inspect decodes path and writes a report to w. raw describes the layout of
// .pcm and .raw files, which carry no header.
func inspect(w io.Writer, path string, raw audio.Format) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var clip *decode.Clip
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcm", ".raw":
		clip, err = decode.ReadPCM(f, raw)
	default:
		clip, err = decode.ReadWAV(f)
	}
	if err != nil {
		return err
	}

	peak := clip.Peak()
	fullScale := float64(audio.MaxValue(clip.Format.BitDepth))

	fmt.Fprintf(w, "File:      %s\n", path)
	fmt.Fprintf(w, "Format:    %s %d Hz, %d-bit, %d ch\n", clip.Format.Codec, clip.Format.SampleRate, clip.Format.BitDepth, clip.Format.Channels)
	fmt.Fprintf(w, "Frames:    %d\n", clip.Frames())
	fmt.Fprintf(w, "Duration:  %v\n", clip.Duration())
	fmt.Fprintf(w, "Peak:      %d (%.4f)\n", peak, float64(peak)/fullScale)
	fmt.Fprintf(w, "Level:     %s (first channel)\n", dbfs(effect.Peak(clip.Mono())))
	fmt.Fprintf(w, "Identical: %t\n", clip.ChannelsIdentical())

	if clip.Info != nil {
		fmt.Fprintf(w, "Title:     %s\n", strings.TrimSpace(clip.Info.Title))
		fmt.Fprintf(w, "Artist:    %s\n", strings.TrimSpace(clip.Info.Artist))
		fmt.Fprintf(w, "Software:  %s\n", strings.TrimSpace(clip.Info.Software))
		fmt.Fprintf(w, "Comment:   %s\n", strings.TrimSpace(clip.Info.Comment))
	}

	return nil
}

// dbfs formats a [0, 1] peak relative to full scale
func dbfs(peak float64) string {
	if peak <= 0 {
		return "-inf dBFS"
	}
	return fmt.Sprintf("%.2f dBFS", 20*math.Log10(peak))
}
