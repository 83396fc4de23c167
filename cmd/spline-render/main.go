// Command spline-render renders a curve file to a WAV file.
//
// Each curve is sampled once per output frame and the curves are mixed into
// channels as the file describes:
//
//	spline-render -input scene.json -output scene.wav -bitdepth 24
//
// Run with -example to print a starter curve file.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fulldump/goconfig"
	"github.com/tphakala/go-bulk-spline/internal/curvefile"
	"github.com/tphakala/go-bulk-spline/internal/render"
)

var errNoInput = errors.New("no input file, use -input or -example")

// Config holds the command-line configuration.
type Config struct {
	Input      string `usage:"curve file to render (JSON)"`
	Output     string `usage:"WAV file to write"`
	BitDepth   int    `usage:"PCM bit depth: 16, 24 or 32"`
	SampleRate int    `usage:"override the curve file sample rate in Hz"`
	Example    bool   `usage:"print an example curve file and exit"`
	Verbose    bool   `usage:"enable debug logging"`
}

func defaultConfig() Config {
	return Config{
		Output:   defaultOutput,
		BitDepth: defaultBitDepth,
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spline-render: %v\n", err)
		os.Exit(exitFailure)
	}
}

func run() error {
	c := defaultConfig()
	goconfig.Read(&c)

	if c.Example {
		return curvefile.Write(os.Stdout, exampleFile())
	}
	if c.Input == "" {
		return errNoInput
	}

	return renderFile(c, newLogger(c.Verbose))
}

// renderFile loads c.Input, renders it and writes c.Output.
func renderFile(c Config, logger *slog.Logger) error {
	f, err := curvefile.Load(c.Input)
	if err != nil {
		return err
	}
	if c.SampleRate > 0 {
		f.SampleRate = c.SampleRate
	}

	scene, err := f.Build(logger)
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		"curves", len(scene.Names),
		"channels", scene.Mix.NumChannels(),
		"sample_rate", scene.SampleRate,
		"duration", scene.Duration,
	)

	start := time.Now()
	planar, err := render.Render(scene.Evaluator, scene.Mix, scene.Frames(), scene.SampleRate)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	stats := scene.Evaluator.Stats()
	logger.Debug("render completed",
		"frames", scene.Frames(),
		"elapsed", time.Since(start),
		"advances", stats.Advances,
		"cubic_inits", stats.CubicInits,
	)

	for ch, level := range render.Measure(planar) {
		logger.Info("channel level", "channel", ch, "peak", level.Peak, "rms", level.RMS, "mean", level.Mean)
		if level.Peak > 1 {
			logger.Warn("channel clips", "channel", ch, "peak", level.Peak)
		}
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := render.WriteWAV(out, planar, scene.SampleRate, c.BitDepth); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("wrote WAV", "path", c.Output, "bit_depth", c.BitDepth)
	return nil
}

// newLogger returns a text logger on stderr; verbose enables debug records.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func exampleFile() *curvefile.File {
	return &curvefile.File{
		SampleRate: curvefile.DefaultSampleRate,
		Duration:   2,
		Gain:       0.8,
		Curves: []curvefile.Curve{
			{
				Name:   "swell",
				Points: [][2]float64{{0, 0}, {0.5, 0.9}, {1.2, 0.4}, {2, 0}},
				Fit:    "monotone",
			},
			{
				Name:  "wobble",
				Nodes: [][3]float64{{0, -0.5, 0}, {0.5, 0.5, 0}, {1, -0.5, 0}, {1.5, 0.5, 0}, {2, -0.5, 0}},
			},
		},
		Channels: [][]float64{{0.7, 0.3}, {0.3, 0.7}},
	}
}
