// Command pitchtrack prints phase-refined pitch estimates for a WAV file or
// a synthetic tone.
//
// Usage:
//
//	pitchtrack [flags]
//
// Examples:
//
//	pitchtrack -in guitar.wav
//	pitchtrack -in guitar.wav -window hann -summary
//	pitchtrack -tone 329.63 -seconds 1 -size 4096
//	pitchtrack -tone 110 -backend gonum -log-level debug
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/dsp/peak"
	"github.com/cwbudde/algo-tuner/dsp/transform"
	"github.com/cwbudde/algo-tuner/dsp/window"
	"github.com/cwbudde/algo-tuner/internal/logging"
	"github.com/cwbudde/algo-tuner/pitch"
	"github.com/cwbudde/algo-tuner/stats/estimate"
	"github.com/cwbudde/algo-tuner/stats/level"
)

type options struct {
	in          string
	tone        float64
	seconds     float64
	amplitude   float64
	rate        float64
	size        int
	window      string
	backend     string
	minStrength float64
	boundDB     float64
	harmonicDB  float64
	logLevel    string
	logDev      bool
	all         bool
	summary     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("pitchtrack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "WAV file to analyse (first channel)")
	fs.Float64Var(&o.tone, "tone", 0, "analyse a synthetic sine of this frequency in Hz instead of a file")
	fs.Float64Var(&o.seconds, "seconds", 1, "duration of the synthetic tone")
	fs.Float64Var(&o.amplitude, "amplitude", 0.5, "amplitude of the synthetic tone")
	fs.Float64Var(&o.rate, "rate", 48000, "sample rate of the synthetic tone in Hz")
	fs.IntVar(&o.size, "size", 2048, "analysis window length in samples (even)")
	fs.StringVar(&o.window, "window", "rectangular", "analysis window (rectangular, hann, hamming, blackman, bh4, flattop)")
	fs.StringVar(&o.backend, "backend", string(transform.DefaultBackend), "transform backend (algofft, gonum, godsp)")
	fs.Float64Var(&o.minStrength, "min-strength", peak.DefaultMinStrength, "magnitude floor for peaks")
	fs.Float64Var(&o.boundDB, "bound-db", peak.DefaultMinBoundRatioDB, "neighbour ratio in dB at or above which two bins form one peak")
	fs.Float64Var(&o.harmonicDB, "harmonic-db", pitch.DefaultHarmonicToleranceDB, "harmonic matching tolerance in dB")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&o.logDev, "log-dev", false, "human-readable log output")
	fs.BoolVar(&o.all, "all", false, "also print peaks without an estimate")
	fs.BoolVar(&o.summary, "summary", false, "print summary statistics at the end")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: pitchtrack [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints per-frame pitch estimates for a WAV file or a synthetic tone.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  pitchtrack -in guitar.wav -window hann -summary\n")
		_, _ = fmt.Fprintf(stderr, "  pitchtrack -tone 329.63 -seconds 1 -size 4096\n")
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch {
	case o.in == "" && o.tone <= 0:
		return o, errors.New("one of -in or -tone is required")
	case o.in != "" && o.tone > 0:
		return o, errors.New("-in and -tone are mutually exclusive")
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(
		logging.WithLevel(o.logLevel),
		logging.WithDevelopment(o.logDev),
		logging.WithFields(map[string]any{"cmd": "pitchtrack"}),
	)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	src, err := openSource(o)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	winType, err := window.ParseType(o.window)
	if err != nil {
		return err
	}

	backend, err := transform.ParseBackend(o.backend)
	if err != nil {
		return err
	}

	cfg := core.ProcessorConfig{SampleRate: src.SampleRate(), BlockSize: o.size}

	sess, err := pitch.NewSession(cfg,
		pitch.WithBackend(backend),
		pitch.WithWindow(winType),
		pitch.WithPeakOptions(peak.WithMinStrength(o.minStrength), peak.WithMinBoundRatioDB(o.boundDB)),
		pitch.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("analysing",
		zap.String("source", src.Name()),
		zap.Float64("sample_rate", cfg.SampleRate),
		zap.Int("block_size", cfg.BlockSize),
		zap.Float64("bin_hz", sess.BinHz()),
		zap.Stringer("window", winType),
		zap.String("backend", string(backend)),
	)

	p := newPrinter(stdout, o.all, pitch.NewHarmonics(o.harmonicDB))
	if err := p.header(); err != nil {
		return err
	}

	var meter level.Meter
	for {
		samples, err := src.Read()
		if len(samples) > 0 {
			meter.Update(samples)

			frames, werr := sess.Write(samples)
			if werr != nil {
				return werr
			}
			if perr := p.frames(frames); perr != nil {
				return perr
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}

	if n := sess.Flush(); n > 0 {
		logger.Debug("ignored trailing samples", zap.Int("samples", n))
	}

	if err := p.flush(); err != nil {
		return err
	}

	if o.summary {
		return printSummary(stdout, p.fundamentals, meter.Result())
	}

	return nil
}

func printSummary(w io.Writer, hz []float64, lvl level.Level) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "\nInput\t%d samples\tRMS %.1f dBFS\tPeak %.1f dBFS\n", lvl.Length, lvl.RMSdB(), lvl.PeakdB()); err != nil {
		return err
	}

	s, err := estimate.Summarize(hz)
	switch {
	case errors.Is(err, estimate.ErrNoEstimates):
		if _, err := fmt.Fprintf(tw, "Estimates\tnone\n"); err != nil {
			return err
		}
		return tw.Flush()
	case err != nil:
		return err
	}

	if _, err := fmt.Fprintf(tw, "Estimates\t%d\tmedian %.2f Hz\tmean %.2f Hz\tstd %.2f Hz\n", s.Count, s.Median, s.Mean, s.StdDev); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "Range\t%.2f - %.2f Hz\t%.1f cents\n", s.Min, s.Max, s.SpreadCents); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "Note\t%s\n", s.Note); err != nil {
		return err
	}

	return tw.Flush()
}
