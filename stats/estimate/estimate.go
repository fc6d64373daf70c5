// Package estimate summarises the frequency estimates of a tracking session.
package estimate

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/note"
)

var (
	// ErrNoEstimates is returned when there is nothing to summarise.
	ErrNoEstimates = errors.New("no estimates to summarise")
	// ErrInvalidEstimate is returned for non-positive or non-finite frequencies.
	ErrInvalidEstimate = errors.New("estimate must be finite and > 0")
)

// Summary describes a set of frequency estimates in Hz.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	// StdDev is the sample standard deviation; 0 for a single estimate.
	StdDev float64
	Min    float64
	Max    float64
	// SpreadCents is the interval between Min and Max in cents.
	SpreadCents float64
	// Note is the note nearest to Median.
	Note note.Mapping
}

// Summarize computes a Summary of hz. The input is not modified.
func Summarize(hz []float64) (Summary, error) {
	if len(hz) == 0 {
		return Summary{}, ErrNoEstimates
	}

	for i, v := range hz {
		if !core.IsFinitePositive(v) {
			return Summary{}, fmt.Errorf("%w: index %d: %v", ErrInvalidEstimate, i, v)
		}
	}

	sorted := slices.Clone(hz)
	slices.Sort(sorted)

	s := Summary{
		Count:  len(hz),
		Mean:   stat.Mean(hz, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    floats.Min(hz),
		Max:    floats.Max(hz),
	}

	if s.Count > 1 {
		s.StdDev = stat.StdDev(hz, nil)
	}

	s.SpreadCents = note.CentsPerNote * note.NotesPerOctave * math.Log2(s.Max/s.Min)

	m, err := note.FrequencyToNote(s.Median)
	if err != nil {
		return Summary{}, err
	}
	s.Note = m

	return s, nil
}
