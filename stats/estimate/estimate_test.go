package estimate

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tuner/internal/testutil"
)

func TestSummarize(t *testing.T) {
	hz := []float64{442, 438, 440, 445, 435}

	s, err := Summarize(hz)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.Count != 5 {
		t.Fatalf("Count = %d, want 5", s.Count)
	}
	testutil.RequireNearlyEqual(t, s.Mean, 440, 1e-12)
	testutil.RequireNearlyEqual(t, s.Median, 440, 0)
	testutil.RequireNearlyEqual(t, s.Min, 435, 0)
	testutil.RequireNearlyEqual(t, s.Max, 445, 0)
	// Squared deviations 4+4+0+25+25 over n-1.
	testutil.RequireNearlyEqual(t, s.StdDev, math.Sqrt(58.0/4), 1e-12)
	testutil.RequireNearlyEqual(t, s.SpreadCents, 1200*math.Log2(445.0/435), 1e-9)

	if s.Note.Name() != "A4" {
		t.Fatalf("Note = %s, want A4", s.Note.Name())
	}

	if hz[0] != 442 || hz[4] != 435 {
		t.Fatal("Summarize must not reorder its input")
	}
}

func TestSummarizeSingle(t *testing.T) {
	s, err := Summarize([]float64{82.41})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.StdDev != 0 || s.SpreadCents != 0 {
		t.Fatalf("single estimate StdDev=%v SpreadCents=%v, want 0", s.StdDev, s.SpreadCents)
	}
	if s.Note.Name() != "E2" {
		t.Fatalf("Note = %s, want E2", s.Note.Name())
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrNoEstimates) {
		t.Fatalf("Summarize(nil) error = %v, want ErrNoEstimates", err)
	}

	for _, bad := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if _, err := Summarize([]float64{440, bad}); !errors.Is(err, ErrInvalidEstimate) {
			t.Fatalf("Summarize(%v) error = %v, want ErrInvalidEstimate", bad, err)
		}
	}
}
