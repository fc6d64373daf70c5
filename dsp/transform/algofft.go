package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-tuner/dsp/spectrum"
)

// AlgoFFT runs a complex algo-fft plan over the real frame.
type AlgoFFT struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewAlgoFFT creates an algo-fft backed transformer of size n.
func NewAlgoFFT(n int) (*AlgoFFT, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("algofft plan for size %d: %w", n, err)
	}

	return &AlgoFFT{
		plan: plan,
		in:   make([]complex128, n),
		out:  make([]complex128, n),
	}, nil
}

// Size returns the frame length.
func (t *AlgoFFT) Size() int { return len(t.in) }

// Forward transforms frame into dst.
func (t *AlgoFFT) Forward(dst spectrum.Packed, frame []float64) error {
	n := len(t.in)
	if err := checkLengths(n, dst, frame); err != nil {
		return err
	}

	for i, v := range frame {
		t.in[i] = complex(v, 0)
	}

	if err := t.plan.Forward(t.out, t.in); err != nil {
		return fmt.Errorf("algofft forward: %w", err)
	}

	return spectrum.PackHalfSpectrum(dst, t.out[:n/2+1])
}
