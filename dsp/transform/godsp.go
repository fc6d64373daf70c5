package transform

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-tuner/dsp/spectrum"
)

// GoDSP uses go-dsp's FFTReal. It allocates a full spectrum per call.
type GoDSP struct {
	n int
}

// NewGoDSP creates a go-dsp backed transformer of size n.
func NewGoDSP(n int) (*GoDSP, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &GoDSP{n: n}, nil
}

// Size returns the frame length.
func (t *GoDSP) Size() int { return t.n }

// Forward transforms frame into dst.
func (t *GoDSP) Forward(dst spectrum.Packed, frame []float64) error {
	if err := checkLengths(t.n, dst, frame); err != nil {
		return err
	}

	full := fft.FFTReal(frame)

	return spectrum.PackHalfSpectrum(dst, full[:t.n/2+1])
}
