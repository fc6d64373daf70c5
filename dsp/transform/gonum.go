package transform

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-tuner/dsp/spectrum"
)

// Gonum uses gonum's real FFT, which yields the half spectrum directly.
type Gonum struct {
	fft   *fourier.FFT
	n     int
	coeff []complex128
}

// NewGonum creates a gonum backed transformer of size n.
func NewGonum(n int) (*Gonum, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	return &Gonum{
		fft:   fourier.NewFFT(n),
		n:     n,
		coeff: make([]complex128, n/2+1),
	}, nil
}

// Size returns the frame length.
func (t *Gonum) Size() int { return t.n }

// Forward transforms frame into dst.
func (t *Gonum) Forward(dst spectrum.Packed, frame []float64) error {
	if err := checkLengths(t.n, dst, frame); err != nil {
		return err
	}

	t.coeff = t.fft.Coefficients(t.coeff, frame)

	return spectrum.PackHalfSpectrum(dst, t.coeff)
}
