package spectrum

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for de-interleaving bin pairs.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Packed is one window's real-transform output in packed half-complex layout.
type Packed []float64

// Validate reports whether p has a usable length.
func (p Packed) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPacked
	}
	if len(p)%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddLength, len(p))
	}
	return nil
}

// BinCount returns the number of frequency bins, DC and Nyquist included.
func (p Packed) BinCount() int {
	return len(p)/2 + 1
}

// Nyquist returns the index of the Nyquist bin.
func (p Packed) Nyquist() int {
	return len(p) / 2
}

// Bin returns the cosine and sine components of bin k.
// DC and Nyquist carry no sine component.
func (p Packed) Bin(k int) (cos, sin float64, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}

	nyq := p.Nyquist()
	switch {
	case k < 0 || k > nyq:
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d]", ErrBinRange, k, nyq)
	case k == 0:
		return p[0], 0, nil
	case k == nyq:
		return p[len(p)-1], 0, nil
	default:
		return p[2*k-1], p[2*k], nil
	}
}

// Phase returns atan2(sin, cos) of bin k in radians, in [-π, π].
func (p Packed) Phase(k int) (float64, error) {
	cos, sin, err := p.Bin(k)
	if err != nil {
		return 0, err
	}
	return math.Atan2(sin, cos), nil
}

// Magnitudes returns the per-bin magnitudes of p, DC and Nyquist included.
//
//	mag[0]   = |c0|
//	mag[k]   = sqrt(re_k^2 + im_k^2)   for 1 <= k < N/2
//	mag[N/2] = |cN/2|
func Magnitudes(p Packed) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, p.BinCount())
	magnitudesInto(out, p)
	return out, nil
}

// MagnitudesInto writes the magnitudes of p into dst, which must hold
// exactly p.BinCount() values. It allocates nothing in steady state.
func MagnitudesInto(dst []float64, p Packed) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(dst) != p.BinCount() {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(dst), p.BinCount())
	}

	magnitudesInto(dst, p)
	return nil
}

func magnitudesInto(dst []float64, p Packed) {
	nyq := p.Nyquist()
	dst[0] = math.Abs(p[0])
	dst[nyq] = math.Abs(p[len(p)-1])

	interior := nyq - 1
	if interior <= 0 {
		return
	}

	re, im, buf := getScratch(interior)
	for k := 1; k < nyq; k++ {
		re[k-1] = p[2*k-1]
		im[k-1] = p[2*k]
	}

	vecmath.Magnitude(dst[1:nyq], re, im)
	putScratch(buf)
}

// PackHalfSpectrum writes a one-sided complex spectrum of N/2+1 bins into
// dst in packed layout. len(dst) must equal 2*(len(half)-1).
//
// The imaginary parts of the DC and Nyquist bins are dropped; for a real
// input signal they are zero.
func PackHalfSpectrum(dst Packed, half []complex128) error {
	if len(half) < 2 {
		return fmt.Errorf("%w: half spectrum needs at least 2 bins, got %d", ErrEmptyPacked, len(half))
	}

	want := 2 * (len(half) - 1)
	if len(dst) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(dst), want)
	}

	nyq := len(half) - 1
	dst[0] = real(half[0])
	for k := 1; k < nyq; k++ {
		dst[2*k-1] = real(half[k])
		dst[2*k] = imag(half[k])
	}
	dst[len(dst)-1] = real(half[nyq])

	return nil
}
