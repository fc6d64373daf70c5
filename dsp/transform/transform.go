// Package transform computes the forward real transform of an analysis
// frame and stores the result in packed layout.
//
// Three interchangeable backends are provided. All of them use the
// e^{-i2πkn/N} sign convention without normalisation, so a cosine at an
// integer bin k with phase φ yields coefficient (N/2)·e^{iφ} at bin k.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-tuner/dsp/spectrum"
)

var (
	// ErrInvalidSize is returned for transform sizes that are odd or < 4.
	ErrInvalidSize = errors.New("transform size must be even and >= 4")
	// ErrSizeMismatch is returned when a frame or destination has the wrong length.
	ErrSizeMismatch = errors.New("transform size mismatch")
	// ErrUnknownBackend is returned for unrecognised backend names.
	ErrUnknownBackend = errors.New("unknown transform backend")
)

// Transformer computes packed spectra of fixed-size real frames.
//
// Implementations keep scratch buffers and are not safe for concurrent use.
type Transformer interface {
	// Size returns the frame length N. Packed output has N coefficients.
	Size() int
	// Forward transforms frame into dst. frame is not modified.
	Forward(dst spectrum.Packed, frame []float64) error
}

// Backend names a transform implementation.
type Backend string

const (
	BackendAlgoFFT Backend = "algofft"
	BackendGonum   Backend = "gonum"
	BackendGoDSP   Backend = "godsp"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendAlgoFFT

// Backends lists the available backends.
func Backends() []Backend {
	return []Backend{BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

// ParseBackend resolves a backend name.
func ParseBackend(name string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Backends() {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// New returns a Transformer of size n using backend b.
func New(b Backend, n int) (Transformer, error) {
	switch b {
	case BackendAlgoFFT, "":
		return NewAlgoFFT(n)
	case BackendGonum:
		return NewGonum(n)
	case BackendGoDSP:
		return NewGoDSP(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}

func validateSize(n int) error {
	if n < 4 || n%2 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return nil
}

func checkLengths(n int, dst spectrum.Packed, frame []float64) error {
	if len(frame) != n {
		return fmt.Errorf("%w: frame has %d samples, want %d", ErrSizeMismatch, len(frame), n)
	}
	if len(dst) != n {
		return fmt.Errorf("%w: destination has %d coefficients, want %d", ErrSizeMismatch, len(dst), n)
	}
	return nil
}
