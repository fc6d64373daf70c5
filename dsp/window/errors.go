package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for non-positive window lengths.
	ErrInvalidLength = errors.New("window length must be > 0")
	// ErrUnknownType is returned for unrecognised window types or names.
	ErrUnknownType = errors.New("unknown window type")
	// ErrInvalidAlpha is returned for out-of-range Kaiser or Tukey parameters.
	ErrInvalidAlpha = errors.New("invalid window parameter")
	// ErrMismatchedLength is returned when samples and coefficients differ in length.
	ErrMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateAlpha(t Type, alpha float64) error {
	switch t {
	case TypeKaiser:
		if alpha < 0 {
			return fmt.Errorf("%w: kaiser beta must be >= 0: %f", ErrInvalidAlpha, alpha)
		}
	case TypeTukey:
		if alpha < 0 || alpha > 1 {
			return fmt.Errorf("%w: tukey alpha must be in [0,1]: %f", ErrInvalidAlpha, alpha)
		}
	}
	return nil
}
