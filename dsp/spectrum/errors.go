package spectrum

import "errors"

var (
	// ErrEmptyPacked is returned for a packed spectrum without coefficients.
	ErrEmptyPacked = errors.New("packed spectrum must not be empty")
	// ErrOddLength is returned for a packed spectrum of odd length.
	ErrOddLength = errors.New("packed spectrum length must be even")
	// ErrBinRange is returned when a bin index lies outside the spectrum.
	ErrBinRange = errors.New("bin index out of range")
	// ErrLengthMismatch is returned when a destination slice has the wrong size.
	ErrLengthMismatch = errors.New("destination length mismatch")
)
