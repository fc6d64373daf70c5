package peak

import "errors"

var (
	// ErrTooShort is returned for a magnitude spectrum with fewer than 3 bins.
	ErrTooShort = errors.New("magnitude spectrum needs at least 3 bins")
	// ErrInvalidConfig is returned for non-finite or out-of-range thresholds.
	ErrInvalidConfig = errors.New("invalid peak detector config")
)
