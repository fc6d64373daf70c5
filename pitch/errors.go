package pitch

import "errors"

var (
	// ErrInvalidBinCount is returned for resolvers with fewer than 3 bins.
	ErrInvalidBinCount = errors.New("bin count must be >= 3")
	// ErrInvalidBinHz is returned for a non-positive or non-finite bin width.
	ErrInvalidBinHz = errors.New("bin width must be finite and > 0")
	// ErrSpectrumSize is returned when a frame's bin count differs from the resolver's.
	ErrSpectrumSize = errors.New("spectrum size does not match resolver")
	// ErrPeakRange is returned for peaks outside the resolvable bins.
	ErrPeakRange = errors.New("peak bin out of range")
	// ErrTransformSize is returned when a transform does not match the block size.
	ErrTransformSize = errors.New("transform size does not match block size")
)
