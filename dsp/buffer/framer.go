package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidFrameSize is returned by NewFramer for sizes < 1.
var ErrInvalidFrameSize = errors.New("frame size must be >= 1")

// Framer accumulates samples and hands out contiguous, non-overlapping
// frames of a fixed size. A Framer is not safe for concurrent use.
type Framer struct {
	frame  *Buffer
	filled int
	count  int
}

// NewFramer returns a Framer emitting frames of size samples.
func NewFramer(size int) (*Framer, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, size)
	}
	return &Framer{frame: New(size)}, nil
}

// Size returns the frame length.
func (f *Framer) Size() int { return f.frame.Len() }

// Pending returns the number of buffered samples not yet emitted.
func (f *Framer) Pending() int { return f.filled }

// Frames returns the number of frames emitted since creation or Reset.
func (f *Framer) Frames() int { return f.count }

// Write appends samples and calls emit once per completed frame, in order.
//
// The frame slice passed to emit is owned by the Framer and is only valid
// for the duration of the call; emit may modify it in place. If emit
// returns an error, Write stops and returns it; samples after the failing
// frame are discarded.
func (f *Framer) Write(samples []float64, emit func(frame []float64) error) error {
	buf := f.frame.Samples()

	for len(samples) > 0 {
		n := copy(buf[f.filled:], samples)
		f.filled += n
		samples = samples[n:]

		if f.filled < len(buf) {
			break
		}

		f.filled = 0
		f.count++

		if err := emit(buf); err != nil {
			return err
		}
	}

	return nil
}

// Flush discards a partially filled frame and returns how many samples
// were dropped.
func (f *Framer) Flush() int {
	n := f.filled
	f.filled = 0
	f.frame.Zero()
	return n
}

// Reset drops pending samples and restarts the frame count.
func (f *Framer) Reset() {
	f.Flush()
	f.count = 0
}
