// Package phase estimates a bin's true frequency from the frame-to-frame
// advance of its spectral phase.
//
// With contiguous analysis windows of N samples a component at exactly bin
// k advances by 2πk radians per window, which is indistinguishable from no
// advance at all. Any residual advance measures how far the component sits
// from the bin centre, so averaging the residuals refines the coarse bin
// index into a fractional one.
package phase

import (
	"errors"

	"github.com/cwbudde/algo-tuner/dsp/core"
)

// ErrNotReady is returned when an estimate is requested before the first update.
var ErrNotReady = errors.New("phase tracker has no samples yet")

// Tracker is the angular history of one spectral bin.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	bin     int
	base    float64
	sum     float64
	samples int
	last    float64
}

// New starts tracking bin from its first observed phase.
// The result yields no estimate until Update has been called once.
func New(bin int, initialPhase float64) Tracker {
	return Tracker{
		bin:  bin,
		base: core.TwoPi * float64(bin),
		last: initialPhase,
	}
}

// Bin returns the tracked bin index.
func (t *Tracker) Bin() int { return t.bin }

// Samples returns the number of updates received.
func (t *Tracker) Samples() int { return t.samples }

// LastPhase returns the most recently observed phase.
func (t *Tracker) LastPhase() float64 { return t.last }

// Ready reports whether an estimate is available.
func (t *Tracker) Ready() bool { return t.samples > 0 }

// Update records the phase observed in the next frame.
//
// The raw difference to the previous phase is replaced by whichever of
// Δ, Δ+2π and Δ-2π is closest to zero, so a wrap across ±π between frames
// does not register as a full-turn jump.
func (t *Tracker) Update(phase float64) {
	t.sum += core.NearestTurn(phase - t.last)
	t.samples++
	t.last = phase
}

// AngularVelocity returns the refined angular velocity in radians per frame.
func (t *Tracker) AngularVelocity() (float64, error) {
	if t.samples == 0 {
		return 0, ErrNotReady
	}
	return t.base + t.sum/float64(t.samples), nil
}

// FrequencyBins returns the refined frequency in fractional bin units.
// Multiply by the session's bin-to-Hz factor to obtain Hz.
func (t *Tracker) FrequencyBins() (float64, error) {
	av, err := t.AngularVelocity()
	if err != nil {
		return 0, err
	}
	return av / core.TwoPi, nil
}
