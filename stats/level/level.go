// Package level measures the signal level of input audio.
package level

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Level holds amplitude statistics of a block of samples.
type Level struct {
	Length int
	RMS    float64
	Peak   float64
	// CrestFactor is Peak/RMS; 0 for silence.
	CrestFactor float64
}

// RMSdB returns the RMS level in dBFS.
func (l Level) RMSdB() float64 { return ampToDB(l.RMS) }

// PeakdB returns the peak level in dBFS.
func (l Level) PeakdB() float64 { return ampToDB(l.Peak) }

// Measure computes the level of signal.
func Measure(signal []float64) Level {
	var m Meter
	m.Update(signal)
	return m.Result()
}

// Meter accumulates level statistics over successive blocks.
type Meter struct {
	n      int
	energy float64
	peak   float64
}

// Update adds samples to the running statistics.
func (m *Meter) Update(samples []float64) {
	if len(samples) == 0 {
		return
	}

	m.n += len(samples)
	m.energy += vecmath.DotProduct(samples, samples)
	m.peak = max(m.peak, vecmath.MaxAbs(samples))
}

// Result returns the statistics of all samples seen so far.
func (m *Meter) Result() Level {
	l := Level{Length: m.n, Peak: m.peak}
	if m.n == 0 {
		return l
	}

	l.RMS = math.Sqrt(m.energy / float64(m.n))
	if l.RMS > 0 {
		l.CrestFactor = l.Peak / l.RMS
	}

	return l
}

// Reset clears the running statistics.
func (m *Meter) Reset() {
	*m = Meter{}
}

// ampToDB converts an amplitude to decibels: 20*log10(|value|).
// Returns -Inf for zero.
func ampToDB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}
