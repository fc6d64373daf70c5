package pitch

import (
	"math"

	"github.com/cwbudde/algo-tuner/dsp/core"
)

// DefaultHarmonicToleranceDB is the default Harmonics tolerance.
const DefaultHarmonicToleranceDB = -9.0

// Harmonics groups the frequencies of one frame into harmonic series.
//
// Index compares a frequency against the fundamentals collected so far. A
// frequency whose ratio to a fundamental lies within the tolerance of an
// integer k >= 1 is harmonic k-1 of it; otherwise it becomes a new
// fundamental with index 0. Feed frequencies in ascending order and call
// Clear between frames.
type Harmonics struct {
	toleranceDB  float64
	fundamentals []float64
}

// NewHarmonics returns a Harmonics with the given tolerance. The distance
// |ratio - k| is compared in power dB, so -9 dB accepts about ±0.126.
func NewHarmonics(toleranceDB float64) *Harmonics {
	return &Harmonics{toleranceDB: toleranceDB}
}

// Tolerance returns the tolerance in dB.
func (h *Harmonics) Tolerance() float64 { return h.toleranceDB }

// Fundamentals returns the fundamentals collected since the last Clear.
func (h *Harmonics) Fundamentals() []float64 {
	return append([]float64(nil), h.fundamentals...)
}

// Index returns the harmonic index of hz: 0 for a fundamental, 1 for the
// second harmonic and so on.
func (h *Harmonics) Index(hz float64) int {
	for _, f := range h.fundamentals {
		ratio := hz / f
		k := math.Round(ratio)
		if k < 1 {
			continue
		}

		if core.LinearPowerToDB(math.Abs(ratio-k)) < h.toleranceDB {
			return int(k) - 1
		}
	}

	h.fundamentals = append(h.fundamentals, hz)
	return 0
}

// Clear forgets all fundamentals.
func (h *Harmonics) Clear() {
	h.fundamentals = h.fundamentals[:0]
}
