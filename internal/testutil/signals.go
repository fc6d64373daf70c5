package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// PackedTone builds a packed spectrum of n coefficients in which every bin
// has magnitude floor and phase 0, except bin, which has the given
// magnitude and phase. bin must lie in 1..n/2-1.
func PackedTone(n, bin int, magnitude, phase, floor float64) []float64 {
	p := make([]float64, n)
	p[0] = floor
	p[n-1] = floor
	for k := 1; k < n/2; k++ {
		p[2*k-1] = floor
	}

	p[2*bin-1] = magnitude * math.Cos(phase)
	p[2*bin] = magnitude * math.Sin(phase)

	return p
}

// PackedToneFrames returns frames successive packed spectra of a stationary
// component at fractional bin position bins, as seen by contiguous
// windows: the peak sits at the nearest bin and its phase advances by
// 2π·bins per frame, starting at phase0.
func PackedToneFrames(n int, bins, magnitude, phase0, floor float64, frames int) [][]float64 {
	bin := int(math.Round(bins))
	out := make([][]float64, frames)
	for m := range out {
		phase := math.Remainder(phase0+2*math.Pi*bins*float64(m), 2*math.Pi)
		out[m] = PackedTone(n, bin, magnitude, phase, floor)
	}
	return out
}
