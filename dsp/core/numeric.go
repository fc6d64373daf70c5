package core

import "math"

const defaultEpsilon = 1e-12

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFinitePositive reports whether x is finite and strictly positive.
func IsFinitePositive(x float64) bool {
	return IsFinite(x) && x > 0
}

// LinearPowerToDB converts a linear ratio to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// RatioDB returns 10*log10(num/den).
//
// A zero numerator yields -Inf. A zero denominator with a positive
// numerator yields +Inf; 0/0 yields NaN.
func RatioDB(num, den float64) float64 {
	if den == 0 {
		switch {
		case num > 0:
			return math.Inf(1)
		case num == 0:
			return math.NaN()
		}
	}

	return LinearPowerToDB(num / den)
}

// NearestTurn returns whichever of x, x+2π and x-2π has the smallest
// magnitude. Ties keep x.
//
// For a raw phase difference between two wrapped phases in [-π, π] this
// yields the representative in [-π, π].
func NearestTurn(x float64) float64 {
	best := x

	if up := x + TwoPi; math.Abs(up) < math.Abs(best) {
		best = up
	}

	if down := x - TwoPi; math.Abs(down) < math.Abs(best) {
		best = down
	}

	return best
}

// WrapPhase folds an arbitrary angle into [-π, π).
func WrapPhase(x float64) float64 {
	x = math.Mod(x+math.Pi, TwoPi)
	if x < 0 {
		x += TwoPi
	}

	return x - math.Pi
}
