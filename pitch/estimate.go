package pitch

import "strconv"

// Estimate is either a determined frequency or explicitly undetermined.
// The zero value is undetermined.
type Estimate struct {
	value float64
	ok    bool
}

// Determined returns an estimate holding v.
func Determined(v float64) Estimate {
	return Estimate{value: v, ok: true}
}

// Undetermined returns an estimate without a value.
func Undetermined() Estimate {
	return Estimate{}
}

// Value returns the estimate and whether it is determined.
func (e Estimate) Value() (float64, bool) {
	return e.value, e.ok
}

// IsDetermined reports whether e holds a value.
func (e Estimate) IsDetermined() bool {
	return e.ok
}

// Scale multiplies a determined estimate by f.
func (e Estimate) Scale(f float64) Estimate {
	if !e.ok {
		return e
	}
	return Determined(e.value * f)
}

// Within reports whether e is determined and lies in the closed interval [lo, hi].
func (e Estimate) Within(lo, hi float64) bool {
	return e.ok && e.value >= lo && e.value <= hi
}

func (e Estimate) String() string {
	if !e.ok {
		return "undetermined"
	}
	return strconv.FormatFloat(e.value, 'f', 4, 64)
}
