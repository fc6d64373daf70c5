package pitch_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tuner/dsp/spectrum"
	"github.com/cwbudde/algo-tuner/pitch"
)

// tone returns a 32-point packed spectrum with a single strong component
// at bin 3 carrying the given phase.
func tone(phase float64) spectrum.Packed {
	p := make(spectrum.Packed, 32)
	p[5] = 20 * math.Cos(phase)
	p[6] = 20 * math.Sin(phase)
	return p
}

func ExampleResolver() {
	// 32-point frames at 8 kHz: 250 Hz per bin.
	r, err := pitch.NewResolver(17, 250)
	if err != nil {
		panic(err)
	}

	// The component sits a fifth of a bin above bin 3.
	for _, ph := range []float64{0, 2 * math.Pi * 0.2, 2 * math.Pi * 0.4} {
		dets, err := r.ProcessFrame(tone(ph))
		if err != nil {
			panic(err)
		}
		d := dets[0]
		fmt.Println(d.Span(), d.Bins, d.Hz)
	}
	// Output:
	// 3 undetermined undetermined
	// 3 3.2000 800.0000
	// 3 3.2000 800.0000
}

func ExampleResolveBound() {
	fmt.Println(pitch.ResolveBound(5, 6, pitch.Determined(5.4), pitch.Determined(7.2)))
	fmt.Println(pitch.ResolveBound(5, 6, pitch.Determined(5.3), pitch.Determined(5.8)))
	// Output:
	// 5.4000
	// undetermined
}
