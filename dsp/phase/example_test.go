package phase_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/phase"
)

func ExampleTracker() {
	// Bin 4 observed three times; the phase wraps from 2.9 to -2.4 rad.
	tr := phase.New(4, 1.7)
	tr.Update(2.9)
	tr.Update(-2.4)

	bins, _ := tr.FrequencyBins()
	fmt.Printf("%.4f\n", bins)
	// Output:
	// 4.1737
}
