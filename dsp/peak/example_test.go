package peak_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/peak"
)

func ExampleDetector_Detect() {
	d, err := peak.NewDetector(peak.WithMinStrength(1))
	if err != nil {
		panic(err)
	}

	res, _ := d.Detect([]float64{0, 0, 4, 0, 0, 3, 2.9, 0})
	fmt.Println(res.Singles, res.Bounds)
	// Output:
	// [2] [{5 6}]
}
