package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/dsp/buffer"
)

func ExampleFramer() {
	f, err := buffer.NewFramer(3)
	if err != nil {
		panic(err)
	}

	_ = f.Write([]float64{1, 2, 3, 4, 5, 6, 7}, func(frame []float64) error {
		fmt.Println(frame)
		return nil
	})

	fmt.Println("pending:", f.Pending())

	// Output:
	// [1 2 3]
	// [4 5 6]
	// pending: 1
}
