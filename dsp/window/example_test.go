package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-sdr/dsp/window"
)

func ExampleGenerate() {
	coeffs := window.Generate(window.TypeHann, 8, window.WithPeriodic())

	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		fmt.Println("error")
		return
	}

	fmt.Printf("%s len=%d enbw=%.2f\n", window.TypeHann, len(coeffs), enbw)

	// Output:
	// hann len=8 enbw=1.50
}
