package lowpass

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
)

// Butterworth designs a maximally flat low-pass cascade with its -3 dB point
// at cutoff.
func Butterworth(cutoff float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	k, err := prewarp(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for m := 0; m < order/2; m++ {
		theta := math.Pi * float64(2*m+1) / (2 * float64(order))
		sections = append(sections, poleSection(k, math.Sin(theta), math.Cos(theta)))
	}
	if order%2 == 1 {
		sections = append(sections, realPoleSection(k, 1))
	}

	return sections, nil
}
