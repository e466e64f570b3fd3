package lowpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
)

// Chebyshev1 designs a Chebyshev type I low-pass cascade with rippleDB of
// equiripple in the passband. The passband edge (the last point at -rippleDB)
// sits at cutoff. Even orders start the passband at -rippleDB, odd orders at
// 0 dB.
func Chebyshev1(cutoff float64, order int, rippleDB, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if !core.IsFinite(rippleDB) || rippleDB <= 0 {
		return nil, fmt.Errorf("lowpass: chebyshev ripple must be > 0 dB: %f: %w", rippleDB, core.ErrInvalidParameter)
	}

	k, err := prewarp(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	epsSq := core.DBPowerToLinearMinusOne(rippleDB)
	v := math.Asinh(1/math.Sqrt(epsSq)) / float64(order)
	sh, ch := math.Sinh(v), math.Cosh(v)

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for m := 0; m < order/2; m++ {
		theta := math.Pi * float64(2*m+1) / (2 * float64(order))
		sections = append(sections, poleSection(k, sh*math.Sin(theta), ch*math.Cos(theta)))
	}
	if order%2 == 1 {
		sections = append(sections, realPoleSection(k, sh))
	}

	if order%2 == 0 {
		sections[0] = sections[0].Scale(1 / math.Sqrt(1+epsSq))
	}

	return sections, nil
}
