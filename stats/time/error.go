package time

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// MSE returns the mean of the squared element-wise differences between
// reference and estimate. The slices must have equal length; two empty
// slices score 0. The result is never negative and is 0 exactly when the
// inputs agree element by element.
func MSE(reference, estimate []float64) (float64, error) {
	if len(reference) != len(estimate) {
		return 0, fmt.Errorf("time: mse over %d and %d samples: %w", len(reference), len(estimate), core.ErrShapeMismatch)
	}
	if len(reference) == 0 {
		return 0, nil
	}

	d := floats.Distance(reference, estimate, 2)
	return d * d / float64(len(reference)), nil
}

// RMSE is the square root of MSE, in the units of the signal.
func RMSE(reference, estimate []float64) (float64, error) {
	mse, err := MSE(reference, estimate)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// SNR returns the ratio of reference power to error power in dB. An exact
// estimate yields +Inf; a silent reference with a non-zero error yields -Inf.
func SNR(reference, estimate []float64) (float64, error) {
	mse, err := MSE(reference, estimate)
	if err != nil {
		return 0, err
	}
	if len(reference) == 0 {
		return 0, nil
	}

	norm := floats.Norm(reference, 2)
	signal := norm * norm / float64(len(reference))
	switch {
	case mse == 0:
		return math.Inf(1), nil
	case signal == 0:
		return math.Inf(-1), nil
	}
	return 10 * math.Log10(signal/mse), nil
}
