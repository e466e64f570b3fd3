package bank

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// movingAverage returns the centered mean over [i-w/2, i+w/2] for every i,
// truncating the window at the signal edges. Window 1 is the identity.
func movingAverage(x []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("bank: moving-average window must be >= 1: %d: %w", window, core.ErrInvalidParameter)
	}

	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}
	if window == 1 {
		copy(out, x)
		return out, nil
	}

	prefix := make([]float64, n+1)
	for i, v := range x {
		prefix[i+1] = prefix[i] + v
	}

	half := window / 2
	for i := range out {
		lo := max(0, i-half)
		hi := min(n-1, i+half)
		out[i] = prefix[hi+1] - prefix[lo]
		if i-half >= 0 && i+half <= n-1 {
			continue
		}
		out[i] /= float64(hi - lo + 1)
	}

	// Interior windows all span 2·half+1 samples.
	if lo, hi := half, n-half; hi > lo {
		vecmath.ScaleBlock(out[lo:hi], out[lo:hi], 1/float64(2*half+1))
	}

	return out, nil
}
