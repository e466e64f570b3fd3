package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBPowerToLinearMinusOne returns 10^(db/10) - 1 without cancellation for
// small db, as in the ε² term of a passband ripple.
func DBPowerToLinearMinusOne(db float64) float64 {
	return math.Expm1(math.Ln10 * db / 10)
}
