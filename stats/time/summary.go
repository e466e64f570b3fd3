package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the level statistics of one signal.
//
//nolint:revive
type Summary struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	RMS      float64
	RMS_dB   float64
	Min      float64
	Max      float64
	Peak     float64 // max(|min|, |max|)
	Peak_dB  float64
}

// Summarize computes the Summary of x. An empty signal reports zero levels
// and -Inf decibels.
func Summarize(x []float64) Summary {
	if len(x) == 0 {
		return Summary{RMS_dB: math.Inf(-1), Peak_dB: math.Inf(-1)}
	}

	mean, variance := stat.PopMeanVariance(x, nil)
	norm := floats.Norm(x, 2)
	rms := norm / math.Sqrt(float64(len(x)))
	lo, hi := floats.Min(x), floats.Max(x)
	peak := math.Max(math.Abs(lo), math.Abs(hi))

	return Summary{
		Length:   len(x),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		RMS:      rms,
		RMS_dB:   ampTodB(rms),
		Min:      lo,
		Max:      hi,
		Peak:     peak,
		Peak_dB:  ampTodB(peak),
	}
}

// ampTodB converts an amplitude to decibels: 20·log10(|v|), -Inf for 0.
func ampTodB(v float64) float64 {
	if v == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(math.Abs(v))
}
