// Package testutil holds signal fixtures and tolerance checks shared by the
// package tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine returns amplitude·sin(2π·freqHz·i/sampleRate) for
// i in [0, length).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) drawn
// from a PCG stream seeded with seed.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, length)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns length samples of 1.
func Ones(length int) []float64 {
	return DC(1, length)
}

// ArgMax returns the index of the largest sample in x[lo:hi].
func ArgMax(x []float64, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if x[i] > x[best] {
			best = i
		}
	}
	return best
}
