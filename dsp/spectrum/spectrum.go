package spectrum

import (
	"fmt"
	"math/bits"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is a single-sided amplitude spectrum. Bin k covers frequency
// k·BinHz; a pure tone of amplitude A that falls on a bin reads A there.
type Spectrum struct {
	BinHz     float64
	FFTSize   int
	Amplitude []float64
}

// Freq returns the frequency of bin k in Hz.
func (s Spectrum) Freq(k int) float64 {
	return float64(k) * s.BinHz
}

// Peak returns the bin with the largest amplitude above DC, or 0 when the
// spectrum has no such bin.
func (s Spectrum) Peak() int {
	best := 0
	for k := 1; k < len(s.Amplitude); k++ {
		if best == 0 || s.Amplitude[k] > s.Amplitude[best] {
			best = k
		}
	}
	return best
}

// scratch holds pooled FFT buffers and the plan for their size.
type scratch struct {
	plan   *algofft.Plan[complex128]
	in     []complex128
	out    []complex128
	re, im []float64
}

var scratchPool sync.Pool

func getScratch(n int) (*scratch, error) {
	if s, ok := scratchPool.Get().(*scratch); ok && len(s.in) == n {
		return s, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for %d points: %w", n, err)
	}
	return &scratch{
		plan: plan,
		in:   make([]complex128, n),
		out:  make([]complex128, n),
		re:   make([]float64, n/2+1),
		im:   make([]float64, n/2+1),
	}, nil
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Analyze returns the single-sided amplitude spectrum of x sampled at
// sampleRate. x needs at least two samples.
func Analyze(x []float64, sampleRate float64) (Spectrum, error) {
	if len(x) < 2 {
		return Spectrum{}, fmt.Errorf("spectrum: need at least 2 samples, got %d: %w", len(x), core.ErrInvalidParameter)
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return Spectrum{}, fmt.Errorf("spectrum: sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidParameter)
	}

	n := nextPow2(len(x))
	s, err := getScratch(n)
	if err != nil {
		return Spectrum{}, err
	}
	defer scratchPool.Put(s)

	for i := range s.in {
		if i < len(x) {
			s.in[i] = complex(x[i], 0)
		} else {
			s.in[i] = 0
		}
	}
	if err := s.plan.Forward(s.out, s.in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	half := n/2 + 1
	for k := 0; k < half; k++ {
		s.re[k] = real(s.out[k])
		s.im[k] = imag(s.out[k])
	}

	amp := make([]float64, half)
	vecmath.Magnitude(amp, s.re, s.im)

	// Fold the negative frequencies onto their positive twins; DC and
	// Nyquist have none.
	scale := 2 / float64(len(x))
	vecmath.ScaleBlock(amp, amp, scale)
	amp[0] /= 2
	amp[half-1] /= 2

	return Spectrum{
		BinHz:     sampleRate / float64(n),
		FFTSize:   n,
		Amplitude: amp,
	}, nil
}

// DominantFrequency returns the frequency of the strongest non-DC bin of x.
func DominantFrequency(x []float64, sampleRate float64) (float64, error) {
	s, err := Analyze(x, sampleRate)
	if err != nil {
		return 0, err
	}
	return s.Freq(s.Peak()), nil
}

// AnalyzeWindowed tapers x with w before the FFT and corrects for the
// window's coherent gain, so tone amplitudes read the same as with Analyze.
func AnalyzeWindowed(x []float64, sampleRate float64, w window.Type) (Spectrum, error) {
	if len(x) < 2 {
		return Spectrum{}, fmt.Errorf("spectrum: need at least 2 samples, got %d: %w", len(x), core.ErrInvalidParameter)
	}

	coeffs, err := window.Generate(w, len(x), window.WithPeriodic())
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}
	tapered, err := window.Apply(x, coeffs)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}

	s, err := Analyze(tapered, sampleRate)
	if err != nil {
		return Spectrum{}, err
	}
	vecmath.ScaleBlock(s.Amplitude, s.Amplitude, 1/gain)
	return s, nil
}
