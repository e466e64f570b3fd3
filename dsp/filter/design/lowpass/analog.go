package lowpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
)

// prewarp validates the cutoff against the sample rate and returns the
// bilinear warping factor tan(π·fc/fs).
func prewarp(cutoff, sampleRate float64) (float64, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return 0, fmt.Errorf("lowpass: sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidParameter)
	}

	wn := cutoff / (0.5 * sampleRate)
	if !core.IsFinite(wn) || wn <= 0 || wn >= 1 {
		return 0, fmt.Errorf("lowpass: normalized cutoff %g (%g Hz at %g Hz) outside (0, 1): %w",
			wn, cutoff, sampleRate, core.ErrInvalidParameter)
	}

	return math.Tan(math.Pi * cutoff / sampleRate), nil
}

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("lowpass: order must be >= 1: %d: %w", order, core.ErrInvalidParameter)
	}
	return nil
}

// poleSection maps the analog pole pair -sigma ± j·omega (normalized to a
// 1 rad/s corner) to a unity-DC-gain biquad for warping factor k.
func poleSection(k, sigma, omega float64) biquad.Coefficients {
	a := sigma * k
	b := omega * k
	p2 := a*a + b*b

	a0 := 1 + 2*a + p2
	a1 := -2 + 2*p2
	a2 := 1 - 2*a + p2

	return biquad.Coefficients{
		B0: p2 / a0,
		B1: 2 * p2 / a0,
		B2: p2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// realPoleSection maps the real analog pole -sigma to a first-order section.
func realPoleSection(k, sigma float64) biquad.Coefficients {
	sp := sigma * k
	norm := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: sp * norm,
		B1: sp * norm,
		A1: (sp - 1) * norm,
	}
}

// cascadeDC returns the product of the section DC gains.
func cascadeDC(sections []biquad.Coefficients) float64 {
	g := 1.0
	for _, s := range sections {
		g *= s.DCGain()
	}
	return g
}

// normalizeDC rescales the first section so the cascade has DC gain target.
func normalizeDC(sections []biquad.Coefficients, target float64) {
	if len(sections) == 0 {
		return
	}

	g := cascadeDC(sections)
	if g == 0 || !core.IsFinite(g) {
		return
	}
	sections[0] = sections[0].Scale(target / g)
}
