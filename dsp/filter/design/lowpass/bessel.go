package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
)

// MaxBesselOrder is the highest Bessel order with tabulated poles.
const MaxBesselOrder = 10

// Bessel designs a Bessel (Thomson) low-pass cascade, the family with
// maximally flat group delay. Poles are normalized so that the magnitude is
// -3 dB at cutoff. Orders 1..MaxBesselOrder are supported.
func Bessel(cutoff float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if order > MaxBesselOrder {
		return nil, fmt.Errorf("lowpass: bessel order must be <= %d: %d: %w", MaxBesselOrder, order, core.ErrInvalidParameter)
	}

	k, err := prewarp(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	scale := besselScale[order]
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for _, p := range besselPoles[order] {
		sigma := -real(p) / scale
		omega := imag(p) / scale
		if omega == 0 {
			sections = append(sections, realPoleSection(k, sigma))
		} else {
			sections = append(sections, poleSection(k, sigma, omega))
		}
	}

	return sections, nil
}

// besselPoles holds the delay-normalized poles, one per conjugate pair with
// the real pole of odd orders last (C.R. Bond, "Bessel Filter Constants").
var besselPoles = [MaxBesselOrder + 1][]complex128{
	{},
	{complex(-1.0, 0)},
	{complex(-1.5, 0.8660254038)},
	{complex(-1.8389073227, 1.7543809598), complex(-2.3221853546, 0)},
	{complex(-2.1037893972, 2.6574180419), complex(-2.8962106028, 0.8672341289)},
	{
		complex(-2.3246743032, 3.5710229203),
		complex(-3.3519563992, 1.7426614162),
		complex(-3.6467385953, 0),
	},
	{
		complex(-2.5159322478, 4.4926729537),
		complex(-3.7357083563, 2.6262723114),
		complex(-4.2483593959, 0.8675096732),
	},
	{
		complex(-2.6856768789, 5.4206941307),
		complex(-4.0701391636, 3.5171740477),
		complex(-4.7582905282, 1.7392860613),
		complex(-4.9717868585, 0),
	},
	{
		complex(-2.8389839177, 6.3539112470),
		complex(-4.3682892668, 4.4144425006),
		complex(-5.2048407906, 2.6161751538),
		complex(-5.5878860022, 0.8676144454),
	},
	{
		complex(-2.9792607983, 7.2914651564),
		complex(-4.6384398714, 5.3172716754),
		complex(-5.6044218195, 3.4981415816),
		complex(-6.1293679040, 1.7378483835),
		complex(-6.2970079817, 0),
	},
	{
		complex(-3.1088931555, 8.2324678728),
		complex(-4.8862195924, 6.2249854825),
		complex(-5.9675283089, 4.3849471924),
		complex(-6.6152909655, 2.6115679208),
		complex(-6.9220449048, 0.8676594792),
	},
}

// besselScale converts delay-normalized poles to a -3 dB corner at 1 rad/s.
var besselScale = [MaxBesselOrder + 1]float64{
	0,
	1.0,
	1.36165412871613,
	1.75567236868121,
	2.11391767490422,
	2.42741070215263,
	2.70339506120292,
	2.95172214703872,
	3.17961723751065,
	3.39169313891166,
	3.59098059456916,
}
