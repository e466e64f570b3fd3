// Package biquad provides the second-order IIR runtime used by the
// denoising filter bank.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for higher-order designs, and [Chain.FiltFilt] applies a cascade
// forward and backward so the output carries no phase shift.
//
// Coefficient design (Butterworth, Chebyshev, Bessel, elliptic) lives in
// dsp/filter/design/lowpass.
package biquad
