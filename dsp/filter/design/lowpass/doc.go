// Package lowpass designs digital low-pass IIR cascades from the classical
// analog prototypes: Butterworth, Chebyshev type I, Bessel (Thomson) and
// elliptic (Cauer).
//
// Every designer maps the prototype through the bilinear transform with the
// cutoff pre-warped, so the analog corner lands exactly on the requested
// frequency. Results are returned as []biquad.Coefficients ready for
// biquad.NewChain. Odd orders end in a first-order section (B2 = A2 = 0).
//
// Invalid input (order < 1, cutoff outside the open interval (0, Nyquist),
// a non-positive sample rate) is reported with core.ErrInvalidParameter.
package lowpass
