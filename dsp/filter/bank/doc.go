// Package bank is the low-pass filter bank applied to the noisy signal.
//
// Five filter kinds are available as a closed set of variants, each carrying
// only the parameters it uses:
//
//   - [MovingAverage]: centered mean over a window, truncated at the edges.
//   - [Butterworth]: maximally flat passband.
//   - [Chebyshev1]: equiripple passband, 1 dB by default.
//   - [Bessel]: maximally flat group delay.
//   - [Elliptic]: ripple in both bands, 1 dB / 60 dB by default.
//
// [Apply] resolves the variant with a single type switch. The IIR kinds are
// designed with package lowpass and run zero-phase through
// biquad.Chain.FiltFilt, so the filtered output lines up with the clean
// signal sample for sample.
//
// Hosts holding flat UI parameters use [Settings] and [ParseKind]:
//
//	f := bank.Settings{Kind: kind, Cutoff: 5, Order: 5, Window: 5}.Filter()
//	filtered, err := bank.Apply(noisy, f, grid.SampleRate())
package bank
