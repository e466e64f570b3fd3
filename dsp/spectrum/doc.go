// Package spectrum inspects the frequency content of the grid signals.
//
// [Analyze] computes a single-sided amplitude spectrum through an FFT plan,
// zero-padding the input to the next power of two. [Goertzel] evaluates one
// frequency without a full transform, which is how the session reports how
// much of the fundamental survives filtering.
package spectrum
