package core

import "errors"

var (
	// ErrInvalidParameter marks a rejected, out-of-range user parameter
	// (amplitude, frequency, variance, cutoff, order, window, grid shape).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch marks signals of differing lengths meeting where equal
	// lengths are required. It indicates a broken invariant, not bad input.
	ErrShapeMismatch = errors.New("shape mismatch")
)
