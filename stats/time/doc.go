// Package time scores time-domain signals: the mean squared error between a
// reference and an estimate, signal-to-noise ratios, and a compact summary of
// a single signal's level statistics.
package time
