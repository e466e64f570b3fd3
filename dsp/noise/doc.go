// Package noise provides the additive Gaussian perturbation of the
// denoising pipeline together with its reuse cache.
//
// A [Model] redraws its samples only when its own statistical parameters
// change, when the requested length changes, or when a caller forces it.
// Any other interaction (amplitude, frequency, filter settings) sees the exact
// same sequence, so the noise pattern stays put while unrelated controls move.
package noise
