// Package signal generates the clean reference waveforms (sine, square,
// sawtooth) that the denoising pipeline perturbs and then tries to recover.
//
// Generation is pure: the same grid and [Params] always give the same samples.
package signal
