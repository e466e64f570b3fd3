// Package session holds the state of one interactive denoising session and
// recomputes its outputs on every event.
//
// A Controller owns the current parameters and the noise cache. Each
// parameter-change event regenerates the clean signal, reuses or redraws the
// noise, filters the noisy sum and scores the result; the outcome is a Frame
// carrying the three named series, their visibility and the error. Rendering
// is left to the host.
//
// The noise cache moves between two states:
//
//	Stale --update/reset--> Valid   (a fresh draw happened)
//	Valid --reset---------> Stale   (immediately redrawn, so Valid again)
//	Valid --update--------> Valid   (reused unless mean or variance changed)
//
// A Controller is not safe for concurrent use; hosts serialize events.
package session
