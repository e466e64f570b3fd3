package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(z) on the unit circle at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate) // z^-1
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Poles returns the z-plane roots of 1 + A1*z^-1 + A2*z^-2. First-order
// sections report a second pole at the origin.
func (c Coefficients) Poles() [2]complex128 {
	disc := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	return [2]complex128{
		(complex(-c.A1, 0) + disc) / 2,
		(complex(-c.A1, 0) - disc) / 2,
	}
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}
	return true
}

// Response is the product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for _, s := range c.sections {
		h *= s.Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns 20·log10|H| at freqHz.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// DCGain returns the cascade gain at 0 Hz.
func (c *Chain) DCGain() float64 {
	g := 1.0
	for _, s := range c.sections {
		g *= s.DCGain()
	}
	return g
}
