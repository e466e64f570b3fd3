package biquad

import "github.com/cwbudde/algo-denoise/dsp/core"

// PadLen returns the number of samples FiltFilt reflects at each edge of an
// input of length n.
func (c *Chain) PadLen(n int) int {
	pad := 3 * (2*len(c.sections) + 1)
	if pad > n-1 {
		pad = n - 1
	}
	if pad < 0 {
		pad = 0
	}
	return pad
}

// FiltFilt filters x forward and then backward through the cascade and
// returns a new slice. The result has zero phase shift relative to x and
// the squared magnitude response of the chain.
//
// Edges are handled the way Gustafsson proposes: the input is extended by an
// odd reflection around its end points and each pass starts from the steady
// state of its first sample, so a smooth input comes out without start-up
// transients. The chain is left reset.
func (c *Chain) FiltFilt(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	pad := c.PadLen(n)
	ext := core.EnsureLen(c.ext, n+2*pad)
	c.ext = ext

	first, last := x[0], x[n-1]
	for i := 0; i < pad; i++ {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(ext[pad:pad+n], x)

	c.pass(ext)
	core.Reverse(ext)
	c.pass(ext)
	core.Reverse(ext)

	copy(out, ext[pad:pad+n])
	c.Reset()
	return out
}

func (c *Chain) pass(buf []float64) {
	c.SteadyState(buf[0])
	c.ProcessBlock(buf)
}
