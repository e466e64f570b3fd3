package biquad

// Chain runs a signal through a cascade of sections, first to last. The
// low-pass designs return one Coefficients value per pole pair plus one for
// a leftover real pole, and a Chain turns that list into a runnable filter.
type Chain struct {
	sections []Section

	// ext is the padded work buffer reused by FiltFilt.
	ext []float64
}

// NewChain builds a cascade with zero state from coeffs.
func NewChain(coeffs []Coefficients) *Chain {
	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i] = Section{Coefficients: c}
	}
	return &Chain{sections: sections}
}

// ProcessBlock filters buf in place, section by section.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// SteadyState primes every section for a constant input x so a signal that
// starts at x passes without a start-up transient.
func (c *Chain) SteadyState(x float64) {
	for i := range c.sections {
		x = c.sections[i].SteadyState(x)
	}
}

// Reset zeroes every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the cascade length.
func (c *Chain) NumSections() int { return len(c.sections) }

// Order returns the filter order. A section without z^-2 terms is first
// order.
func (c *Chain) Order() int {
	order := 0
	for _, s := range c.sections {
		order += s.Coefficients.order()
	}
	return order
}

// Sections returns a copy of the coefficients in cascade order.
func (c *Chain) Sections() []Coefficients {
	out := make([]Coefficients, 0, len(c.sections))
	for _, s := range c.sections {
		out = append(out, s.Coefficients)
	}
	return out
}
