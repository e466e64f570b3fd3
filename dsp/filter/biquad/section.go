package biquad

// Coefficients of one second-order section with a0 = 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// A first-order section leaves B2 and A2 at zero.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// DCGain returns H(1), or 0 when a pole sits at z = 1.
func (c Coefficients) DCGain() float64 {
	den := 1 + c.A1 + c.A2
	if den == 0 {
		return 0
	}
	return (c.B0 + c.B1 + c.B2) / den
}

// Scale returns c with the numerator multiplied by g.
func (c Coefficients) Scale(g float64) Coefficients {
	c.B0, c.B1, c.B2 = g*c.B0, g*c.B1, g*c.B2
	return c
}

func (c Coefficients) order() int {
	if c.A2 == 0 && c.B2 == 0 {
		return 1
	}
	return 2
}

// Section is one stage of a Chain, run in transposed direct form II:
//
//	y  = B0·x + s1
//	s1 = B1·x − A1·y + s2
//	s2 = B2·x − A2·y
type Section struct {
	Coefficients

	s1, s2 float64
}

// NewSection returns a section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample advances the section by one input.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.s1
	s.s1 = s.B1*x - s.A1*y + s.s2
	s.s2 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place with the kernel chosen for this CPU.
func (s *Section) ProcessBlock(buf []float64) {
	s.s1, s.s2 = blockKernel()(s.Coefficients, s.s1, s.s2, buf)
}

// SteadyState sets the state reached after a constant input x has been
// applied forever and returns the matching output DCGain·x.
func (s *Section) SteadyState(x float64) float64 {
	y := s.DCGain() * x
	s.s2 = s.B2*x - s.A2*y
	s.s1 = s.B1*x - s.A1*y + s.s2
	return y
}

// Reset zeroes the state.
func (s *Section) Reset() {
	s.s1, s.s2 = 0, 0
}

// State returns the two state variables.
func (s *Section) State() [2]float64 {
	return [2]float64{s.s1, s.s2}
}
