package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Goertzel evaluates a single DFT term over all samples fed since the last
// Reset. The target frequency need not fall on an FFT bin.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	n          int
}

// NewGoertzel returns an analyzer for frequency in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidParameter)
	}
	if !core.IsFinite(frequency) || frequency < 0 || frequency > sampleRate/2 {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v: %w", frequency, core.ErrInvalidParameter)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock feeds a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}
	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X(f)|², equal to the DFT power of the same block.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X(f)|.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Amplitude returns the magnitude scaled to the amplitude of a tone at the
// target frequency: 2|X|/N, or |X|/N at DC.
func (g *Goertzel) Amplitude() float64 {
	if g.n == 0 {
		return 0
	}
	a := g.Magnitude() / float64(g.n)
	if g.frequency > 0 {
		a *= 2
	}
	return a
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// ToneAmplitude estimates the amplitude of the frequency component of x in
// one shot.
func ToneAmplitude(x []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(x)
	return g.Amplitude(), nil
}
