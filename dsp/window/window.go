// Package window provides the tapers applied before spectral analysis.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeFlatTop
)

// Cosine-sum coefficients a0 - a1·cos(2πx) + a2·cos(4πx) - ...
var cosineTerms = [...][]float64{
	TypeRectangular: {1},
	TypeHann:        {0.5, -0.5},
	TypeHamming:     {0.54, -0.46},
	TypeBlackman:    {0.42, -0.5, 0.08},
	TypeFlatTop:     {0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
}

var typeNames = [...]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeFlatTop:     "flat-top",
}

func (t Type) valid() bool {
	return t >= TypeRectangular && int(t) < len(typeNames)
}

// String returns the lower-case name.
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("window(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType maps a name to a Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("unknown window %q: %w", name, core.ErrInvalidParameter)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic generates the periodic (DFT-even) form instead of the
// symmetric one.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// Generate returns length coefficients of window t.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("window size must be > 0: %d: %w", length, core.ErrInvalidParameter)
	}
	if !t.valid() {
		return nil, fmt.Errorf("unknown window %d: %w", int(t), core.ErrInvalidParameter)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	den := float64(length - 1)
	if cfg.periodic || length == 1 {
		den = float64(length)
	}

	terms := cosineTerms[t]
	out := make([]float64, length)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / den
		sum := 0.0
		for k, c := range terms {
			sum += c * math.Cos(float64(k)*phase)
		}
		out[i] = sum
	}
	return out, nil
}

// CoherentGain returns the mean coefficient, the factor by which the window
// scales a tone's amplitude.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, fmt.Errorf("window coefficients must not be empty: %w", core.ErrInvalidParameter)
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	g := sum / float64(len(coeffs))
	if g == 0 {
		return 0, fmt.Errorf("window coherent gain is zero: %w", core.ErrInvalidParameter)
	}
	return g, nil
}

// Apply returns samples multiplied by coeffs.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, fmt.Errorf("window: %d samples vs %d coefficients: %w", len(samples), len(coeffs), core.ErrShapeMismatch)
	}
	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)
	return out, nil
}

// ApplyInPlace multiplies samples by coeffs.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("window: %d samples vs %d coefficients: %w", len(samples), len(coeffs), core.ErrShapeMismatch)
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}
