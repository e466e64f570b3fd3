package noise

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// State describes whether the cache can be reused.
type State int

const (
	// Stale means there is no cached sequence; the next Sample regenerates.
	Stale State = iota
	// Valid means a cached sequence exists.
	Valid
)

// String returns "stale" or "valid".
func (s State) String() string {
	if s == Valid {
		return "valid"
	}
	return "stale"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Params are the statistical parameters of the Gaussian noise.
type Params struct {
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
}

// Validate rejects negative variance and non-finite values.
func (p Params) Validate() error {
	if !core.IsFinite(p.Mean) {
		return fmt.Errorf("noise mean must be finite: %f: %w", p.Mean, core.ErrInvalidParameter)
	}
	if !(p.Variance >= 0) || math.IsInf(p.Variance, 0) {
		return fmt.Errorf("noise variance must be >= 0: %f: %w", p.Variance, core.ErrInvalidParameter)
	}
	return nil
}

// StdDev returns √Variance.
func (p Params) StdDev() float64 {
	return math.Sqrt(p.Variance)
}

// Model owns a random source and the last generated noise sequence.
// It is not safe for concurrent use.
type Model struct {
	src rand.Source

	valid   bool
	params  Params
	samples []float64
}

// New returns a Model drawing from src. A nil src uses a PCG source seeded
// from the runtime's random state.
func New(src rand.Source) *Model {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Model{src: src}
}

// Sample returns n noise values for p. The cached sequence is returned
// unchanged unless force is set, the cache is empty, p differs from the
// cached parameters, or n differs from the cached length. The second result
// reports whether a fresh draw happened.
//
// The returned slice is a copy.
func (m *Model) Sample(n int, p Params, force bool) ([]float64, bool, error) {
	if n <= 0 {
		return nil, false, fmt.Errorf("noise length must be > 0: %d: %w", n, core.ErrInvalidParameter)
	}
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	regenerated := false
	if force || !m.Reusable(n, p) {
		m.draw(n, p)
		regenerated = true
	}

	out := make([]float64, n)
	copy(out, m.samples)
	return out, regenerated, nil
}

// Reusable reports whether Sample(n, p, false) would return the cache.
func (m *Model) Reusable(n int, p Params) bool {
	return m.valid &&
		len(m.samples) == n &&
		m.params.Mean == p.Mean &&
		m.params.Variance == p.Variance
}

// Invalidate clears the cache; the next Sample regenerates unconditionally.
func (m *Model) Invalidate() {
	m.valid = false
	m.samples = nil
	m.params = Params{}
}

// State reports whether a cached sequence exists.
func (m *Model) State() State {
	if m.valid {
		return Valid
	}
	return Stale
}

// Params returns the parameters of the cached sequence. The boolean is false
// when the cache is empty.
func (m *Model) Params() (Params, bool) {
	return m.params, m.valid
}

func (m *Model) draw(n int, p Params) {
	dist := distuv.Normal{Mu: p.Mean, Sigma: p.StdDev(), Src: m.src}

	samples := core.EnsureLen(m.samples, n)
	for i := range samples {
		samples[i] = dist.Rand()
	}

	m.samples = samples
	m.params = p
	m.valid = true
}
