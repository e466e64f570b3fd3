package bank

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
	"github.com/cwbudde/algo-denoise/dsp/filter/design/lowpass"
)

const (
	// DefaultRippleDB is the passband ripple of the Chebyshev and elliptic kinds.
	DefaultRippleDB = 1.0
	// DefaultStopbandDB is the stopband attenuation of the elliptic kind.
	DefaultStopbandDB = 60.0
)

// Filter is one of MovingAverage, Butterworth, Chebyshev1, Bessel or Elliptic.
type Filter interface {
	Kind() Kind
	filter()
}

// MovingAverage averages a centered window of Window samples.
type MovingAverage struct {
	Window int
}

// Butterworth is a maximally flat low-pass of the given order.
type Butterworth struct {
	Cutoff float64
	Order  int
}

// Chebyshev1 is an equiripple-passband low-pass.
type Chebyshev1 struct {
	Cutoff   float64
	Order    int
	RippleDB float64
}

// Bessel is a linear-phase-approximating low-pass, -3 dB at Cutoff.
type Bessel struct {
	Cutoff float64
	Order  int
}

// Elliptic is a Cauer low-pass with ripple in both bands.
type Elliptic struct {
	Cutoff     float64
	Order      int
	RippleDB   float64
	StopbandDB float64
}

func (MovingAverage) Kind() Kind { return KindMovingAverage }
func (Butterworth) Kind() Kind   { return KindButterworth }
func (Chebyshev1) Kind() Kind    { return KindChebyshev1 }
func (Bessel) Kind() Kind        { return KindBessel }
func (Elliptic) Kind() Kind      { return KindElliptic }

func (MovingAverage) filter() {}
func (Butterworth) filter()   {}
func (Chebyshev1) filter()    {}
func (Bessel) filter()        {}
func (Elliptic) filter()      {}

// Settings is the flat parameter set a UI exposes: one kind selector plus
// the union of every kind's fields. Fields a kind does not use are ignored.
type Settings struct {
	Kind   Kind    `json:"kind" yaml:"kind"`
	Cutoff float64 `json:"cutoff" yaml:"cutoff"`
	Order  int     `json:"order" yaml:"order"`
	Window int     `json:"window" yaml:"window"`
}

// Filter resolves the settings to the variant of their kind. Ripple and
// stopband attenuation take the package defaults. Kinds outside the known set
// resolve to DefaultKind.
func (s Settings) Filter() Filter {
	switch s.Kind {
	case KindMovingAverage:
		return MovingAverage{Window: s.Window}
	case KindChebyshev1:
		return Chebyshev1{Cutoff: s.Cutoff, Order: s.Order, RippleDB: DefaultRippleDB}
	case KindBessel:
		return Bessel{Cutoff: s.Cutoff, Order: s.Order}
	case KindElliptic:
		return Elliptic{Cutoff: s.Cutoff, Order: s.Order, RippleDB: DefaultRippleDB, StopbandDB: DefaultStopbandDB}
	default:
		return Butterworth{Cutoff: s.Cutoff, Order: s.Order}
	}
}

// Design returns the biquad cascade of an IIR variant. MovingAverage has no
// cascade and yields nil, nil.
func Design(f Filter, sampleRate float64) ([]biquad.Coefficients, error) {
	switch f := f.(type) {
	case MovingAverage:
		return nil, nil
	case Butterworth:
		return lowpass.Butterworth(f.Cutoff, f.Order, sampleRate)
	case Chebyshev1:
		return lowpass.Chebyshev1(f.Cutoff, f.Order, f.RippleDB, sampleRate)
	case Bessel:
		return lowpass.Bessel(f.Cutoff, f.Order, sampleRate)
	case Elliptic:
		return lowpass.Elliptic(f.Cutoff, f.Order, f.RippleDB, f.StopbandDB, sampleRate)
	case nil:
		return nil, fmt.Errorf("bank: nil filter: %w", core.ErrInvalidParameter)
	default:
		panic(fmt.Sprintf("bank: unhandled filter variant %T", f))
	}
}

// Validate checks f against sampleRate without filtering anything, so callers
// can reject parameters before touching other state.
func Validate(f Filter, sampleRate float64) error {
	if ma, ok := f.(MovingAverage); ok {
		if ma.Window < 1 {
			return fmt.Errorf("bank: moving-average window must be >= 1: %d: %w", ma.Window, core.ErrInvalidParameter)
		}
		return nil
	}
	if _, err := Design(f, sampleRate); err != nil {
		if f == nil {
			return err
		}
		return fmt.Errorf("bank: %s: %w", f.Kind(), err)
	}
	return nil
}

// Apply filters noisy with f and returns a new slice of the same length.
// IIR kinds run forward and backward so the output has no phase shift.
func Apply(noisy []float64, f Filter, sampleRate float64) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("bank: nil filter: %w", core.ErrInvalidParameter)
	}
	if ma, ok := f.(MovingAverage); ok {
		return movingAverage(noisy, ma.Window)
	}

	coeffs, err := Design(f, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("bank: %s: %w", f.Kind(), err)
	}

	return biquad.NewChain(coeffs).FiltFilt(noisy), nil
}
