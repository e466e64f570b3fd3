package session

import (
	"errors"

	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/noise"
	"github.com/cwbudde/algo-denoise/dsp/signal"
)

// Params is the full user-facing parameter set of a session.
type Params struct {
	Signal       signal.Params `json:"signal" yaml:"signal"`
	Noise        noise.Params  `json:"noise" yaml:"noise"`
	Filter       bank.Settings `json:"filter" yaml:"filter"`
	ShowNoise    bool          `json:"show_noise" yaml:"show_noise"`
	ShowFiltered bool          `json:"show_filtered" yaml:"show_filtered"`
}

// DefaultParams returns the values a session starts from and returns to on
// reset: a unit 0.3 Hz sine, zero-mean Gaussian noise of variance 0.1 and a
// fifth-order Butterworth low-pass at 5 Hz, with both extra series shown.
func DefaultParams() Params {
	return Params{
		Signal: signal.Params{
			Waveform:  signal.Sine,
			Amplitude: 1,
			Frequency: 0.3,
			Phase:     0,
		},
		Noise: noise.Params{
			Mean:     0,
			Variance: 0.1,
		},
		Filter: bank.Settings{
			Kind:   bank.KindButterworth,
			Cutoff: 5,
			Order:  5,
			Window: 5,
		},
		ShowNoise:    true,
		ShowFiltered: true,
	}
}

// Validate checks every parameter group against sampleRate and joins all
// failures. Unknown filter kinds are not an error; they resolve to the
// default kind.
func (p Params) Validate(sampleRate float64) error {
	return errors.Join(
		p.Signal.Validate(),
		p.Noise.Validate(),
		bank.Validate(p.Filter.Filter(), sampleRate),
	)
}
