package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// Waveform selects the periodic shape produced by Generate.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
)

// String returns the canonical lower-case name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

// ParseWaveform maps a name to a Waveform. Accepted names are
// "sine"/"sin", "square" and "sawtooth"/"saw".
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return Sine, nil
	case "square":
		return Square, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	default:
		return 0, fmt.Errorf("unknown waveform %q: %w", name, core.ErrInvalidParameter)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (w Waveform) MarshalText() ([]byte, error) {
	if w < Sine || w > Sawtooth {
		return nil, fmt.Errorf("unknown waveform %d: %w", int(w), core.ErrInvalidParameter)
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseWaveform.
func (w *Waveform) UnmarshalText(text []byte) error {
	parsed, err := ParseWaveform(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Params fully determine the clean signal on a given grid.
type Params struct {
	Waveform  Waveform `json:"waveform" yaml:"waveform"`
	Amplitude float64  `json:"amplitude" yaml:"amplitude"`
	Frequency float64  `json:"frequency" yaml:"frequency"` // Hz
	Phase     float64  `json:"phase" yaml:"phase"`         // radians, ignored by Sawtooth
}

// Validate rejects non-positive amplitude or frequency and unknown shapes.
func (p Params) Validate() error {
	if p.Waveform < Sine || p.Waveform > Sawtooth {
		return fmt.Errorf("unknown waveform %d: %w", int(p.Waveform), core.ErrInvalidParameter)
	}
	if !(p.Amplitude > 0) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("amplitude must be > 0: %f: %w", p.Amplitude, core.ErrInvalidParameter)
	}
	if !(p.Frequency > 0) || math.IsInf(p.Frequency, 0) {
		return fmt.Errorf("frequency must be > 0: %f: %w", p.Frequency, core.ErrInvalidParameter)
	}
	if !core.IsFinite(p.Phase) {
		return fmt.Errorf("phase must be finite: %f: %w", p.Phase, core.ErrInvalidParameter)
	}
	return nil
}

// Generate samples the waveform described by p on every instant of grid.
func Generate(grid core.TimeGrid, p Params) ([]float64, error) {
	return GenerateAt(grid.Times(), p)
}

// GenerateAt samples the waveform at arbitrary instants.
func GenerateAt(times []float64, p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(times))
	omega := 2 * math.Pi * p.Frequency

	switch p.Waveform {
	case Sine:
		for i, t := range times {
			out[i] = p.Amplitude * math.Sin(omega*t+p.Phase)
		}
	case Square:
		for i, t := range times {
			out[i] = p.Amplitude * sign(math.Sin(omega*t+p.Phase))
		}
	case Sawtooth:
		for i, t := range times {
			ft := p.Frequency * t
			out[i] = p.Amplitude * 2 * (ft - math.Floor(0.5+ft))
		}
	}

	return out, nil
}

// sign returns -1 for negative x and +1 otherwise; zero counts as positive.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
