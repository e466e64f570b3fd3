package session

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/noise"
)

// ErrorPrecision is the number of decimals the error is displayed with.
const ErrorPrecision = 5

// Series names as shown in a legend.
const (
	CleanName    = "Clean Signal"
	NoisyName    = "Noisy Signal"
	FilteredName = "Filtered Signal"
)

// Series is one named signal of a frame. Hidden series keep their values so
// every frame has the same shape.
type Series struct {
	Name    string    `json:"name" yaml:"name"`
	Values  []float64 `json:"values" yaml:"values"`
	Visible bool      `json:"visible" yaml:"visible"`
	Color   string    `json:"color" yaml:"color"`
	Dashed  bool      `json:"dashed" yaml:"dashed"`
}

// Frame is the output of one update.
type Frame struct {
	Time     []float64 `json:"time" yaml:"time"`
	Clean    Series    `json:"clean" yaml:"clean"`
	Noisy    Series    `json:"noisy" yaml:"noisy"`
	Filtered Series    `json:"filtered" yaml:"filtered"`

	// Noise is the additive sequence that turned Clean into Noisy.
	Noise []float64 `json:"-" yaml:"-"`

	// Error is the MSE of Filtered against Clean.
	Error float64 `json:"error" yaml:"error"`

	NoiseRegenerated bool        `json:"noise_regenerated" yaml:"noise_regenerated"`
	NoiseState       noise.State `json:"noise_state" yaml:"noise_state"`
	FilterKind       bank.Kind   `json:"filter_kind" yaml:"filter_kind"`
	FellBack         bool        `json:"fell_back" yaml:"fell_back"`
}

// ErrorText formats Error the way it is displayed next to the chart.
func (f Frame) ErrorText() string {
	return fmt.Sprintf("MSE Error: %.*f", ErrorPrecision, f.Error)
}

// Series returns clean, noisy and filtered in drawing order.
func (f Frame) Series() []Series {
	return []Series{f.Clean, f.Noisy, f.Filtered}
}

// Len returns the number of samples per series.
func (f Frame) Len() int {
	return len(f.Time)
}
