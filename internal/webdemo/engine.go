// Package webdemo adapts a session to the flat values a browser front end
// exchanges with Go.
package webdemo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/dsp/spectrum"
	"github.com/cwbudde/algo-denoise/dsp/window"
	"github.com/cwbudde/algo-denoise/session"
)

// UIParams mirrors the slider and dropdown state of the demo page.
type UIParams struct {
	Waveform     string
	Amplitude    float64
	Frequency    float64
	Phase        float64
	Mean         float64
	Variance     float64
	Filter       string
	Cutoff       float64
	Order        int
	Window       int
	ShowNoise    bool
	ShowFiltered bool
}

// SeriesView is one plotted line.
type SeriesView struct {
	Name    string
	Color   string
	Dashed  bool
	Visible bool
	Values  []float32
}

// View is everything the page redraws after an update.
type View struct {
	Time      []float32
	Series    []SeriesView
	Error     float64
	ErrorText string
	Filter    string
	FellBack  bool
}

// Engine owns the demo session.
type Engine struct {
	ctrl *session.Controller
}

// NewEngine starts a session on the default grid.
func NewEngine(opts ...session.Option) (*Engine, error) {
	grid, err := core.NewTimeGrid()
	if err != nil {
		return nil, err
	}
	ctrl, err := session.New(grid, opts...)
	if err != nil {
		return nil, fmt.Errorf("webdemo: %w", err)
	}
	return &Engine{ctrl: ctrl}, nil
}

// View returns the current frame.
func (e *Engine) View() View {
	return toView(e.ctrl.Frame())
}

// Params returns the current parameters in page form.
func (e *Engine) Params() UIParams {
	return fromParams(e.ctrl.Params())
}

// Update applies p. On error the previous view stays current.
func (e *Engine) Update(p UIParams) (View, error) {
	params, err := toParams(p)
	if err != nil {
		return View{}, err
	}
	frame, err := e.ctrl.Handle(session.ParamsChanged{Params: params})
	if err != nil {
		return View{}, err
	}
	return toView(frame), nil
}

// Reset restores the defaults with fresh noise.
func (e *Engine) Reset() (View, error) {
	frame, err := e.ctrl.Handle(session.ResetRequested{})
	if err != nil {
		return View{}, err
	}
	return toView(frame), nil
}

// SpectrumDB returns the Hann-windowed single-sided amplitude spectrum of the named series
// in dB, floored at -130 dB, and the bin spacing in Hz.
func (e *Engine) SpectrumDB(name string) ([]float32, float64, error) {
	frame := e.ctrl.Frame()
	var values []float64
	for _, s := range frame.Series() {
		if s.Name == name {
			values = s.Values
		}
	}
	if values == nil {
		return nil, 0, fmt.Errorf("webdemo: unknown series %q: %w", name, core.ErrInvalidParameter)
	}

	sp, err := spectrum.AnalyzeWindowed(values, e.ctrl.SampleRate(), window.TypeHann)
	if err != nil {
		return nil, 0, err
	}

	out := make([]float32, len(sp.Amplitude))
	for i, a := range sp.Amplitude {
		db := -130.0
		if a > 0 {
			db = math.Max(db, 20*math.Log10(a))
		}
		out[i] = float32(db)
	}
	return out, sp.BinHz, nil
}

func toParams(p UIParams) (session.Params, error) {
	waveform, err := signal.ParseWaveform(p.Waveform)
	if err != nil {
		return session.Params{}, err
	}
	kind, fellBack := bank.ParseKind(p.Filter)
	if fellBack {
		kind = bank.KindUnknown
	}

	out := session.Params{
		ShowNoise:    p.ShowNoise,
		ShowFiltered: p.ShowFiltered,
	}
	out.Signal = signal.Params{Waveform: waveform, Amplitude: p.Amplitude, Frequency: p.Frequency, Phase: p.Phase}
	out.Noise.Mean = p.Mean
	out.Noise.Variance = p.Variance
	out.Filter = bank.Settings{Kind: kind, Cutoff: p.Cutoff, Order: p.Order, Window: p.Window}
	return out, nil
}

func fromParams(p session.Params) UIParams {
	return UIParams{
		Waveform:     p.Signal.Waveform.String(),
		Amplitude:    p.Signal.Amplitude,
		Frequency:    p.Signal.Frequency,
		Phase:        p.Signal.Phase,
		Mean:         p.Noise.Mean,
		Variance:     p.Noise.Variance,
		Filter:       p.Filter.Kind.String(),
		Cutoff:       p.Filter.Cutoff,
		Order:        p.Filter.Order,
		Window:       p.Filter.Window,
		ShowNoise:    p.ShowNoise,
		ShowFiltered: p.ShowFiltered,
	}
}

func toView(f session.Frame) View {
	v := View{
		Time:      toFloat32(f.Time),
		Error:     f.Error,
		ErrorText: f.ErrorText(),
		Filter:    f.FilterKind.String(),
		FellBack:  f.FellBack,
	}
	for _, s := range f.Series() {
		v.Series = append(v.Series, SeriesView{
			Name:    s.Name,
			Color:   s.Color,
			Dashed:  s.Dashed,
			Visible: s.Visible,
			Values:  toFloat32(s.Values),
		})
	}
	return v
}

func toFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}
