package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/spectrum"
	"github.com/cwbudde/algo-denoise/session"
	timestats "github.com/cwbudde/algo-denoise/stats/time"
)

type report struct {
	Session    string         `json:"session" yaml:"session"`
	Samples    int            `json:"samples" yaml:"samples"`
	SampleRate float64        `json:"sample_rate" yaml:"sample_rate"`
	Params     session.Params `json:"params" yaml:"params"`
	FellBack   bool           `json:"fell_back" yaml:"fell_back"`
	Error      float64        `json:"error" yaml:"error"`
	ErrorText  string         `json:"error_text" yaml:"error_text"`
	Series     []seriesReport `json:"series" yaml:"series"`
	Frame      *session.Frame `json:"frame,omitempty" yaml:"frame,omitempty"`
}

type seriesReport struct {
	Name    string  `json:"name" yaml:"name"`
	Visible bool    `json:"visible" yaml:"visible"`
	MSE     float64 `json:"mse" yaml:"mse"`
	// SNR is omitted when it is infinite, e.g. for the clean series itself.
	SNR  *float64 `json:"snr_db,omitempty" yaml:"snr_db,omitempty"`
	Mean float64  `json:"mean" yaml:"mean"`
	RMS  float64  `json:"rms" yaml:"rms"`
	Peak float64  `json:"peak" yaml:"peak"`
	// Dominant is the strongest non-DC frequency in Hz.
	Dominant float64 `json:"dominant_hz" yaml:"dominant_hz"`
	// Fundamental is the amplitude measured at the signal frequency.
	Fundamental float64 `json:"fundamental" yaml:"fundamental"`
}

func buildReport(ctrl *session.Controller, samples bool) (*report, error) {
	frame := ctrl.Frame()
	params := ctrl.Params()
	sr := ctrl.SampleRate()

	rep := &report{
		Session:    ctrl.ID(),
		Samples:    frame.Len(),
		SampleRate: sr,
		Params:     params,
		FellBack:   frame.FellBack,
		Error:      frame.Error,
		ErrorText:  frame.ErrorText(),
	}

	for _, s := range frame.Series() {
		row, err := describe(frame.Clean.Values, s, params.Signal.Frequency, sr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		rep.Series = append(rep.Series, row)
	}

	if samples {
		rep.Frame = &frame
	}
	return rep, nil
}

func describe(clean []float64, s session.Series, fundamental, sampleRate float64) (seriesReport, error) {
	mse, err := timestats.MSE(clean, s.Values)
	if err != nil {
		return seriesReport{}, err
	}
	snr, err := timestats.SNR(clean, s.Values)
	if err != nil {
		return seriesReport{}, err
	}
	dominant, err := spectrum.DominantFrequency(s.Values, sampleRate)
	if err != nil {
		return seriesReport{}, err
	}
	tone, err := spectrum.ToneAmplitude(s.Values, fundamental, sampleRate)
	if err != nil {
		return seriesReport{}, err
	}
	sum := timestats.Summarize(s.Values)

	return seriesReport{
		Name:        s.Name,
		Visible:     s.Visible,
		MSE:         mse,
		SNR:         finite(snr),
		Mean:        sum.Mean,
		RMS:         sum.RMS,
		Peak:        sum.Peak,
		Dominant:    dominant,
		Fundamental: tone,
	}, nil
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func writeText(w io.Writer, rep *report) error {
	p := rep.Params

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Session\t%s\n", rep.Session)
	fmt.Fprintf(tw, "Grid\t%d samples at %.4g Hz\n", rep.Samples, rep.SampleRate)
	fmt.Fprintf(tw, "Signal\t%s, amplitude %g, %g Hz, phase %g rad\n",
		p.Signal.Waveform, p.Signal.Amplitude, p.Signal.Frequency, p.Signal.Phase)
	fmt.Fprintf(tw, "Noise\tmean %g, variance %g\n", p.Noise.Mean, p.Noise.Variance)
	fmt.Fprintf(tw, "Filter\t%s\n", filterLabel(rep))
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n\n", rep.ErrorText); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Series\tVisible\tMSE\tSNR [dB]\tMean\tRMS\tPeak\tDominant [Hz]\tFundamental\n")
	fmt.Fprintf(tw, "------\t-------\t---\t--------\t----\t---\t----\t-------------\t-----------\n")
	for _, s := range rep.Series {
		snr := "inf"
		if s.SNR != nil {
			snr = fmt.Sprintf("%.2f", *s.SNR)
		}
		fmt.Fprintf(tw, "%s\t%t\t%.5f\t%s\t%.4f\t%.4f\t%.4f\t%.3f\t%.4f\n",
			s.Name, s.Visible, s.MSE, snr, s.Mean, s.RMS, s.Peak, s.Dominant, s.Fundamental)
	}
	return tw.Flush()
}

func filterLabel(rep *report) string {
	f := rep.Params.Filter
	var label string
	if f.Kind == bank.KindMovingAverage {
		label = fmt.Sprintf("%s, window %d", f.Kind, f.Window)
	} else {
		label = fmt.Sprintf("%s, cutoff %g Hz, order %d", f.Kind, f.Cutoff, f.Order)
	}
	if rep.FellBack {
		label += " (unknown kind, fell back)"
	}
	return label
}
