package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-denoise/config"
	"github.com/cwbudde/algo-denoise/metrics"
)

type runOptions struct {
	format  string
	samples bool
	metrics bool

	waveform     string
	amplitude    float64
	frequency    float64
	phase        float64
	mean         float64
	variance     float64
	filter       string
	cutoff       float64
	order        int
	window       int
	seed         uint64
	hideNoise    bool
	hideFiltered bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one update and print the error report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "o", "text", "output format: text, yaml or json")
	f.BoolVar(&opts.samples, "samples", false, "include every series in yaml/json output")
	f.BoolVar(&opts.metrics, "metrics", false, "append the session metrics in Prometheus text format")
	f.StringVar(&opts.waveform, "waveform", "", "sine, square or sawtooth")
	f.Float64Var(&opts.amplitude, "amplitude", 0, "signal amplitude")
	f.Float64Var(&opts.frequency, "frequency", 0, "signal frequency in Hz")
	f.Float64Var(&opts.phase, "phase", 0, "signal phase in radians")
	f.Float64Var(&opts.mean, "mean", 0, "noise mean")
	f.Float64Var(&opts.variance, "variance", 0, "noise variance")
	f.StringVar(&opts.filter, "filter", "", "filter kind (see 'sigscope filters')")
	f.Float64Var(&opts.cutoff, "cutoff", 0, "cutoff frequency in Hz")
	f.IntVar(&opts.order, "order", 0, "filter order")
	f.IntVar(&opts.window, "window", 0, "moving-average window in samples")
	f.Uint64Var(&opts.seed, "seed", 0, "noise seed (0 = random)")
	f.BoolVar(&opts.hideNoise, "hide-noise", false, "mark the noisy series hidden")
	f.BoolVar(&opts.hideFiltered, "hide-filtered", false, "mark the filtered series hidden")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (o *runOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("waveform") {
		cfg.Signal.Waveform = o.waveform
	}
	if set("amplitude") {
		cfg.Signal.Amplitude = o.amplitude
	}
	if set("frequency") {
		cfg.Signal.Frequency = o.frequency
	}
	if set("phase") {
		cfg.Signal.Phase = o.phase
	}
	if set("mean") {
		cfg.Noise.Mean = o.mean
	}
	if set("variance") {
		cfg.Noise.Variance = o.variance
	}
	if set("filter") {
		cfg.Filter.Kind = o.filter
	}
	if set("cutoff") {
		cfg.Filter.Cutoff = o.cutoff
	}
	if set("order") {
		cfg.Filter.Order = o.order
	}
	if set("window") {
		cfg.Filter.Window = o.window
	}
	if set("seed") {
		cfg.Seed = o.seed
	}
	if set("hide-noise") {
		cfg.Display.ShowNoise = !o.hideNoise
	}
	if set("hide-filtered") {
		cfg.Display.ShowFiltered = !o.hideFiltered
	}
}

func runSession(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	cfg, err := root.load(cmd)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	ctrl, err := cfg.NewSession(log, rec)
	if err != nil {
		return err
	}

	rep, err := buildReport(ctrl, opts.samples)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeReport(out, rep, opts.format); err != nil {
		return err
	}
	if opts.metrics {
		return writeMetrics(out, reg)
	}
	return nil
}

func writeReport(w io.Writer, rep *report, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return writeText(w, rep)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
