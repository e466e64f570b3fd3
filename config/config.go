// Package config loads sigscope settings from a YAML or JSON file with
// SIGSCOPE_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/noise"
	"github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/internal/logger"
	"github.com/cwbudde/algo-denoise/metrics"
	"github.com/cwbudde/algo-denoise/session"
)

// EnvPrefix marks environment overrides. Nested keys are joined with a
// double underscore: SIGSCOPE_NOISE__VARIANCE=0.3 sets noise.variance.
const EnvPrefix = "SIGSCOPE_"

type Config struct {
	Grid    GridConfig     `json:"grid"`
	Signal  SignalConfig   `json:"signal"`
	Noise   noise.Params   `json:"noise"`
	Filter  FilterConfig   `json:"filter"`
	Display DisplayConfig  `json:"display"`
	Logging logger.Options `json:"logging"`
	// Seed fixes the noise source. Zero draws a random seed.
	Seed uint64 `json:"seed"`
}

// GridConfig describes the sample instants.
type GridConfig struct {
	Start    float64 `json:"start"`
	Stop     float64 `json:"stop"`
	Length   int     `json:"length"`
	Endpoint bool    `json:"endpoint"`
	// SampleRate overrides the rate derived from the grid spacing when > 0.
	SampleRate float64 `json:"sample_rate"`
}

type SignalConfig struct {
	Waveform  string  `json:"waveform"`
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Phase     float64 `json:"phase"`
}

type FilterConfig struct {
	Kind   string  `json:"kind"`
	Cutoff float64 `json:"cutoff"`
	Order  int     `json:"order"`
	Window int     `json:"window"`
}

type DisplayConfig struct {
	ShowNoise    bool `json:"show_noise"`
	ShowFiltered bool `json:"show_filtered"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	p := session.DefaultParams()
	g := core.DefaultGridConfig()

	return &Config{
		Grid: GridConfig{
			Start:    g.Start,
			Stop:     g.Stop,
			Length:   g.Length,
			Endpoint: g.Endpoint,
		},
		Signal: SignalConfig{
			Waveform:  p.Signal.Waveform.String(),
			Amplitude: p.Signal.Amplitude,
			Frequency: p.Signal.Frequency,
			Phase:     p.Signal.Phase,
		},
		Noise: p.Noise,
		Filter: FilterConfig{
			Kind:   p.Filter.Kind.String(),
			Cutoff: p.Filter.Cutoff,
			Order:  p.Filter.Order,
			Window: p.Filter.Window,
		},
		Display: DisplayConfig{
			ShowNoise:    p.ShowNoise,
			ShowFiltered: p.ShowFiltered,
		},
		Logging: logger.Options{Level: "info"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	prefix := strings.ToLower(EnvPrefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), prefix)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults normalizes names and fills empty strings.
func (c *Config) SetDefaults() {
	c.Signal.Waveform = strings.ToLower(strings.TrimSpace(c.Signal.Waveform))
	if c.Signal.Waveform == "" {
		c.Signal.Waveform = signal.Sine.String()
	}
	c.Filter.Kind = strings.ToLower(strings.TrimSpace(c.Filter.Kind))
	if c.Filter.Kind == "" {
		c.Filter.Kind = bank.DefaultKind.String()
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks every section. An unknown filter kind is accepted; it
// falls back to the default kind when the session starts.
func (c Config) Validate() error {
	grid, err := c.TimeGrid()
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if c.Grid.SampleRate < 0 || !core.IsFinite(c.Grid.SampleRate) {
		return fmt.Errorf("grid: sample_rate must be >= 0: %f: %w", c.Grid.SampleRate, core.ErrInvalidParameter)
	}

	p, err := c.Params()
	if err != nil {
		return err
	}
	if err := p.Validate(c.SampleRate(grid)); err != nil {
		return err
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// TimeGrid builds the grid section.
func (c Config) TimeGrid() (core.TimeGrid, error) {
	return core.NewTimeGridFromConfig(core.GridConfig{
		Start:    c.Grid.Start,
		Stop:     c.Grid.Stop,
		Length:   c.Grid.Length,
		Endpoint: c.Grid.Endpoint,
	})
}

// SampleRate returns the configured rate, or the rate implied by grid.
func (c Config) SampleRate(grid core.TimeGrid) float64 {
	if c.Grid.SampleRate > 0 {
		return c.Grid.SampleRate
	}
	return grid.SampleRate()
}

// Params converts the signal, noise, filter and display sections. An
// unrecognized filter name yields bank.KindUnknown so the session reports
// the fallback.
func (c Config) Params() (session.Params, error) {
	waveform, err := signal.ParseWaveform(c.Signal.Waveform)
	if err != nil {
		return session.Params{}, fmt.Errorf("signal: %w", err)
	}

	kind, fellBack := bank.ParseKind(c.Filter.Kind)
	if fellBack {
		kind = bank.KindUnknown
	}

	return session.Params{
		Signal: signal.Params{
			Waveform:  waveform,
			Amplitude: c.Signal.Amplitude,
			Frequency: c.Signal.Frequency,
			Phase:     c.Signal.Phase,
		},
		Noise: c.Noise,
		Filter: bank.Settings{
			Kind:   kind,
			Cutoff: c.Filter.Cutoff,
			Order:  c.Filter.Order,
			Window: c.Filter.Window,
		},
		ShowNoise:    c.Display.ShowNoise,
		ShowFiltered: c.Display.ShowFiltered,
	}, nil
}

// NewSession starts a controller from the configuration.
func (c Config) NewSession(log logger.Logger, rec *metrics.Recorder) (*session.Controller, error) {
	grid, err := c.TimeGrid()
	if err != nil {
		return nil, err
	}
	p, err := c.Params()
	if err != nil {
		return nil, err
	}

	opts := []session.Option{
		session.WithDefaults(p),
		session.WithLogger(log),
		session.WithMetrics(rec),
	}
	if c.Grid.SampleRate > 0 {
		opts = append(opts, session.WithSampleRate(c.Grid.SampleRate))
	}
	if c.Seed != 0 {
		opts = append(opts, session.WithSeed(c.Seed))
	}

	ctrl, err := session.New(grid, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: start session: %w", err)
	}
	return ctrl, nil
}
