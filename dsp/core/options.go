package core

import (
	"fmt"
	"math"
)

// GridConfig defines the sample instants shared by every signal of a session.
type GridConfig struct {
	Start    float64
	Stop     float64
	Length   int
	Endpoint bool // include Stop as the last instant
}

// GridOption mutates a GridConfig.
type GridOption func(*GridConfig)

// DefaultGridConfig returns 1000 instants covering [0, 10] s inclusive.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Start:    0,
		Stop:     10,
		Length:   1000,
		Endpoint: true,
	}
}

// WithSpan sets the first and last instant of the grid.
func WithSpan(start, stop float64) GridOption {
	return func(cfg *GridConfig) {
		cfg.Start = start
		cfg.Stop = stop
	}
}

// WithLength sets the number of instants.
func WithLength(n int) GridOption {
	return func(cfg *GridConfig) {
		if n > 0 {
			cfg.Length = n
		}
	}
}

// WithEndpoint controls whether Stop is part of the grid.
func WithEndpoint(endpoint bool) GridOption {
	return func(cfg *GridConfig) { cfg.Endpoint = endpoint }
}

// ApplyGridOptions applies zero or more options to the default config.
func ApplyGridOptions(opts ...GridOption) GridConfig {
	cfg := DefaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the config describes a usable grid.
func (cfg GridConfig) Validate() error {
	if cfg.Length < 2 {
		return fmt.Errorf("grid length must be >= 2: %d: %w", cfg.Length, ErrInvalidParameter)
	}
	if !IsFinite(cfg.Start) || !IsFinite(cfg.Stop) || cfg.Stop <= cfg.Start {
		return fmt.Errorf("grid span must satisfy start < stop: [%g, %g]: %w", cfg.Start, cfg.Stop, ErrInvalidParameter)
	}
	return nil
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
