package core

// TimeGrid is a fixed, uniformly spaced sequence of sample instants.
// Length and spacing never change after construction.
type TimeGrid struct {
	cfg     GridConfig
	spacing float64
}

// NewTimeGrid builds a grid from the default config and opts.
func NewTimeGrid(opts ...GridOption) (TimeGrid, error) {
	return NewTimeGridFromConfig(ApplyGridOptions(opts...))
}

// NewTimeGridFromConfig builds a grid from an explicit config.
func NewTimeGridFromConfig(cfg GridConfig) (TimeGrid, error) {
	if err := cfg.Validate(); err != nil {
		return TimeGrid{}, err
	}

	intervals := cfg.Length
	if cfg.Endpoint {
		intervals--
	}

	return TimeGrid{
		cfg:     cfg,
		spacing: (cfg.Stop - cfg.Start) / float64(intervals),
	}, nil
}

// Config returns the config the grid was built from.
func (g TimeGrid) Config() GridConfig { return g.cfg }

// Len returns the number of instants.
func (g TimeGrid) Len() int { return g.cfg.Length }

// Spacing returns the distance between neighbouring instants in seconds.
func (g TimeGrid) Spacing() float64 { return g.spacing }

// SampleRate returns the rate implied by the spacing (1/spacing).
func (g TimeGrid) SampleRate() float64 {
	if g.spacing == 0 {
		return 0
	}
	return 1 / g.spacing
}

// At returns the i-th instant.
func (g TimeGrid) At(i int) float64 {
	return g.cfg.Start + float64(i)*g.spacing
}

// Times returns a freshly allocated copy of all instants.
func (g TimeGrid) Times() []float64 {
	out := make([]float64, g.cfg.Length)
	for i := range out {
		out[i] = g.At(i)
	}
	if g.cfg.Endpoint {
		out[len(out)-1] = g.cfg.Stop
	}
	return out
}
