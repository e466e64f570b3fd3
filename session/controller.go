package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"github.com/google/uuid"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/noise"
	"github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/internal/logger"
	"github.com/cwbudde/algo-denoise/metrics"
	timestats "github.com/cwbudde/algo-denoise/stats/time"
)

// Controller runs the generate → noise → filter → score pipeline for one
// session.
type Controller struct {
	id         string
	grid       core.TimeGrid
	times      []float64
	sampleRate float64

	defaults Params
	params   Params
	noise    *noise.Model
	frame    Frame

	log     logger.Logger
	metrics *metrics.Recorder
}

// New creates a controller on grid and renders the initial frame from the
// default parameters.
func New(grid core.TimeGrid, opts ...Option) (*Controller, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if grid.Len() < 2 {
		return nil, fmt.Errorf("session: grid needs at least 2 samples: %w", core.ErrInvalidParameter)
	}

	sr := cfg.sampleRate
	if sr == 0 {
		sr = grid.SampleRate()
	}
	if !core.IsFinite(sr) || sr <= 0 {
		return nil, fmt.Errorf("session: sample rate must be > 0: %f: %w", sr, core.ErrInvalidParameter)
	}

	if err := cfg.defaults.Validate(sr); err != nil {
		return nil, fmt.Errorf("session: defaults: %w", err)
	}

	id := uuid.NewString()
	log := cfg.log
	if zl, ok := log.(*logger.ZerologLogger); ok {
		log = zl.With("session_id", id)
	}

	c := &Controller{
		id:         id,
		grid:       grid,
		times:      grid.Times(),
		sampleRate: sr,
		defaults:   cfg.defaults,
		noise:      noise.New(cfg.src),
		log:        log,
		metrics:    cfg.metrics,
	}

	if _, err := c.run(cfg.defaults, true); err != nil {
		return nil, fmt.Errorf("session: initial frame: %w", err)
	}
	c.log.Infof("session ready: %d samples at %.4g Hz", grid.Len(), sr)

	return c, nil
}

// ID identifies the session in logs.
func (c *Controller) ID() string { return c.id }

// Grid returns the time grid shared by every series.
func (c *Controller) Grid() core.TimeGrid { return c.grid }

// SampleRate returns the rate the filters are designed for.
func (c *Controller) SampleRate() float64 { return c.sampleRate }

// Params returns the parameters of the current frame.
func (c *Controller) Params() Params { return c.params }

// Defaults returns the parameters restored on reset.
func (c *Controller) Defaults() Params { return c.defaults }

// Frame returns the most recent frame.
func (c *Controller) Frame() Frame { return c.frame }

// NoiseState reports whether the noise cache holds a reusable sequence.
func (c *Controller) NoiseState() noise.State { return c.noise.State() }

// Handle dispatches ev to Update or Reset.
func (c *Controller) Handle(ev Event) (Frame, error) {
	switch ev := ev.(type) {
	case ParamsChanged:
		return c.Update(ev.Params)
	case ResetRequested:
		return c.Reset()
	default:
		return Frame{}, fmt.Errorf("session: unsupported event %T: %w", ev, core.ErrInvalidParameter)
	}
}

// Update applies a complete parameter set. Invalid parameters leave the
// parameters, the noise cache and the last frame untouched.
func (c *Controller) Update(p Params) (Frame, error) {
	return c.run(p, false)
}

// Modify applies fn to a copy of the current parameters and updates with the
// result, for hosts that change one field at a time.
func (c *Controller) Modify(fn func(*Params)) (Frame, error) {
	p := c.params
	fn(&p)
	return c.Update(p)
}

// Reset restores the defaults, clears the noise cache and redraws the noise.
func (c *Controller) Reset() (Frame, error) {
	c.noise.Invalidate()
	c.log.Debugf("noise cache cleared by reset")
	return c.run(c.defaults, true)
}

func (c *Controller) run(p Params, force bool) (Frame, error) {
	start := time.Now()

	requested := p.Filter.Kind
	kind, fellBack := requested.Resolve()
	p.Filter.Kind = kind

	if err := p.Validate(c.sampleRate); err != nil {
		c.log.Warnf("update rejected: %v", err)
		c.metrics.ObserveUpdate(time.Since(start), metrics.OutcomeRejected)
		return Frame{}, fmt.Errorf("session: update rejected: %w", err)
	}
	if fellBack {
		c.log.Warnf("unknown filter kind %d, falling back to %s", int(requested), kind)
		c.metrics.FilterFallback()
	}

	frame, err := c.render(p, force)
	if err != nil {
		if errors.Is(err, core.ErrShapeMismatch) {
			c.log.Errorf("update aborted: %v", err)
		} else {
			c.log.Warnf("update failed: %v", err)
		}
		c.metrics.ObserveUpdate(time.Since(start), metrics.OutcomeError)
		return Frame{}, fmt.Errorf("session: update aborted: %w", err)
	}
	frame.FellBack = fellBack

	c.params = p
	c.frame = frame
	c.metrics.ObserveUpdate(time.Since(start), metrics.OutcomeOK)
	c.metrics.SetMSE(frame.Error)

	return frame, nil
}

// render computes one frame from validated parameters.
func (c *Controller) render(p Params, force bool) (Frame, error) {
	n := len(c.times)

	ns, regenerated, err := c.noise.Sample(n, p.Noise, force)
	if err != nil {
		return Frame{}, err
	}
	if regenerated {
		c.metrics.NoiseRegenerated()
		c.log.Debugw("noise regenerated", map[string]any{
			"mean":     p.Noise.Mean,
			"variance": p.Noise.Variance,
			"samples":  n,
		})
	}

	clean, err := signal.GenerateAt(c.times, p.Signal)
	if err != nil {
		return Frame{}, err
	}
	if len(clean) != len(ns) {
		return Frame{}, fmt.Errorf("clean %d vs noise %d samples: %w", len(clean), len(ns), core.ErrShapeMismatch)
	}

	noisy := make([]float64, n)
	vecmath.AddBlock(noisy, clean, ns)

	filtered, err := bank.Apply(noisy, p.Filter.Filter(), c.sampleRate)
	if err != nil {
		return Frame{}, err
	}
	c.metrics.FilterApplied(p.Filter.Kind.String())

	mse, err := timestats.MSE(clean, filtered)
	if err != nil {
		return Frame{}, err
	}

	times := make([]float64, n)
	copy(times, c.times)

	return Frame{
		Time:             times,
		Clean:            Series{Name: CleanName, Values: clean, Visible: true, Color: "blue", Dashed: true},
		Noisy:            Series{Name: NoisyName, Values: noisy, Visible: p.ShowNoise, Color: "orange"},
		Filtered:         Series{Name: FilteredName, Values: filtered, Visible: p.ShowFiltered, Color: "purple"},
		Noise:            ns,
		Error:            mse,
		NoiseRegenerated: regenerated,
		NoiseState:       c.noise.State(),
		FilterKind:       p.Filter.Kind,
	}, nil
}
