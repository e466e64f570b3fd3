// Package metrics records session activity in Prometheus collectors. There is
// no exposition endpoint; hosts gather from the registerer they pass in.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "algo_denoise"

const (
	// OutcomeOK labels updates that produced a frame.
	OutcomeOK = "ok"
	// OutcomeRejected labels updates refused for invalid parameters.
	OutcomeRejected = "rejected"
	// OutcomeError labels updates aborted by an internal failure.
	OutcomeError = "error"
)

// Recorder holds the session collectors. A nil *Recorder records nothing.
type Recorder struct {
	updates       *prometheus.CounterVec
	filters       *prometheus.CounterVec
	regenerations prometheus.Counter
	fallbacks     prometheus.Counter
	duration      prometheus.Histogram
	lastMSE       prometheus.Gauge
}

// NewRecorder registers the collectors on reg, or on the default registerer
// when reg is nil. Collectors that are already registered are reused, so
// several sessions can share one registry.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Total number of session updates, partitioned by outcome.",
		}, []string{"outcome"}),
		filters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_applications_total",
			Help:      "Total number of filter runs, partitioned by filter kind.",
		}, []string{"kind"}),
		regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noise_regenerations_total",
			Help:      "Total number of fresh noise draws.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_fallbacks_total",
			Help:      "Total number of unknown filter kinds replaced by the default.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_seconds",
			Help:      "Session update latency in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		lastMSE: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_mse",
			Help:      "Mean squared error of the most recent frame.",
		}),
	}

	var err error
	if r.updates, err = register(reg, r.updates); err != nil {
		return nil, err
	}
	if r.filters, err = register(reg, r.filters); err != nil {
		return nil, err
	}
	if r.regenerations, err = register(reg, r.regenerations); err != nil {
		return nil, err
	}
	if r.fallbacks, err = register(reg, r.fallbacks); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}
	if r.lastMSE, err = register(reg, r.lastMSE); err != nil {
		return nil, err
	}

	return r, nil
}

// register adds c to reg, returning the collector already registered under
// the same descriptor when there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveUpdate records one update with its latency and outcome. Unknown
// outcomes count as OutcomeError.
func (r *Recorder) ObserveUpdate(d time.Duration, outcome string) {
	if r == nil {
		return
	}
	switch outcome {
	case OutcomeOK, OutcomeRejected:
	default:
		outcome = OutcomeError
	}
	r.updates.WithLabelValues(outcome).Inc()
	if d < 0 {
		d = 0
	}
	r.duration.Observe(d.Seconds())
}

// FilterApplied counts one filter run of the named kind.
func (r *Recorder) FilterApplied(kind string) {
	if r == nil {
		return
	}
	r.filters.WithLabelValues(kind).Inc()
}

// NoiseRegenerated counts one fresh noise draw.
func (r *Recorder) NoiseRegenerated() {
	if r == nil {
		return
	}
	r.regenerations.Inc()
}

// FilterFallback counts one unknown filter kind replaced by the default.
func (r *Recorder) FilterFallback() {
	if r == nil {
		return
	}
	r.fallbacks.Inc()
}

// SetMSE publishes the error of the latest frame.
func (r *Recorder) SetMSE(v float64) {
	if r == nil {
		return
	}
	r.lastMSE.Set(v)
}
