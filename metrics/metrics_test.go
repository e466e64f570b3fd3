package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveUpdate(2*time.Millisecond, OutcomeOK)
	r.ObserveUpdate(time.Millisecond, OutcomeOK)
	r.ObserveUpdate(0, OutcomeRejected)
	r.ObserveUpdate(-time.Second, "boom")
	r.NoiseRegenerated()
	r.FilterFallback()
	r.FilterApplied("butterworth")
	r.SetMSE(0.125)

	expected := `
# HELP algo_denoise_updates_total Total number of session updates, partitioned by outcome.
# TYPE algo_denoise_updates_total counter
algo_denoise_updates_total{outcome="error"} 1
algo_denoise_updates_total{outcome="ok"} 2
algo_denoise_updates_total{outcome="rejected"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(r.updates, strings.NewReader(expected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.regenerations))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.filters.WithLabelValues("butterworth")))
	assert.Equal(t, 0.125, testutil.ToFloat64(r.lastMSE))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRecorderSharesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewRecorder(reg)
	require.NoError(t, err)
	b, err := NewRecorder(reg)
	require.NoError(t, err)

	a.NoiseRegenerated()
	b.NoiseRegenerated()
	assert.Equal(t, 2.0, testutil.ToFloat64(a.regenerations))

	n, err := testutil.GatherAndCount(reg, "algo_denoise_noise_regenerations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveUpdate(time.Millisecond, OutcomeOK)
		r.NoiseRegenerated()
		r.FilterFallback()
		r.FilterApplied("bessel")
		r.SetMSE(1)
	})
}
