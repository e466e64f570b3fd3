package noise

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

func newTestModel() *Model {
	return New(rand.NewPCG(42, 1024))
}

func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}

func TestSampleStartsStale(t *testing.T) {
	m := newTestModel()
	if m.State() != Stale {
		t.Fatalf("State() = %v, want stale", m.State())
	}

	_, regenerated, err := m.Sample(16, Params{Variance: 1}, false)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if !regenerated {
		t.Fatal("first Sample() must regenerate")
	}
	if m.State() != Valid {
		t.Fatalf("State() = %v, want valid", m.State())
	}
}

func TestSampleReusesCache(t *testing.T) {
	m := newTestModel()
	p := Params{Mean: 0.2, Variance: 0.5}

	a, _, err := m.Sample(64, p, false)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	b, regenerated, err := m.Sample(64, p, false)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if regenerated {
		t.Fatal("unchanged params must reuse the cache")
	}
	if !equalSlices(a, b) {
		t.Fatal("cached noise differs between calls")
	}
}

func TestSampleRegeneratesOnParamChange(t *testing.T) {
	tests := []struct {
		name string
		next Params
	}{
		{name: "mean", next: Params{Mean: 0.1, Variance: 0.5}},
		{name: "variance", next: Params{Mean: 0, Variance: 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			a, _, _ := m.Sample(64, Params{Variance: 0.5}, false)

			b, regenerated, err := m.Sample(64, tt.next, false)
			if err != nil {
				t.Fatalf("Sample() error = %v", err)
			}
			if !regenerated {
				t.Fatal("changed params must regenerate")
			}
			if equalSlices(a, b) {
				t.Fatal("expected a different noise sequence")
			}
			if got, _ := m.Params(); got != tt.next {
				t.Fatalf("Params() = %+v, want %+v", got, tt.next)
			}
		})
	}
}

func TestSampleForceAndInvalidate(t *testing.T) {
	m := newTestModel()
	p := Params{Variance: 1}
	a, _, _ := m.Sample(32, p, false)

	b, regenerated, _ := m.Sample(32, p, true)
	if !regenerated || equalSlices(a, b) {
		t.Fatal("force must redraw the sequence")
	}

	m.Invalidate()
	if m.State() != Stale {
		t.Fatalf("State() = %v after Invalidate, want stale", m.State())
	}
	if _, ok := m.Params(); ok {
		t.Fatal("Params() must report an empty cache")
	}
	c, regenerated, _ := m.Sample(32, p, false)
	if !regenerated || equalSlices(b, c) {
		t.Fatal("Sample after Invalidate must redraw")
	}
}

func TestSampleZeroVarianceIsConstant(t *testing.T) {
	m := newTestModel()
	out, _, err := m.Sample(100, Params{Mean: 0.25}, false)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	for i, v := range out {
		if v != 0.25 {
			t.Fatalf("out[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestSampleStatistics(t *testing.T) {
	m := newTestModel()
	const n = 20000
	out, _, err := m.Sample(n, Params{Mean: 1, Variance: 4}, false)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	mean := 0.0
	for _, v := range out {
		mean += v
	}
	mean /= n

	variance := 0.0
	for _, v := range out {
		variance += (v - mean) * (v - mean)
	}
	variance /= n

	if math.Abs(mean-1) > 0.1 {
		t.Fatalf("mean = %v, want ~1", mean)
	}
	if math.Abs(variance-4) > 0.3 {
		t.Fatalf("variance = %v, want ~4", variance)
	}
}

func TestSampleReturnsCopy(t *testing.T) {
	m := newTestModel()
	p := Params{Variance: 1}
	a, _, _ := m.Sample(8, p, false)
	a[0] = 1e9

	b, _, _ := m.Sample(8, p, false)
	if b[0] == 1e9 {
		t.Fatal("caller mutation leaked into the cache")
	}
}

func TestSampleRejectsInvalidParams(t *testing.T) {
	m := newTestModel()
	good, _, _ := m.Sample(8, Params{Variance: 1}, false)

	for _, p := range []Params{{Variance: -0.1}, {Mean: math.NaN()}, {Variance: math.Inf(1)}} {
		if _, _, err := m.Sample(8, p, false); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("Sample(%+v) error = %v, want ErrInvalidParameter", p, err)
		}
	}
	if _, _, err := m.Sample(0, Params{}, false); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Sample(0) error = %v, want ErrInvalidParameter", err)
	}

	after, regenerated, _ := m.Sample(8, Params{Variance: 1}, false)
	if regenerated || !equalSlices(good, after) {
		t.Fatal("rejected calls must leave the cache untouched")
	}
}

func TestSameSeedSameNoise(t *testing.T) {
	a, _, _ := New(rand.NewPCG(7, 7)).Sample(32, Params{Variance: 1}, false)
	b, _, _ := New(rand.NewPCG(7, 7)).Sample(32, Params{Variance: 1}, false)
	if !equalSlices(a, b) {
		t.Fatal("identical sources must yield identical noise")
	}
}
