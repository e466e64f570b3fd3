package bank

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

const (
	sampleRate = 99.9
	gridLen    = 1000
)

func TestMovingAverage(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		window int
		want   []float64
	}{
		{"identity", 1, []float64{1, 2, 3, 4, 5}},
		{"odd window", 3, []float64{1.5, 2, 3, 4, 4.5}},
		{"even window", 4, []float64{2, 2.5, 3, 3.5, 4}},
		{"window wider than signal", 11, []float64{3, 3, 3, 3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(x, MovingAverage{Window: tt.window}, sampleRate)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestMovingAverageWindowOneIsIdentity(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, gridLen)
	got, err := Apply(x, MovingAverage{Window: 1}, sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if got[i] != x[i] {
			t.Fatalf("index %d: %v != %v", i, got[i], x[i])
		}
	}

	got[0] = 42
	if x[0] == 42 {
		t.Fatal("Apply must not alias its input")
	}
}

func TestMovingAverageRejectsWindow(t *testing.T) {
	for _, w := range []int{0, -3} {
		if _, err := Apply([]float64{1, 2}, MovingAverage{Window: w}, sampleRate); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("window %d: expected ErrInvalidParameter, got %v", w, err)
		}
	}
}

func TestMovingAverageIgnoresCutoff(t *testing.T) {
	f := Settings{Kind: KindMovingAverage, Cutoff: -1, Order: 0, Window: 3}.Filter()
	if _, err := Apply([]float64{1, 2, 3}, f, sampleRate); err != nil {
		t.Fatalf("moving average must ignore cutoff and order: %v", err)
	}
}

func TestZeroPhase(t *testing.T) {
	clean := testutil.DeterministicSine(0.3, sampleRate, 1, gridLen)
	peak := testutil.ArgMax(clean, 0, 200)

	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			f := Settings{Kind: kind, Cutoff: 10, Order: 5, Window: 1}.Filter()
			got, err := Apply(clean, f, sampleRate)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(clean) {
				t.Fatalf("length %d, want %d", len(got), len(clean))
			}
			testutil.RequireFinite(t, got)

			mse, err := testutil.MeanSquaredDiff(got, clean, 0, gridLen)
			if err != nil {
				t.Fatal(err)
			}
			if mse > 1e-3 {
				t.Fatalf("MSE %g against the unfiltered sine", mse)
			}

			if p := testutil.ArgMax(got, 0, 200); p < peak-1 || p > peak+1 {
				t.Fatalf("peak moved from %d to %d", peak, p)
			}
		})
	}
}

func TestLowpassRemovesNoise(t *testing.T) {
	clean := testutil.DeterministicSine(0.3, sampleRate, 1, gridLen)
	noise := testutil.DeterministicNoise(11, 0.5, gridLen)
	noisy := make([]float64, gridLen)
	for i := range noisy {
		noisy[i] = clean[i] + noise[i]
	}

	before, _ := testutil.MeanSquaredDiff(noisy, clean, 0, gridLen)
	for _, kind := range Kinds() {
		got, err := Apply(noisy, Settings{Kind: kind, Cutoff: 5, Order: 5, Window: 5}.Filter(), sampleRate)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		after, _ := testutil.MeanSquaredDiff(got, clean, 0, gridLen)
		if after >= before {
			t.Fatalf("%s: MSE %g not below unfiltered %g", kind, after, before)
		}
	}
}

func TestCutoffValidation(t *testing.T) {
	x := testutil.Ones(64)
	for _, kind := range Kinds()[1:] {
		for _, cutoff := range []float64{0, -1, sampleRate / 2, sampleRate, math.Inf(1)} {
			f := Settings{Kind: kind, Cutoff: cutoff, Order: 4}.Filter()
			if _, err := Apply(x, f, sampleRate); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("%s cutoff %v: expected ErrInvalidParameter, got %v", kind, cutoff, err)
			}
		}
		f := Settings{Kind: kind, Cutoff: 5, Order: 0}.Filter()
		if _, err := Apply(x, f, sampleRate); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("%s order 0: expected ErrInvalidParameter, got %v", kind, err)
		}
	}
}

func TestApplyNilFilter(t *testing.T) {
	if _, err := Apply([]float64{1}, nil, sampleRate); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestDesign(t *testing.T) {
	coeffs, err := Design(MovingAverage{Window: 3}, sampleRate)
	if err != nil || coeffs != nil {
		t.Fatalf("moving average has no cascade: %v %v", coeffs, err)
	}

	coeffs, err = Design(Elliptic{Cutoff: 5, Order: 4, RippleDB: DefaultRippleDB, StopbandDB: DefaultStopbandDB}, sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if len(coeffs) != 2 {
		t.Fatalf("got %d sections, want 2", len(coeffs))
	}
}

func TestSettingsFilter(t *testing.T) {
	s := Settings{Cutoff: 4, Order: 3, Window: 7}

	tests := []struct {
		kind Kind
		want Filter
	}{
		{KindMovingAverage, MovingAverage{Window: 7}},
		{KindButterworth, Butterworth{Cutoff: 4, Order: 3}},
		{KindChebyshev1, Chebyshev1{Cutoff: 4, Order: 3, RippleDB: 1}},
		{KindBessel, Bessel{Cutoff: 4, Order: 3}},
		{KindElliptic, Elliptic{Cutoff: 4, Order: 3, RippleDB: 1, StopbandDB: 60}},
		{Kind(99), Butterworth{Cutoff: 4, Order: 3}},
	}

	for _, tt := range tests {
		s.Kind = tt.kind
		if got := s.Filter(); got != tt.want {
			t.Fatalf("kind %v: got %#v, want %#v", tt.kind, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		ok   bool
	}{
		{"moving average", MovingAverage{Window: 5}, true},
		{"moving average zero window", MovingAverage{Window: 0}, false},
		{"butterworth", Butterworth{Cutoff: 5, Order: 5}, true},
		{"butterworth above nyquist", Butterworth{Cutoff: 60, Order: 5}, false},
		{"bessel order 11", Bessel{Cutoff: 5, Order: 11}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		err := Validate(tt.f, sampleRate)
		if tt.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", tt.name, err)
		}
	}
}
