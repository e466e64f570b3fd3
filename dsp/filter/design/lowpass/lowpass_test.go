package lowpass

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
)

const (
	testRate   = 100.0
	testCutoff = 5.0
	halfPower  = -3.0102999566398120
)

type designer func(cutoff float64, order int, sampleRate float64) ([]biquad.Coefficients, error)

func families() map[string]designer {
	return map[string]designer{
		"butterworth": Butterworth,
		"chebyshev1": func(fc float64, n int, fs float64) ([]biquad.Coefficients, error) {
			return Chebyshev1(fc, n, 1, fs)
		},
		"bessel": Bessel,
		"elliptic": func(fc float64, n int, fs float64) ([]biquad.Coefficients, error) {
			return Elliptic(fc, n, 1, 60, fs)
		},
	}
}

func magDB(t *testing.T, sections []biquad.Coefficients, freq float64) float64 {
	t.Helper()
	return biquad.NewChain(sections).MagnitudeDB(freq, testRate)
}

func TestSectionCountAndStability(t *testing.T) {
	for name, design := range families() {
		for order := 1; order <= 8; order++ {
			sections, err := design(testCutoff, order, testRate)
			if err != nil {
				t.Fatalf("%s order %d: %v", name, order, err)
			}
			if len(sections) != (order+1)/2 {
				t.Fatalf("%s order %d: got %d sections, want %d", name, order, len(sections), (order+1)/2)
			}
			if got := biquad.NewChain(sections).Order(); got != order {
				t.Fatalf("%s order %d: chain order = %d", name, order, got)
			}
			for i, s := range sections {
				if !s.Stable() {
					t.Fatalf("%s order %d: section %d unstable: %#v", name, order, i, s)
				}
			}
		}
	}
}

func TestAttenuationNearNyquist(t *testing.T) {
	for name, design := range families() {
		sections, err := design(testCutoff, 4, testRate)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if db := magDB(t, sections, 0.45*testRate); db > -20 {
			t.Fatalf("%s: %.2f dB near Nyquist, want strong attenuation", name, db)
		}
	}
}

func TestButterworthHalfPowerAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 5, 8} {
		sections, err := Butterworth(testCutoff, order, testRate)
		if err != nil {
			t.Fatal(err)
		}
		if db := magDB(t, sections, testCutoff); math.Abs(db-halfPower) > 1e-6 {
			t.Fatalf("order %d: %.6f dB at cutoff, want %.6f", order, db, halfPower)
		}
		if db := magDB(t, sections, 0); math.Abs(db) > 1e-9 {
			t.Fatalf("order %d: DC gain %.9f dB", order, db)
		}
	}
}

func TestBesselHalfPowerAtCutoff(t *testing.T) {
	for order := 1; order <= MaxBesselOrder; order++ {
		sections, err := Bessel(testCutoff, order, testRate)
		if err != nil {
			t.Fatal(err)
		}
		if db := magDB(t, sections, testCutoff); math.Abs(db-halfPower) > 0.05 {
			t.Fatalf("order %d: %.4f dB at cutoff", order, db)
		}
		if dc := biquad.NewChain(sections).DCGain(); math.Abs(dc-1) > 1e-9 {
			t.Fatalf("order %d: DC gain %v", order, dc)
		}
	}
}

func TestBesselOrderLimit(t *testing.T) {
	_, err := Bessel(testCutoff, MaxBesselOrder+1, testRate)
	if !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestChebyshev1Ripple(t *testing.T) {
	const ripple = 1.0
	for _, order := range []int{2, 3, 4, 5} {
		sections, err := Chebyshev1(testCutoff, order, ripple, testRate)
		if err != nil {
			t.Fatal(err)
		}

		if db := magDB(t, sections, testCutoff); math.Abs(db+ripple) > 1e-6 {
			t.Fatalf("order %d: %.6f dB at passband edge, want %.1f", order, db, -ripple)
		}

		wantDC := 0.0
		if order%2 == 0 {
			wantDC = -ripple
		}
		if db := magDB(t, sections, 0); math.Abs(db-wantDC) > 1e-6 {
			t.Fatalf("order %d: DC %.6f dB, want %.1f", order, db, wantDC)
		}

		for f := 0.0; f < testCutoff; f += 0.05 {
			db := magDB(t, sections, f)
			if db > 1e-6 || db < -ripple-1e-6 {
				t.Fatalf("order %d: %.4f dB at %.2f Hz outside ripple band", order, db, f)
			}
		}
	}
}

func TestEllipticResponse(t *testing.T) {
	const ripple, stop = 1.0, 60.0
	for _, order := range []int{2, 3, 4, 5} {
		sections, err := Elliptic(testCutoff, order, ripple, stop, testRate)
		if err != nil {
			t.Fatal(err)
		}

		if db := magDB(t, sections, testCutoff); math.Abs(db+ripple) > 1e-3 {
			t.Fatalf("order %d: %.6f dB at passband edge", order, db)
		}
		for f := 0.0; f < testCutoff; f += 0.05 {
			db := magDB(t, sections, f)
			if db > 1e-3 || db < -ripple-1e-3 {
				t.Fatalf("order %d: %.4f dB at %.2f Hz outside ripple band", order, db, f)
			}
		}
	}

	sections, err := Elliptic(testCutoff, 5, ripple, stop, testRate)
	if err != nil {
		t.Fatal(err)
	}
	for f := 15.0; f < 0.5*testRate; f += 0.5 {
		if db := magDB(t, sections, f); db > -stop+0.1 {
			t.Fatalf("%.4f dB at %.1f Hz, want <= -%.0f", db, f, stop)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		cutoff float64
		order  int
		rate   float64
	}{
		{"zero order", testCutoff, 0, testRate},
		{"negative order", testCutoff, -2, testRate},
		{"zero cutoff", 0, 4, testRate},
		{"cutoff at nyquist", 50, 4, testRate},
		{"cutoff above nyquist", 70, 4, testRate},
		{"nan cutoff", math.NaN(), 4, testRate},
		{"zero rate", testCutoff, 4, 0},
	}

	for name, design := range families() {
		for _, tt := range tests {
			_, err := design(tt.cutoff, tt.order, tt.rate)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("%s/%s: expected ErrInvalidParameter, got %v", name, tt.name, err)
			}
		}
	}

	if _, err := Chebyshev1(testCutoff, 4, 0, testRate); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("zero ripple: %v", err)
	}
	if _, err := Elliptic(testCutoff, 4, 1, 0.5, testRate); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("stopband below ripple: %v", err)
	}
}
