package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestGoertzelMatchesDFT(t *testing.T) {
	const (
		sr   = 99.9
		freq = 0.3
	)
	x := testutil.DeterministicNoise(3, 1, 500)

	g, err := NewGoertzel(freq, sr)
	if err != nil {
		t.Fatal(err)
	}
	g.ProcessBlock(x[:200])
	g.ProcessBlock(x[200:])

	var dft complex128
	for n, v := range x {
		dft += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*freq/sr*float64(n)))
	}

	want := cmplx.Abs(dft)
	if got := g.Magnitude(); math.Abs(got-want) > 1e-7*want {
		t.Fatalf("magnitude %v, want %v", got, want)
	}
}

func TestToneAmplitude(t *testing.T) {
	const sr = 100.0
	// 40 whole periods of 2 Hz.
	x := testutil.DeterministicSine(2, sr, 0.7, 2000)

	a, err := ToneAmplitude(x, 2, sr)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-0.7) > 1e-6 {
		t.Fatalf("amplitude %v, want 0.7", a)
	}

	a, err = ToneAmplitude(testutil.DC(0.25, 100), 0, sr)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-0.25) > 1e-12 {
		t.Fatalf("DC amplitude %v, want 0.25", a)
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(5, 100)
	if err != nil {
		t.Fatal(err)
	}
	g.ProcessBlock(testutil.Ones(10))
	g.Reset()
	if g.Power() != 0 || g.Amplitude() != 0 {
		t.Fatal("reset must clear the state")
	}
	if g.Frequency() != 5 {
		t.Fatalf("frequency %v", g.Frequency())
	}
}

func TestNewGoertzelRejects(t *testing.T) {
	for _, tt := range []struct{ f, sr float64 }{{-1, 100}, {60, 100}, {1, 0}, {math.NaN(), 100}} {
		if _, err := NewGoertzel(tt.f, tt.sr); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("NewGoertzel(%v, %v): %v", tt.f, tt.sr, err)
		}
	}
}
