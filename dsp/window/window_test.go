package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeFlatTop} {
		t.Run(typ.String(), func(t *testing.T) {
			w, err := Generate(typ, 65)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			for i := 0; i < len(w)/2; i++ {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("not symmetric at %d: %g vs %g", i, w[i], w[len(w)-1-i])
				}
			}
			if math.Abs(w[32]-1) > 1e-6 {
				t.Fatalf("center=%g, want 1", w[32])
			}
		})
	}
}

func TestGenerateHannEndpoints(t *testing.T) {
	w, err := Generate(TypeHann, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []float64{0, 0.75, 0.75, 0}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("w[%d]=%g, want %g", i, w[i], want[i])
		}
	}
}

func TestCoherentGainPeriodic(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0.5},
		{TypeHamming, 0.54},
		{TypeBlackman, 0.42},
		{TypeFlatTop, 0.21557895},
	}

	for _, tt := range tests {
		w, err := Generate(tt.typ, 256, WithPeriodic())
		if err != nil {
			t.Fatalf("%s: %v", tt.typ, err)
		}
		got, err := CoherentGain(w)
		if err != nil {
			t.Fatalf("%s: %v", tt.typ, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: gain=%g, want %g", tt.typ, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	w, _ := Generate(TypeHann, 4)
	got, err := Apply([]float64{2, 2, 2, 2}, w)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if math.Abs(got[1]-1.5) > 1e-12 || got[0] != 0 {
		t.Fatalf("got %v", got)
	}

	buf := []float64{1, 1, 1, 1}
	if err := ApplyInPlace(buf, w); err != nil {
		t.Fatalf("ApplyInPlace: %v", err)
	}
	if math.Abs(buf[2]-0.75) > 1e-12 {
		t.Fatalf("buf=%v", buf)
	}

	if _, err := Apply([]float64{1}, w); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("err=%v, want ErrShapeMismatch", err)
	}
	if err := ApplyInPlace([]float64{1}, w); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("err=%v, want ErrShapeMismatch", err)
	}
}

func TestErrors(t *testing.T) {
	if _, err := Generate(TypeHann, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("size 0: %v", err)
	}
	if _, err := Generate(Type(42), 8); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("type 42: %v", err)
	}
	if _, err := CoherentGain(nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("empty: %v", err)
	}
	if _, err := CoherentGain([]float64{1, -1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("zero gain: %v", err)
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeFlatTop} {
		got, err := ParseType(" " + typ.String() + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q)=%v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseType("kaiser"); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("kaiser: %v", err)
	}
}
