package ellipticmath

import (
	"math"
	"testing"
)

func TestK(t *testing.T) {
	tests := []struct {
		k    float64
		want float64
	}{
		{k: 0.1, want: 1.5747455615173560},
		{k: 1 / math.Sqrt2, want: 1.8540746773013719},
		{k: 0.9, want: 2.2805491384227703},
	}

	for _, tt := range tests {
		got, _ := K(tt.k, Tol)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("K(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}

	kk, kp := K(1/math.Sqrt2, Tol)
	if math.Abs(kk-kp) > 1e-9 {
		t.Fatalf("K and K' must agree at k=1/√2: %v vs %v", kk, kp)
	}
}

func TestSnCnDnIdentities(t *testing.T) {
	for _, k := range []float64{0, 0.3, 0.8, 0.99} {
		for _, u := range []float64{0, 0.2, 0.7, 1.1} {
			s, c, d, ok := SnCnDn(u, k, Tol)
			if !ok {
				t.Fatalf("SnCnDn(%v, %v) failed", u, k)
			}
			if math.Abs(s*s+c*c-1) > 1e-9 {
				t.Fatalf("sn²+cn² = %v at u=%v k=%v", s*s+c*c, u, k)
			}
			if math.Abs(d*d+k*k*s*s-1) > 1e-9 {
				t.Fatalf("dn²+k²sn² = %v at u=%v k=%v", d*d+k*k*s*s, u, k)
			}
		}
	}

	s, c, d, _ := SnCnDn(0.5, 0, Tol)
	if math.Abs(s-math.Sin(0.5)) > 1e-12 || math.Abs(c-math.Cos(0.5)) > 1e-12 || d != 1 {
		t.Fatalf("k=0 must reduce to circular functions: %v %v %v", s, c, d)
	}

	if _, _, _, ok := SnCnDn(0.5, 1, Tol); ok {
		t.Fatal("k=1 must be rejected")
	}
}

func TestArcSC1InvertsSC(t *testing.T) {
	const m = 0.36
	kp := math.Sqrt(1 - m)
	for _, v := range []float64{0.1, 0.5, 1.0} {
		s, c, _, ok := SnCnDn(v, kp, Tol)
		if !ok {
			t.Fatalf("SnCnDn(%v) failed", v)
		}
		got := ArcSC1(s/c, m)
		if math.Abs(got-v) > 1e-8 {
			t.Fatalf("ArcSC1(sc(%v)) = %v", v, got)
		}
	}
}

func TestDegree(t *testing.T) {
	m := Degree(4, 1e-5, Tol)
	if !(m > 0 && m < 1) {
		t.Fatalf("Degree() = %v, want in (0,1)", m)
	}
	if !math.IsNaN(Degree(0, 0.5, Tol)) || !math.IsNaN(Degree(3, 1.5, Tol)) {
		t.Fatal("invalid input must yield NaN")
	}
	// Higher order buys a sharper transition: the selectivity k rises.
	if Degree(6, 1e-5, Tol) <= m {
		t.Fatal("expected selectivity to grow with order")
	}
}
