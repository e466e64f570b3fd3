// Package ellipticmath implements the Jacobi elliptic functions and complete
// elliptic integrals needed to place the poles and zeros of an elliptic
// (Cauer) analog prototype. Everything is computed through descending Landen
// transformations.
package ellipticmath

import (
	"math"
	"math/cmplx"
)

// Tol is the Landen convergence threshold used by the lowpass designer.
const Tol = 2.2e-16

const (
	kMin          = 1e-6
	arcSNMaxIter  = 10
	arcImagCheck  = 1e-7
	nomeSeriesLen = 7
)

// Landen returns the descending Landen moduli of k, iterating until the
// modulus drops below tol.
func Landen(k, tol float64) []float64 {
	if k == 0 || k == 1 {
		return []float64{k}
	}

	var v []float64
	for k > tol {
		t := k / (1 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		v = append(v, k)
	}
	return v
}

// landenK evaluates K from a Landen sequence: (π/2)·Π(1 + v[i]).
func landenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1 + x
	}
	return prod * math.Pi / 2
}

// K returns the complete elliptic integral of the first kind K(k) and its
// complement K'(k) = K(√(1-k²)).
func K(k, tol float64) (float64, float64) {
	kMax := math.Sqrt(1 - kMin*kMin)

	var kk, kp float64
	switch {
	case k == 1:
		kk = math.Inf(1)
	case k > kMax:
		c := math.Sqrt((1 - k) * (1 + k))
		l := -math.Log(c / 4)
		kk = l + (l-1)*c*c/4
	default:
		kk = landenK(Landen(k, tol))
	}

	switch {
	case k == 0:
		kp = math.Inf(1)
	case k < kMin:
		l := -math.Log(k / 4)
		kp = l + (l-1)*k*k/4
	default:
		kp = landenK(Landen(math.Sqrt((1-k)*(1+k)), tol))
	}

	return kk, kp
}

// sn evaluates sn(u·K, k) for u given in units of K.
func sn(u, k, tol float64) float64 {
	v := Landen(k, tol)
	w := math.Sin(u * math.Pi / 2)
	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + v[i]) * w / (1 + v[i]*w*w)
	}
	return w
}

// cd evaluates cd(u·K, k) for u given in units of K.
func cd(u, k, tol float64) float64 {
	v := Landen(k, tol)
	w := math.Cos(u * math.Pi / 2)
	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + v[i]) * w / (1 + v[i]*w*w)
	}
	return w
}

// SnCnDn returns sn, cn and dn of the real argument u (not normalized by K)
// for modulus k in [0, 1). ok is false when the evaluation breaks down.
func SnCnDn(u, k, tol float64) (s, c, d float64, ok bool) {
	if !(k >= 0 && k < 1) {
		return 0, 0, 0, false
	}

	kk, _ := K(k, tol)
	if kk == 0 || math.IsNaN(kk) || math.IsInf(kk, 0) {
		return 0, 0, 0, false
	}

	un := u / kk
	s = sn(un, k, tol)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, 0, 0, false
	}

	d2 := 1 - k*k*s*s
	if d2 < -1e-12 {
		return 0, 0, 0, false
	}
	d = math.Sqrt(math.Max(d2, 0))
	c = cd(un, k, tol) * d

	return s, c, d, true
}

func complement(k complex128) complex128 {
	return cmplx.Sqrt((1 - k) * (1 + k))
}

// arcSN inverts sn for complex w and parameter m = k².
func arcSN(w complex128, m float64) complex128 {
	if m < 0 || m > 1 {
		return cmplx.NaN()
	}

	k := complex(math.Sqrt(m), 0)
	if real(k) == 1 {
		return cmplx.Atanh(w)
	}

	ks := []complex128{k}
	for len(ks) < arcSNMaxIter {
		kn := ks[len(ks)-1]
		if cmplx.Abs(kn) == 0 {
			break
		}
		kp := complement(kn)
		ks = append(ks, (1-kp)/(1+kp))
	}

	kk := math.Pi / 2
	for _, x := range ks[1:] {
		kk *= real(1 + x)
	}

	for i := 0; i+1 < len(ks); i++ {
		den := (1 + ks[i+1]) * (1 + complement(ks[i]*w))
		if den == 0 {
			return cmplx.NaN()
		}
		w = 2 * w / den
	}

	return complex(kk, 0) * (2 / math.Pi) * cmplx.Asin(w)
}

// ArcSC1 returns the real v solving sc(v, √(1-m)) = w, i.e. the imaginary
// part of arcsn(jw, m). NaN signals a breakdown.
func ArcSC1(w, m float64) float64 {
	z := arcSN(complex(0, w), m)
	if math.Abs(real(z)) > arcImagCheck*math.Max(1, math.Abs(imag(z))) {
		return math.NaN()
	}
	return imag(z)
}

// Degree solves the degree equation for an order-n elliptic filter with
// discrimination parameter m1 = k1², returning m = k². The nome series is
// truncated after a handful of terms, which is exact to double precision for
// practical orders.
func Degree(n int, m1, tol float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	k1, k1p := K(math.Sqrt(m1), tol)
	if k1 <= 0 || k1p <= 0 || math.IsInf(k1, 0) || math.IsInf(k1p, 0) || math.IsNaN(k1) || math.IsNaN(k1p) {
		return math.NaN()
	}

	q := math.Pow(math.Exp(-math.Pi*k1p/k1), 1/float64(n))

	num, den := 0.0, 1.0
	for i := 0; i < nomeSeriesLen; i++ {
		num += math.Pow(q, float64(i*(i+1)))
		if i > 0 {
			den += 2 * math.Pow(q, float64(i*i))
		}
	}

	return 16 * q * math.Pow(num/den, 4)
}
