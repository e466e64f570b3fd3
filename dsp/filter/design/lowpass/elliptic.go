package lowpass

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
	"github.com/cwbudde/algo-denoise/internal/ellipticmath"
)

const (
	rootTol    = 1e-9
	conjTol    = 1e-4
	machineEps = 2.220446049250313e-16
)

// errDegenerate reports a numerical breakdown of the elliptic prototype.
var errDegenerate = fmt.Errorf("lowpass: elliptic prototype degenerate: %w", core.ErrInvalidParameter)

// Elliptic designs an elliptic (Cauer) low-pass cascade with rippleDB of
// passband ripple and at least stopbandDB of stopband attenuation. The
// passband edge sits at cutoff; the transition is the steepest of the
// classical families for a given order.
func Elliptic(cutoff float64, order int, rippleDB, stopbandDB, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if !core.IsFinite(rippleDB) || !core.IsFinite(stopbandDB) || rippleDB <= 0 || stopbandDB <= rippleDB {
		return nil, fmt.Errorf("lowpass: elliptic needs 0 < ripple (%g dB) < stopband (%g dB): %w",
			rippleDB, stopbandDB, core.ErrInvalidParameter)
	}

	k, err := prewarp(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	proto, ok := ellipticPrototype(order, rippleDB, stopbandDB)
	if !ok {
		return nil, errDegenerate
	}

	digital, ok := proto.bilinear(k)
	if !ok {
		return nil, errDegenerate
	}

	sections := digital.sections()
	if len(sections) == 0 {
		return nil, errDegenerate
	}

	target := 1.0
	if order%2 == 0 {
		target = 1 / math.Sqrt(1+core.DBPowerToLinearMinusOne(rippleDB))
	}
	normalizeDC(sections, target)

	return sections, nil
}

// zpk is a transfer function in zero/pole/gain form.
type zpk struct {
	zeros []complex128
	poles []complex128
	gain  float64
}

// ellipticPrototype places the poles and zeros of the analog prototype with a
// passband edge at 1 rad/s.
func ellipticPrototype(order int, rippleDB, stopbandDB float64) (zpk, bool) {
	epsSq := core.DBPowerToLinearMinusOne(rippleDB)
	stopSq := core.DBPowerToLinearMinusOne(stopbandDB)
	if epsSq <= 0 || stopSq <= 0 {
		return zpk{}, false
	}

	m1 := epsSq / stopSq
	if !(m1 > 0 && m1 < 1) {
		return zpk{}, false
	}

	if order == 1 {
		p := -math.Sqrt(1 / epsSq)
		return zpk{poles: []complex128{complex(p, 0)}, gain: -p}, true
	}

	m := ellipticmath.Degree(order, m1, ellipticmath.Tol)
	if !(m > 0 && m < 1) {
		return zpk{}, false
	}

	kmod := math.Sqrt(m)
	capK, _ := ellipticmath.K(kmod, ellipticmath.Tol)
	capK1, _ := ellipticmath.K(math.Sqrt(m1), ellipticmath.Tol)
	if !finitePositive(capK) || !finitePositive(capK1) {
		return zpk{}, false
	}

	type jacobi struct{ s, c, d float64 }
	var js []jacobi
	var zeros []complex128
	for j := 1 - order%2; j < order; j += 2 {
		s, c, d, ok := ellipticmath.SnCnDn(float64(j)*capK/float64(order), kmod, ellipticmath.Tol)
		if !ok {
			return zpk{}, false
		}
		js = append(js, jacobi{s, c, d})
		if math.Abs(s) > machineEps {
			z := complex(0, 1/(kmod*s))
			zeros = append(zeros, z, cmplx.Conj(z))
		}
	}

	r := ellipticmath.ArcSC1(1/math.Sqrt(epsSq), m1)
	if !finitePositive(r) {
		return zpk{}, false
	}
	v0 := capK * r / (float64(order) * capK1)

	sv, cv, dv, ok := ellipticmath.SnCnDn(v0, math.Sqrt(1-m), ellipticmath.Tol)
	if !ok {
		return zpk{}, false
	}

	poles := make([]complex128, 0, order)
	for _, j := range js {
		den := 1 - (j.d*sv)*(j.d*sv)
		if math.Abs(den) <= machineEps {
			return zpk{}, false
		}
		p := -complex(j.c*j.d*sv*cv, j.s*dv) / complex(den, 0)
		poles = append(poles, p)
		if math.Abs(imag(p)) > machineEps*cmplx.Abs(p) {
			poles = append(poles, cmplx.Conj(p))
		}
	}

	num := negProduct(poles)
	den := negProduct(zeros)
	if den == 0 {
		return zpk{}, false
	}

	gain := real(num / den)
	if order%2 == 0 {
		gain /= math.Sqrt(1 + epsSq)
	}
	if gain == 0 || !core.IsFinite(gain) {
		return zpk{}, false
	}

	return zpk{zeros: zeros, poles: poles, gain: gain}, true
}

// bilinear maps the analog prototype to the z plane with s = (z-1)/(k(z+1)),
// which puts the 1 rad/s prototype edge at the pre-warped cutoff. Zeros at
// infinity land on z = -1.
func (f zpk) bilinear(k float64) (zpk, bool) {
	extra := len(f.poles) - len(f.zeros)
	if extra < 0 {
		return zpk{}, false
	}

	kc := complex(k, 0)
	mapRoot := func(r complex128) (complex128, bool) {
		den := 1 - kc*r
		if den == 0 {
			return 0, false
		}
		return (1 + kc*r) / den, true
	}

	out := zpk{
		zeros: make([]complex128, 0, len(f.poles)),
		poles: make([]complex128, 0, len(f.poles)),
	}
	num, den := complex(1, 0), complex(1, 0)
	for _, z := range f.zeros {
		zd, ok := mapRoot(z)
		if !ok {
			return zpk{}, false
		}
		out.zeros = append(out.zeros, zd)
		num *= 1 - kc*z
	}
	for i := 0; i < extra; i++ {
		out.zeros = append(out.zeros, -1)
	}
	for _, p := range f.poles {
		pd, ok := mapRoot(p)
		if !ok {
			return zpk{}, false
		}
		out.poles = append(out.poles, pd)
		den *= 1 - kc*p
	}
	if den == 0 {
		return zpk{}, false
	}

	out.gain = f.gain * real(num/den)
	if out.gain == 0 || !core.IsFinite(out.gain) {
		return zpk{}, false
	}
	return out, true
}

// sections pairs roots into biquads: complex pole pairs first, ordered by
// decreasing imaginary part, each taking a complex zero pair when one is left.
func (f zpk) sections() []biquad.Coefficients {
	if len(f.poles) == 0 {
		return nil
	}

	pGroups := groupRoots(f.poles)
	sort.SliceStable(pGroups, func(i, j int) bool {
		if len(pGroups[i]) != len(pGroups[j]) {
			return len(pGroups[i]) > len(pGroups[j])
		}
		return maxImag(pGroups[i]) > maxImag(pGroups[j])
	})

	var pairs, singles [][]complex128
	for _, g := range groupRoots(f.zeros) {
		if len(g) == 2 {
			pairs = append(pairs, g)
		} else {
			singles = append(singles, g)
		}
	}

	take := func(first, second *[][]complex128) []complex128 {
		for _, q := range []*[][]complex128{first, second} {
			if len(*q) > 0 {
				g := (*q)[0]
				*q = (*q)[1:]
				return g
			}
		}
		return nil
	}

	out := make([]biquad.Coefficients, 0, len(pGroups))
	for _, pg := range pGroups {
		var zg []complex128
		if len(pg) == 2 {
			zg = take(&pairs, &singles)
		} else {
			zg = take(&singles, &pairs)
		}

		b1, b2 := monic(zg)
		a1, a2 := monic(pg)
		out = append(out, biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2})
	}

	out[0] = out[0].Scale(f.gain)
	return out
}

// groupRoots collects conjugate pairs, then pairs up the remaining real roots.
func groupRoots(roots []complex128) [][]complex128 {
	if len(roots) == 0 {
		return nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if imag(sorted[i]) != imag(sorted[j]) {
			return imag(sorted[i]) > imag(sorted[j])
		}
		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	var groups [][]complex128
	var reals []float64
	for i, r := range sorted {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) <= rootTol {
			reals = append(reals, real(r))
			continue
		}

		best, bestDist := -1, math.MaxFloat64
		for j, c := range sorted {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(c - cmplx.Conj(r)); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best >= 0 && bestDist <= conjTol {
			used[best] = true
			groups = append(groups, []complex128{r, sorted[best]})
		} else {
			groups = append(groups, []complex128{r})
		}
	}

	sort.Float64s(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{complex(reals[i], 0), complex(reals[i+1], 0)})
	}
	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{complex(reals[len(reals)-1], 0)})
	}

	return groups
}

func maxImag(g []complex128) float64 {
	m := 0.0
	for _, r := range g {
		m = math.Max(m, math.Abs(imag(r)))
	}
	return m
}

// monic returns c1, c2 of (1 - r1 z^-1)(1 - r2 z^-1) = 1 + c1 z^-1 + c2 z^-2.
func monic(g []complex128) (float64, float64) {
	switch len(g) {
	case 0:
		return 0, 0
	case 1:
		return -real(g[0]), 0
	default:
		return -real(g[0] + g[1]), real(g[0] * g[1])
	}
}

func negProduct(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}
	return out
}

func finitePositive(x float64) bool {
	return x > 0 && core.IsFinite(x)
}
