// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"

	"github.com/aclements/go-probdist/mathx"
)

// TruncNormalDist is a normal distribution with mean Mu and standard
// deviation Sigma restricted to [Lower, Upper] and renormalized.
// Either truncation bound may be infinite.
type TruncNormalDist struct {
	Mu, Sigma    float64
	Lower, Upper float64
}

func (d TruncNormalDist) check() {
	if !(d.Sigma > 0) || math.IsNaN(d.Lower) || math.IsNaN(d.Upper) || !(d.Lower < d.Upper) {
		panic("dist: TruncNormal requires Sigma > 0 and Lower < Upper")
	}
}

// ab returns the truncation window in standard deviations from Mu.
func (d TruncNormalDist) ab() (float64, float64) {
	return (d.Lower - d.Mu) / d.Sigma, (d.Upper - d.Mu) / d.Sigma
}

func (d TruncNormalDist) PDF(x float64) float64 {
	d.check()
	if x < d.Lower || x > d.Upper {
		return 0
	}
	a, b := d.ab()
	z := (x - d.Mu) / d.Sigma
	return invSqrt2Pi * math.Exp(-z*z/2) / (d.Sigma * phiInterval(a, b))
}

func (d TruncNormalDist) LogPDF(x float64) float64 {
	d.check()
	if x < d.Lower || x > d.Upper {
		return -inf
	}
	a, b := d.ab()
	z := (x - d.Mu) / d.Sigma
	return -(z*z+log2Pi)/2 - math.Log(d.Sigma) - math.Log(phiInterval(a, b))
}

// CDF is the normal mass of [Lower, x] over the mass of the whole
// window, each interval mass computed without cancellation by
// phiInterval.
func (d TruncNormalDist) CDF(x float64) float64 {
	d.check()
	switch {
	case x <= d.Lower:
		return 0
	case x >= d.Upper:
		return 1
	}
	a, b := d.ab()
	p := phiInterval(a, (x-d.Mu)/d.Sigma) / phiInterval(a, b)
	if p > 1 {
		return 1
	}
	return p
}

// SF is the window mass above x; like CDF it is a ratio of interval
// masses rather than a complement, so it stays accurate against the
// upper truncation bound.
func (d TruncNormalDist) SF(x float64) float64 {
	d.check()
	switch {
	case x <= d.Lower:
		return 1
	case x >= d.Upper:
		return 0
	}
	a, b := d.ab()
	q := phiInterval((x-d.Mu)/d.Sigma, b) / phiInterval(a, b)
	if q > 1 {
		return 1
	}
	return q
}

func (d TruncNormalDist) Bounds() (float64, float64) {
	lo, hi := d.Lower, d.Upper
	if math.IsInf(lo, -1) {
		lo = -inf
	}
	if math.IsInf(hi, 1) {
		hi = inf
	}
	return lo, hi
}

func (d TruncNormalDist) Mean() float64 {
	d.check()
	a, b := d.ab()
	return d.Mu + d.Sigma*truncNormMoment1(a, b)
}

func (d TruncNormalDist) Variance() float64 {
	d.check()
	a, b := d.ab()
	return d.Sigma * d.Sigma * truncNormVariance(a, b)
}

// Rand samples by inverse-transforming a uniform draw on the CDF
// image of the window.
func (d TruncNormalDist) Rand(rng *rand.Rand) float64 {
	d.check()
	a, b := d.ab()
	pa := 0.5 * math.Erfc(-a*invSqrt2)
	pb := 0.5 * math.Erfc(-b*invSqrt2)
	x := d.Mu + d.Sigma*mathext.NormalQuantile(pa+rng.Float64()*(pb-pa))
	// Guard the window against quantile round-off.
	if x < d.Lower {
		return d.Lower
	}
	if x > d.Upper {
		return d.Upper
	}
	return x
}

// phiInterval returns Φ(b) - Φ(a) for a ≤ b, the standard normal mass
// of [a, b].
//
// When the window straddles 0 the two erf terms reinforce and the
// plain difference is exact. When both ends are on one side of 0 the
// difference of tail masses cancels, so the common exponential is
// factored out through erfcx:
//
//	Φ(b) - Φ(a) = e^(-a²/2)·(erfcx(a/√2) - erfcx(b/√2)·e^(-Δ))/2
//
// with Δ = (b²-a²)/2 computed as (b-a)(b+a)/2 to avoid squaring
// before subtracting.
func phiInterval(a, b float64) float64 {
	if a > 0 {
		return phiIntervalTail(a, b)
	}
	if b < 0 {
		return phiIntervalTail(-b, -a)
	}
	return (math.Erf(b*invSqrt2) - math.Erf(a*invSqrt2)) / 2
}

// phiIntervalTail returns Φ(b) - Φ(a) for 0 < a ≤ b.
func phiIntervalTail(a, b float64) float64 {
	alpha, beta := a*invSqrt2, b*invSqrt2
	delta := (beta - alpha) * (beta + alpha)
	return 0.5 * math.Exp(-alpha*alpha) *
		(mathx.Erfcx(alpha) - mathx.Erfcx(beta)*math.Exp(-delta))
}

// phi is the standard normal density.
func phi(x float64) float64 {
	return invSqrt2Pi * math.Exp(-x*x/2)
}

// narrowWindow reports whether the standard normal density is flat
// across [a, b] to within double precision, in which case the window
// is treated as uniform. Requires |a| ≤ |b|.
func narrowWindow(a, b float64) bool {
	w := b - a
	return w <= 1e-8 && w*math.Abs(a) <= 1e-8
}

// truncNormMoment1 returns the mean of the standard normal truncated
// to [a, b].
//
// The window is first reflected into |a| ≤ |b|, so for every (a, b)
// the identity moment1(a, b) == -moment1(-b, -a) holds bit for bit.
// The result always lies within [a, b]. For windows narrow enough
// that the density is flat across them the uniform-limit midpoint is
// returned.
func truncNormMoment1(a, b float64) float64 {
	switch {
	case a == b:
		return a
	case math.IsInf(a, -1) && math.IsInf(b, 1):
		return 0
	}
	if math.Abs(a) > math.Abs(b) {
		return -truncNormMoment1(-b, -a)
	}
	// |a| ≤ |b|, so b > 0.
	var m float64
	switch {
	case math.IsInf(b, 1):
		// One-sided [a, ∞): mean is the inverse Mills ratio
		// φ(a)/Q(a) = √(2/π)/erfcx(a/√2).
		m = math.Sqrt(2/math.Pi) / mathx.Erfcx(a*invSqrt2)
	case narrowWindow(a, b):
		m = a + (b-a)/2
	case a <= 0:
		z := (math.Erf(b*invSqrt2) - math.Erf(a*invSqrt2)) / 2
		m = (phi(a) - phi(b)) / z
	default:
		// 0 < a < b: factor e^(-a²/2) out of both the density
		// difference and the window mass.
		alpha, beta := a*invSqrt2, b*invSqrt2
		delta := (beta - alpha) * (beta + alpha)
		den := mathx.Erfcx(alpha) - mathx.Erfcx(beta)*math.Exp(-delta)
		m = math.Sqrt(2/math.Pi) * -math.Expm1(-delta) / den
	}
	if math.IsNaN(m) {
		// The reformulated denominator can round to 0 for
		// near-degenerate windows; fall back to the midpoint.
		m = a + (b-a)/2
	}
	if m < a {
		m = a
	}
	if m > b {
		m = b
	}
	return m
}

// truncNormVariance returns the variance of the standard normal
// truncated to [a, b].
//
// Like truncNormMoment1 it reflects the window into |a| ≤ |b|, making
// variance(a, b) == variance(-b, -a) exact. The result is never
// negative; in near-degenerate windows where the (b-a)²/12 uniform
// limit itself is below the cancellation floor, it may collapse to 0.
func truncNormVariance(a, b float64) float64 {
	switch {
	case a == b:
		return 0
	case math.IsInf(a, -1) && math.IsInf(b, 1):
		return 1
	}
	if math.Abs(a) > math.Abs(b) {
		return truncNormVariance(-b, -a)
	}
	m := truncNormMoment1(a, b)
	var v float64
	switch {
	case math.IsInf(b, 1):
		// One-sided: 1 + a·m - m², grouped so the large terms
		// cancel symbolically first.
		v = 1 - m*(m-a)
	case narrowWindow(a, b):
		v = (b - a) * (b - a) / 12
	case a <= 0:
		z := (math.Erf(b*invSqrt2) - math.Erf(a*invSqrt2)) / 2
		v = 1 + (a*phi(a)-b*phi(b))/z - m*m
	default:
		alpha, beta := a*invSqrt2, b*invSqrt2
		delta := (beta - alpha) * (beta + alpha)
		ed := math.Exp(-delta)
		den := mathx.Erfcx(alpha) - mathx.Erfcx(beta)*ed
		v = 1 + math.Sqrt(2/math.Pi)*(a-b*ed)/den - m*m
	}
	if !(v > 0) {
		// Clamps both negative round-off and NaN from a
		// degenerate denominator.
		return 0
	}
	return v
}
