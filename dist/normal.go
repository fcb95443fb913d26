// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution N(0, 1).
var StdNormal = NormalDist{0, 1}

func (d NormalDist) check() {
	if !(d.Sigma > 0) {
		panic("dist: Normal requires Sigma > 0")
	}
}

func (d NormalDist) z(x float64) float64 {
	return (x - d.Mu) / d.Sigma
}

func (d NormalDist) PDF(x float64) float64 {
	d.check()
	z := d.z(x)
	return invSqrt2Pi / d.Sigma * math.Exp(-z*z/2)
}

func (d NormalDist) LogPDF(x float64) float64 {
	d.check()
	z := d.z(x)
	return -(z*z+log2Pi)/2 - math.Log(d.Sigma)
}

// CDF returns P(X ≤ x). It is computed from the complementary error
// function of the lower tail, so it retains relative accuracy for x
// far below Mu, where erf-based forms would collapse to 0.
func (d NormalDist) CDF(x float64) float64 {
	d.check()
	return 0.5 * math.Erfc(-d.z(x)*invSqrt2)
}

// SF returns P(X > x), accurate in the upper tail.
func (d NormalDist) SF(x float64) float64 {
	d.check()
	return 0.5 * math.Erfc(d.z(x)*invSqrt2)
}

func (d NormalDist) Bounds() (float64, float64) {
	return -inf, inf
}

func (d NormalDist) Mean() float64 {
	d.check()
	return d.Mu
}

func (d NormalDist) Variance() float64 {
	d.check()
	return d.Sigma * d.Sigma
}

func (d NormalDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.Mu + d.Sigma*mathext.NormalQuantile(p)
}

// InvSF uses the symmetry of the normal distribution, so a small
// survival target q is never subjected to a 1-q round-off.
func (d NormalDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return inf
	case 1:
		return -inf
	}
	return d.Mu - d.Sigma*mathext.NormalQuantile(q)
}

func (d NormalDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.Mu + d.Sigma*rng.NormFloat64()
}
