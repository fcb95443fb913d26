// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-probdist/mathx"
)

// TDist is a Student's t-distribution with Nu degrees of freedom.
type TDist struct {
	Nu float64
}

func (d TDist) check() {
	if !(d.Nu > 0) {
		panic("dist: T requires Nu > 0")
	}
}

func (d TDist) PDF(x float64) float64 {
	d.check()
	return math.Exp(d.LogPDF(x))
}

func (d TDist) LogPDF(x float64) float64 {
	d.check()
	n := d.Nu
	return mathx.Lgamma((n+1)/2) - mathx.Lgamma(n/2) -
		math.Log(n*math.Pi)/2 - (n+1)/2*math.Log1p(x*x/n)
}

// tail returns P(T > |x|) via the incomplete beta function; it is the
// accurate primitive for both tails of this symmetric distribution.
func (d TDist) tail(ax float64) float64 {
	return 0.5 * mathx.BetaInc(d.Nu/(d.Nu+ax*ax), d.Nu/2, 0.5)
}

func (d TDist) CDF(x float64) float64 {
	d.check()
	if x < 0 {
		return d.tail(-x)
	}
	// The complement here is at least 1/2, so the subtraction
	// costs at most one ULP.
	return 1 - d.tail(x)
}

func (d TDist) SF(x float64) float64 {
	d.check()
	if x > 0 {
		return d.tail(x)
	}
	return 1 - d.tail(-x)
}

func (d TDist) Bounds() (float64, float64) {
	return -inf, inf
}

func (d TDist) Mean() float64 {
	d.check()
	if d.Nu <= 1 {
		return nan
	}
	return 0
}

func (d TDist) Variance() float64 {
	d.check()
	switch {
	case d.Nu <= 1:
		return nan
	case d.Nu <= 2:
		return inf
	}
	return d.Nu / (d.Nu - 2)
}

// invTail returns the positive x with tail(x) == q, for q ≤ 1/2.
func (d TDist) invTail(q float64) float64 {
	t := mathx.InvBetaInc(2*q, d.Nu/2, 0.5)
	return math.Sqrt(d.Nu * (1 - t) / t)
}

func (d TDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch {
	case p == 0:
		return -inf
	case p == 1:
		return inf
	case p == 0.5:
		return 0
	case p < 0.5:
		return -d.invTail(p)
	}
	return d.invTail(1 - p)
}

// InvSF is the negation of InvCDF by symmetry, so a small survival
// target resolves in the tail where it is accurate.
func (d TDist) InvSF(q float64) float64 {
	d.check()
	return -d.InvCDF(q)
}

func (d TDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.InvCDF(rng.Float64())
}
