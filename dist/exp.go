// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// ExpDist is an exponential distribution with rate Lambda.
type ExpDist struct {
	Lambda float64
}

func (d ExpDist) check() {
	if !(d.Lambda > 0) {
		panic("dist: Exp requires Lambda > 0")
	}
}

func (d ExpDist) PDF(x float64) float64 {
	d.check()
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExpDist) LogPDF(x float64) float64 {
	d.check()
	if x < 0 {
		return -inf
	}
	return math.Log(d.Lambda) - d.Lambda*x
}

// CDF is computed with expm1 so it keeps relative accuracy near 0,
// where 1-exp(-λx) would round to λx with total cancellation of the
// correction terms.
func (d ExpDist) CDF(x float64) float64 {
	d.check()
	if x < 0 {
		return 0
	}
	return -math.Expm1(-d.Lambda * x)
}

func (d ExpDist) SF(x float64) float64 {
	d.check()
	if x < 0 {
		return 1
	}
	return math.Exp(-d.Lambda * x)
}

func (d ExpDist) Bounds() (float64, float64) {
	return 0, inf
}

func (d ExpDist) Mean() float64 {
	d.check()
	return 1 / d.Lambda
}

func (d ExpDist) Variance() float64 {
	d.check()
	return 1 / (d.Lambda * d.Lambda)
}

func (d ExpDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return -math.Log1p(-p) / d.Lambda
}

func (d ExpDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return inf
	case 1:
		return 0
	}
	return -math.Log(q) / d.Lambda
}

func (d ExpDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return rng.ExpFloat64() / d.Lambda
}
