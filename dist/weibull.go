// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-probdist/mathx"
)

// WeibullDist is a Weibull distribution with shape K and scale
// Lambda.
type WeibullDist struct {
	K, Lambda float64
}

func (d WeibullDist) check() {
	if !(d.K > 0) || !(d.Lambda > 0) {
		panic("dist: Weibull requires K > 0 and Lambda > 0")
	}
}

func (d WeibullDist) PDF(x float64) float64 {
	d.check()
	if x < 0 {
		return 0
	}
	z := x / d.Lambda
	return d.K / d.Lambda * math.Pow(z, d.K-1) * math.Exp(-math.Pow(z, d.K))
}

func (d WeibullDist) LogPDF(x float64) float64 {
	d.check()
	if x < 0 {
		return -inf
	}
	if x == 0 {
		switch {
		case d.K < 1:
			return inf
		case d.K == 1:
			return -math.Log(d.Lambda)
		}
		return -inf
	}
	z := x / d.Lambda
	return math.Log(d.K/d.Lambda) + (d.K-1)*math.Log(z) - math.Pow(z, d.K)
}

func (d WeibullDist) CDF(x float64) float64 {
	d.check()
	if x < 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.Lambda, d.K))
}

func (d WeibullDist) SF(x float64) float64 {
	d.check()
	if x < 0 {
		return 1
	}
	return math.Exp(-math.Pow(x/d.Lambda, d.K))
}

func (d WeibullDist) Bounds() (float64, float64) {
	return 0, inf
}

func (d WeibullDist) Mean() float64 {
	d.check()
	return d.Lambda * math.Exp(mathx.Lgamma(1+1/d.K))
}

func (d WeibullDist) Variance() float64 {
	d.check()
	g1 := math.Exp(mathx.Lgamma(1 + 1/d.K))
	g2 := math.Exp(mathx.Lgamma(1 + 2/d.K))
	v := d.Lambda * d.Lambda * (g2 - g1*g1)
	if v < 0 {
		return 0
	}
	return v
}

func (d WeibullDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return d.Lambda * math.Pow(-math.Log1p(-p), 1/d.K)
}

func (d WeibullDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return inf
	case 1:
		return 0
	}
	return d.Lambda * math.Pow(-math.Log(q), 1/d.K)
}

func (d WeibullDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.Lambda * math.Pow(rng.ExpFloat64(), 1/d.K)
}
