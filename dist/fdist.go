// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-probdist/mathx"
)

// FDist is an F-distribution with D1 and D2 degrees of freedom.
type FDist struct {
	D1, D2 float64
}

func (d FDist) check() {
	if !(d.D1 > 0) || !(d.D2 > 0) {
		panic("dist: F requires D1 > 0 and D2 > 0")
	}
}

func (d FDist) PDF(x float64) float64 {
	d.check()
	if x < 0 {
		return 0
	}
	if x == 0 {
		switch {
		case d.D1 < 2:
			return inf
		case d.D1 == 2:
			return 1
		}
		return 0
	}
	return math.Exp(d.LogPDF(x))
}

func (d FDist) LogPDF(x float64) float64 {
	d.check()
	if x < 0 {
		return -inf
	}
	if x == 0 {
		p := d.PDF(x)
		if p == 0 {
			return -inf
		}
		return math.Log(p)
	}
	a, b := d.D1/2, d.D2/2
	return a*math.Log(d.D1/d.D2) + (a-1)*math.Log(x) -
		(a+b)*math.Log(1+d.D1*x/d.D2) - mathx.Lbeta(a, b)
}

func (d FDist) CDF(x float64) float64 {
	d.check()
	if x <= 0 {
		return 0
	}
	return mathx.BetaInc(d.D1*x/(d.D1*x+d.D2), d.D1/2, d.D2/2)
}

// SF uses the swapped-parameter form of the incomplete beta function;
// its argument d2/(d1·x+d2) is computed directly rather than as a
// complement, so the upper tail keeps full relative accuracy.
func (d FDist) SF(x float64) float64 {
	d.check()
	if x <= 0 {
		return 1
	}
	return mathx.BetaInc(d.D2/(d.D1*x+d.D2), d.D2/2, d.D1/2)
}

func (d FDist) Bounds() (float64, float64) {
	return 0, inf
}

func (d FDist) Mean() float64 {
	d.check()
	if d.D2 <= 2 {
		return inf
	}
	return d.D2 / (d.D2 - 2)
}

func (d FDist) Variance() float64 {
	d.check()
	switch {
	case d.D2 <= 2:
		return nan
	case d.D2 <= 4:
		return inf
	}
	return 2 * d.D2 * d.D2 * (d.D1 + d.D2 - 2) /
		(d.D1 * (d.D2 - 2) * (d.D2 - 2) * (d.D2 - 4))
}

func (d FDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	t := mathx.InvBetaInc(p, d.D1/2, d.D2/2)
	return d.D2 * t / (d.D1 * (1 - t))
}

func (d FDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return inf
	case 1:
		return 0
	}
	t := mathx.InvBetaInc(q, d.D2/2, d.D1/2)
	return d.D2 * (1 - t) / (d.D1 * t)
}

func (d FDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.InvCDF(rng.Float64())
}
