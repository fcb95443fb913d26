// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// GeometricDist is the distribution of the number of failures before
// the first success in independent Bernoulli trials with success
// probability P. Its support is {0, 1, 2, ...}.
type GeometricDist struct {
	P float64
}

func (d GeometricDist) check() {
	if !(d.P > 0) || !(d.P <= 1) {
		panic("dist: Geometric requires P in (0, 1]")
	}
}

func (d GeometricDist) PMF(k float64) float64 {
	d.check()
	ki := math.Floor(k)
	if ki < 0 {
		return 0
	}
	if d.P == 1 {
		// Avoid 0·log(0) at the point mass.
		if ki == 0 {
			return 1
		}
		return 0
	}
	return d.P * math.Exp(ki*math.Log1p(-d.P))
}

func (d GeometricDist) LogPMF(k float64) float64 {
	d.check()
	ki := math.Floor(k)
	if ki < 0 {
		return -inf
	}
	if d.P == 1 {
		if ki == 0 {
			return 0
		}
		return -inf
	}
	return math.Log(d.P) + ki*math.Log1p(-d.P)
}

func (d GeometricDist) CDF(k float64) float64 {
	d.check()
	ki := math.Floor(k)
	if ki < 0 {
		return 0
	}
	return -math.Expm1((ki + 1) * math.Log1p(-d.P))
}

func (d GeometricDist) SF(k float64) float64 {
	d.check()
	ki := math.Floor(k)
	if ki < 0 {
		return 1
	}
	return math.Exp((ki + 1) * math.Log1p(-d.P))
}

func (d GeometricDist) Step() float64 {
	return 1
}

func (d GeometricDist) Bounds() (float64, float64) {
	return 0, inf
}

func (d GeometricDist) Mean() float64 {
	d.check()
	return (1 - d.P) / d.P
}

func (d GeometricDist) Variance() float64 {
	d.check()
	return (1 - d.P) / (d.P * d.P)
}

func (d GeometricDist) Rand(rng *rand.Rand) float64 {
	d.check()
	if d.P == 1 {
		return 0
	}
	return math.Floor(-rng.ExpFloat64() / math.Log1p(-d.P))
}
