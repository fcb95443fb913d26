// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// LogisticDist is a logistic distribution with location Mu and scale
// S.
type LogisticDist struct {
	Mu, S float64
}

func (d LogisticDist) check() {
	if !(d.S > 0) {
		panic("dist: Logistic requires S > 0")
	}
}

func (d LogisticDist) PDF(x float64) float64 {
	d.check()
	// exp(-|z|) keeps the intermediate bounded in both tails.
	e := math.Exp(-math.Abs((x - d.Mu) / d.S))
	return e / (d.S * (1 + e) * (1 + e))
}

func (d LogisticDist) LogPDF(x float64) float64 {
	d.check()
	az := math.Abs((x - d.Mu) / d.S)
	return -az - math.Log(d.S) - 2*math.Log1p(math.Exp(-az))
}

func (d LogisticDist) CDF(x float64) float64 {
	d.check()
	return 1 / (1 + math.Exp(-(x-d.Mu)/d.S))
}

// SF is the reflection of CDF, so each carries full relative accuracy
// in its own tail.
func (d LogisticDist) SF(x float64) float64 {
	d.check()
	return 1 / (1 + math.Exp((x-d.Mu)/d.S))
}

func (d LogisticDist) Bounds() (float64, float64) {
	return -inf, inf
}

func (d LogisticDist) Mean() float64 {
	d.check()
	return d.Mu
}

func (d LogisticDist) Variance() float64 {
	d.check()
	return math.Pi * math.Pi * d.S * d.S / 3
}

func (d LogisticDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.Mu + d.S*(math.Log(p)-math.Log1p(-p))
}

func (d LogisticDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return inf
	case 1:
		return -inf
	}
	return d.Mu + d.S*(math.Log1p(-q)-math.Log(q))
}

func (d LogisticDist) Rand(rng *rand.Rand) float64 {
	d.check()
	u := rng.Float64()
	return d.Mu + d.S*(math.Log(u)-math.Log1p(-u))
}
