// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// LogUniformDist is a log-uniform (reciprocal) distribution on
// [Min, Max], 0 < Min < Max: the logarithm of a draw is uniformly
// distributed on [log(Min), log(Max)].
type LogUniformDist struct {
	Min, Max float64
}

func (d LogUniformDist) check() {
	if !(0 < d.Min) || !(d.Min < d.Max) || math.IsInf(d.Max, 0) {
		panic("dist: LogUniform requires 0 < Min < Max, finite")
	}
}

func (d LogUniformDist) width() float64 {
	return math.Log(d.Max / d.Min)
}

func (d LogUniformDist) PDF(x float64) float64 {
	d.check()
	if x < d.Min || x > d.Max {
		return 0
	}
	return 1 / (x * d.width())
}

func (d LogUniformDist) LogPDF(x float64) float64 {
	d.check()
	if x < d.Min || x > d.Max {
		return -inf
	}
	return -math.Log(x) - math.Log(d.width())
}

func (d LogUniformDist) CDF(x float64) float64 {
	d.check()
	switch {
	case x <= d.Min:
		return 0
	case x >= d.Max:
		return 1
	}
	return math.Log(x/d.Min) / d.width()
}

// SF measures from the upper end of the support, staying accurate for
// x near Max.
func (d LogUniformDist) SF(x float64) float64 {
	d.check()
	switch {
	case x <= d.Min:
		return 1
	case x >= d.Max:
		return 0
	}
	return math.Log(d.Max/x) / d.width()
}

func (d LogUniformDist) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d LogUniformDist) Mean() float64 {
	d.check()
	return (d.Max - d.Min) / d.width()
}

func (d LogUniformDist) Variance() float64 {
	d.check()
	m := d.Mean()
	v := (d.Max*d.Max-d.Min*d.Min)/(2*d.width()) - m*m
	if v < 0 {
		return 0
	}
	return v
}

func (d LogUniformDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return d.Min
	case 1:
		return d.Max
	}
	return d.Min * math.Exp(p*d.width())
}

func (d LogUniformDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return d.Max
	case 1:
		return d.Min
	}
	return d.Max * math.Exp(-q*d.width())
}

func (d LogUniformDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.Min * math.Exp(rng.Float64()*d.width())
}
