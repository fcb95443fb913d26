// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// UniformDist is a continuous uniform distribution on [Min, Max].
type UniformDist struct {
	Min, Max float64
}

func (d UniformDist) check() {
	if !(d.Min < d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		panic("dist: Uniform requires finite Min < Max")
	}
}

func (d UniformDist) PDF(x float64) float64 {
	d.check()
	if x < d.Min || x > d.Max {
		return 0
	}
	return 1 / (d.Max - d.Min)
}

func (d UniformDist) LogPDF(x float64) float64 {
	d.check()
	if x < d.Min || x > d.Max {
		return -inf
	}
	return -math.Log(d.Max - d.Min)
}

func (d UniformDist) CDF(x float64) float64 {
	d.check()
	switch {
	case x <= d.Min:
		return 0
	case x >= d.Max:
		return 1
	}
	return (x - d.Min) / (d.Max - d.Min)
}

// SF measures from the upper end of the support, so it stays accurate
// for x near Max.
func (d UniformDist) SF(x float64) float64 {
	d.check()
	switch {
	case x <= d.Min:
		return 1
	case x >= d.Max:
		return 0
	}
	return (d.Max - x) / (d.Max - d.Min)
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d UniformDist) Mean() float64 {
	d.check()
	return d.Min + (d.Max-d.Min)/2
}

func (d UniformDist) Variance() float64 {
	d.check()
	w := d.Max - d.Min
	return w * w / 12
}

func (d UniformDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return d.Min
	case 1:
		return d.Max
	}
	return d.Min + p*(d.Max-d.Min)
}

func (d UniformDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return d.Max
	case 1:
		return d.Min
	}
	return d.Max - q*(d.Max-d.Min)
}

func (d UniformDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.Min + rng.Float64()*(d.Max-d.Min)
}
