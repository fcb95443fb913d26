// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// ParetoDist is a Pareto (type I) distribution with scale Xm and
// shape Alpha. Its support is [Xm, ∞).
type ParetoDist struct {
	Xm, Alpha float64
}

func (d ParetoDist) check() {
	if !(d.Xm > 0) || !(d.Alpha > 0) {
		panic("dist: Pareto requires Xm > 0 and Alpha > 0")
	}
}

func (d ParetoDist) PDF(x float64) float64 {
	d.check()
	if x < d.Xm {
		return 0
	}
	return d.Alpha / x * math.Exp(d.Alpha*math.Log(d.Xm/x))
}

func (d ParetoDist) LogPDF(x float64) float64 {
	d.check()
	if x < d.Xm {
		return -inf
	}
	return math.Log(d.Alpha/x) + d.Alpha*math.Log(d.Xm/x)
}

func (d ParetoDist) CDF(x float64) float64 {
	d.check()
	if x <= d.Xm {
		return 0
	}
	return -math.Expm1(d.Alpha * math.Log(d.Xm/x))
}

func (d ParetoDist) SF(x float64) float64 {
	d.check()
	if x <= d.Xm {
		return 1
	}
	return math.Exp(d.Alpha * math.Log(d.Xm/x))
}

func (d ParetoDist) Bounds() (float64, float64) {
	return d.Xm, inf
}

func (d ParetoDist) Mean() float64 {
	d.check()
	if d.Alpha <= 1 {
		return inf
	}
	return d.Alpha * d.Xm / (d.Alpha - 1)
}

func (d ParetoDist) Variance() float64 {
	d.check()
	switch {
	case d.Alpha <= 1:
		return nan
	case d.Alpha <= 2:
		return inf
	}
	return d.Xm * d.Xm * d.Alpha /
		((d.Alpha - 1) * (d.Alpha - 1) * (d.Alpha - 2))
}

func (d ParetoDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return d.Xm
	case 1:
		return inf
	}
	return d.Xm * math.Exp(-math.Log1p(-p)/d.Alpha)
}

func (d ParetoDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return inf
	case 1:
		return d.Xm
	}
	return d.Xm * math.Pow(q, -1/d.Alpha)
}

func (d ParetoDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.Xm * math.Exp(rng.ExpFloat64()/d.Alpha)
}
