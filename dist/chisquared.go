// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// ChiSquaredDist is a χ² distribution with K degrees of freedom.
//
// It is the gamma distribution with shape K/2 and scale 2, and all
// operations delegate to that form.
type ChiSquaredDist struct {
	K float64
}

func (d ChiSquaredDist) check() {
	if !(d.K > 0) {
		panic("dist: ChiSquared requires K > 0")
	}
}

func (d ChiSquaredDist) gamma() GammaDist {
	return GammaDist{K: d.K / 2, Theta: 2}
}

func (d ChiSquaredDist) PDF(x float64) float64 {
	d.check()
	return d.gamma().PDF(x)
}

func (d ChiSquaredDist) LogPDF(x float64) float64 {
	d.check()
	return d.gamma().LogPDF(x)
}

func (d ChiSquaredDist) CDF(x float64) float64 {
	d.check()
	return d.gamma().CDF(x)
}

func (d ChiSquaredDist) SF(x float64) float64 {
	d.check()
	return d.gamma().SF(x)
}

func (d ChiSquaredDist) Bounds() (float64, float64) {
	return 0, inf
}

func (d ChiSquaredDist) Mean() float64 {
	d.check()
	return d.K
}

func (d ChiSquaredDist) Variance() float64 {
	d.check()
	return 2 * d.K
}

func (d ChiSquaredDist) InvCDF(p float64) float64 {
	d.check()
	return d.gamma().InvCDF(p)
}

func (d ChiSquaredDist) InvSF(q float64) float64 {
	d.check()
	return d.gamma().InvSF(q)
}

func (d ChiSquaredDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.gamma().Rand(rng)
}
