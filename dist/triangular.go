// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// TriangularDist is a triangular distribution on [A, B] with mode C.
type TriangularDist struct {
	A, B, C float64
}

func (d TriangularDist) check() {
	if !(d.A < d.B) || !(d.A <= d.C && d.C <= d.B) {
		panic("dist: Triangular requires A < B and A ≤ C ≤ B")
	}
}

func (d TriangularDist) PDF(x float64) float64 {
	d.check()
	switch {
	case x < d.A || x > d.B:
		return 0
	case x < d.C:
		return 2 * (x - d.A) / ((d.B - d.A) * (d.C - d.A))
	case x == d.C:
		return 2 / (d.B - d.A)
	}
	return 2 * (d.B - x) / ((d.B - d.A) * (d.B - d.C))
}

func (d TriangularDist) LogPDF(x float64) float64 {
	d.check()
	p := d.PDF(x)
	if p == 0 {
		return -inf
	}
	return math.Log(p)
}

func (d TriangularDist) CDF(x float64) float64 {
	d.check()
	switch {
	case x <= d.A:
		return 0
	case x >= d.B:
		return 1
	case x <= d.C:
		return (x - d.A) * (x - d.A) / ((d.B - d.A) * (d.C - d.A))
	}
	return 1 - (d.B-x)*(d.B-x)/((d.B-d.A)*(d.B-d.C))
}

// SF mirrors CDF about the mode, keeping the (B-x)² form for the
// upper tail where it is exact.
func (d TriangularDist) SF(x float64) float64 {
	d.check()
	switch {
	case x <= d.A:
		return 1
	case x >= d.B:
		return 0
	case x <= d.C:
		return 1 - (x-d.A)*(x-d.A)/((d.B-d.A)*(d.C-d.A))
	}
	return (d.B - x) * (d.B - x) / ((d.B - d.A) * (d.B - d.C))
}

func (d TriangularDist) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d TriangularDist) Mean() float64 {
	d.check()
	return (d.A + d.B + d.C) / 3
}

func (d TriangularDist) Variance() float64 {
	d.check()
	a, b, c := d.A, d.B, d.C
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d TriangularDist) InvCDF(p float64) float64 {
	d.check()
	checkProb(p)
	switch p {
	case 0:
		return d.A
	case 1:
		return d.B
	}
	if p <= (d.C-d.A)/(d.B-d.A) {
		return d.A + math.Sqrt(p*(d.B-d.A)*(d.C-d.A))
	}
	return d.B - math.Sqrt((1-p)*(d.B-d.A)*(d.B-d.C))
}

func (d TriangularDist) InvSF(q float64) float64 {
	d.check()
	checkProb(q)
	switch q {
	case 0:
		return d.B
	case 1:
		return d.A
	}
	if q <= (d.B-d.C)/(d.B-d.A) {
		return d.B - math.Sqrt(q*(d.B-d.A)*(d.B-d.C))
	}
	return d.A + math.Sqrt((1-q)*(d.B-d.A)*(d.C-d.A))
}

func (d TriangularDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return d.InvCDF(rng.Float64())
}
