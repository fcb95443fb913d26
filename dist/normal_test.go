// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/aclements/go-probdist/tol"
)

func TestNormalCDF(t *testing.T) {
	testFunc(t, "StdNormal.CDF(%v)", StdNormal.CDF, map[float64]float64{
		0:  0.5,
		1:  0.8413447460685429,
		2:  0.9772498680518208,
		-1: 0.15865525393145705,
		-2: 0.02275013194817921,
	})

	// Shift and scale.
	d := NormalDist{Mu: 3, Sigma: 2}
	for _, z := range []float64{-2, -0.5, 0, 1, 2.5} {
		if got, want := d.CDF(3+2*z), StdNormal.CDF(z); !aeq(want, got) {
			t.Errorf("CDF(%v) = %v, want %v", 3+2*z, got, want)
		}
	}
}

func TestNormalTails(t *testing.T) {
	// Deep-tail survival probabilities keep full relative
	// precision; 1-CDF would return 0 out here.
	rel := tol.Rel(1e-12)
	if got, want := StdNormal.SF(10), 7.619853024160526e-24; !rel(want, got) {
		t.Errorf("SF(10) = %v, want %v", got, want)
	}
	// Mills ratio sandwich: φ(x)(1/x - 1/x³) < SF(x) < φ(x)/x.
	for _, x := range []float64{10, 15, 20, 25} {
		pdf := math.Exp(-x*x/2) * invSqrt2Pi
		got := StdNormal.SF(x)
		if !(pdf*(1/x-1/(x*x*x)) < got && got < pdf/x) {
			t.Errorf("SF(%v) = %v outside Mills bounds", x, got)
		}
		// Symmetry with the lower tail.
		if lower := StdNormal.CDF(-x); !rel(got, lower) {
			t.Errorf("CDF(%v) = %v, want %v", -x, lower, got)
		}
	}
}

func TestNormalInvCDF(t *testing.T) {
	inv := StdNormal.InvCDF
	testFunc(t, "StdNormal.InvCDF(%v)", inv, map[float64]float64{
		0.5:   0,
		0.975: 1.959963984540054,
		0.025: -1.959963984540054,
	})
	// Round trip across the body of the distribution.
	for _, p := range probs {
		if got := StdNormal.CDF(inv(p)); !aeq(p, got) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, got)
		}
	}
	// InvSF is the mirror image, without any 1-q loss.
	for _, q := range []float64{0.3, 1e-10, 1e-100} {
		if got, want := StdNormal.InvSF(q), -inv(q); got != want {
			t.Errorf("InvSF(%v) = %v, want %v", q, got, want)
		}
	}
}

func TestNormalPDF(t *testing.T) {
	testFunc(t, "StdNormal.PDF(%v)", StdNormal.PDF, map[float64]float64{
		0: 0.3989422804014327,
		1: 0.24197072451914337,
		2: 0.05399096651318806,
	})
	// LogPDF stays finite far beyond where PDF underflows.
	x := 40.0
	if got := StdNormal.PDF(x); got != 0 {
		t.Errorf("PDF(%v) = %v, want underflow to 0", x, got)
	}
	want := -x*x/2 - 0.5*log2Pi
	if got := StdNormal.LogPDF(x); !aeq(want, got) {
		t.Errorf("LogPDF(%v) = %v, want %v", x, got, want)
	}
}

func TestNormalMoments(t *testing.T) {
	d := NormalDist{Mu: -2, Sigma: 3}
	if got := d.Mean(); got != -2 {
		t.Errorf("Mean() = %v, want -2", got)
	}
	if got := d.Variance(); got != 9 {
		t.Errorf("Variance() = %v, want 9", got)
	}
	mustPanic(t, "Sigma = 0", func() { NormalDist{Mu: 0, Sigma: 0}.PDF(0) })
	mustPanic(t, "Sigma < 0", func() { NormalDist{Mu: 0, Sigma: -1}.CDF(0) })
	mustPanic(t, "Sigma NaN", func() { NormalDist{Mu: 0, Sigma: math.NaN()}.Mean() })
}
