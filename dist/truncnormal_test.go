// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/aclements/go-probdist/tol"
)

var truncWindows = [][2]float64{
	{-1, 1},
	{-2, 0.5},
	{0, 3},
	{1.23, 4.56},
	{-4.56, -1.23},
	{5, 6},
	{-6, -5},
	{8, 8.5},
	{30, 31},
	{-31, -30},
	{100, 100.001},
	{-0.5, 0.5},
	{math.Inf(-1), 0},
	{0, math.Inf(1)},
	{2, math.Inf(1)},
	{math.Inf(-1), -2},
	{math.Inf(-1), math.Inf(1)},
}

// TestTruncNormMoments pins the standardized window moments to
// independently computed reference values.
func TestTruncNormMoments(t *testing.T) {
	m1 := tol.Rel(5e-15)
	v := tol.Rel(1e-14)
	// 1 - 2φ(1)/erf(1/√2), worked out to 12 digits.
	vCoarse := tol.Rel(1e-10)

	for _, test := range []struct {
		a, b           float64
		mean, variance float64
		vCmp           tol.Cmp
	}{
		// Same-sign window well into the upper tail.
		{1.23, 4.56, 1.7122093853640246, 0.1739856461219162, v},
		// Window straddling zero.
		{-1, 1, 0, 0.2911250947732, vCoarse},
		// One-sided windows.
		{0, math.Inf(1), 0.7978845608028654, 0.3633802276324186, v},
		{math.Inf(-1), math.Inf(1), 0, 1, v},
	} {
		gotM := truncNormMoment1(test.a, test.b)
		if test.mean == 0 {
			if gotM != 0 {
				t.Errorf("moment1(%v, %v) = %v, want 0", test.a, test.b, gotM)
			}
		} else if !m1(test.mean, gotM) {
			t.Errorf("moment1(%v, %v) = %v, want %v", test.a, test.b, gotM, test.mean)
		}
		if gotV := truncNormVariance(test.a, test.b); !test.vCmp(test.variance, gotV) {
			t.Errorf("variance(%v, %v) = %v, want %v", test.a, test.b, gotV, test.variance)
		}
	}
}

// TestTruncNormSymmetry checks that mirrored windows give bit-exact
// negated means and bit-exact equal variances.
func TestTruncNormSymmetry(t *testing.T) {
	for _, w := range truncWindows {
		a, b := w[0], w[1]
		m, mr := truncNormMoment1(a, b), truncNormMoment1(-b, -a)
		if m != -mr {
			t.Errorf("moment1(%v, %v) = %v, but moment1(%v, %v) = %v", a, b, m, -b, -a, mr)
		}
		v, vr := truncNormVariance(a, b), truncNormVariance(-b, -a)
		if v != vr {
			t.Errorf("variance(%v, %v) = %v, but variance(%v, %v) = %v", a, b, v, -b, -a, vr)
		}
	}
}

// TestTruncNormBounds checks the structural invariants of the window
// moments: the mean lies inside the window, the variance is
// nonnegative and no larger than both the uniform-limit bound for
// narrow windows and the untruncated variance.
func TestTruncNormBounds(t *testing.T) {
	for _, w := range truncWindows {
		a, b := w[0], w[1]
		m := truncNormMoment1(a, b)
		if !(a <= m && m <= b) {
			t.Errorf("moment1(%v, %v) = %v outside window", a, b, m)
		}
		v := truncNormVariance(a, b)
		if !(v >= 0) {
			t.Errorf("variance(%v, %v) = %v, want ≥ 0", a, b, v)
		}
		// The uniform distribution maximizes variance among
		// log-concave laws on a fixed window. The slack covers
		// cancellation noise in near-uniform far-tail windows.
		if w := b - a; isFinite(w) && v > w*w/12*(1+1e-6)+1e-9 {
			t.Errorf("variance(%v, %v) = %v exceeds uniform bound %v", a, b, v, w*w/12)
		}
	}
}

// TestTruncNormNarrowWindow checks degradation to the uniform limit.
func TestTruncNormNarrowWindow(t *testing.T) {
	uni := tol.Rel(1e-6)
	for _, test := range []struct{ a, w float64 }{
		{0, 1e-9},
		{3, 1e-10},
		{-7, 1e-12},
		{1e5, 1e-14},
	} {
		a, b := test.a, test.a+test.w
		mid := a + test.w/2
		if m := truncNormMoment1(a, b); !uni(mid, m) {
			t.Errorf("moment1(%v, %v) = %v, want midpoint %v", a, b, m, mid)
		}
		// b-a reconstructs the width only to ulp(a), so allow
		// a percent of slack on the uniform limit.
		want := test.w * test.w / 12
		if v := truncNormVariance(a, b); !(0 <= v && v <= want*1.01) {
			t.Errorf("variance(%v, %v) = %v, want in [0, %v]", a, b, v, want)
		}
	}
	// A zero-width window is a point mass.
	if m := truncNormMoment1(2, 2); m != 2 {
		t.Errorf("moment1(2, 2) = %v, want 2", m)
	}
	if v := truncNormVariance(2, 2); v != 0 {
		t.Errorf("variance(2, 2) = %v, want 0", v)
	}
}

// TestTruncNormWideWindow checks convergence to the untruncated
// moments as the window swallows the whole line.
func TestTruncNormWideWindow(t *testing.T) {
	cmp := tol.Or(tol.Abs(1e-12), tol.Rel(1e-12))
	for _, k := range []float64{10, 20, 38} {
		if m := truncNormMoment1(-k, k); m != 0 {
			t.Errorf("moment1(-%v, %v) = %v, want 0", k, k, m)
		}
		if v := truncNormVariance(-k, k); !cmp(1, v) {
			t.Errorf("variance(-%v, %v) = %v, want 1", k, k, v)
		}
	}
}

// TestTruncNormFarTail checks the scaled-complement evaluation deep in
// the tail, where naive CDF differences would cancel to zero.
func TestTruncNormFarTail(t *testing.T) {
	// For a window [a, b] far in the upper tail the distribution
	// concentrates just above a, approaching Exp(a) in shape, so
	// the mean approaches a + 1/a and the variance 1/a².
	for _, a := range []float64{20, 50, 100} {
		b := a + 1
		m := truncNormMoment1(a, b)
		if !(a < m && m < a+2/a) {
			t.Errorf("moment1(%v, %v) = %v, want in (%v, %v)", a, b, m, a, a+2/a)
		}
		v := truncNormVariance(a, b)
		if !(0 < v && v < 2/(a*a)) {
			t.Errorf("variance(%v, %v) = %v, want in (0, %v)", a, b, v, 2/(a*a))
		}
	}
}

func TestTruncNormalDist(t *testing.T) {
	d := TruncNormalDist{Mu: 2, Sigma: 3, Lower: 0, Upper: 7}

	// The moments scale and shift from the standardized window.
	a, b := (d.Lower-d.Mu)/d.Sigma, (d.Upper-d.Mu)/d.Sigma
	if want := d.Mu + d.Sigma*truncNormMoment1(a, b); !aeq(want, d.Mean()) {
		t.Errorf("Mean() = %v, want %v", d.Mean(), want)
	}
	if want := d.Sigma * d.Sigma * truncNormVariance(a, b); !aeq(want, d.Variance()) {
		t.Errorf("Variance() = %v, want %v", d.Variance(), want)
	}

	// CDF and SF are exact at the window edges.
	if got := d.CDF(d.Lower); got != 0 {
		t.Errorf("CDF(Lower) = %v, want 0", got)
	}
	if got := d.CDF(d.Upper); got != 1 {
		t.Errorf("CDF(Upper) = %v, want 1", got)
	}
	if got := d.SF(d.Lower); got != 1 {
		t.Errorf("SF(Lower) = %v, want 1", got)
	}
	if got := d.SF(d.Upper); got != 0 {
		t.Errorf("SF(Upper) = %v, want 0", got)
	}

	// The density integrates to one over the window (trapezoid
	// sanity check, coarse tolerance).
	const n = 10001
	sum, h := 0.0, (d.Upper-d.Lower)/(n-1)
	for i := 0; i < n; i++ {
		w := 1.0
		if i == 0 || i == n-1 {
			w = 0.5
		}
		sum += w * d.PDF(d.Lower+float64(i)*h)
	}
	if got := sum * h; !tol.Rel(1e-6)(1, got) {
		t.Errorf("∫PDF = %v, want 1", got)
	}

	// An infinite window reduces to the untruncated normal.
	full := TruncNormalDist{Mu: 2, Sigma: 3, Lower: math.Inf(-1), Upper: math.Inf(1)}
	norm := NormalDist{Mu: 2, Sigma: 3}
	for _, x := range []float64{-5, 0, 2, 4, 11} {
		if !aeq(norm.CDF(x), full.CDF(x)) {
			t.Errorf("full-window CDF(%v) = %v, want %v", x, full.CDF(x), norm.CDF(x))
		}
		if !aeq(norm.PDF(x), full.PDF(x)) {
			t.Errorf("full-window PDF(%v) = %v, want %v", x, full.PDF(x), norm.PDF(x))
		}
	}

	mustPanic(t, "inverted window", func() { TruncNormalDist{Mu: 0, Sigma: 1, Lower: 1, Upper: -1}.Mean() })
	mustPanic(t, "bad sigma", func() { TruncNormalDist{Mu: 0, Sigma: -1, Lower: 0, Upper: 1}.Mean() })
}
