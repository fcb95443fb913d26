// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/aclements/go-probdist/tol"
)

func TestFoldedNormalHalf(t *testing.T) {
	// Mu = 0 is the half-normal: CDF(x) = erf(x/(σ√2)).
	d := FoldedNormalDist{Mu: 0, Sigma: 2}
	for _, x := range []float64{0, 0.5, 2, 7} {
		want := math.Erf(x / (2 * math.Sqrt2))
		if got := d.CDF(x); !aeq(want, got) {
			t.Errorf("CDF(%v) = %v, want %v", x, got, want)
		}
	}
	// Mean σ√(2/π), variance σ²(1 - 2/π).
	if got, want := d.Mean(), 2*math.Sqrt(2/math.Pi); !aeq(want, got) {
		t.Errorf("Mean() = %v, want %v", got, want)
	}
	if got, want := d.Variance(), 4*(1-2/math.Pi); !tol.Rel(1e-12)(want, got) {
		t.Errorf("Variance() = %v, want %v", got, want)
	}
}

func TestFoldedNormalCDF(t *testing.T) {
	// |X| for X ~ N(μ, σ²) folds both normal tails.
	d := FoldedNormalDist{Mu: 3, Sigma: 2}
	n := NormalDist{Mu: 3, Sigma: 2}
	cmp := tol.Or(tol.Abs(1e-15), tol.Rel(1e-11))
	for _, x := range []float64{0.1, 1, 2.9, 3, 5, 12} {
		want := n.CDF(x) - n.CDF(-x)
		if got := d.CDF(x); !cmp(want, got) {
			t.Errorf("CDF(%v) = %v, want %v", x, got, want)
		}
	}
	// The density folds symmetrically.
	for _, x := range []float64{0.5, 2, 6} {
		want := n.PDF(x) + n.PDF(-x)
		if got := d.PDF(x); !aeq(want, got) {
			t.Errorf("PDF(%v) = %v, want %v", x, got, want)
		}
	}
	if got := d.PDF(-1); got != 0 {
		t.Errorf("PDF(-1) = %v, want 0", got)
	}
	if got := d.CDF(-1); got != 0 {
		t.Errorf("CDF(-1) = %v, want 0", got)
	}
}

// TestFoldedNormalSmallX exercises the scaled-complement branch, where
// the naive erf difference loses all significance.
func TestFoldedNormalSmallX(t *testing.T) {
	d := FoldedNormalDist{Mu: 12, Sigma: 1}
	phi := func(t float64) float64 { return math.Exp(-t*t/2) * invSqrt2Pi }
	// P(|X| ≤ x) is the normal mass on [μ-x, μ+x], where the
	// density is decreasing, so the rectangle rule brackets it.
	for _, x := range []float64{0.001, 0.01, 0.1} {
		got := d.CDF(x)
		lo, hi := 2*x*phi(12+x), 2*x*phi(12-x)
		if !(lo <= got && got <= hi) {
			t.Errorf("CDF(%v) = %v, want in [%v, %v]", x, got, lo, hi)
		}
	}
}

func TestFoldedNormalMoments(t *testing.T) {
	// Large μ/σ: folding is negligible and the moments approach
	// the underlying normal's.
	d := FoldedNormalDist{Mu: 40, Sigma: 1}
	if got := d.Mean(); !tol.Rel(1e-12)(40, got) {
		t.Errorf("Mean() = %v, want ≈ 40", got)
	}
	if got := d.Variance(); !tol.Rel(1e-6)(1, got) {
		t.Errorf("Variance() = %v, want ≈ 1", got)
	}
	// The sign of μ is irrelevant after folding.
	a, b := FoldedNormalDist{Mu: 1.5, Sigma: 2}, FoldedNormalDist{Mu: -1.5, Sigma: 2}
	for _, x := range []float64{0.2, 1.5, 4} {
		if a.CDF(x) != b.CDF(x) {
			t.Errorf("CDF(%v) differs across ±Mu: %v vs %v", x, a.CDF(x), b.CDF(x))
		}
	}

	mustPanic(t, "Sigma = 0", func() { FoldedNormalDist{Mu: 1, Sigma: 0}.CDF(1) })
	mustPanic(t, "Mu NaN", func() { FoldedNormalDist{Mu: math.NaN(), Sigma: 1}.CDF(1) })
}
