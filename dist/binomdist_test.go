// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"

	"github.com/aclements/go-probdist/tol"
)

func TestBinomialDist(t *testing.T) {
	d := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF(%%v)", d), d.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(d.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF(%%v)", d), d)
	testDiscreteSF(t, fmt.Sprintf("%+v.SF", d), d)

	d = BinomialDist{N: 30, P: 0.5}
	norm := d.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := d.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialTail(t *testing.T) {
	// The survival function comes from the incomplete beta
	// identity, so the upper tail holds relative precision where
	// summing 1-CDF would not. P(X ≥ 90 of 100 at p=1/2) is
	// C(100,k) summed directly over k ≥ 90.
	d := BinomialDist{N: 100, P: 0.5}
	sum := 0.0
	for k := 100.0; k >= 90; k-- {
		sum += d.PMF(k)
	}
	if got := d.SF(89); !tol.Rel(1e-10)(sum, got) {
		t.Errorf("SF(89) = %v, want %v", got, sum)
	}
}

func TestBinomialLogPMF(t *testing.T) {
	d := BinomialDist{N: 50, P: 0.3}
	for _, k := range []float64{0, 1, 15, 35, 50} {
		want := math.Log(d.PMF(k))
		if got := d.LogPMF(k); !tol.Or(tol.Abs(1e-12), tol.Rel(1e-12))(want, got) {
			t.Errorf("LogPMF(%v) = %v, want %v", k, got, want)
		}
	}
	if got := d.LogPMF(-1); !math.IsInf(got, -1) {
		t.Errorf("LogPMF(-1) = %v, want -Inf", got)
	}
	// Degenerate success probabilities.
	if got := (BinomialDist{N: 10, P: 0}).LogPMF(0); got != 0 {
		t.Errorf("LogPMF(0) at P=0 = %v, want 0", got)
	}
	if got := (BinomialDist{N: 10, P: 1}).LogPMF(10); got != 0 {
		t.Errorf("LogPMF(10) at P=1 = %v, want 0", got)
	}
}

func TestBinomialMoments(t *testing.T) {
	d := BinomialDist{N: 20, P: 0.25}
	if got := d.Mean(); got != 5 {
		t.Errorf("Mean() = %v, want 5", got)
	}
	if got := d.Variance(); got != 3.75 {
		t.Errorf("Variance() = %v, want 3.75", got)
	}
	mustPanic(t, "N < 0", func() { BinomialDist{N: -1, P: 0.5}.PMF(0) })
	mustPanic(t, "P > 1", func() { BinomialDist{N: 5, P: 1.5}.PMF(0) })
}
