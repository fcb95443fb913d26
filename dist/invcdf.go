// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// InvCDF returns the inverse CDF (quantile function) of dist. For
// p in (0, 1), the returned function gives the smallest x such that
// dist.CDF(x) ≥ p, which for a discrete distribution is the smallest
// support point whose cumulative probability reaches p. InvCDF(0) is
// the lower support bound and InvCDF(1) the upper support bound,
// exactly. The returned function panics if p is not in [0, 1].
//
// If dist provides a closed-form inverse, it is used. Otherwise the
// quantile is found by bracketing and bisection using only forward
// CDF evaluations, terminating when the bracket narrows to adjacent
// float64s. If the support is unbounded, an initial bracket is built
// from the distribution's mean and variance (which bounds the
// quantile by Chebyshev's inequality), or by doubling outward when
// the moments are themselves undefined.
//
// The returned function panics if dist.CDF returns NaN at any probed
// point: that indicates a broken CDF implementation, not a numerical
// edge case.
func InvCDF(dist cdfer) func(p float64) float64 {
	if inv, ok := dist.(InvCDFer); ok {
		return inv.InvCDF
	}
	return func(p float64) float64 {
		return invCDF(dist, p)
	}
}

// InvSF returns the inverse survival function of dist: InvSF(q) is
// the smallest x such that SF(x) ≤ q. InvSF(0) is the upper support
// bound and InvSF(1) the lower support bound, exactly.
//
// The survival probability is converted to a cumulative probability
// at most once, so callers holding a small survival target should use
// this rather than composing InvCDF(1 - q) out of results of other
// subtractions. Distributions with a closed-form inverse survival
// function avoid the conversion entirely.
func InvSF(dist cdfer) func(q float64) float64 {
	if inv, ok := dist.(InvSFer); ok {
		return inv.InvSF
	}
	return func(q float64) float64 {
		checkProb(q)
		lo, hi := dist.Bounds()
		if q == 0 {
			return hi
		}
		if q == 1 {
			return lo
		}
		if inv, ok := dist.(InvCDFer); ok {
			return inv.InvCDF(1 - q)
		}
		return invCDF(dist, 1-q)
	}
}

func invCDF(dist cdfer, p float64) float64 {
	checkProb(p)
	lo, hi := dist.Bounds()
	if lo > hi {
		panic("dist: inverted support bounds")
	}
	if p == 0 {
		return lo
	}
	if p == 1 {
		return hi
	}

	cdf := func(x float64) float64 {
		y := dist.CDF(x)
		if math.IsNaN(y) {
			panic("dist: CDF returned NaN during quantile search")
		}
		return y
	}

	// Establish a finite search bracket [l, h] with cdf(h) ≥ p.
	l, h := lo, hi
	if math.IsInf(l, 0) || math.IsInf(h, 0) {
		seed, scale := 0.0, 1.0
		if m, ok := dist.(momenter); ok {
			mean, variance := m.Mean(), m.Variance()
			sd := math.Sqrt(variance)
			if isFinite(mean) && isFinite(sd) && sd > 0 {
				seed, scale = mean, sd
			}
		}
		if math.IsInf(l, -1) {
			start := seed
			if start > hi {
				start = hi
			}
			l = expand(cdf, p, start, -scale, true)
		}
		if math.IsInf(h, 1) {
			start := seed
			if start < lo {
				start = lo
			}
			h = expand(cdf, p, start, scale, false)
		}
	}

	if cdf(l) >= p {
		// All of p's mass is at or below the lower end, which
		// happens when a discrete distribution has an atom at
		// its lower bound.
		return l
	}

	// Bisect, maintaining cdf(l) < p ≤ cdf(h), until l and h are
	// adjacent float64s. h is then the smallest representable x
	// with cdf(x) ≥ p, consistent with CDF right-continuity.
	for {
		mid := l + (h-l)/2
		if math.IsInf(mid, 0) {
			mid = l/2 + h/2
		}
		if !(l < mid && mid < h) {
			break
		}
		if cdf(mid) < p {
			l = mid
		} else {
			h = mid
		}
	}
	return h
}

// expand probes geometrically away from start in the direction of
// step until the CDF is on the required side of p: strictly below p
// if lower, at or above p otherwise. The number of probes is bounded
// by the float64 exponent range, so the search terminates even for
// pathological parameterizations; a CDF that fails to straddle p
// anywhere on the representable line is reported as broken.
func expand(cdf func(float64) float64, p, start, step float64, lower bool) float64 {
	x := start
	for {
		y := cdf(x)
		if lower && y < p || !lower && y >= p {
			return x
		}
		if math.Abs(x) == math.MaxFloat64 {
			panic("dist: CDF does not straddle p on the representable range")
		}
		step *= 2
		x = start + step
		if math.IsInf(x, 0) {
			x = math.Copysign(math.MaxFloat64, step)
		}
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
