// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// A Dist is a continuous statistical distribution.
//
// Dist declares only the forward primitives. Quantiles, survival
// probabilities, and range probabilities are available for every Dist
// through the package-level InvCDF, InvSF, SF, and Prob functions,
// which use a distribution's own implementation when it provides one
// (see the SFer, InvCDFer, and InvSFer capabilities) and otherwise
// fall back to generic algorithms built on these primitives alone.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. Outside the support it is
	// exactly 0.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x, P(X ≤ x). Below the
	// support it is exactly 0 and above the support exactly 1.
	CDF(x float64) float64

	// Bounds returns the support of this distribution. Either
	// bound may be infinite.
	Bounds() (lo, hi float64)

	// Mean returns the mean of this distribution, or NaN if the
	// mean is undefined, or ±Inf if it diverges.
	Mean() float64

	// Variance returns the variance of this distribution, or NaN
	// if it is undefined, or +Inf if it diverges.
	Variance() float64
}

// A DiscreteDist is a discrete statistical distribution whose support
// points are evenly spaced Step() apart.
type DiscreteDist interface {
	// PMF returns the probability of drawing the value int(k).
	PMF(k float64) float64

	// CDF returns the probability of drawing a value ≤ k,
	// P(X ≤ k). It is a right-continuous step function.
	CDF(k float64) float64

	// Step returns the spacing between support points.
	Step() float64

	// Bounds returns the smallest and largest support points.
	Bounds() (lo, hi float64)

	// Mean returns the mean of this distribution.
	Mean() float64

	// Variance returns the variance of this distribution.
	Variance() float64
}

// An SFer is a distribution that computes its survival function
// P(X > x) directly, with full precision even where the CDF is within
// a few ULPs of 1.
type SFer interface {
	SF(x float64) float64
}

// A LogPDFer is a distribution that computes the logarithm of its
// density directly, without underflowing where the density itself
// would.
type LogPDFer interface {
	LogPDF(x float64) float64
}

// An InvCDFer is a distribution with a closed-form inverse CDF.
type InvCDFer interface {
	InvCDF(p float64) float64
}

// An InvSFer is a distribution with a closed-form inverse survival
// function.
type InvSFer interface {
	InvSF(q float64) float64
}

// A cdfer is the minimal interface required by the generic
// algorithms in this package.
type cdfer interface {
	CDF(x float64) float64
	Bounds() (lo, hi float64)
}

// A momenter provides the moments used to bracket quantile searches
// over unbounded supports. Both Dist and DiscreteDist satisfy it.
type momenter interface {
	Mean() float64
	Variance() float64
}

// SF returns the survival function P(X > x) of dist.
//
// If dist provides its own survival function, it is used. Otherwise
// SF returns 1 - CDF(x), which loses precision when the result is
// within a few ULPs of 0.
func SF(dist cdfer, x float64) float64 {
	if s, ok := dist.(SFer); ok {
		return s.SF(x)
	}
	return 1 - dist.CDF(x)
}

// LogPDF returns the logarithm of the density of dist at x. Outside
// the support of dist it is exactly -Inf.
//
// If dist provides its own LogPDF, it is used. Otherwise LogPDF
// returns math.Log(dist.PDF(x)), which underflows to -Inf once the
// density is below roughly 1e-308.
func LogPDF(dist Dist, x float64) float64 {
	if l, ok := dist.(LogPDFer); ok {
		return l.LogPDF(x)
	}
	return math.Log(dist.PDF(x))
}
