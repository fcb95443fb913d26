// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "gonum.org/v1/gonum/mathext"

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b).
//
// If x < 0 or x > 1, returns NaN.
func BetaInc(x, a, b float64) float64 {
	if x < 0 || x > 1 {
		return nan
	}
	return mathext.RegIncBeta(a, b, x)
}

// InvBetaInc returns x such that BetaInc(x, a, b) == y.
//
// If y < 0 or y > 1, returns NaN.
func InvBetaInc(y, a, b float64) float64 {
	if y < 0 || y > 1 {
		return nan
	}
	return mathext.InvRegIncBeta(a, b, y)
}

// Lbeta returns the natural logarithm of the beta function B(a, b).
func Lbeta(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}
