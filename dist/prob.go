// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Prob returns the probability that a value drawn from dist falls in
// (x0, x1], that is CDF(x1) - CDF(x0). It panics if x0 > x1 or either
// bound is NaN. Prob(x, x) is exactly 0.
//
// When both points lie in the upper tail, the difference of CDFs
// cancels catastrophically, so Prob computes the difference of
// survival functions there instead. The result is never negative.
func Prob(dist cdfer, x0, x1 float64) float64 {
	if math.IsNaN(x0) || math.IsNaN(x1) {
		panic("dist: NaN range bound")
	}
	if x0 > x1 {
		panic("dist: x0 > x1 in range probability")
	}
	if x0 == x1 {
		return 0
	}
	var p float64
	if dist.CDF(x0) > 0.5 {
		p = SF(dist, x0) - SF(dist, x1)
	} else {
		p = dist.CDF(x1) - dist.CDF(x0)
	}
	if p > 0 {
		return p
	}
	return 0
}
