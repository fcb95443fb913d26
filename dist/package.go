// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides parametric probability distributions and
// numerically robust evaluation of their densities, cumulative and
// survival probabilities, quantiles, and moments.
//
// Distributions are immutable value types and every operation is a
// pure function of its inputs, so values may be shared freely between
// goroutines without synchronization.
//
// Invalid arguments (a probability outside [0, 1], a reversed range,
// invalid distribution parameters) panic rather than returning a
// quietly clamped or NaN result. Regimes where a result is
// legitimately computed with reduced precision (extreme tails, nearly
// degenerate truncation windows) are documented on the relevant
// methods instead.
package dist // import "github.com/aclements/go-probdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

const (
	invSqrt2   = 1 / math.Sqrt2
	invSqrt2Pi = 0.39894228040143267794 // 1/√(2π)
	log2Pi     = 1.8378770664093454836  // log(2π)
)

// checkProb panics if p is not a probability. -0.0 is accepted and
// treated as 0.
func checkProb(p float64) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic("dist: probability out of range [0, 1]")
	}
}
