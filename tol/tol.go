// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tol provides composable floating-point comparison
// predicates.
//
// A comparison is a first-class Cmp value rather than a boolean flag,
// so callers can combine strategies ("pass if either the absolute or
// the relative tolerance is satisfied") and pass the result around
// like any other value.
package tol // import "github.com/aclements/go-probdist/tol"

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// A Cmp reports whether two float64s should be considered equal. A
// Cmp never considers NaN equal to anything, including NaN.
type Cmp func(a, b float64) bool

// Abs returns a Cmp satisfied when |a-b| ≤ eps.
func Abs(eps float64) Cmp {
	return func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		return a == b || scalar.EqualWithinAbs(a, b, eps)
	}
}

// Rel returns a Cmp satisfied when |a-b| ≤ eps·max(|a|, |b|).
func Rel(eps float64) Cmp {
	return func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		return a == b || scalar.EqualWithinRel(a, b, eps)
	}
}

// ULPs returns a Cmp satisfied when a and b are within n units in the
// last place of each other. ULPs(0) means exact equality; +0 and -0
// are equal at 0 ULPs.
func ULPs(n uint) Cmp {
	return func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		return scalar.EqualWithinULP(a, b, n)
	}
}

// And returns a Cmp satisfied when every comparison in cmps is
// satisfied. Evaluation short-circuits left to right.
func And(cmps ...Cmp) Cmp {
	return func(a, b float64) bool {
		for _, c := range cmps {
			if !c(a, b) {
				return false
			}
		}
		return true
	}
}

// Or returns a Cmp satisfied when at least one comparison in cmps is
// satisfied. Evaluation short-circuits left to right.
func Or(cmps ...Cmp) Cmp {
	return func(a, b float64) bool {
		for _, c := range cmps {
			if c(a, b) {
				return true
			}
		}
		return false
	}
}
