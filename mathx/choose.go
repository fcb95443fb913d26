// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	return math.Exp(Lchoose(n, k))
}

// Lchoose returns math.Log(Choose(n, k)).
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	return lgamma(float64(n+1)) - lgamma(float64(k+1)) - lgamma(float64(n-k+1))
}

// Lgamma returns math.Log(math.Abs(math.Gamma(x))) without the sign
// return of math.Lgamma.
func Lgamma(x float64) float64 {
	return lgamma(x)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
