// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Erfcx returns the scaled complementary error function
// exp(x²)·erfc(x).
//
// Unlike the product math.Exp(x*x)*math.Erfc(x), Erfcx neither
// overflows nor underflows for large positive x, which makes it the
// right primitive for normal tail probabilities: erfc(x) =
// Erfcx(x)·exp(-x²) lets callers factor the exponential out of
// ratios and differences of tail masses.
func Erfcx(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if x < 0 {
		// erfcx(x) = 2·exp(x²) - erfcx(-x). The first term
		// overflows once x² > ~709.
		if x < -26.7 {
			return math.Inf(1)
		}
		return 2*math.Exp(x*x) - Erfcx(-x)
	}
	if x <= 25 {
		// exp(x²) stays finite and erfc(x) stays normal on
		// this range, so the direct product is accurate.
		return math.Exp(x*x) * math.Erfc(x)
	}
	// Asymptotic expansion
	//
	//   erfcx(x) ~ 1/(x√π) · Σ (-1)ᵏ (2k-1)!! / (2x²)ᵏ
	//
	// For x > 25 the k=6 term is below 10⁻¹⁵ of the sum.
	ix2 := 1 / (2 * x * x)
	sum, term := 1.0, 1.0
	for k := 1; k <= 6; k++ {
		term *= -float64(2*k-1) * ix2
		sum += term
	}
	return sum / (x * math.Sqrt(math.Pi))
}
