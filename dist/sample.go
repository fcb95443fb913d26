// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// A Rander is a distribution that can draw random values directly,
// typically more efficiently than inverse-transform sampling.
//
// The random source is injected per call and carries all sampling
// state; the distribution value itself remains immutable.
type Rander interface {
	Rand(rng *rand.Rand) float64
}

// Rand draws one value from dist using rng.
//
// If dist implements Rander, its own sampler is used. Otherwise Rand
// applies the inverse-transform method: it draws u uniformly from
// [0, 1) and returns InvCDF(u).
func Rand(dist cdfer, rng *rand.Rand) float64 {
	if r, ok := dist.(Rander); ok {
		return r.Rand(rng)
	}
	return InvCDF(dist)(rng.Float64())
}

// Sample draws n values from dist using rng.
func Sample(dist cdfer, rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	if r, ok := dist.(Rander); ok {
		for i := range xs {
			xs[i] = r.Rand(rng)
		}
		return xs
	}
	inv := InvCDF(dist)
	for i := range xs {
		xs[i] = inv(rng.Float64())
	}
	return xs
}
