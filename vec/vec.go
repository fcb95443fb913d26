// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec provides small utilities for slices of float64s.
package vec // import "github.com/aclements/go-probdist/vec"

// Linspace returns num values spaced evenly between lo and hi,
// inclusive.
func Linspace(lo, hi float64, num int) []float64 {
	res := make([]float64, num)
	if num == 1 {
		res[0] = lo
		return res
	}
	for i := range res {
		res[i] = lo + float64(i)*(hi-lo)/float64(num-1)
	}
	return res
}
