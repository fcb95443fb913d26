// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtest provides helpers for testing numerical code.
package mathtest

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-probdist/tol"
)

var aeq = tol.Or(tol.Abs(1e-15), tol.Rel(1e-12))

// Aeq reports whether expect and got are approximately equal: within
// 1e-15 absolute or 1e-12 relative tolerance for finite values, and
// identical for NaNs and infinities.
func Aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	if math.IsInf(expect, 0) || math.IsInf(got, 0) {
		return expect == got
	}
	return aeq(expect, got)
}

// WantFunc checks f(x) against want[x] for every entry of want, using
// Aeq. If name contains a %-verb, it is formatted with x; otherwise
// "(x)" is appended.
func WantFunc(t *testing.T, name string, f func(float64) float64, want map[float64]float64) {
	t.Helper()
	for x, w := range want {
		got := f(x)
		if !Aeq(w, got) {
			t.Errorf("want %s=%v, got %v", fnName(name, x), w, got)
		}
	}
}

// WantCmpFunc is like WantFunc, but uses cmp instead of Aeq.
func WantCmpFunc(t *testing.T, cmp tol.Cmp, name string, f func(float64) float64, want map[float64]float64) {
	t.Helper()
	for x, w := range want {
		got := f(x)
		ok := cmp(w, got)
		if math.IsNaN(w) || math.IsNaN(got) || math.IsInf(w, 0) || math.IsInf(got, 0) {
			ok = Aeq(w, got)
		}
		if !ok {
			t.Errorf("want %s=%v, got %v", fnName(name, x), w, got)
		}
	}
}

// MustPanic checks that f panics.
func MustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func fnName(name string, x float64) string {
	if strings.Contains(name, "%") {
		return fmt.Sprintf(name, x)
	}
	return fmt.Sprintf("%s(%v)", name, x)
}
