// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions that are not in the
// standard math package.
package mathx // import "github.com/aclements/go-probdist/mathx"

import "math"

var nan = math.NaN()
