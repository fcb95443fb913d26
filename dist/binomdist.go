// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-probdist/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

func (d BinomialDist) check() {
	if d.N < 0 || math.IsNaN(d.P) || d.P < 0 || d.P > 1 {
		panic("dist: Binomial requires N ≥ 0 and P in [0, 1]")
	}
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	d.check()
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// LogPMF is the logarithm of PMF, computed from log-domain
// primitives so it does not underflow for large N.
func (d BinomialDist) LogPMF(k float64) float64 {
	d.check()
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return -inf
	}
	switch d.P {
	case 0:
		if ki == 0 {
			return 0
		}
		return -inf
	case 1:
		if ki == d.N {
			return 0
		}
		return -inf
	}
	return mathx.Lchoose(d.N, ki) + float64(ki)*math.Log(d.P) +
		float64(d.N-ki)*math.Log1p(-d.P)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	d.check()
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	return mathx.BetaInc(1-d.P, float64(d.N-ki), k+1)
}

// SF is the probability of getting more than k successes. It uses
// the mirrored incomplete beta form rather than 1-CDF, so small
// upper-tail probabilities keep relative accuracy.
func (d BinomialDist) SF(k float64) float64 {
	d.check()
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 1
	} else if ki >= d.N {
		return 0
	}

	return mathx.BetaInc(d.P, k+1, float64(d.N-ki))
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	d.check()
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	d.check()
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

func (d BinomialDist) Rand(rng *rand.Rand) float64 {
	d.check()
	return invCDF(d, rng.Float64())
}
