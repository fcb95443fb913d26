// dist describes a named probability distribution: its support,
// moments, and a quantile table.
//
// Usage:
//
//	dist [-n points] name param...
//
// where name is one of normal, uniform, exp, logistic, gamma, beta,
// chisq, t, f, weibull, pareto, loguniform, foldednormal, nakagami,
// triangular, or truncnormal, followed by its numeric parameters:
//
//	dist normal 0 1
//	dist truncnormal 0 1 -2 2
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/aclements/go-probdist/dist"
	"github.com/aclements/go-probdist/vec"
)

var points = flag.Int("n", 9, "number of quantiles to print")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-n points] name param...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	d, err := lookup(flag.Arg(0), parseParams(flag.Args()[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lo, hi := d.Bounds()
	fmt.Printf("support [%g, %g]  mean %.6g  variance %.6g\n", lo, hi, d.Mean(), d.Variance())
	fmt.Println()

	inv := dist.InvCDF(d)
	for _, p := range vec.Linspace(0, 1, *points+2) {
		if p == 0 || p == 1 {
			continue
		}
		x := inv(p)
		fmt.Printf("%6.4g%%ile %12.6g  pdf %.6g\n", 100*p, x, d.PDF(x))
	}
}

func parseParams(args []string) []float64 {
	ps := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		ps[i] = v
	}
	return ps
}

func lookup(name string, ps []float64) (dist.Dist, error) {
	arity := map[string]int{
		"normal": 2, "uniform": 2, "exp": 1, "logistic": 2,
		"gamma": 2, "beta": 2, "chisq": 1, "t": 1, "f": 2,
		"weibull": 2, "pareto": 2, "loguniform": 2,
		"foldednormal": 2, "nakagami": 2, "triangular": 3,
		"truncnormal": 4,
	}
	n, ok := arity[name]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q", name)
	}
	if len(ps) != n {
		return nil, fmt.Errorf("%s takes %d parameters, got %d", name, n, len(ps))
	}
	switch name {
	case "normal":
		return dist.NormalDist{Mu: ps[0], Sigma: ps[1]}, nil
	case "uniform":
		return dist.UniformDist{Min: ps[0], Max: ps[1]}, nil
	case "exp":
		return dist.ExpDist{Lambda: ps[0]}, nil
	case "logistic":
		return dist.LogisticDist{Mu: ps[0], S: ps[1]}, nil
	case "gamma":
		return dist.GammaDist{K: ps[0], Theta: ps[1]}, nil
	case "beta":
		return dist.BetaDist{Alpha: ps[0], Beta: ps[1]}, nil
	case "chisq":
		return dist.ChiSquaredDist{K: ps[0]}, nil
	case "t":
		return dist.TDist{Nu: ps[0]}, nil
	case "f":
		return dist.FDist{D1: ps[0], D2: ps[1]}, nil
	case "weibull":
		return dist.WeibullDist{K: ps[0], Lambda: ps[1]}, nil
	case "pareto":
		return dist.ParetoDist{Xm: ps[0], Alpha: ps[1]}, nil
	case "loguniform":
		return dist.LogUniformDist{Min: ps[0], Max: ps[1]}, nil
	case "foldednormal":
		return dist.FoldedNormalDist{Mu: ps[0], Sigma: ps[1]}, nil
	case "nakagami":
		return dist.NakagamiDist{M: ps[0], Omega: ps[1]}, nil
	case "triangular":
		return dist.TriangularDist{A: ps[0], B: ps[1], C: ps[2]}, nil
	}
	return dist.TruncNormalDist{Mu: ps[0], Sigma: ps[1], Lower: ps[2], Upper: ps[3]}, nil
}
