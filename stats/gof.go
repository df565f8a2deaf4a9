// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// KolmogorovSmirnov performs a one-sample Kolmogorov-Smirnov test of
// the null hypothesis that xs was drawn from the distribution with
// the given CDF. It returns the statistic D, the largest distance
// between the empirical CDF of xs and cdf, and its asymptotic p-value.
//
// xs is not modified. KolmogorovSmirnov returns ErrEmptySample if xs
// is empty.
func KolmogorovSmirnov(xs []float64, cdf func(float64) float64) (d, p float64, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrEmptySample
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	n := float64(len(sorted))
	for i, x := range sorted {
		f := cdf(x)
		d = max(d, float64(i+1)/n-f, f-float64(i)/n)
	}

	// Stephens (1970) correction for finite n.
	sn := math.Sqrt(n)
	return d, kolmogorovQ((sn + 0.12 + 0.11/sn) * d), nil
}

// kolmogorovQ returns the survival function of the Kolmogorov
// distribution,
//
//	Q(λ) = 2 Σ_{j≥1} (-1)^(j-1) exp(-2j²λ²).
func kolmogorovQ(lambda float64) float64 {
	if lambda < 0.2 {
		// The series converges slowly here and Q(0.2) ≈ 1 - 1e-14.
		return 1
	}
	var sum float64
	sign := 1.0
	for j := 1; j <= 100; j++ {
		term := sign * math.Exp(-2*float64(j*j)*lambda*lambda)
		sum += term
		if math.Abs(term) <= 1e-16*math.Abs(sum) {
			break
		}
		sign = -sign
	}
	return math.Max(0, math.Min(1, 2*sum))
}

// ChiSquareTest performs a Pearson chi-square goodness-of-fit test of
// the null hypothesis that xs was drawn from dist.
//
// The interval returned by dist.Bounds is split into bins
// equal-width bins, and two more bins collect the values below and
// above it. It returns the chi-square statistic and its p-value with
// bins+1 degrees of freedom.
//
// xs is not modified. ChiSquareTest returns ErrEmptySample if xs is
// empty and panics if bins < 1.
func ChiSquareTest(xs []float64, dist Dist, bins int) (chi2, p float64, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrEmptySample
	}
	if bins < 1 {
		panic("bins < 1")
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	lo, hi := dist.Bounds()
	dividers := make([]float64, bins+3)
	floats.Span(dividers[1:bins+2], lo, hi)
	dividers[0], dividers[bins+2] = math.Inf(-1), math.Inf(1)

	obs := stat.Histogram(nil, dividers, sorted, nil)

	n := float64(len(sorted))
	exp := make([]float64, len(obs))
	prev := 0.0
	for i := range exp {
		next := 1.0
		if i+1 < len(dividers)-1 {
			next = dist.CDF(dividers[i+1])
		}
		exp[i] = n * (next - prev)
		prev = next
	}

	chi2 = stat.ChiSquare(obs, exp)
	p = distuv.ChiSquared{K: float64(len(obs) - 1)}.Survival(chi2)
	return chi2, p, nil
}
