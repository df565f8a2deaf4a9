// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation constructs an estimate ƒ̂(x) of an
// unknown density ƒ(x) given a sample from it. Comparing ƒ̂ of a
// generated sample against the Density it was drawn from is a direct
// check that a Generator and its Density agree.
//
// The estimate uses a Gaussian kernel. The default (zero) value of
// KDE is a reasonable default configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(xs []float64) float64 {
	disp, err := Dispersion(xs)
	if err != nil {
		return nan
	}
	return 1.06 * math.Sqrt(disp) * math.Pow(float64(len(xs)), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and a robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(xs []float64) float64 {
	disp, err := Dispersion(xs)
	if err != nil {
		return nan
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	iqr := stat.Quantile(0.75, stat.LinInterp, sorted, nil) - stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	hScale := 1.06 * math.Pow(float64(len(xs)), -1.0/5)
	// IQR/1.349 estimates the standard deviation of a Gaussian.
	return hScale * math.Min(math.Sqrt(disp), iqr/1.349)
}

// From returns the kernel density estimate for the sample xs. xs is
// not modified. From panics if xs is empty.
func (k KDE) From(xs []float64) *KDEDist {
	if len(xs) == 0 {
		panic("empty sample")
	}
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(xs)
	}
	if h == 0 {
		// All values are equal. Spread them over a nominal width
		// so the PDF stays finite.
		h = 1
	}
	return &KDEDist{xs: slices.Clone(xs), h: h}
}

// A KDEDist is a kernel density estimate constructed by KDE.From.
type KDEDist struct {
	xs []float64
	h  float64 // bandwidth
}

// Bandwidth returns the kernel bandwidth used by kde.
func (kde *KDEDist) Bandwidth() float64 {
	return kde.h
}

// normalizedXs returns (x - kde.xs)/h. Evaluating kernels shifted by
// kde.xs at x is equivalent to evaluating one standardized kernel at
// these points.
func (kde *KDEDist) normalizedXs(x float64) []float64 {
	txs := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		txs[i] = (x - xi) / kde.h
	}
	return txs
}

func (kde *KDEDist) PDF(x float64) float64 {
	zs := kde.normalizedXs(x)
	for i, z := range zs {
		zs[i] = stdNormalShape{}.pdf(z, 0)
	}
	return floats.Sum(zs) / (float64(len(zs)) * kde.h)
}

func (kde *KDEDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = kde.PDF(x)
	}
	return res
}

func (kde *KDEDist) CDF(x float64) float64 {
	zs := kde.normalizedXs(x)
	for i, z := range zs {
		zs[i] = stdNormalShape{}.cdf(z, 0)
	}
	return floats.Sum(zs) / float64(len(zs))
}

// Bounds returns the range of the sample widened by three
// bandwidths on each side.
func (kde *KDEDist) Bounds() (low float64, high float64) {
	low, high = floats.Min(kde.xs), floats.Max(kde.xs)
	return low - 3*kde.h, high + 3*kde.h
}
