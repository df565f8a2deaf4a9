// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Number of Gauss-Legendre nodes used to integrate moments.
const momentNodes = 512

// Moments returns the theoretical moments of d, for comparison with
// the moments of a sample drawn from d.
//
// The moments are computed by Gauss-Legendre quadrature over the
// interval between the 1e-12 and 1-1e-12 quantiles of d, so they
// carry a small absolute error.
func (d *Density) Moments() Moments {
	const tail = 1e-12
	lo, hi := d.InvCDF(tail), d.InvCDF(1-tail)
	expect := func(g func(x float64) float64) float64 {
		return quad.Fixed(func(x float64) float64 {
			return g(x) * d.PDF(x)
		}, lo, hi, momentNodes, nil, 0)
	}

	mean := expect(func(x float64) float64 { return x })
	m2 := expect(func(x float64) float64 {
		dx := x - mean
		return dx * dx
	})
	m3 := expect(func(x float64) float64 {
		dx := x - mean
		return dx * dx * dx
	})
	m4 := expect(func(x float64) float64 {
		dx := x - mean
		dx *= dx
		return dx * dx
	})
	return Moments{
		Mean:       mean,
		Dispersion: m2,
		Skewness:   m3 / (m2 * math.Sqrt(m2)),
		Kurtosis:   m4/(m2*m2) - 3,
	}
}
