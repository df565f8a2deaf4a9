// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"
)

// sinhArcsinhShape is the distribution of X = asinh(nu*Z/2) for a
// standard normal Z. Inverting the transform gives Z = (2/nu)*sinh(X),
// so
//
//	f(x; nu) = (2/nu) * φ((2/nu)*sinh(x)) * cosh(x)
//	F(x; nu) = Φ((2/nu)*sinh(x))
type sinhArcsinhShape struct{}

func (sinhArcsinhShape) admissible(nu float64) bool {
	return nu > 0 && nu < 2
}

func (sinhArcsinhShape) pdf(x, nu float64) float64 {
	c := 2 / nu
	p := stdNormalShape{}.pdf(c*math.Sinh(x), 0)
	if p == 0 {
		// cosh(x) overflows long after φ underflows.
		return 0
	}
	return c * p * math.Cosh(x)
}

func (sinhArcsinhShape) cdf(x, nu float64) float64 {
	return stdNormalShape{}.cdf(2/nu*math.Sinh(x), 0)
}

func (sinhArcsinhShape) quantile(p, nu float64) float64 {
	return math.Asinh(nu / 2 * stdNormalShape{}.quantile(p, 0))
}

func (sinhArcsinhShape) rand(nu float64, src rand.Source) float64 {
	z := stdNormalShape{}.rand(0, src)
	return math.Asinh(nu * z / 2)
}
