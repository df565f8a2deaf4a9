// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// stdNormalShape is the standard normal distribution, φ(x).
type stdNormalShape struct{}

func (stdNormalShape) admissible(nu float64) bool {
	return true
}

func (stdNormalShape) pdf(x, _ float64) float64 {
	return math.Exp(-x*x/2) * invSqrt2Pi
}

func (stdNormalShape) cdf(x, _ float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

func (stdNormalShape) quantile(p, _ float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

func (stdNormalShape) rand(_ float64, src rand.Source) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand()
}
