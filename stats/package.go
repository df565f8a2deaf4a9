// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements shape families of continuous distributions,
// their location-scale variants, variate generation, and moment
// estimators over generated samples.
//
// A family is selected by a Family tag. NewDensity and NewGenerator
// validate the family's shape parameter and a LocScale transform and
// return immutable objects that evaluate the density or draw
// variates. Generate builds a sample from any Sampler, and Mean,
// Dispersion, Skewness and Kurtosis describe it.
package stats // import "github.com/aclements/go-shapedist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
