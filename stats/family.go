// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math/rand/v2"

	"github.com/aclements/go-shapedist/randx"
)

// A Family identifies a shape family of continuous distributions.
//
// Each family defines a standardized member (zero location, unit
// scale) that may depend on a shape parameter nu. Location and scale
// are applied separately by a LocScale.
type Family int

const (
	// StdNormal is the standard normal distribution. It has no
	// shape parameter; nu is ignored.
	StdNormal Family = iota

	// SinhArcsinh is the sinh-arcsinh transform of a standard
	// normal variate, X = asinh(nu*Z/2). Its shape parameter must
	// satisfy 0 < nu < 2.
	SinhArcsinh
)

// shape is the implementation of one family's standardized member.
//
// Every method may assume admissible(nu) holds.
type shape interface {
	admissible(nu float64) bool
	pdf(x, nu float64) float64
	cdf(x, nu float64) float64
	quantile(p, nu float64) float64
	rand(nu float64, src rand.Source) float64
}

var shapes = [...]struct {
	name string
	impl shape
}{
	StdNormal:   {"StdNormal", stdNormalShape{}},
	SinhArcsinh: {"SinhArcsinh", sinhArcsinhShape{}},
}

// Families returns all known families in tag order.
func Families() []Family {
	fs := make([]Family, len(shapes))
	for i := range shapes {
		fs[i] = Family(i)
	}
	return fs
}

func (f Family) known() bool {
	return f >= 0 && int(f) < len(shapes)
}

func (f Family) String() string {
	if !f.known() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return shapes[f].name
}

// impl returns f's implementation. It panics if f is not a known
// family.
func (f Family) impl() shape {
	if !f.known() {
		panic(fmt.Sprint("unknown family ", int(f)))
	}
	return shapes[f].impl
}

// Admissible reports whether nu lies in the domain of f's shape
// parameter. It is false for every nu if f is not a known family.
func (f Family) Admissible(nu float64) bool {
	if !f.known() {
		return false
	}
	return shapes[f].impl.admissible(nu)
}

// StandardPDF returns the density of the standardized member of f at
// x. The caller must ensure f.Admissible(nu).
func StandardPDF(f Family, x, nu float64) float64 {
	return f.impl().pdf(x, nu)
}

// StandardRand draws one variate from the standardized member of f
// using src. If src is nil, the process-wide randx.Default source is
// used. The caller must ensure f.Admissible(nu).
func StandardRand(f Family, nu float64, src rand.Source) float64 {
	if src == nil {
		src = randx.Default()
	}
	return f.impl().rand(nu, src)
}
