// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aclements/go-shapedist/randx"
)

// LocScale is the location-scale transform Y = Theta + Lambda*X that
// maps a standardized variate X to a shifted and rescaled one.
//
// Lambda must be positive and finite, and Theta must be finite. The
// zero LocScale is not valid; use Identity for the standardized
// distribution.
type LocScale struct {
	Theta  float64
	Lambda float64
}

// Identity is the location-scale transform that leaves a
// standardized distribution unchanged.
var Identity = LocScale{Theta: 0, Lambda: 1}

// check returns the name and value of the first invalid field of ls,
// or "" if ls is valid.
func (ls LocScale) check() (param string, value float64, err error) {
	if !(ls.Lambda > 0) || math.IsInf(ls.Lambda, 0) {
		return "lambda", ls.Lambda, ErrDegenerateScale
	}
	if math.IsNaN(ls.Theta) || math.IsInf(ls.Theta, 0) {
		return "theta", ls.Theta, ErrParameterDomain
	}
	return "", 0, nil
}

// Validate returns an error wrapping ErrDegenerateScale if Lambda is
// not positive and finite, or ErrParameterDomain if Theta is not
// finite.
func (ls LocScale) Validate() error {
	if param, v, err := ls.check(); err != nil {
		return fmt.Errorf("stats: %s=%v: %w", param, v, err)
	}
	return nil
}

func (ls LocScale) standardize(x float64) float64 {
	return (x - ls.Theta) / ls.Lambda
}

func (ls LocScale) apply(z float64) float64 {
	return ls.Theta + ls.Lambda*z
}

// params is the validated parameter set shared by Density and
// Generator.
type params struct {
	family Family
	nu     float64
	ls     LocScale
	impl   shape
}

func newParams(fn string, f Family, nu float64, ls LocScale) (params, error) {
	if !f.Admissible(nu) {
		return params{}, &ParamError{Func: fn, Family: f, Param: "nu", Value: nu, Err: ErrParameterDomain}
	}
	if param, v, err := ls.check(); err != nil {
		return params{}, &ParamError{Func: fn, Family: f, Param: param, Value: v, Err: err}
	}
	return params{f, nu, ls, f.impl()}, nil
}

// Family returns the distribution's family.
func (p *params) Family() Family { return p.family }

// Nu returns the distribution's shape parameter.
func (p *params) Nu() float64 { return p.nu }

// LocScale returns the distribution's location-scale transform.
func (p *params) LocScale() LocScale { return p.ls }

func (p *params) String() string {
	return fmt.Sprintf("%v{nu=%g theta=%g lambda=%g}", p.family, p.nu, p.ls.Theta, p.ls.Lambda)
}

// A Density is a member of a shape family after a location-scale
// transform. It implements Dist.
//
// A Density is immutable and safe for concurrent use.
type Density struct {
	params
}

// NewDensity returns the distribution of Theta + Lambda*X where X is
// drawn from the standardized member of family f with shape nu.
//
// If nu is not admissible for f, the error wraps ErrParameterDomain.
// If ls is not valid, the error wraps ErrDegenerateScale or
// ErrParameterDomain. In both cases the error is a *ParamError.
func NewDensity(f Family, nu float64, ls LocScale) (*Density, error) {
	p, err := newParams("NewDensity", f, nu, ls)
	if err != nil {
		return nil, err
	}
	return &Density{p}, nil
}

// PDF returns StandardPDF(family, (x-Theta)/Lambda, nu) / Lambda.
func (d *Density) PDF(x float64) float64 {
	return d.impl.pdf(d.ls.standardize(x), d.nu) / d.ls.Lambda
}

func (d *Density) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

func (d *Density) CDF(x float64) float64 {
	return d.impl.cdf(d.ls.standardize(x), d.nu)
}

func (d *Density) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// InvCDF panics if y is outside [0, 1].
func (d *Density) InvCDF(y float64) float64 {
	return d.ls.apply(d.impl.quantile(y, d.nu))
}

func (d *Density) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = d.InvCDF(y)
	}
	return res
}

// Bounds returns the central interval holding all but 1e-4 of the
// probability on each side.
func (d *Density) Bounds() (float64, float64) {
	const tail = 1e-4
	return d.InvCDF(tail), d.InvCDF(1 - tail)
}

// A Generator draws variates from a member of a shape family after a
// location-scale transform. It implements Sampler.
//
// Each call to Rand advances the Generator's random source. A
// Generator is safe for concurrent use only if its source is, as the
// default source is.
type Generator struct {
	params
	src rand.Source
}

// NewGenerator returns a generator of Theta + Lambda*X where X is
// drawn from the standardized member of family f with shape nu.
//
// Variates are drawn from src. If src is nil, the process-wide
// randx.Default source is used.
//
// NewGenerator fails exactly when NewDensity fails for the same
// arguments.
func NewGenerator(f Family, nu float64, ls LocScale, src rand.Source) (*Generator, error) {
	p, err := newParams("NewGenerator", f, nu, ls)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = randx.Default()
	}
	return &Generator{p, src}, nil
}

// Rand returns Theta + Lambda*StandardRand(family, nu, src).
func (g *Generator) Rand() float64 {
	return g.ls.apply(g.impl.rand(g.nu, g.src))
}

// WithSource returns a copy of g that draws from src instead.
func (g *Generator) WithSource(src rand.Source) *Generator {
	if src == nil {
		src = randx.Default()
	}
	return &Generator{g.params, src}
}

// Density returns the distribution g draws from.
func (g *Generator) Density() *Density {
	return &Density{g.params}
}
