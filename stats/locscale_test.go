// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-shapedist/randx"
)

var testLocScales = []LocScale{
	Identity,
	{Theta: 5, Lambda: 1},
	{Theta: -2.5, Lambda: 0.1},
	{Theta: 1e3, Lambda: 40},
}

func TestFactoriesAcceptAdmissible(t *testing.T) {
	for _, nu := range []float64{1e-6, 0.25, 0.5, 1, 1.75, 2 - 1e-9} {
		d, err := NewDensity(SinhArcsinh, nu, Identity)
		require.NoError(t, err, "nu=%v", nu)
		require.NotNil(t, d)
		g, err := NewGenerator(SinhArcsinh, nu, Identity, randx.NewSource(1, 0))
		require.NoError(t, err, "nu=%v", nu)
		require.NotNil(t, g)
	}
}

func TestFactoriesRejectInadmissible(t *testing.T) {
	for _, nu := range []float64{0, -1e-9, -1, 2, 2 + 1e-9, 10, math.Inf(1), math.NaN()} {
		d, err := NewDensity(SinhArcsinh, nu, Identity)
		require.Nil(t, d)
		require.ErrorIs(t, err, ErrParameterDomain, "nu=%v", nu)

		g, err := NewGenerator(SinhArcsinh, nu, Identity, nil)
		require.Nil(t, g)
		require.ErrorIs(t, err, ErrParameterDomain, "nu=%v", nu)

		var pe *ParamError
		require.True(t, errors.As(err, &pe), "error must be ParamError")
		assert.Equal(t, "NewGenerator", pe.Func)
		assert.Equal(t, SinhArcsinh, pe.Family)
		assert.Equal(t, "nu", pe.Param)
	}
}

func TestFactoriesRejectDegenerateScale(t *testing.T) {
	for _, lambda := range []float64{0, math.Copysign(0, -1), -1, math.Inf(1), math.NaN()} {
		ls := LocScale{Theta: 1, Lambda: lambda}
		_, err := NewDensity(StdNormal, 0, ls)
		require.ErrorIs(t, err, ErrDegenerateScale, "lambda=%v", lambda)
		_, err = NewGenerator(SinhArcsinh, 0.5, ls, nil)
		require.ErrorIs(t, err, ErrDegenerateScale, "lambda=%v", lambda)
		require.ErrorIs(t, ls.Validate(), ErrDegenerateScale)

		var pe *ParamError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "lambda", pe.Param)
	}

	// The zero LocScale is degenerate.
	require.ErrorIs(t, LocScale{}.Validate(), ErrDegenerateScale)
	require.NoError(t, Identity.Validate())
}

func TestFactoriesRejectNonFiniteTheta(t *testing.T) {
	_, err := NewDensity(StdNormal, 0, LocScale{Theta: math.Inf(-1), Lambda: 1})
	require.ErrorIs(t, err, ErrParameterDomain)
	var pe *ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "theta", pe.Param)
}

func TestShapeCheckedBeforeScale(t *testing.T) {
	_, err := NewDensity(SinhArcsinh, 3, LocScale{})
	require.ErrorIs(t, err, ErrParameterDomain)
	require.NotErrorIs(t, err, ErrDegenerateScale)
}

func TestParamErrorMessage(t *testing.T) {
	_, err := NewDensity(SinhArcsinh, 2, Identity)
	require.EqualError(t, err, "stats.NewDensity: SinhArcsinh: nu=2: shape parameter outside family domain")
}

func TestLocScaleIdentity(t *testing.T) {
	for _, f := range Families() {
		for _, nu := range f.sampleNus() {
			for _, ls := range testLocScales {
				d := mustDensity(t, f, nu, ls)
				for z := -4.0; z <= 4; z += 0.25 {
					x := ls.Theta + ls.Lambda*z
					want := StandardPDF(f, (x-ls.Theta)/ls.Lambda, nu) / ls.Lambda
					assert.Equal(t, want, d.PDF(x), "%v nu=%v %s x=%v", f, nu, ls.label(), x)
				}
			}
		}
	}
}

func TestDensityAccessors(t *testing.T) {
	ls := LocScale{Theta: 5, Lambda: 2}
	d := mustDensity(t, SinhArcsinh, 0.5, ls)
	assert.Equal(t, SinhArcsinh, d.Family())
	assert.Equal(t, 0.5, d.Nu())
	assert.Equal(t, ls, d.LocScale())
	assert.Equal(t, "SinhArcsinh{nu=0.5 theta=5 lambda=2}", d.String())

	g := mustGenerator(t, SinhArcsinh, 0.5, ls, 1)
	assert.Equal(t, d, g.Density())
}

func TestDensityEach(t *testing.T) {
	d := mustDensity(t, SinhArcsinh, 1.2, LocScale{Theta: -1, Lambda: 3})
	xs := []float64{-10, -1, 0, 2.5, 7}
	pdfs, cdfs := d.PDFEach(xs), d.CDFEach(xs)
	for i, x := range xs {
		assert.Equal(t, d.PDF(x), pdfs[i])
		assert.Equal(t, d.CDF(x), cdfs[i])
	}
	ys := []float64{0.01, 0.5, 0.99}
	for i, x := range d.InvCDFEach(ys) {
		assert.Equal(t, d.InvCDF(ys[i]), x)
	}
}

func TestInvCDFRoundTrip(t *testing.T) {
	for _, f := range Families() {
		for _, nu := range f.sampleNus() {
			for _, ls := range testLocScales {
				d := mustDensity(t, f, nu, ls)
				for _, y := range []float64{1e-6, 0.01, 0.25, 0.5, 0.75, 0.99, 1 - 1e-6} {
					got := d.CDF(d.InvCDF(y))
					assert.InDelta(t, y, got, 1e-9, "%v nu=%v %s y=%v", f, nu, ls.label(), y)
				}
			}
		}
	}
}

func TestBounds(t *testing.T) {
	d := mustDensity(t, SinhArcsinh, 0.5, LocScale{Theta: 5, Lambda: 1})
	lo, hi := d.Bounds()
	assert.Less(t, lo, 5.0)
	assert.Greater(t, hi, 5.0)
	// The distribution is symmetric about Theta.
	assert.InDelta(t, 5-lo, hi-5, 1e-9)
	assert.InDelta(t, 1e-4, d.CDF(lo), 1e-12)
}

func TestGeneratorAffine(t *testing.T) {
	// With the same source state, a transformed generator must
	// return exactly Theta + Lambda times the standardized draw.
	for _, f := range Families() {
		for _, nu := range f.sampleNus() {
			ls := LocScale{Theta: 5, Lambda: 0.5}
			std := mustGenerator(t, f, nu, Identity, 9)
			tr := mustGenerator(t, f, nu, ls, 9)
			for i := 0; i < 100; i++ {
				z, y := std.Rand(), tr.Rand()
				require.Equal(t, ls.Theta+ls.Lambda*z, y)
			}
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	g1 := mustGenerator(t, SinhArcsinh, 0.5, LocScale{Theta: 5, Lambda: 1}, 3)
	g2 := mustGenerator(t, SinhArcsinh, 0.5, LocScale{Theta: 5, Lambda: 1}, 3)
	require.Equal(t, Generate(g1, 1000), Generate(g2, 1000))

	g3 := g1.WithSource(randx.NewSource(3, 0))
	g4 := g2.WithSource(randx.NewSource(3, 0))
	require.Equal(t, Generate(g3, 10), Generate(g4, 10))
}

func TestGeneratorSinhArcsinhTransform(t *testing.T) {
	// Drawing a normal z from the same source and applying
	// asinh(nu*z/2) must reproduce the family generator.
	const nu = 0.7
	g := mustGenerator(t, SinhArcsinh, nu, Identity, 11)
	n := mustGenerator(t, StdNormal, 0, Identity, 11)
	for i := 0; i < 100; i++ {
		require.Equal(t, math.Asinh(nu*n.Rand()/2), g.Rand())
	}
}
