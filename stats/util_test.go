// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/aclements/go-shapedist/randx"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqRel reports whether got is within relative tolerance tol of
// expect.
func aeqRel(expect, got, tol float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= tol*math.Max(math.Abs(expect), math.Abs(got))
}

// testFunc checks f against each x→y pair of vals, in sorted order
// of x.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// mustGenerator returns a generator seeded deterministically.
func mustGenerator(t testing.TB, f Family, nu float64, ls LocScale, seed uint64) *Generator {
	t.Helper()
	g, err := NewGenerator(f, nu, ls, randx.NewSource(seed, 0))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustDensity(t testing.TB, f Family, nu float64, ls LocScale) *Density {
	t.Helper()
	d, err := NewDensity(f, nu, ls)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func (f Family) sampleNus() []float64 {
	if f == StdNormal {
		return []float64{0}
	}
	return []float64{0.05, 0.5, 1, 1.5, 1.95}
}

func (ls LocScale) label() string {
	return fmt.Sprintf("θ=%g,λ=%g", ls.Theta, ls.Lambda)
}
