// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sync"

	"github.com/aclements/go-shapedist/randx"
)

// Generate returns a sample of n variates, calling g.Rand exactly n
// times in order. It returns an empty sample if n is 0 and panics if
// n is negative.
func Generate(g Sampler, n int) []float64 {
	if n < 0 {
		panic("negative sample size")
	}
	xs := make([]float64, n)
	GenerateInto(xs, g)
	return xs
}

// GenerateInto fills dst with variates from g, in order.
func GenerateInto(dst []float64, g Sampler) {
	for i := range dst {
		dst[i] = g.Rand()
	}
}

// GenerateParallel returns a sample of n variates from g's
// distribution, drawn by up to workers goroutines.
//
// Worker w fills the w'th contiguous chunk of the sample from its own
// source, randx.NewSource(seed, w), so the result depends only on g's
// parameters, n, workers and seed. g's own source is not used.
func GenerateParallel(g *Generator, n, workers int, seed uint64) []float64 {
	if n < 0 {
		panic("negative sample size")
	}
	xs := make([]float64, n)
	if n == 0 {
		return xs
	}
	workers = max(1, min(workers, n))
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w*chunk < n; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			GenerateInto(xs[lo:hi], g.WithSource(randx.NewSource(seed, uint64(w))))
		}()
	}
	wg.Wait()
	return xs
}
