// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the random sources used by the variate
// generators in package stats.
//
// All sources are math/rand/v2 Sources, so they can be passed
// directly as the Src of a gonum distuv distribution.
package randx // import "github.com/aclements/go-shapedist/randx"

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"sync"
)

// NewSource returns a PCG source for the given seed and stream.
//
// The same (seed, stream) pair always yields the same sequence.
// Different streams of one seed are statistically independent, which
// makes stream a convenient worker index for parallel generation.
func NewSource(seed, stream uint64) *mrand.PCG {
	x := seed ^ 0x9e3779b97f4a7c15
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xda942042e4dd58b5 ^ splitmix64(stream))
	return mrand.NewPCG(hi, lo)
}

// splitmix64 scrambles x so that adjacent seeds produce unrelated
// PCG states.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// A LockedSource is a Source that is safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	src mrand.Source
}

// Locked wraps src so that it may be shared between goroutines.
func Locked(src mrand.Source) *LockedSource {
	return &LockedSource{src: src}
}

func (s *LockedSource) Uint64() uint64 {
	s.mu.Lock()
	v := s.src.Uint64()
	s.mu.Unlock()
	return v
}

// reset replaces the underlying source.
func (s *LockedSource) reset(src mrand.Source) {
	s.mu.Lock()
	s.src = src
	s.mu.Unlock()
}

var (
	defaultOnce sync.Once
	defaultSrc  *LockedSource
)

// Default returns the process-wide source.
//
// It is created on first use and seeded from crypto/rand, so its
// sequence differs between processes unless Seed is called. It is
// safe for concurrent use.
func Default() *LockedSource {
	defaultOnce.Do(func() {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic("randx: reading seed: " + err.Error())
		}
		defaultSrc = Locked(NewSource(binary.LittleEndian.Uint64(b[:]), 0))
	})
	return defaultSrc
}

// Seed reseeds the process-wide source so that subsequent draws are
// reproducible.
func Seed(seed uint64) {
	Default().reset(NewSource(seed, 0))
}
