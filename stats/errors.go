// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrParameterDomain is returned when a shape parameter lies
	// outside its family's admissible domain.
	ErrParameterDomain = errors.New("shape parameter outside family domain")

	// ErrDegenerateScale is returned for a location-scale
	// transform whose scale is zero, negative or not finite.
	ErrDegenerateScale = errors.New("degenerate scale")

	// ErrEmptySample is returned when a statistic is requested
	// over a sample with no values.
	ErrEmptySample = errors.New("empty sample")
)

// A ParamError records a rejected distribution parameter.
type ParamError struct {
	Func   string  // constructor that rejected the parameter
	Family Family  // family being constructed
	Param  string  // "nu", "theta" or "lambda"
	Value  float64 // rejected value
	Err    error   // ErrParameterDomain or ErrDegenerateScale
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("stats.%s: %v: %s=%v: %v", e.Func, e.Family, e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }
