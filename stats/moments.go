// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// Float is the set of element types accepted by the sample
// statistics. Values are accumulated in float64 regardless of the
// element type.
type Float interface {
	~float32 | ~float64
}

// Mean returns the arithmetic mean of xs.
//
// Mean returns ErrEmptySample if xs is empty.
func Mean[S ~[]E, E Float](xs S) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs)), nil
}

// Dispersion returns the population variance of xs,
// Σ(x - mean)² / N.
//
// Dispersion returns ErrEmptySample if xs is empty.
func Dispersion[S ~[]E, E Float](xs S) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	return DispersionAbout(xs, mean)
}

// DispersionAbout is like Dispersion, but uses a mean previously
// computed by Mean instead of recomputing it.
func DispersionAbout[S ~[]E, E Float](xs S, mean float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return centralSum(xs, mean, 2) / float64(len(xs)), nil
}

// Skewness returns the sample skewness of xs,
// Σ(x - mean)³ / (N · dispersion^1.5).
//
// The result is NaN if all values of xs are equal. Skewness returns
// ErrEmptySample if xs is empty.
func Skewness[S ~[]E, E Float](xs S) (float64, error) {
	mean, disp, err := meanDispersion(xs)
	if err != nil {
		return 0, err
	}
	return SkewnessWith(xs, mean, disp)
}

// SkewnessWith is like Skewness, but uses a mean and dispersion
// previously computed by Mean and Dispersion.
func SkewnessWith[S ~[]E, E Float](xs S, mean, dispersion float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return centralSum(xs, mean, 3) / (float64(len(xs)) * dispersion * math.Sqrt(dispersion)), nil
}

// Kurtosis returns the excess kurtosis of xs,
// Σ(x - mean)⁴ / (N · dispersion²) - 3, which is 0 for a normal
// distribution.
//
// The result is NaN if all values of xs are equal. Kurtosis returns
// ErrEmptySample if xs is empty.
func Kurtosis[S ~[]E, E Float](xs S) (float64, error) {
	mean, disp, err := meanDispersion(xs)
	if err != nil {
		return 0, err
	}
	return KurtosisWith(xs, mean, disp)
}

// KurtosisWith is like Kurtosis, but uses a mean and dispersion
// previously computed by Mean and Dispersion.
func KurtosisWith[S ~[]E, E Float](xs S, mean, dispersion float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return centralSum(xs, mean, 4)/(float64(len(xs))*dispersion*dispersion) - 3, nil
}

func meanDispersion[S ~[]E, E Float](xs S) (mean, disp float64, err error) {
	if mean, err = Mean(xs); err != nil {
		return 0, 0, err
	}
	disp, err = DispersionAbout(xs, mean)
	return
}

// centralSum returns Σ(x - mean)^k for k in 2..4.
//
// This is the second pass of a two-pass algorithm. Accumulating
// centered powers avoids the cancellation of Σx² - (Σx)²/N.
func centralSum[S ~[]E, E Float](xs S, mean float64, k int) float64 {
	var sum float64
	switch k {
	case 2:
		for _, x := range xs {
			d := float64(x) - mean
			sum += d * d
		}
	case 3:
		for _, x := range xs {
			d := float64(x) - mean
			sum += d * d * d
		}
	case 4:
		for _, x := range xs {
			d := float64(x) - mean
			d *= d
			sum += d * d
		}
	default:
		panic(fmt.Sprint("unsupported moment order ", k))
	}
	return sum
}

// Moments summarizes the first four moments of a sample or a
// distribution.
type Moments struct {
	Mean       float64
	Dispersion float64 // population variance
	Skewness   float64
	Kurtosis   float64 // excess kurtosis
}

// Describe returns the mean, dispersion, skewness and excess kurtosis
// of xs. It computes the mean and dispersion once and shares them
// between the higher moments.
//
// Describe returns ErrEmptySample if xs is empty.
func Describe[S ~[]E, E Float](xs S) (Moments, error) {
	mean, disp, err := meanDispersion(xs)
	if err != nil {
		return Moments{}, err
	}
	skew, _ := SkewnessWith(xs, mean, disp)
	kurt, _ := KurtosisWith(xs, mean, disp)
	return Moments{mean, disp, skew, kurt}, nil
}

// StdDev returns the square root of m.Dispersion.
func (m Moments) StdDev() float64 {
	return math.Sqrt(m.Dispersion)
}

func (m Moments) String() string {
	return fmt.Sprintf("mean %.6g  dispersion %.6g  std dev %.6g  skewness %.6g  kurtosis %.6g",
		m.Mean, m.Dispersion, m.StdDev(), m.Skewness, m.Kurtosis)
}
