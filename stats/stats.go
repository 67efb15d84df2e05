// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the reductions applied to simulated samples:
// summary statistics, numpy-compatible percentiles, threshold
// proportions and equal-width histograms.
package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

// StatsFunc reduces a sample to a single value.
type StatsFunc func(vals []float64) float64

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[Count.String()] = func(vals []float64) float64 { return float64(len(vals)) }
	Funcs[Mean.String()] = MeanFunc
	Funcs[Std.String()] = StdFunc
	Funcs[Min.String()] = MinFunc
	Funcs[Max.String()] = MaxFunc
	Funcs[P10.String()] = func(vals []float64) float64 { return Percentile(vals, 10) }
	Funcs[Median.String()] = func(vals []float64) float64 { return Percentile(vals, 50) }
	Funcs[P90.String()] = func(vals []float64) float64 { return Percentile(vals, 90) }
}

// Standard calls a standard Stats enum function on given values.
func Standard(st Stats, vals []float64) float64 {
	return Funcs[st.String()](vals)
}

// Stats is a list of different standard aggregation functions.
type Stats int32

const (
	// count of number of elements.
	Count Stats = iota

	// mean of elements.
	Mean

	// sample standard deviation of elements.
	Std

	// minimum value.
	Min

	// maximum value.
	Max

	// 10th percentile (pessimistic scenario).
	P10

	// 50th percentile.
	Median

	// 90th percentile (optimistic scenario).
	P90

	StatsN
)

var statsNames = [...]string{"Count", "Mean", "Std", "Min", "Max", "P10", "Median", "P90"}

func (st Stats) String() string {
	if st < 0 || st >= StatsN {
		return fmt.Sprintf("Stats(%d)", int32(st))
	}
	return statsNames[st]
}

// MeanFunc returns the mean of vals, or NaN when empty.
func MeanFunc(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return stat.Mean(vals, nil)
}

// StdFunc returns the unbiased sample standard deviation.
// A single value has zero spread; an empty sample gives NaN.
func StdFunc(vals []float64) float64 {
	switch len(vals) {
	case 0:
		return math.NaN()
	case 1:
		return 0
	}
	return stat.StdDev(vals, nil)
}

func MinFunc(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return slices.Min(vals)
}

func MaxFunc(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return slices.Max(vals)
}

// Percentile returns the q-th percentile (0..100) of vals using
// linear interpolation between closest ranks, the same definition
// numpy.percentile uses by default. vals is not modified.
func Percentile(vals []float64, q float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return percentileSorted(sorted, q)
}

func percentileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	q = min(max(q, 0), 100)
	rank := q / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// PropIf returns the proportion of vals for which iffun is true.
// Returns 0 for an empty sample.
func PropIf(vals []float64, iffun func(v float64) bool) float64 {
	if len(vals) == 0 {
		return 0
	}
	n := 0
	for _, v := range vals {
		if iffun(v) {
			n++
		}
	}
	return float64(n) / float64(len(vals))
}

