// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the standard descriptive statistics of a sample.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	P10    float64 `json:"p10" yaml:"p10"`
	Median float64 `json:"median" yaml:"median"`
	P90    float64 `json:"p90" yaml:"p90"`
	Max    float64 `json:"max" yaml:"max"`
}

// Describe computes the [Summary] of vals through the [Funcs]
// registry. An empty sample gives NaN for every value but Count.
func Describe(vals []float64) Summary {
	var res [StatsN]float64
	for st := Count; st < StatsN; st++ {
		res[st] = Standard(st, vals)
	}
	return Summary{
		Count:  int(res[Count]),
		Mean:   res[Mean],
		Std:    res[Std],
		Min:    res[Min],
		P10:    res[P10],
		Median: res[Median],
		P90:    res[P90],
		Max:    res[Max],
	}
}

// Bin is one equal-width histogram bin covering [Lo, Hi).
type Bin struct {
	Lo    float64 `json:"lo" yaml:"lo"`
	Hi    float64 `json:"hi" yaml:"hi"`
	Count int     `json:"count" yaml:"count"`
}

// Mid returns the bin center.
func (b Bin) Mid() float64 { return (b.Lo + b.Hi) / 2 }

// Histogram bins vals into nbins equal-width bins spanning
// [min, max]; the maximum value falls in the last bin.
func Histogram(vals []float64, nbins int) []Bin {
	if len(vals) == 0 || nbins <= 0 {
		return nil
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}
	divs := make([]float64, nbins+1)
	floats.Span(divs, lo, hi)
	divs[nbins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, divs, sorted, nil)
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i] = Bin{Lo: divs[i], Hi: divs[i+1], Count: int(counts[i])}
	}
	bins[nbins-1].Hi = hi
	return bins
}
