// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distrib provides the normal and poisson distribution
// demonstrations: interval probabilities, density curves and
// probability mass tables.
package distrib

import (
	"fmt"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/base/randx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalid is returned for parameters outside their domain.
var ErrInvalid = errors.New("distrib: invalid parameter")

// NormalInterval returns the probability mass of a Normal(mean, sd)
// between lower and upper, i.e. CDF(upper) - CDF(lower).
func NormalInterval(mean, sd, lower, upper float64) (float64, error) {
	if err := checkNormal(mean, sd); err != nil {
		return 0, err
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return 0, fmt.Errorf("%w: interval bound is NaN", ErrInvalid)
	}
	if lower > upper {
		return 0, fmt.Errorf("%w: lower bound %g is above upper bound %g", ErrInvalid, lower, upper)
	}
	nd := distuv.Normal{Mu: mean, Sigma: sd}
	return max(nd.CDF(upper)-nd.CDF(lower), 0), nil
}

// checkNormal requires a finite mean and a finite positive sd.
func checkNormal(mean, sd float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return fmt.Errorf("%w: mean %g is not finite", ErrInvalid, mean)
	}
	if !(sd > 0) || math.IsInf(sd, 1) {
		return fmt.Errorf("%w: standard deviation %g must be positive and finite", ErrInvalid, sd)
	}
	return nil
}

// Point is one (x, y) sample of a curve.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NormalCurve returns n evenly spaced density points of a
// Normal(mean, sd) over [from, to].
func NormalCurve(mean, sd, from, to float64, n int) ([]Point, error) {
	if err := checkNormal(mean, sd); err != nil {
		return nil, err
	}
	if n < 2 || !(to > from) || math.IsInf(to-from, 0) {
		return nil, fmt.Errorf("%w: need at least 2 points over a non-empty range", ErrInvalid)
	}
	nd := distuv.Normal{Mu: mean, Sigma: sd}
	xs := floats.Span(make([]float64, n), from, to)
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: nd.Prob(x)}
	}
	return pts, nil
}

// DefaultCurveRange returns the conventional plotting range of
// mean ± 4 standard deviations.
func DefaultCurveRange(mean, sd float64) (from, to float64) {
	return mean - 4*sd, mean + 4*sd
}

// PoissonTable is the probability mass function of a Poisson(Lambda)
// for k = 0..len(PMF)-1, with the remaining upper tail mass.
type PoissonTable struct {
	Lambda float64   `json:"lambda" yaml:"lambda"`
	PMF    []float64 `json:"pmf" yaml:"pmf"`

	// Tail is P(X > kmax).
	Tail float64 `json:"tail" yaml:"tail"`

	// Samples is the number of simulated counts behind Freq, if any.
	Samples int `json:"samples,omitempty" yaml:"samples,omitempty"`

	// Freq are the relative frequencies of k = 0..kmax among the
	// simulated counts, and FreqTail that of counts above kmax.
	Freq     []float64 `json:"freq,omitempty" yaml:"freq,omitempty"`
	FreqTail float64   `json:"freq_tail,omitempty" yaml:"freq_tail,omitempty"`
}

// Mode returns the most probable count in the table.
func (pt *PoissonTable) Mode() int {
	return floats.MaxIdx(pt.PMF)
}

// AtMost returns P(X <= k).
func (pt *PoissonTable) AtMost(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= len(pt.PMF) {
		return 1 - pt.Tail
	}
	return floats.Sum(pt.PMF[:k+1])
}

// PoissonPMF tabulates P(X = k) for k = 0..kmax.
func PoissonPMF(lambda float64, kmax int) (*PoissonTable, error) {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: rate %g must be positive", ErrInvalid, lambda)
	}
	if kmax < 0 {
		return nil, fmt.Errorf("%w: kmax %d is negative", ErrInvalid, kmax)
	}
	pd := distuv.Poisson{Lambda: lambda}
	pt := &PoissonTable{Lambda: lambda, PMF: make([]float64, kmax+1)}
	for k := range pt.PMF {
		pt.PMF[k] = pd.Prob(float64(k))
	}
	pt.Tail = max(1-pd.CDF(float64(kmax)), 0)
	return pt, nil
}

// PoissonSampled returns the table of [PoissonPMF] together with the
// relative frequencies of n counts drawn from rnd, so that simulated
// and exact probabilities can be compared.
func PoissonSampled(lambda float64, kmax, n int, rnd randx.Rand) (*PoissonTable, error) {
	pt, err := PoissonPMF(lambda, kmax)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: samples %d must be positive", ErrInvalid, n)
	}
	pt.Samples = n
	pt.Freq = make([]float64, kmax+1)
	over := 0
	for range n {
		k := randx.PoissonGen(lambda, rnd)
		if k > kmax {
			over++
			continue
		}
		pt.Freq[k]++
	}
	floats.Scale(1/float64(n), pt.Freq)
	pt.FreqTail = float64(over) / float64(n)
	return pt, nil
}
