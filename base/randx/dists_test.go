// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func sampleStats(nsamp int, gen func() float64) (mean, std, lo float64) {
	vals := make([]float64, nsamp)
	lo = math.Inf(1)
	for i := range vals {
		vals[i] = gen()
		lo = min(lo, vals[i])
	}
	mean, std = stat.MeanStdDev(vals, nil)
	return
}

func TestGaussianGen(t *testing.T) {
	rnd := NewSysRand(1)
	mean := 0.5
	sig := 0.25
	tol := 1e-2

	actMean, actStd, _ := sampleStats(int(1e5), func() float64 { return GaussianGen(mean, sig, rnd) })
	if math.Abs(actMean-mean) > tol {
		t.Errorf("Gaussian: mean %g\t out of tolerance vs target: %g\n", actMean, mean)
	}
	if math.Abs(actStd-sig) > tol {
		t.Errorf("Gaussian: stdev %g\t out of tolerance vs target: %g\n", actStd, sig)
	}
}

func TestBinomialGen(t *testing.T) {
	// direct, poisson-rejection and cauchy-rejection regimes, plus reflection
	cases := []struct {
		n int
		p float64
	}{
		{1, 0.5}, {20, 0.3}, {50, 0.01}, {50, 0.04}, {130, 0.88}, {1000, 0.5},
	}
	for _, c := range cases {
		rnd := NewSysRand(2)
		actMean, actStd, actMin := sampleStats(int(1e5), func() float64 { return float64(BinomialGen(c.n, c.p, rnd)) })
		n := float64(c.n)
		mean := n * c.p
		sig := math.Sqrt(n * c.p * (1 - c.p))
		tol := 0.02 * math.Max(1, sig)
		if math.Abs(actMean-mean) > tol {
			t.Errorf("Binomial(%d, %g): mean %g\t out of tolerance vs target: %g\n", c.n, c.p, actMean, mean)
		}
		if math.Abs(actStd-sig) > tol {
			t.Errorf("Binomial(%d, %g): stdev %g\t out of tolerance vs target: %g\n", c.n, c.p, actStd, sig)
		}
		if actMin < 0 {
			t.Errorf("Binomial(%d, %g): min %g\t should not be < 0\n", c.n, c.p, actMin)
		}
	}
}

func TestBinomialDegenerate(t *testing.T) {
	rnd := NewSysRand(3)
	assert.Equal(t, 0, BinomialGen(0, 0.5, rnd))
	assert.Equal(t, 0, BinomialGen(40, 0, rnd))
	assert.Equal(t, 40, BinomialGen(40, 1, rnd))
	assert.Equal(t, 0, BinomialGen(40, math.NaN(), rnd))
	assert.Equal(t, 0, BinomialGen(1000, math.NaN(), rnd))
	assert.Equal(t, 0, BinomialSum(0, 50, 0.5, rnd))
	assert.Equal(t, 500, BinomialSum(10, 50, 1, rnd))
}

func TestPoissonGen(t *testing.T) {
	for _, lambda := range []float64{3, 10, 40} {
		rnd := NewSysRand(4)
		actMean, actStd, actMin := sampleStats(int(1e5), func() float64 { return float64(PoissonGen(lambda, rnd)) })
		tol := 0.02 * math.Sqrt(lambda)
		if math.Abs(actMean-lambda) > tol {
			t.Errorf("Poisson(%g): mean %g\t out of tolerance vs target: %g\n", lambda, actMean, lambda)
		}
		sig := math.Sqrt(lambda)
		if math.Abs(actStd-sig) > tol {
			t.Errorf("Poisson(%g): stdev %g\t out of tolerance vs target: %g\n", lambda, actStd, sig)
		}
		if actMin < 0 {
			t.Errorf("Poisson(%g): min %g\t should not be < 0\n", lambda, actMin)
		}
	}
}

func TestSeedsReproducible(t *testing.T) {
	sd := NewSeeds(10, 3)
	assert.Equal(t, Seeds{10, 11, 12}, sd)

	a := make([]float64, 5)
	b := make([]float64, 5)
	GaussianFill(a, 0, 1, sd.Rand(1))
	GaussianFill(b, 0, 1, sd.Rand(1))
	assert.Equal(t, a, b)

	r := NewSysRand(99)
	r.Seed(12)
	assert.Equal(t, sd.Rand(2).Float64(), r.Float64())
}
