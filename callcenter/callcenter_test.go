// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callcenter

import (
	"math"
	"testing"

	"github.com/PedroRussoUnB/AereaConfiavel/base/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineBreakeven(t *testing.T) {
	pr := Baseline()
	assert.InDelta(t, 0, pr.ExpectedProfit(), 1e-9)

	pr.Sims = 20000
	ds, err := Simulate(pr, randx.NewSysRand(1))
	require.NoError(t, err)
	// conversions ~ Binomial(5000, 0.04): sd 13.86 calls = R$1386 per day,
	// so the mean of 20000 days has standard error ~R$10
	assert.InDelta(t, 0, ds.Summary.Mean, 60)
	assert.InDelta(t, 100*math.Sqrt(5000*0.04*0.96), ds.Summary.Std, 40)
	assert.InDelta(t, 0.5, ds.ProbLoss(), 0.05)
	assert.Len(t, ds.Conversions, pr.Sims)
}

func TestSimulateProfitable(t *testing.T) {
	pr := Baseline()
	pr.SuccessP = 0.08
	pr.Sims = 2000
	ds, err := Simulate(pr, randx.NewSysRand(2))
	require.NoError(t, err)
	assert.InDelta(t, 20000, ds.Expected, 1e-9)
	assert.InDelta(t, 20000, ds.Summary.Mean, 300)
	assert.Equal(t, 0.0, ds.ProbLoss())

	bins := ds.Histogram(20)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, pr.Sims, total)
}

func TestSimulateDeterministicEdges(t *testing.T) {
	pr := Params{CallsPerEmployee: 10, SuccessP: 1, RevenuePerSuccess: 5, Wage: 20, Employees: 3, Sims: 4}
	ds, err := Simulate(pr, randx.NewSysRand(3))
	require.NoError(t, err)
	for _, v := range ds.Profits {
		assert.Equal(t, 90.0, v)
	}
	pr.SuccessP = 0
	ds, err = Simulate(pr, randx.NewSysRand(3))
	require.NoError(t, err)
	assert.Equal(t, -60.0, ds.Summary.Max)
	assert.Equal(t, 1.0, ds.ProbLoss())
}

func TestSimulateInvalid(t *testing.T) {
	rnd := randx.NewSysRand(1)
	pr := Baseline()
	pr.SuccessP = 1.2
	_, err := Simulate(pr, rnd)
	assert.ErrorIs(t, err, ErrInvalid)
	pr = Baseline()
	pr.Sims = 0
	_, err = Simulate(pr, rnd)
	assert.ErrorIs(t, err, ErrInvalid)
	pr = Baseline()
	pr.SuccessP = math.NaN()
	pr.Sims = 1
	_, err = Simulate(pr, rnd)
	assert.ErrorIs(t, err, ErrInvalid)
	pr = Baseline()
	pr.Wage = math.Inf(1)
	_, err = Simulate(pr, rnd)
	assert.ErrorIs(t, err, ErrInvalid)
	pr = Baseline()
	pr.Employees = -1
	_, err = Simulate(pr, rnd)
	assert.ErrorIs(t, err, ErrInvalid)
}
