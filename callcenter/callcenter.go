// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package callcenter simulates the daily profit of a sales call center
// whose agents each place a fixed number of calls that independently
// convert with a fixed probability.
package callcenter

import (
	"fmt"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/base/randx"
	"github.com/PedroRussoUnB/AereaConfiavel/stats"
)

// ErrInvalid is returned for parameters outside their domain.
var ErrInvalid = errors.New("callcenter: invalid parameter")

// Params are the call center scenario parameters.
type Params struct {
	CallsPerEmployee  int     `json:"calls_per_employee" yaml:"calls_per_employee"`
	SuccessP          float64 `json:"success_p" yaml:"success_p"`
	RevenuePerSuccess float64 `json:"revenue_per_success" yaml:"revenue_per_success"`
	Wage              float64 `json:"wage" yaml:"wage"`
	Employees         int     `json:"employees" yaml:"employees"`
	Sims              int     `json:"sims" yaml:"sims"`
}

// Baseline returns the reference scenario, which breaks even on average.
func Baseline() Params {
	return Params{
		CallsPerEmployee:  50,
		SuccessP:          0.04,
		RevenuePerSuccess: 100,
		Wage:              200,
		Employees:         100,
		Sims:              10000,
	}
}

// Validate checks the parameters.
func (pr Params) Validate() error {
	switch {
	case pr.CallsPerEmployee < 0 || pr.Employees < 0:
		return fmt.Errorf("%w: calls and employees must be non-negative", ErrInvalid)
	case math.IsNaN(pr.SuccessP) || pr.SuccessP < 0 || pr.SuccessP > 1:
		return fmt.Errorf("%w: success probability %g is outside [0, 1]", ErrInvalid, pr.SuccessP)
	case !isFinite(pr.RevenuePerSuccess) || !isFinite(pr.Wage):
		return fmt.Errorf("%w: revenue per success %g and wage %g must be finite", ErrInvalid, pr.RevenuePerSuccess, pr.Wage)
	case pr.Sims <= 0:
		return fmt.Errorf("%w: simulations %d must be positive", ErrInvalid, pr.Sims)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ExpectedProfit returns the analytic mean profit:
// calls * p * revenue * employees - employees * wage.
func (pr Params) ExpectedProfit() float64 {
	n := float64(pr.Employees)
	return float64(pr.CallsPerEmployee)*pr.SuccessP*pr.RevenuePerSuccess*n - n*pr.Wage
}

// Distribution is a simulated profit distribution.
type Distribution struct {
	Params Params `json:"params" yaml:"params"`

	// Conversions are the total successful calls per simulation.
	Conversions []int `json:"-" yaml:"-"`

	// Profits are the total profit per simulation.
	Profits []float64 `json:"-" yaml:"-"`

	Summary stats.Summary `json:"summary" yaml:"summary"`

	// Expected is the analytic mean profit.
	Expected float64 `json:"expected" yaml:"expected"`
}

// Simulate draws Params.Sims days; on each day every employee converts
// a Binomial(CallsPerEmployee, SuccessP) number of calls.
func Simulate(pr Params, rnd randx.Rand) (*Distribution, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	ds := &Distribution{
		Params:      pr,
		Conversions: make([]int, pr.Sims),
		Profits:     make([]float64, pr.Sims),
		Expected:    pr.ExpectedProfit(),
	}
	cost := float64(pr.Employees) * pr.Wage
	for i := range ds.Profits {
		conv := randx.BinomialSum(pr.Employees, pr.CallsPerEmployee, pr.SuccessP, rnd)
		ds.Conversions[i] = conv
		ds.Profits[i] = float64(conv)*pr.RevenuePerSuccess - cost
	}
	ds.Summary = stats.Describe(ds.Profits)
	return ds, nil
}

// ProbLoss returns the fraction of simulated days with negative profit.
func (ds *Distribution) ProbLoss() float64 {
	return stats.PropIf(ds.Profits, func(v float64) bool { return v < 0 })
}

// Histogram bins the simulated profits.
func (ds *Distribution) Histogram(nbins int) []stats.Bin {
	return stats.Histogram(ds.Profits, nbins)
}
