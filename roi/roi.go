// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roi computes the return on investment of the demand
// forecasting system, both for point estimates and as a Monte Carlo
// distribution under uncertain revenue.
package roi

import (
	"fmt"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrZeroInvestment is returned when the ROI denominator is zero.
	ErrZeroInvestment = errors.New("roi: investment must be non-zero")

	// ErrInvalid is returned for parameters outside their domain.
	ErrInvalid = errors.New("roi: invalid parameter")
)

var hundred = decimal.NewFromInt(100)

// Result is the immutable outcome of an ROI computation. It is the
// value handed to dependent computations such as the adoption decision.
type Result struct {
	Investment float64 `json:"investment" yaml:"investment"`
	Revenue    float64 `json:"revenue" yaml:"revenue"`
	Opex       float64 `json:"opex" yaml:"opex"`

	// Profit is Revenue - Opex.
	Profit float64 `json:"profit" yaml:"profit"`

	// Percent is Profit / Investment * 100, rounded to cents.
	Percent float64 `json:"percent" yaml:"percent"`
}

func (r Result) String() string {
	return fmt.Sprintf("ROI %.2f%% (profit %.2f on investment %.2f)", r.Percent, r.Profit, r.Investment)
}

// Compute returns the ROI of revenue net of operating cost opex over
// the investment, using exact decimal arithmetic so that literal inputs
// give literal results: Compute(50000, 80000, 10000) is 140.00%.
func Compute(investment, revenue, opex float64) (Result, error) {
	if err := checkFinite(investment, revenue, opex); err != nil {
		return Result{}, err
	}
	if investment == 0 {
		return Result{}, ErrZeroInvestment
	}
	inv := decimal.NewFromFloat(investment)
	profit := decimal.NewFromFloat(revenue).Sub(decimal.NewFromFloat(opex))
	pct := profit.Div(inv).Mul(hundred).Round(2)
	return Result{
		Investment: investment,
		Revenue:    revenue,
		Opex:       opex,
		Profit:     profit.InexactFloat64(),
		Percent:    pct.InexactFloat64(),
	}, nil
}

// checkFinite returns ErrInvalid if any of the money amounts is NaN or infinite.
func checkFinite(investment, revenue, opex float64) error {
	for _, v := range []struct {
		name string
		v    float64
	}{{"investment", investment}, {"revenue", revenue}, {"operating cost", opex}} {
		if math.IsNaN(v.v) || math.IsInf(v.v, 0) {
			return fmt.Errorf("%w: %s %g is not finite", ErrInvalid, v.name, v.v)
		}
	}
	return nil
}

// percent is the float fast path used per Monte Carlo sample.
func percent(investment, revenue, opex float64) float64 {
	return (revenue - opex) / investment * 100
}
