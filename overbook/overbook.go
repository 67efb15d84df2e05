// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overbook models airline overbooking risk: the chance that
// more ticket holders show up than there are seats, when each of the
// sold tickets independently shows up with probability p.
package overbook

import (
	"fmt"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalid is returned for parameters outside their domain.
var ErrInvalid = errors.New("overbook: invalid parameter")

// DefaultSpan is the number of tickets above capacity swept by [Curve]
// when building the standard risk table.
const DefaultSpan = 20

// Risk returns the probability that more than capacity of the sold
// tickets show up, i.e. the upper tail P(X > capacity) of a
// Binomial(sold, p). Selling no more than capacity carries no risk.
func Risk(capacity, sold int, p float64) (float64, error) {
	if err := check(capacity, p); err != nil {
		return 0, err
	}
	if sold < capacity {
		return 0, fmt.Errorf("%w: sold %d is below capacity %d", ErrInvalid, sold, capacity)
	}
	return tail(capacity, sold, p), nil
}

func check(capacity int, p float64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity %d is negative", ErrInvalid, capacity)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: show-up probability %g is outside [0, 1]", ErrInvalid, p)
	}
	return nil
}

// tail is P(X > capacity) for X ~ Binomial(sold, p), without validation.
func tail(capacity, sold int, p float64) float64 {
	switch {
	case sold <= capacity || p == 0:
		return 0
	case p == 1:
		return 1
	}
	b := distuv.Binomial{N: float64(sold), P: p}
	return min(max(1-b.CDF(float64(capacity)), 0), 1)
}

// Point is one row of the risk table.
type Point struct {
	Sold int `json:"sold" yaml:"sold"`

	// Prob is the overbooking probability in [0, 1].
	Prob float64 `json:"prob" yaml:"prob"`
}

// Pct returns the probability as a percentage rounded to two
// decimals, the precision at which risk limits are compared.
func (pt Point) Pct() float64 {
	return math.Round(pt.Prob*10000) / 100
}

// Curve returns the risk table for sold = capacity .. capacity+span.
func Curve(capacity int, p float64, span int) ([]Point, error) {
	if err := check(capacity, p); err != nil {
		return nil, err
	}
	if span < 0 {
		return nil, fmt.Errorf("%w: span %d is negative", ErrInvalid, span)
	}
	pts := make([]Point, span+1)
	for i := range pts {
		sold := capacity + i
		pts[i] = Point{Sold: sold, Prob: tail(capacity, sold, p)}
	}
	return pts, nil
}

// MaxSafeSales returns the largest number of tickets in the table whose
// risk percentage does not exceed maxRiskPct. ok is false when no row
// qualifies.
func MaxSafeSales(pts []Point, maxRiskPct float64) (sold int, ok bool) {
	for _, pt := range pts {
		if pt.Pct() <= maxRiskPct && (!ok || pt.Sold > sold) {
			sold, ok = pt.Sold, true
		}
	}
	return
}

// Economics is the financial evaluation of selling excess tickets
// beyond capacity.
type Economics struct {
	Excess int `json:"excess" yaml:"excess"`

	// Risk is the overbooking probability at capacity+Excess sold.
	Risk float64 `json:"risk" yaml:"risk"`

	// ExtraRevenue is the revenue of the excess tickets.
	ExtraRevenue float64 `json:"extra_revenue" yaml:"extra_revenue"`

	// ExpectedLoss is Risk times the compensation paid per bumped passenger.
	ExpectedLoss float64 `json:"expected_loss" yaml:"expected_loss"`
}

// Net returns the expected gain of overselling.
func (ec Economics) Net() float64 {
	return ec.ExtraRevenue - ec.ExpectedLoss
}

// Worthwhile reports whether the extra revenue exceeds the expected loss.
func (ec Economics) Worthwhile() bool {
	return ec.ExtraRevenue > ec.ExpectedLoss
}

// ExtraSales evaluates selling excess tickets above capacity, each
// bringing ticketRevenue, against the expected compensation cost.
func ExtraSales(capacity, excess int, p, compensation, ticketRevenue float64) (Economics, error) {
	if err := check(capacity, p); err != nil {
		return Economics{}, err
	}
	if excess < 0 {
		return Economics{}, fmt.Errorf("%w: excess %d is negative", ErrInvalid, excess)
	}
	if compensation < 0 || ticketRevenue < 0 {
		return Economics{}, fmt.Errorf("%w: compensation and ticket revenue must be non-negative", ErrInvalid)
	}
	risk := tail(capacity, capacity+excess, p)
	return Economics{
		Excess:       excess,
		Risk:         risk,
		ExtraRevenue: ticketRevenue * float64(excess),
		ExpectedLoss: risk * compensation,
	}, nil
}
