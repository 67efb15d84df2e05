// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the
// scenario computations, with their defaults and allowed ranges.
package config

import (
	"fmt"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/callcenter"
	"github.com/PedroRussoUnB/AereaConfiavel/roi"
)

// Config is the main config struct that contains the parameters
// of every scenario. Field ranges mirror the dashboard controls.
type Config struct {

	// seed of the random source for all simulations; every run with
	// the same seed produces identical results
	Seed int64 `toml:"seed" default:"1"`

	// locale used to format numbers in reports
	Locale string `toml:"locale" default:"pt-BR"`

	// currency symbol prefixed to money amounts in reports
	Currency string `toml:"currency" default:"R$"`

	// the airline overbooking scenario
	Overbooking Overbooking `toml:"overbooking"`

	// the forecasting system ROI scenario
	ROI ROI `toml:"roi"`

	// the normal distribution demonstration
	Normal Normal `toml:"normal"`

	// the poisson distribution demonstration
	Poisson Poisson `toml:"poisson"`

	// the call center profit simulation
	CallCenter CallCenter `toml:"callcenter"`
}

type Overbooking struct {

	// number of seats on the aircraft
	Capacity int `toml:"capacity" default:"120" min:"1" max:"1000"`

	// number of tickets sold; must be at least Capacity
	Sold int `toml:"sold" default:"130" min:"1" max:"2000"`

	// probability that a ticket holder shows up
	ShowUp float64 `toml:"show_up" default:"0.88" min:"0" max:"1"`

	// maximum acceptable overbooking risk, in percent
	MaxRiskPct float64 `toml:"max_risk_pct" default:"7" min:"0" max:"100"`

	// number of tickets above capacity covered by the risk table
	Span int `toml:"span" default:"20" min:"1" max:"500"`

	// tickets sold above capacity in the financial evaluation
	Excess int `toml:"excess" default:"10" min:"0" max:"500"`

	// average compensation paid per bumped passenger
	Compensation float64 `toml:"compensation" default:"1000" min:"0"`

	// revenue per extra ticket sold
	TicketRevenue float64 `toml:"ticket_revenue" default:"500" min:"0"`
}

type ROI struct {

	// initial investment in the forecasting system
	Investment float64 `toml:"investment" default:"50000"`

	// estimated annual revenue with the system
	Revenue float64 `toml:"revenue" default:"80000"`

	// annual operating cost
	Opex float64 `toml:"opex" default:"10000" min:"0"`

	// standard deviation of the simulated revenue
	RevenueSD float64 `toml:"revenue_sd" default:"10000" min:"0"`

	// number of Monte Carlo samples
	Samples int `toml:"samples" default:"1000" min:"1" max:"10000000"`

	// minimum acceptable revenue reference
	RevenueFloor float64 `toml:"revenue_floor" default:"60000"`

	// number of histogram bins of the ROI distribution
	Bins int `toml:"bins" default:"30" min:"1" max:"1000"`

	// target ROI percentage the decision compares against
	TargetPct float64 `toml:"target_pct" default:"100"`
}

// Params returns the Monte Carlo parameters.
func (r *ROI) Params() roi.Params {
	return roi.Params{
		Investment:  r.Investment,
		RevenueMean: r.Revenue,
		RevenueSD:   r.RevenueSD,
		Opex:        r.Opex,
		Samples:     r.Samples,
	}
}

type Normal struct {
	Mean  float64 `toml:"mean" default:"100"`
	SD    float64 `toml:"sd" default:"15" min:"0"`
	Lower float64 `toml:"lower" default:"80"`
	Upper float64 `toml:"upper" default:"120"`

	// number of density points of the plotted curve
	Points int `toml:"points" default:"201" min:"2" max:"100000"`
}

type Poisson struct {

	// mean event rate per interval
	Lambda float64 `toml:"lambda" default:"4" min:"0"`

	// largest count tabulated
	KMax int `toml:"kmax" default:"15" min:"0" max:"10000"`

	// number of simulated counts compared against the exact table;
	// 0 disables the simulation
	Samples int `toml:"samples" default:"1000" min:"0" max:"10000000"`
}

type CallCenter struct {
	CallsPerEmployee  int     `toml:"calls_per_employee" default:"50" min:"0"`
	SuccessP          float64 `toml:"success_p" default:"0.04" min:"0" max:"1"`
	RevenuePerSuccess float64 `toml:"revenue_per_success" default:"100" min:"0"`
	Wage              float64 `toml:"wage" default:"200" min:"0"`
	Employees         int     `toml:"employees" default:"100" min:"0"`
	Sims              int     `toml:"sims" default:"1000" min:"1" max:"1000000"`
	Bins              int     `toml:"bins" default:"30" min:"1" max:"1000"`
}

// Params returns the simulation parameters.
func (c *CallCenter) Params() callcenter.Params {
	return callcenter.Params{
		CallsPerEmployee:  c.CallsPerEmployee,
		SuccessP:          c.SuccessP,
		RevenuePerSuccess: c.RevenuePerSuccess,
		Wage:              c.Wage,
		Employees:         c.Employees,
		Sims:              c.Sims,
	}
}

// New returns a new Config with all fields set to their defaults.
func New() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Validate checks the field ranges and the cross-field constraints
// that the range tags cannot express. All violations are reported.
func (cfg *Config) Validate() error {
	errs := []error{CheckRanges(cfg)}
	ob := &cfg.Overbooking
	if ob.Sold < ob.Capacity {
		errs = append(errs, fmt.Errorf("overbooking.sold %d must be at least overbooking.capacity %d", ob.Sold, ob.Capacity))
	}
	if cfg.ROI.Investment == 0 {
		errs = append(errs, roi.ErrZeroInvestment)
	}
	if cfg.Normal.SD == 0 {
		errs = append(errs, errors.New("normal.sd must be positive"))
	}
	if cfg.Normal.Lower > cfg.Normal.Upper {
		errs = append(errs, fmt.Errorf("normal.lower %g is above normal.upper %g", cfg.Normal.Lower, cfg.Normal.Upper))
	}
	if cfg.Poisson.Lambda == 0 {
		errs = append(errs, errors.New("poisson.lambda must be positive"))
	}
	return errors.Join(errs...)
}
