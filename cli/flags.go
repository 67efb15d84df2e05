// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/spf13/pflag"
)

// flagBinder binds the flags of one config section.
type flagBinder func(fs *pflag.FlagSet, cfg *config.Config)

func overbookingFlags(fs *pflag.FlagSet, cfg *config.Config) {
	ob := &cfg.Overbooking
	fs.IntVar(&ob.Capacity, "capacity", ob.Capacity, "seats on the flight")
	fs.IntVar(&ob.Sold, "sold", ob.Sold, "tickets sold")
	fs.Float64Var(&ob.ShowUp, "show-up", ob.ShowUp, "probability that a ticket holder shows up")
	fs.Float64Var(&ob.MaxRiskPct, "max-risk", ob.MaxRiskPct, "acceptable overbooking risk in percent")
	fs.IntVar(&ob.Span, "span", ob.Span, "extra tickets beyond capacity in the risk table")
	fs.IntVar(&ob.Excess, "excess", ob.Excess, "extra tickets sold beyond capacity for the economics")
	fs.Float64Var(&ob.Compensation, "compensation", ob.Compensation, "compensation paid per overbooking event")
	fs.Float64Var(&ob.TicketRevenue, "ticket-revenue", ob.TicketRevenue, "revenue per extra ticket")
}

func roiFlags(fs *pflag.FlagSet, cfg *config.Config) {
	r := &cfg.ROI
	fs.Float64Var(&r.Investment, "investment", r.Investment, "initial investment")
	fs.Float64Var(&r.Revenue, "revenue", r.Revenue, "expected annual revenue")
	fs.Float64Var(&r.Opex, "opex", r.Opex, "annual operating cost")
	fs.Float64Var(&r.RevenueSD, "revenue-sd", r.RevenueSD, "standard deviation of the simulated revenue")
	fs.IntVar(&r.Samples, "samples", r.Samples, "number of Monte Carlo samples")
	fs.Float64Var(&r.RevenueFloor, "floor", r.RevenueFloor, "minimum acceptable revenue")
	fs.IntVar(&r.Bins, "bins", r.Bins, "histogram bins")
	fs.Float64Var(&r.TargetPct, "target", r.TargetPct, "target ROI in percent for the recommendation")
}

func normalFlags(fs *pflag.FlagSet, cfg *config.Config) {
	n := &cfg.Normal
	fs.Float64Var(&n.Mean, "mean", n.Mean, "mean")
	fs.Float64Var(&n.SD, "sd", n.SD, "standard deviation")
	fs.Float64Var(&n.Lower, "lower", n.Lower, "lower bound of the interval")
	fs.Float64Var(&n.Upper, "upper", n.Upper, "upper bound of the interval")
	fs.IntVar(&n.Points, "points", n.Points, "points of the plotted density")
}

func poissonFlags(fs *pflag.FlagSet, cfg *config.Config) {
	p := &cfg.Poisson
	fs.Float64Var(&p.Lambda, "lambda", p.Lambda, "mean event rate")
	fs.IntVar(&p.KMax, "kmax", p.KMax, "largest tabulated count")
	fs.IntVar(&p.Samples, "samples", p.Samples, "simulated counts to compare with the exact table (0 for none)")
}

func callCenterFlags(fs *pflag.FlagSet, cfg *config.Config) {
	cc := &cfg.CallCenter
	fs.IntVar(&cc.CallsPerEmployee, "calls", cc.CallsPerEmployee, "calls per employee")
	fs.Float64Var(&cc.SuccessP, "success", cc.SuccessP, "probability that a call converts")
	fs.Float64Var(&cc.RevenuePerSuccess, "revenue-per-success", cc.RevenuePerSuccess, "revenue per converted call")
	fs.Float64Var(&cc.Wage, "wage", cc.Wage, "wage per employee")
	fs.IntVar(&cc.Employees, "employees", cc.Employees, "number of employees")
	fs.IntVar(&cc.Sims, "sims", cc.Sims, "number of simulation runs")
	fs.IntVar(&cc.Bins, "bins", cc.Bins, "histogram bins")
}
