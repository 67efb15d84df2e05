// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report runs the configured scenarios and renders their
// results as text, JSON, YAML or CSV.
package report

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/base/randx"
	"github.com/PedroRussoUnB/AereaConfiavel/callcenter"
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/PedroRussoUnB/AereaConfiavel/decision"
	"github.com/PedroRussoUnB/AereaConfiavel/distrib"
	"github.com/PedroRussoUnB/AereaConfiavel/overbook"
	"github.com/PedroRussoUnB/AereaConfiavel/roi"
	"github.com/PedroRussoUnB/AereaConfiavel/stats"
	"github.com/google/uuid"
)

// Section is one scenario of the report.
type Section int32

const (
	Overbooking Section = iota
	ROI
	Decision
	Normal
	Poisson
	CallCenter

	SectionN
)

var sectionNames = [...]string{"overbooking", "roi", "decision", "normal", "poisson", "callcenter"}

func (s Section) String() string {
	if s < 0 || s >= SectionN {
		return fmt.Sprintf("Section(%d)", int32(s))
	}
	return sectionNames[s]
}

// ParseSection returns the section with the given name.
func ParseSection(name string) (Section, error) {
	for i, nm := range sectionNames {
		if strings.EqualFold(nm, name) {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("report: unknown section %q (want one of %s)", name, strings.Join(sectionNames[:], ", "))
}

// AllSections returns every section in report order.
func AllSections() []Section {
	ss := make([]Section, SectionN)
	for i := range ss {
		ss[i] = Section(i)
	}
	return ss
}

// seed stream indexes, one per stochastic section
const (
	roiStream = iota
	callCenterStream
	poissonStream
	numStreams
)

// Report holds the results of one full computation pass.
type Report struct {
	ID      string    `json:"id" yaml:"id"`
	Created time.Time `json:"created" yaml:"created"`
	Seed    int64     `json:"seed" yaml:"seed"`

	Overbooking *OverbookingResult       `json:"overbooking,omitempty" yaml:"overbooking,omitempty"`
	ROI         *ROIResult               `json:"roi,omitempty" yaml:"roi,omitempty"`
	Decision    *decision.Recommendation `json:"decision,omitempty" yaml:"decision,omitempty"`
	Normal      *NormalResult            `json:"normal,omitempty" yaml:"normal,omitempty"`
	Poisson     *distrib.PoissonTable    `json:"poisson,omitempty" yaml:"poisson,omitempty"`
	CallCenter  *CallCenterResult        `json:"callcenter,omitempty" yaml:"callcenter,omitempty"`

	// Warnings are non-fatal problems, such as a decision requested
	// without an ROI to base it on.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type OverbookingResult struct {
	Params config.Overbooking `json:"params" yaml:"params"`

	// Risk is the overbooking probability at Params.Sold.
	Risk  float64          `json:"risk" yaml:"risk"`
	Curve []overbook.Point `json:"curve" yaml:"curve"`

	// MaxSafeSales is the largest sale within Params.MaxRiskPct, if any.
	MaxSafeSales int                `json:"max_safe_sales,omitempty" yaml:"max_safe_sales,omitempty"`
	HasMaxSafe   bool               `json:"has_max_safe" yaml:"has_max_safe"`
	Economics    overbook.Economics `json:"economics" yaml:"economics"`
}

type ROIResult struct {
	Result           roi.Result      `json:"result" yaml:"result"`
	Simulation       *roi.Simulation `json:"simulation" yaml:"simulation"`
	RevenueFloor     float64         `json:"revenue_floor" yaml:"revenue_floor"`
	ProbRevenueBelow float64         `json:"prob_revenue_below" yaml:"prob_revenue_below"`
	ProbLoss         float64         `json:"prob_loss" yaml:"prob_loss"`
	Histogram        []stats.Bin     `json:"histogram" yaml:"histogram"`
}

type NormalResult struct {
	Params   config.Normal   `json:"params" yaml:"params"`
	Interval float64         `json:"interval" yaml:"interval"`
	Curve    []distrib.Point `json:"curve" yaml:"curve"`
}

type CallCenterResult struct {
	Distribution *callcenter.Distribution `json:"distribution" yaml:"distribution"`
	ProbLoss     float64                  `json:"prob_loss" yaml:"prob_loss"`
	Histogram    []stats.Bin              `json:"histogram" yaml:"histogram"`
}

// Build runs the given sections (all of them when none are given)
// with the given config. Each stochastic section draws from its own
// stream derived from the config seed.
func Build(cfg *config.Config, sections ...Section) (*Report, error) {
	if len(sections) == 0 {
		sections = AllSections()
	}
	want := make(map[Section]bool, len(sections))
	for _, s := range sections {
		want[s] = true
	}
	seeds := randx.NewSeeds(cfg.Seed, numStreams)
	rep := &Report{ID: uuid.NewString(), Created: time.Now(), Seed: cfg.Seed}
	var errs []error
	var err error
	if want[Overbooking] {
		rep.Overbooking, err = buildOverbooking(&cfg.Overbooking)
		errs = append(errs, err)
	}
	if want[ROI] {
		rep.ROI, err = buildROI(&cfg.ROI, seeds.Rand(roiStream))
		errs = append(errs, err)
	}
	if want[Decision] {
		rep.buildDecision(&cfg.ROI)
	}
	if want[Normal] {
		rep.Normal, err = buildNormal(&cfg.Normal)
		errs = append(errs, err)
	}
	if want[Poisson] {
		rep.Poisson, err = buildPoisson(&cfg.Poisson, seeds.Rand(poissonStream))
		errs = append(errs, err)
	}
	if want[CallCenter] {
		rep.CallCenter, err = buildCallCenter(&cfg.CallCenter, seeds.Rand(callCenterStream))
		errs = append(errs, err)
	}
	for _, w := range rep.Warnings {
		slog.Warn(w)
	}
	if err := errors.Join(errs...); err != nil {
		return rep, err
	}
	slog.Info("built report", "id", rep.ID, "sections", len(sections), "seed", cfg.Seed)
	return rep, nil
}

func buildOverbooking(ob *config.Overbooking) (*OverbookingResult, error) {
	risk, err := overbook.Risk(ob.Capacity, ob.Sold, ob.ShowUp)
	if err != nil {
		return nil, err
	}
	curve, err := overbook.Curve(ob.Capacity, ob.ShowUp, ob.Span)
	if err != nil {
		return nil, err
	}
	econ, err := overbook.ExtraSales(ob.Capacity, ob.Excess, ob.ShowUp, ob.Compensation, ob.TicketRevenue)
	if err != nil {
		return nil, err
	}
	res := &OverbookingResult{Params: *ob, Risk: risk, Curve: curve, Economics: econ}
	res.MaxSafeSales, res.HasMaxSafe = overbook.MaxSafeSales(curve, ob.MaxRiskPct)
	return res, nil
}

func buildROI(rc *config.ROI, rnd randx.Rand) (*ROIResult, error) {
	res, err := roi.Compute(rc.Investment, rc.Revenue, rc.Opex)
	if err != nil {
		return nil, err
	}
	sim, err := roi.MonteCarlo(rc.Params(), rnd)
	if err != nil {
		return nil, err
	}
	return &ROIResult{
		Result:           res,
		Simulation:       sim,
		RevenueFloor:     rc.RevenueFloor,
		ProbRevenueBelow: sim.ProbRevenueBelow(rc.RevenueFloor),
		ProbLoss:         sim.ProbROIBelow(0),
		Histogram:        sim.Histogram(rc.Bins),
	}, nil
}

// buildDecision recommends from the ROI result of this report,
// which must already have been computed.
func (rep *Report) buildDecision(rc *config.ROI) {
	if rep.ROI == nil {
		rep.Warnings = append(rep.Warnings, "decision skipped: compute the ROI section first")
		return
	}
	rec, err := decision.Recommend(rep.ROI.Result, rc.TargetPct)
	if err != nil {
		rep.Warnings = append(rep.Warnings, "decision skipped: "+err.Error())
		return
	}
	rep.Decision = &rec
}

func buildNormal(nc *config.Normal) (*NormalResult, error) {
	p, err := distrib.NormalInterval(nc.Mean, nc.SD, nc.Lower, nc.Upper)
	if err != nil {
		return nil, err
	}
	from, to := distrib.DefaultCurveRange(nc.Mean, nc.SD)
	curve, err := distrib.NormalCurve(nc.Mean, nc.SD, from, to, nc.Points)
	if err != nil {
		return nil, err
	}
	return &NormalResult{Params: *nc, Interval: p, Curve: curve}, nil
}

func buildCallCenter(cc *config.CallCenter, rnd randx.Rand) (*CallCenterResult, error) {
	ds, err := callcenter.Simulate(cc.Params(), rnd)
	if err != nil {
		return nil, err
	}
	return &CallCenterResult{Distribution: ds, ProbLoss: ds.ProbLoss(), Histogram: ds.Histogram(cc.Bins)}, nil
}

func buildPoisson(pc *config.Poisson, rnd randx.Rand) (*distrib.PoissonTable, error) {
	if pc.Samples == 0 {
		return distrib.PoissonPMF(pc.Lambda, pc.KMax)
	}
	return distrib.PoissonSampled(pc.Lambda, pc.KMax, pc.Samples, rnd)
}
