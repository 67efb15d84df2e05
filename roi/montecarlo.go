// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roi

import (
	"fmt"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/randx"
	"github.com/PedroRussoUnB/AereaConfiavel/stats"
)

// DefaultBins is the number of histogram bins for the ROI distribution.
const DefaultBins = 30

// Params are the inputs of a Monte Carlo ROI simulation.
type Params struct {
	Investment  float64 `json:"investment" yaml:"investment"`
	RevenueMean float64 `json:"revenue_mean" yaml:"revenue_mean"`
	RevenueSD   float64 `json:"revenue_sd" yaml:"revenue_sd"`
	Opex        float64 `json:"opex" yaml:"opex"`
	Samples     int     `json:"samples" yaml:"samples"`
}

// Validate checks the parameters.
func (pr Params) Validate() error {
	if err := checkFinite(pr.Investment, pr.RevenueMean, pr.Opex); err != nil {
		return err
	}
	if pr.Investment == 0 {
		return ErrZeroInvestment
	}
	if pr.Samples <= 0 {
		return fmt.Errorf("%w: samples %d must be positive", ErrInvalid, pr.Samples)
	}
	if pr.RevenueSD < 0 || math.IsNaN(pr.RevenueSD) || math.IsInf(pr.RevenueSD, 0) {
		return fmt.Errorf("%w: revenue standard deviation %g must be finite and non-negative", ErrInvalid, pr.RevenueSD)
	}
	return nil
}

// Simulation is a drawn ROI distribution with its summary.
type Simulation struct {
	Params Params `json:"params" yaml:"params"`

	// Revenues are the simulated revenues, one per sample.
	Revenues []float64 `json:"-" yaml:"-"`

	// ROIs are the ROI percentages, one per sample.
	ROIs []float64 `json:"-" yaml:"-"`

	// Summary describes ROIs: P10 is the pessimistic scenario,
	// Mean the realistic and P90 the optimistic one.
	Summary stats.Summary `json:"summary" yaml:"summary"`
}

// MonteCarlo draws Params.Samples revenues from a normal distribution
// with the given mean and standard deviation and converts each to an
// ROI percentage. The sample mean converges to the ROI of the mean
// revenue as the number of samples grows.
func MonteCarlo(pr Params, rnd randx.Rand) (*Simulation, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	sim := &Simulation{
		Params:   pr,
		Revenues: make([]float64, pr.Samples),
		ROIs:     make([]float64, pr.Samples),
	}
	randx.GaussianFill(sim.Revenues, pr.RevenueMean, pr.RevenueSD, rnd)
	for i, rev := range sim.Revenues {
		sim.ROIs[i] = percent(pr.Investment, rev, pr.Opex)
	}
	sim.Summary = stats.Describe(sim.ROIs)
	return sim, nil
}

// Expected returns the analytic ROI at the mean revenue.
func (sim *Simulation) Expected() (Result, error) {
	return Compute(sim.Params.Investment, sim.Params.RevenueMean, sim.Params.Opex)
}

// ProbRevenueBelow returns the fraction of simulated revenues
// strictly below floor.
func (sim *Simulation) ProbRevenueBelow(floor float64) float64 {
	return stats.PropIf(sim.Revenues, func(v float64) bool { return v < floor })
}

// ProbROIBelow returns the fraction of simulated ROIs strictly below pct;
// ProbROIBelow(0) is the probability of a loss.
func (sim *Simulation) ProbROIBelow(pct float64) float64 {
	return stats.PropIf(sim.ROIs, func(v float64) bool { return v < pct })
}

// Histogram bins the simulated ROIs.
func (sim *Simulation) Histogram(nbins int) []stats.Bin {
	return stats.Histogram(sim.ROIs, nbins)
}
