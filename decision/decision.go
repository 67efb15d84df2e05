// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decision turns an ROI result into an adoption recommendation
// by evaluating an ordered table of threshold rules.
package decision

import (
	"fmt"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/roi"
)

// ErrZeroTarget is returned when the target ROI denominator is zero.
var ErrZeroTarget = errors.New("decision: target ROI must be non-zero")

// Rule maps a predicate on the achieved/target ROI ratio to a tier.
type Rule struct {
	Name  string
	Match func(ratio float64) bool
	Tier  Tier
}

// AtLeast returns a predicate matching ratios >= lo.
func AtLeast(lo float64) func(float64) bool {
	return func(ratio float64) bool { return ratio >= lo }
}

// Rules are evaluated in order; the first match wins.
// The last rule matches everything.
var Rules = []Rule{
	{Name: "ratio >= 1", Match: AtLeast(1), Tier: Adopt},
	{Name: "ratio >= 0.5", Match: AtLeast(0.5), Tier: AdoptMonitored},
	{Name: "ratio >= 0.05", Match: AtLeast(0.05), Tier: Review},
	{Name: "otherwise", Match: func(float64) bool { return true }, Tier: Defer},
}

// Recommendation is the outcome of [Recommend].
type Recommendation struct {
	Tier Tier `json:"tier" yaml:"tier"`

	// Ratio is the expected ROI over the target ROI.
	Ratio float64 `json:"ratio" yaml:"ratio"`

	// Rule is the name of the matching rule.
	Rule string `json:"rule" yaml:"rule"`

	Result    roi.Result `json:"result" yaml:"result"`
	TargetPct float64    `json:"target_pct" yaml:"target_pct"`
}

// Message returns the commentary for the recommended tier.
func (rc Recommendation) Message() string {
	return Commentary(rc.Tier)
}

// Recommend compares the ROI result against the target ROI percentage
// and returns the tier of the first rule matching their ratio.
func Recommend(res roi.Result, targetPct float64) (Recommendation, error) {
	return RecommendWith(Rules, res, targetPct)
}

// RecommendWith is [Recommend] with a custom rule table.
func RecommendWith(rules []Rule, res roi.Result, targetPct float64) (Recommendation, error) {
	if targetPct == 0 {
		return Recommendation{}, ErrZeroTarget
	}
	ratio := res.Percent / targetPct
	if math.IsNaN(ratio) {
		return Recommendation{}, fmt.Errorf("decision: undefined ratio for ROI %g and target %g", res.Percent, targetPct)
	}
	for _, r := range rules {
		if r.Match(ratio) {
			return Recommendation{Tier: r.Tier, Ratio: ratio, Rule: r.Name, Result: res, TargetPct: targetPct}, nil
		}
	}
	return Recommendation{}, fmt.Errorf("decision: no rule matched ratio %g", ratio)
}
