// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decision

import (
	"fmt"
	"strings"
)

// Tier is a recommendation tier, from most to least favorable.
type Tier int32

const (
	// Adopt the forecasting system immediately.
	Adopt Tier = iota

	// Adopt with monthly monitoring and adjustments.
	AdoptMonitored

	// Review sales strategy or costs before adopting.
	Review

	// Defer adoption.
	Defer

	TierN
)

var tierNames = [...]string{"Adopt", "AdoptMonitored", "Review", "Defer"}

var tierCommentary = [...]string{
	"Mean ROI and percentiles show good viability. The system should improve sales efficiency and reduce uncertainty.",
	"The ROI distribution shows moderate risk. Deploy the system with monthly follow-up and adjust sales strategy to the observed data.",
	"Revenue is highly variable and the return falls well short of the target. Re-evaluate operating costs or sales strategy before adopting.",
	"The expected return does not justify the investment. Postpone adoption and revisit the business case.",
}

func (t Tier) String() string {
	if t < 0 || t >= TierN {
		return fmt.Sprintf("Tier(%d)", int32(t))
	}
	return tierNames[t]
}

// MarshalText implements [encoding.TextMarshaler].
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], case-insensitively.
func (t *Tier) UnmarshalText(text []byte) error {
	s := string(text)
	for i, nm := range tierNames {
		if strings.EqualFold(nm, s) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("decision: unknown tier %q", s)
}

// Tiers returns all tiers in order.
func Tiers() []Tier {
	ts := make([]Tier, TierN)
	for i := range ts {
		ts[i] = Tier(i)
	}
	return ts
}

// Commentary returns the canned explanation for a tier.
func Commentary(t Tier) string {
	if t < 0 || t >= TierN {
		return ""
	}
	return tierCommentary[t]
}
