// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/PedroRussoUnB/AereaConfiavel/decision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildAll(t *testing.T) {
	cfg := config.New()
	rep, err := Build(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.ID)
	assert.Empty(t, rep.Warnings)

	require.NotNil(t, rep.Overbooking)
	assert.Len(t, rep.Overbooking.Curve, cfg.Overbooking.Span+1)
	assert.Greater(t, rep.Overbooking.Risk, 0.0)

	require.NotNil(t, rep.ROI)
	assert.Equal(t, 140.0, rep.ROI.Result.Percent)
	assert.Len(t, rep.ROI.Histogram, cfg.ROI.Bins)

	require.NotNil(t, rep.Decision)
	assert.Equal(t, decision.Adopt, rep.Decision.Tier)

	require.NotNil(t, rep.Normal)
	assert.InDelta(t, 0.8176, rep.Normal.Interval, 1e-4)
	assert.Len(t, rep.Normal.Curve, cfg.Normal.Points)

	require.NotNil(t, rep.Poisson)
	assert.Len(t, rep.Poisson.PMF, cfg.Poisson.KMax+1)

	require.NotNil(t, rep.CallCenter)
	assert.Equal(t, cfg.CallCenter.Sims, rep.CallCenter.Distribution.Summary.Count)
}

func TestBuildReproducible(t *testing.T) {
	cfg := config.New()
	a, err := Build(cfg, ROI, CallCenter)
	require.NoError(t, err)
	b, err := Build(cfg, CallCenter, ROI)
	require.NoError(t, err)
	assert.Equal(t, a.ROI.Simulation.Summary, b.ROI.Simulation.Summary)
	assert.Equal(t, a.CallCenter.Distribution.Summary, b.CallCenter.Distribution.Summary)

	// a call center only report draws the same stream as the full one
	c, err := Build(cfg, CallCenter)
	require.NoError(t, err)
	assert.Equal(t, a.CallCenter.Distribution.Summary, c.CallCenter.Distribution.Summary)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestDecisionWithoutROI(t *testing.T) {
	rep, err := Build(config.New(), Decision)
	require.NoError(t, err)
	assert.Nil(t, rep.Decision)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "ROI")
}

func TestDecisionZeroTarget(t *testing.T) {
	cfg := config.New()
	cfg.ROI.TargetPct = 0
	rep, err := Build(cfg, ROI, Decision)
	require.NoError(t, err)
	assert.Nil(t, rep.Decision)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "target ROI")
}

func TestBuildError(t *testing.T) {
	cfg := config.New()
	cfg.Overbooking.ShowUp = 2
	rep, err := Build(cfg, Overbooking, Normal)
	assert.Error(t, err)
	assert.Nil(t, rep.Overbooking)
	assert.NotNil(t, rep.Normal)
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("CallCenter")
	require.NoError(t, err)
	assert.Equal(t, CallCenter, s)
	_, err = ParseSection("tabs")
	assert.Error(t, err)
	assert.Equal(t, "roi", ROI.String())
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("en-US", "$")
	assert.Equal(t, "1,234.50", f.Num(1234.5, 2))
	assert.Equal(t, "$ 1,234.50", f.Money(1234.5))
	assert.Equal(t, "12.35%", f.Prob(0.12346))
	assert.Equal(t, "1,000", f.Int(1000))
	assert.Equal(t, "7.00%", NewFormatter("not a locale!", "").Pct(7))
}

func TestWriteText(t *testing.T) {
	rep, err := Build(config.New())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep, NewFormatter("en-US", "R$")))
	out := buf.String()
	for _, want := range []string{
		"Overbooking risk", "Tickets sold", "Maximum tickets to sell",
		"Expected ROI", "140.00%", "Pessimistic (P10)",
		"Decision", "Adopt",
		"Normal distribution", "81.76%",
		"Poisson distribution", "Call center profit",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteEncoded(t *testing.T) {
	rep, err := Build(config.New(), ROI, Decision)
	require.NoError(t, err)

	var jb bytes.Buffer
	require.NoError(t, Write(&jb, rep, "json", nil, ROI))
	var jm map[string]any
	require.NoError(t, json.Unmarshal(jb.Bytes(), &jm))
	assert.Equal(t, rep.ID, jm["id"])
	assert.Equal(t, "Adopt", jm["decision"].(map[string]any)["tier"])

	var yb bytes.Buffer
	require.NoError(t, Write(&yb, rep, "yaml", nil, ROI))
	var ym map[string]any
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &ym))
	assert.Equal(t, rep.ID, ym["id"])

	var cb bytes.Buffer
	require.NoError(t, Write(&cb, rep, "csv", nil, ROI))
	recs, err := csv.NewReader(strings.NewReader(cb.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"lo", "hi", "count"}, recs[0])
	assert.Len(t, recs, 1+len(rep.ROI.Histogram))

	assert.Error(t, Write(&cb, rep, "csv", nil, Overbooking))
	assert.Error(t, Write(&cb, rep, "xml", nil, ROI))
}

func TestPoissonSampledSection(t *testing.T) {
	cfg := config.New()
	rep, err := Build(cfg, Poisson)
	require.NoError(t, err)
	pt := rep.Poisson
	require.NotNil(t, pt)
	assert.Equal(t, cfg.Poisson.Samples, pt.Samples)
	require.Len(t, pt.Freq, cfg.Poisson.KMax+1)
	total := pt.FreqTail
	for _, f := range pt.Freq {
		total += f
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	again, err := Build(cfg, Poisson)
	require.NoError(t, err)
	assert.Equal(t, pt.Freq, again.Poisson.Freq)

	var cb bytes.Buffer
	require.NoError(t, Write(&cb, rep, "csv", nil, Poisson))
	recs, err := csv.NewReader(strings.NewReader(cb.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "pmf", "cdf", "sampled"}, recs[0])
	assert.Len(t, recs, cfg.Poisson.KMax+2)

	cfg.Poisson.Samples = 0
	exact, err := Build(cfg, Poisson)
	require.NoError(t, err)
	assert.Nil(t, exact.Poisson.Freq)
	assert.Equal(t, pt.PMF, exact.Poisson.PMF)
}
