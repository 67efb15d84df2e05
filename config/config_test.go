// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/PedroRussoUnB/AereaConfiavel/roi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "R$", cfg.Currency)
	assert.Equal(t, 120, cfg.Overbooking.Capacity)
	assert.Equal(t, 130, cfg.Overbooking.Sold)
	assert.Equal(t, 0.88, cfg.Overbooking.ShowUp)
	assert.Equal(t, 50000.0, cfg.ROI.Investment)
	assert.Equal(t, 30, cfg.ROI.Bins)
	assert.Equal(t, 15.0, cfg.Normal.SD)
	assert.Equal(t, 0.04, cfg.CallCenter.SuccessP)
	assert.NoError(t, cfg.Validate())

	pr := cfg.ROI.Params()
	assert.Equal(t, 80000.0, pr.RevenueMean)
	assert.Equal(t, 1000, pr.Samples)
	cp := cfg.CallCenter.Params()
	assert.Equal(t, 100, cp.Employees)
}

func TestSetFromDefaultsError(t *testing.T) {
	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(3))
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Overbooking.ShowUp = 1.2
	cfg.Overbooking.Sold = 100
	cfg.ROI.Investment = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overbooking.show_up")
	assert.Contains(t, err.Error(), "overbooking.sold 100")
	assert.ErrorIs(t, err, roi.ErrZeroInvestment)
}

func TestValidateNonFinite(t *testing.T) {
	cfg := New()
	cfg.ROI.Investment = math.NaN()
	cfg.ROI.Revenue = math.Inf(1)
	cfg.Normal.Mean = math.Inf(-1)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roi.investment")
	assert.Contains(t, err.Error(), "roi.revenue")
	assert.Contains(t, err.Error(), "normal.mean")

	file := filepath.Join(t.TempDir(), "nan.toml")
	require.NoError(t, os.WriteFile(file, []byte("[roi]\ninvestment = nan\n"), 0o644))
	_, err = Open(file)
	assert.ErrorContains(t, err, "roi.investment")
}

func TestValidateSpan(t *testing.T) {
	cfg := New()
	cfg.Overbooking.Span = 0
	assert.ErrorContains(t, cfg.Validate(), "overbooking.span")
	cfg.Overbooking.Span = 1
	assert.NoError(t, cfg.Validate())
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scenario.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
seed = 42

[overbooking]
capacity = 150
sold = 160

[roi]
revenue_sd = 5000
`), 0o644))

	cfg, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 150, cfg.Overbooking.Capacity)
	assert.Equal(t, 160, cfg.Overbooking.Sold)
	assert.Equal(t, 0.88, cfg.Overbooking.ShowUp, "unset keys keep their defaults")
	assert.Equal(t, 5000.0, cfg.ROI.RevenueSD)

	out := filepath.Join(dir, "saved.toml")
	require.NoError(t, cfg.Save(out))
	again, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("colour = \"green\"\n"), 0o644))
	_, err = Open(unknown)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[overbooking]\nsold = 10\n"), 0o644))
	_, err = Open(invalid)
	assert.Error(t, err)
}
