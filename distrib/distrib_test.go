// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distrib

import (
	"math"
	"testing"

	"github.com/PedroRussoUnB/AereaConfiavel/base/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNormalInterval(t *testing.T) {
	// two-sided interval of ±1.3333 sd: 2*Phi(4/3) - 1
	p, err := NormalInterval(100, 15, 80, 120)
	require.NoError(t, err)
	assert.InDelta(t, 0.8176, p, 1e-4)

	p, err = NormalInterval(0, 1, -1.96, 1.96)
	require.NoError(t, err)
	assert.InDelta(t, 0.95, p, 1e-3)

	p, err = NormalInterval(0, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	p, err = NormalInterval(0, 1, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, 1, p, 1e-12)
}

func TestNormalIntervalInvalid(t *testing.T) {
	_, err := NormalInterval(100, 0, 80, 120)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NormalInterval(100, 15, 120, 80)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NormalInterval(math.NaN(), 15, 80, 120)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NormalInterval(100, math.Inf(1), 80, 120)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NormalInterval(100, 15, math.NaN(), 120)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NormalCurve(math.Inf(-1), 1, -1, 1, 10)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = NormalCurve(0, 1, math.Inf(-1), 1, 10)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNormalCurve(t *testing.T) {
	from, to := DefaultCurveRange(100, 15)
	assert.Equal(t, 40.0, from)
	assert.Equal(t, 160.0, to)
	pts, err := NormalCurve(100, 15, from, to, 121)
	require.NoError(t, err)
	require.Len(t, pts, 121)
	assert.Equal(t, 40.0, pts[0].X)
	assert.Equal(t, 160.0, pts[120].X)
	peak := pts[60]
	assert.Equal(t, 100.0, peak.X)
	assert.InDelta(t, 1/(15*math.Sqrt(2*math.Pi)), peak.Y, 1e-12)
	assert.InDelta(t, pts[30].Y, pts[90].Y, 1e-15)

	_, err = NormalCurve(100, 15, 10, 10, 5)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPoissonPMF(t *testing.T) {
	pt, err := PoissonPMF(4, 30)
	require.NoError(t, err)
	require.Len(t, pt.PMF, 31)
	assert.InDelta(t, math.Exp(-4), pt.PMF[0], 1e-12)
	assert.InDelta(t, 4*math.Exp(-4), pt.PMF[1], 1e-12)
	assert.Contains(t, []int{3, 4}, pt.Mode())
	assert.InDelta(t, 1, pt.AtMost(30)+pt.Tail, 1e-9)
	assert.InDelta(t, 1-pt.Tail, pt.AtMost(100), 1e-12)
	assert.Equal(t, 0.0, pt.AtMost(-1))

	_, err = PoissonPMF(0, 10)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = PoissonPMF(3, -1)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPoissonSampled(t *testing.T) {
	pt, err := PoissonSampled(4, 6, 100000, randx.NewSysRand(1))
	require.NoError(t, err)
	require.Len(t, pt.Freq, 7)
	assert.Equal(t, 100000, pt.Samples)
	for k, p := range pt.PMF {
		assert.InDelta(t, p, pt.Freq[k], 0.005, "k = %d", k)
	}
	assert.InDelta(t, pt.Tail, pt.FreqTail, 0.005)
	assert.InDelta(t, 1, floats.Sum(pt.Freq)+pt.FreqTail, 1e-9)

	a, err := PoissonSampled(12, 20, 500, randx.NewSysRand(2))
	require.NoError(t, err)
	b, err := PoissonSampled(12, 20, 500, randx.NewSysRand(2))
	require.NoError(t, err)
	assert.Equal(t, a.Freq, b.Freq)

	_, err = PoissonSampled(4, 6, 0, randx.NewSysRand(1))
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = PoissonSampled(-1, 6, 10, randx.NewSysRand(1))
	assert.ErrorIs(t, err, ErrInvalid)
}
