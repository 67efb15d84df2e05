// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders the scenario results as PNG charts.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/distrib"
	"github.com/PedroRussoUnB/AereaConfiavel/overbook"
	"github.com/PedroRussoUnB/AereaConfiavel/stats"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrInfinity = errors.New("plot: infinite data point")
	ErrNoData   = errors.New("plot: no data points")
)

var (
	// Navy is the main series color.
	Navy = drawing.ColorFromHex("003366")

	// Red marks limits.
	Red = drawing.ColorFromHex("D32F2F")

	// Green fills highlighted areas.
	Green = drawing.ColorFromHex("4CAF50")
)

// Size is the size of rendered charts in pixels.
type Size struct {
	Width, Height int
}

// DefaultSize is the default chart size.
var DefaultSize = Size{Width: 900, Height: 500}

func newChart(title, xname, yname string, sz Size) chart.Chart {
	return chart.Chart{
		Title:      title,
		Width:      sz.Width,
		Height:     sz.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: xname},
		YAxis:      chart.YAxis{Name: yname},
	}
}

func render(ch chart.Chart, w io.Writer) error {
	if len(ch.Series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot %q: %w", ch.Title, err)
	}
	return nil
}

func checkFinite(vals ...[]float64) error {
	for _, vs := range vals {
		if len(vs) == 0 {
			return ErrNoData
		}
		for _, v := range vs {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return ErrInfinity
			}
		}
	}
	return nil
}

// RiskCurve plots overbooking probability against tickets sold, with a
// dashed vertical line at limitSold when limitSold > 0.
func RiskCurve(w io.Writer, pts []overbook.Point, limitSold int, limitPct float64, sz Size) error {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i] = float64(pt.Sold)
		ys[i] = pt.Prob
	}
	if err := checkFinite(xs, ys); err != nil {
		return err
	}
	if len(pts) < 2 {
		return fmt.Errorf("%w: risk curve needs at least two points", ErrNoData)
	}
	ch := newChart("Overbooking probability (more passengers than seats)", "Tickets sold", "Probability", sz)
	ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
	ch.Series = append(ch.Series, chart.ContinuousSeries{
		Name:    "Risk",
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: Navy, StrokeWidth: 2, DotColor: Navy, DotWidth: 3},
	})
	if limitSold > 0 {
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Limit %.4g%%", limitPct),
			XValues: []float64{float64(limitSold), float64(limitSold)},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeColor: Red, StrokeWidth: 2, StrokeDashArray: []float64{6, 4}},
		})
	}
	return render(ch, w)
}

// stepValues returns the outline of a histogram as a step function.
func stepValues(bins []stats.Bin) (xs, ys []float64) {
	for _, b := range bins {
		c := float64(b.Count)
		xs = append(xs, b.Lo, b.Lo, b.Hi, b.Hi)
		ys = append(ys, 0, c, c, 0)
	}
	return
}

// Histogram plots histogram bins as a filled step outline.
func Histogram(w io.Writer, title, xname string, bins []stats.Bin, sz Size) error {
	if len(bins) == 0 {
		return ErrNoData
	}
	xs, ys := stepValues(bins)
	if err := checkFinite(xs); err != nil {
		return err
	}
	ch := newChart(title, xname, "Count", sz)
	ch.Series = []chart.Series{chart.ContinuousSeries{
		Name:    xname,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: Navy, StrokeWidth: 1, FillColor: Navy.WithAlpha(160)},
	}}
	return render(ch, w)
}

// NormalCurve plots a density curve with the area between lower
// and upper shaded.
func NormalCurve(w io.Writer, pts []distrib.Point, lower, upper float64, sz Size) error {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	var ixs, iys []float64
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
		if pt.X >= lower && pt.X <= upper {
			ixs = append(ixs, pt.X)
			iys = append(iys, pt.Y)
		}
	}
	if err := checkFinite(xs, ys); err != nil {
		return err
	}
	ch := newChart("Normal distribution", "x", "Density", sz)
	if len(ixs) > 1 {
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("[%.4g, %.4g]", lower, upper),
			XValues: ixs,
			YValues: iys,
			Style:   chart.Style{StrokeColor: Green, StrokeWidth: 1, FillColor: Green.WithAlpha(120)},
		})
	}
	ch.Series = append(ch.Series, chart.ContinuousSeries{
		Name:    "Density",
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: Navy, StrokeWidth: 2},
	})
	return render(ch, w)
}

// PoissonPMF plots a poisson probability mass table as bars, with the
// sampled frequencies as points when the table has them.
func PoissonPMF(w io.Writer, pt *distrib.PoissonTable, sz Size) error {
	if pt == nil || len(pt.PMF) == 0 {
		return ErrNoData
	}
	var xs, ys []float64
	for k, p := range pt.PMF {
		lo, hi := float64(k)-0.4, float64(k)+0.4
		xs = append(xs, lo, lo, hi, hi)
		ys = append(ys, 0, p, p, 0)
	}
	ch := newChart(fmt.Sprintf("Poisson distribution (lambda = %.4g)", pt.Lambda), "k", "P(X = k)", sz)
	ch.Series = []chart.Series{chart.ContinuousSeries{
		Name:    "PMF",
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: Navy, StrokeWidth: 1, FillColor: Navy.WithAlpha(160)},
	}}
	if len(pt.Freq) == len(pt.PMF) {
		ks := make([]float64, len(pt.Freq))
		for k := range ks {
			ks[k] = float64(k)
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Sampled (n = %d)", pt.Samples),
			XValues: ks,
			YValues: pt.Freq,
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotColor: Red, DotWidth: 4},
		})
	}
	return render(ch, w)
}
