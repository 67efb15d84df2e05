// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PedroRussoUnB/AereaConfiavel/decision"
	"github.com/PedroRussoUnB/AereaConfiavel/distrib"
	"github.com/PedroRussoUnB/AereaConfiavel/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// styles used by the text report, bound to one output renderer
type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	border  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#003366")).MarginTop(1),
		label:   r.NewStyle().Faint(true),
		value:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#1E88E5")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFA000")),
		err:     r.NewStyle().Foreground(lipgloss.Color("#D32F2F")),
		border:  r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
	}
}

// tierStyle returns the style of a recommendation tier.
func (st *styles) tierStyle(t decision.Tier) lipgloss.Style {
	switch t {
	case decision.Adopt:
		return st.success
	case decision.AdoptMonitored:
		return st.info
	case decision.Review:
		return st.warning
	default:
		return st.err
	}
}

type textWriter struct {
	w   io.Writer
	st  *styles
	f   *Formatter
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) header(title string) {
	tw.printf("%s\n", tw.st.header.Render(title))
}

func (tw *textWriter) item(label, value string) {
	tw.printf("  %s %s\n", tw.st.label.Render(label+":"), tw.st.value.Render(value))
}

func (tw *textWriter) line(style lipgloss.Style, msg string) {
	tw.printf("  %s\n", style.Render(msg))
}

func (tw *textWriter) table(headers []string, rows [][]string) {
	tb := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tw.st.border).
		Headers(headers...).
		Rows(rows...)
	tw.printf("%s\n", tb.Render())
}

// WriteText writes the human readable report to w, styled for the
// terminal when w is one.
func WriteText(w io.Writer, rep *Report, f *Formatter) error {
	tw := &textWriter{w: w, st: newStyles(lipgloss.NewRenderer(w)), f: f}
	if ob := rep.Overbooking; ob != nil {
		tw.writeOverbooking(ob)
	}
	if rr := rep.ROI; rr != nil {
		tw.writeROI(rr)
	}
	if rc := rep.Decision; rc != nil {
		tw.writeDecision(rc)
	}
	if nr := rep.Normal; nr != nil {
		tw.header("Normal distribution")
		np := nr.Params
		tw.item(fmt.Sprintf("P(%s <= X <= %s) for N(%s, %s)", f.Num(np.Lower, 2), f.Num(np.Upper, 2), f.Num(np.Mean, 2), f.Num(np.SD, 2)), f.Prob(nr.Interval))
	}
	if pt := rep.Poisson; pt != nil {
		tw.writePoisson(pt)
	}
	if cc := rep.CallCenter; cc != nil {
		tw.writeCallCenter(cc)
	}
	for _, wn := range rep.Warnings {
		tw.line(tw.st.warning, "warning: "+wn)
	}
	return tw.err
}

func (tw *textWriter) writeOverbooking(ob *OverbookingResult) {
	f := tw.f
	pr := ob.Params
	tw.header("Overbooking risk (binomial)")
	tw.item(fmt.Sprintf("P(more than %d of %d passengers show up)", pr.Capacity, pr.Sold), f.Prob(ob.Risk))
	rows := make([][]string, len(ob.Curve))
	for i, pt := range ob.Curve {
		rows[i] = []string{strconv.Itoa(pt.Sold), f.Pct(pt.Pct())}
	}
	tw.table([]string{"Tickets sold", "Overbooking risk"}, rows)
	if ob.HasMaxSafe {
		tw.line(tw.st.success, fmt.Sprintf("Maximum tickets to sell with risk <= %s: %d", f.Pct(pr.MaxRiskPct), ob.MaxSafeSales))
	} else {
		tw.line(tw.st.err, "No configuration is within the acceptable risk.")
	}
	ec := ob.Economics
	tw.item(fmt.Sprintf("Extra revenue from %d tickets", ec.Excess), f.Money(ec.ExtraRevenue))
	tw.item("Expected overbooking cost", f.Money(ec.ExpectedLoss))
	if ec.Worthwhile() {
		tw.line(tw.st.success, fmt.Sprintf("Selling %d tickets above capacity pays off.", ec.Excess))
	} else {
		tw.line(tw.st.warning, fmt.Sprintf("Selling %d tickets above capacity does not pay off: the risk outweighs the gain.", ec.Excess))
	}
}

func (tw *textWriter) writeROI(rr *ROIResult) {
	f := tw.f
	tw.header("Forecasting system ROI")
	tw.item("Expected ROI", f.Pct(rr.Result.Percent))
	sm := rr.Simulation.Summary
	tw.item("Monte Carlo samples", f.Int(sm.Count))
	tw.item(fmt.Sprintf("P(revenue < %s)", f.Money(rr.RevenueFloor)), f.Prob(rr.ProbRevenueBelow))
	tw.item("P(loss)", f.Prob(rr.ProbLoss))
	tw.item("Optimistic (P90)", f.Pct(sm.P90))
	tw.item("Realistic (mean)", f.Pct(sm.Mean))
	tw.item("Pessimistic (P10)", f.Pct(sm.P10))
	if len(rr.Histogram) > 0 {
		tw.printf("%s\n", histogramBars(rr.Histogram, f, 40))
	}
}

func (tw *textWriter) writeDecision(rc *decision.Recommendation) {
	tw.header("Decision")
	tw.item("Target ROI", tw.f.Pct(rc.TargetPct))
	tw.item("Achieved / target", tw.f.Num(rc.Ratio, 2))
	tw.line(tw.st.tierStyle(rc.Tier).Bold(true), rc.Tier.String())
	tw.line(tw.st.tierStyle(rc.Tier), rc.Message())
}

func (tw *textWriter) writePoisson(pt *distrib.PoissonTable) {
	f := tw.f
	tw.header("Poisson distribution")
	tw.item("Rate (lambda)", f.Num(pt.Lambda, 2))
	tw.item("Most likely count", strconv.Itoa(pt.Mode()))
	headers := []string{"k", "P(X = k)", "P(X <= k)"}
	if pt.Freq != nil {
		headers = append(headers, fmt.Sprintf("Sampled (n = %s)", f.Int(pt.Samples)))
	}
	rows := make([][]string, len(pt.PMF))
	for k, p := range pt.PMF {
		rows[k] = []string{strconv.Itoa(k), f.Prob(p), f.Prob(pt.AtMost(k))}
		if pt.Freq != nil {
			rows[k] = append(rows[k], f.Prob(pt.Freq[k]))
		}
	}
	tw.table(headers, rows)
	tw.item(fmt.Sprintf("P(X > %d)", len(pt.PMF)-1), f.Prob(pt.Tail))
}

func (tw *textWriter) writeCallCenter(cc *CallCenterResult) {
	f := tw.f
	ds := cc.Distribution
	pr := ds.Params
	tw.header("Call center profit")
	tw.item("Employees x calls", fmt.Sprintf("%s x %s", f.Int(pr.Employees), f.Int(pr.CallsPerEmployee)))
	tw.item("Expected profit", f.Money(ds.Expected))
	tw.item("Simulated mean profit", f.Money(ds.Summary.Mean))
	tw.item("P10 / P90", f.Money(ds.Summary.P10)+" / "+f.Money(ds.Summary.P90))
	tw.item("P(loss)", f.Prob(cc.ProbLoss))
	if len(cc.Histogram) > 0 {
		tw.printf("%s\n", histogramBars(cc.Histogram, f, 40))
	}
}

// histogramBars renders bins as horizontal bars scaled to width.
func histogramBars(bins []stats.Bin, f *Formatter, width int) string {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}
	var sb strings.Builder
	for _, b := range bins {
		n := 0
		if peak > 0 {
			n = b.Count * width / peak
		}
		fmt.Fprintf(&sb, "  %12s | %s %d\n", f.Num(b.Mid(), 1), strings.Repeat("#", n), b.Count)
	}
	return strings.TrimRight(sb.String(), "\n")
}
