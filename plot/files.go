// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/report"
)

// Section renders the chart of one report section to w.
func Section(w io.Writer, rep *report.Report, sec report.Section, sz Size) error {
	missing := errors.New("plot: section " + sec.String() + " was not computed")
	switch sec {
	case report.Overbooking:
		ob := rep.Overbooking
		if ob == nil {
			return missing
		}
		limit := 0
		if ob.HasMaxSafe {
			limit = ob.MaxSafeSales
		}
		return RiskCurve(w, ob.Curve, limit, ob.Params.MaxRiskPct, sz)
	case report.ROI:
		if rep.ROI == nil {
			return missing
		}
		return Histogram(w, "Simulated ROI distribution", "ROI (%)", rep.ROI.Histogram, sz)
	case report.Normal:
		nr := rep.Normal
		if nr == nil {
			return missing
		}
		return NormalCurve(w, nr.Curve, nr.Params.Lower, nr.Params.Upper, sz)
	case report.Poisson:
		if rep.Poisson == nil {
			return missing
		}
		return PoissonPMF(w, rep.Poisson, sz)
	case report.CallCenter:
		if rep.CallCenter == nil {
			return missing
		}
		return Histogram(w, "Simulated call center profit", "Profit", rep.CallCenter.Histogram, sz)
	}
	return errors.New("plot: section " + sec.String() + " has no chart")
}

// WriteFiles renders a PNG per computed section into dir, named after
// the section, and returns the written paths.
func WriteFiles(dir string, rep *report.Report, sz Size) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var files []string
	var errs []error
	for _, sec := range report.AllSections() {
		if sec == report.Decision || !computed(rep, sec) {
			continue
		}
		var buf bytes.Buffer
		if err := Section(&buf, rep, sec, sz); err != nil {
			errs = append(errs, err)
			continue
		}
		fn := filepath.Join(dir, sec.String()+".png")
		if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
			errs = append(errs, err)
			continue
		}
		slog.Info("wrote chart", "file", fn)
		files = append(files, fn)
	}
	return files, errors.Join(errs...)
}

func computed(rep *report.Report, sec report.Section) bool {
	switch sec {
	case report.Overbooking:
		return rep.Overbooking != nil
	case report.ROI:
		return rep.ROI != nil
	case report.Normal:
		return rep.Normal != nil
	case report.Poisson:
		return rep.Poisson != nil
	case report.CallCenter:
		return rep.CallCenter != nil
	}
	return false
}
