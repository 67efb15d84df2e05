// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml", "csv"}

// Write writes the report to w in the named format. The csv format
// writes the tabular data of the given section.
func Write(w io.Writer, rep *Report, format string, f *Formatter, section Section) error {
	switch strings.ToLower(format) {
	case "", "text":
		return WriteText(w, rep, f)
	case "json":
		return WriteJSON(w, rep)
	case "yaml", "yml":
		return WriteYAML(w, rep)
	case "csv":
		return WriteCSV(w, rep, section)
	}
	return fmt.Errorf("report: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, rep *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

// Table returns the header and rows of the tabular data of a section.
func (rep *Report) Table(section Section) (header []string, rows [][]string, err error) {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	missing := fmt.Errorf("report: section %s was not computed", section)
	switch section {
	case Overbooking:
		if rep.Overbooking == nil {
			return nil, nil, missing
		}
		header = []string{"sold", "prob", "pct"}
		for _, pt := range rep.Overbooking.Curve {
			rows = append(rows, []string{strconv.Itoa(pt.Sold), ff(pt.Prob), ff(pt.Pct())})
		}
	case ROI:
		if rep.ROI == nil {
			return nil, nil, missing
		}
		header = []string{"lo", "hi", "count"}
		for _, b := range rep.ROI.Histogram {
			rows = append(rows, []string{ff(b.Lo), ff(b.Hi), strconv.Itoa(b.Count)})
		}
	case Normal:
		if rep.Normal == nil {
			return nil, nil, missing
		}
		header = []string{"x", "density"}
		for _, pt := range rep.Normal.Curve {
			rows = append(rows, []string{ff(pt.X), ff(pt.Y)})
		}
	case Poisson:
		if rep.Poisson == nil {
			return nil, nil, missing
		}
		pt := rep.Poisson
		header = []string{"k", "pmf", "cdf"}
		if pt.Freq != nil {
			header = append(header, "sampled")
		}
		for k, p := range pt.PMF {
			row := []string{strconv.Itoa(k), ff(p), ff(pt.AtMost(k))}
			if pt.Freq != nil {
				row = append(row, ff(pt.Freq[k]))
			}
			rows = append(rows, row)
		}
	case CallCenter:
		if rep.CallCenter == nil {
			return nil, nil, missing
		}
		header = []string{"lo", "hi", "count"}
		for _, b := range rep.CallCenter.Histogram {
			rows = append(rows, []string{ff(b.Lo), ff(b.Hi), strconv.Itoa(b.Count)})
		}
	default:
		return nil, nil, fmt.Errorf("report: section %s has no table", section)
	}
	return header, rows, nil
}

// WriteCSV writes the tabular data of a section as CSV.
func WriteCSV(w io.Writer, rep *Report, section Section) error {
	header, rows, err := rep.Table(section)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
