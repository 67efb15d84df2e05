// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats numbers and money amounts for a locale.
type Formatter struct {
	Currency string
	p        *message.Printer
}

// NewFormatter returns a Formatter for the given BCP 47 locale
// (e.g. "pt-BR") and currency symbol. Unknown locales fall back
// to the root locale.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Formatter{Currency: currency, p: message.NewPrinter(tag)}
}

// Num formats v with the given number of decimals and locale grouping.
func (f *Formatter) Num(v float64, decimals int) string {
	return f.p.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// Int formats an integer with locale grouping.
func (f *Formatter) Int(v int) string {
	return f.p.Sprint(number.Decimal(v))
}

// Money formats v as a currency amount with two decimals.
func (f *Formatter) Money(v float64) string {
	if f.Currency == "" {
		return f.Num(v, 2)
	}
	return f.Currency + " " + f.Num(v, 2)
}

// Pct formats a percentage value (already scaled to 0..100).
func (f *Formatter) Pct(v float64) string {
	return f.Num(v, 2) + "%"
}

// Prob formats a probability in [0, 1] as a percentage.
func (f *Formatter) Prob(p float64) string {
	return f.Pct(p * 100)
}
