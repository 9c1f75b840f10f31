// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the pretty-printer.
// This file defines:
//   - PrintOption (functional options over an unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherPrintOptions helper that resolves setters against the defaults.
//
// Design goals:
//   - No global state: every Fprint call resolves its own options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "golang.org/x/text/language"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWidth is the minimum field width of every printed element.
	DefaultWidth = 8

	// DefaultPrecision is the number of significant digits for floating-point
	// elements (%g semantics). Integer elements are printed verbatim.
	DefaultPrecision = 2
)

// DefaultLocale is language.Und: plain fmt formatting, no digit grouping.
var DefaultLocale = language.Und

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWidthInvalid     = "matrix: WithWidth: width must be >= 1"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// PrintOption mutates internal print options. Safe to apply repeatedly.
type PrintOption func(*printOptions)

// printOptions stores the effective configuration after applying setters.
type printOptions struct {
	width     int          // >= 1; DefaultWidth
	precision int          // >= 0; DefaultPrecision
	locale    language.Tag // DefaultLocale
}

// WithWidth sets the minimum field width of each element.
// Panics when width < 1.
func WithWidth(width int) PrintOption {
	if width < 1 {
		panic(panicWidthInvalid)
	}

	return func(o *printOptions) { o.width = width }
}

// WithPrecision sets the number of significant digits used for floating-point
// elements. Panics when precision < 0.
func WithPrecision(precision int) PrintOption {
	if precision < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *printOptions) { o.precision = precision }
}

// WithLocale formats numbers with the conventions of tag (for example digit
// grouping "1,234" for language.English). language.Und restores plain output.
func WithLocale(tag language.Tag) PrintOption {
	return func(o *printOptions) { o.locale = tag }
}

// gatherPrintOptions applies setters on top of the defaults (last-writer-wins).
func gatherPrintOptions(user ...PrintOption) printOptions {
	o := printOptions{
		width:     DefaultWidth,
		precision: DefaultPrecision,
		locale:    DefaultLocale,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
