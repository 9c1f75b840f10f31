// SPDX-License-Identifier: MIT
// Package matrix: test-only accessors for unexported state.
package matrix

import "golang.org/x/text/language"

// PrintOptionsSnapshot is a read-only copy of the resolved print options.
type PrintOptionsSnapshot struct {
	Width     int
	Precision int
	Locale    language.Tag
}

// ResolvePrintOptions_TestOnly resolves opts exactly as Fprint does.
func ResolvePrintOptions_TestOnly(opts ...PrintOption) PrintOptionsSnapshot {
	o := gatherPrintOptions(opts...)
	return PrintOptionsSnapshot{Width: o.width, Precision: o.precision, Locale: o.locale}
}
