// SPDX-License-Identifier: MIT

// Package matrix - labelled, column-aligned rendering.
//
// Layout (one call):
//
//	<label>:
//	<elem> <elem> ...\n    (one line per row, each elem right-aligned to width, single-space separated)
//	\n                     (trailing blank line)
//
// Floating-point elements use %g with the configured significant digits;
// integer elements are printed verbatim. A non-Und locale routes formatting
// through golang.org/x/text/message for localized digits and grouping.

package matrix

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const opFprint = "Fprint"

// sprintfFunc is the formatting primitive shared by the fmt and x/text paths.
type sprintfFunc func(format string, a ...any) string

// isFloat reports whether T is a floating-point type (integer division truncates 1/2 to 0).
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// elemFormat builds the per-element verb, e.g. "%8.2g" or "%8d".
func elemFormat[T Number](o printOptions) string {
	if isFloat[T]() {
		return fmt.Sprintf("%%%d.%dg", o.width, o.precision)
	}

	return fmt.Sprintf("%%%dd", o.width)
}

// Fprint writes label and m to w, one row per line.
//
// Errors:
//   - ErrNilMatrix when m is nil, ErrEmptyMatrix when it has no elements.
//   - Any error returned by w.
func Fprint[T Number](w io.Writer, label string, m *Dense[T], opts ...PrintOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	if err := ValidateDenseNotEmpty(m); err != nil {
		return matrixErrorf(opFprint, err)
	}

	o := gatherPrintOptions(opts...)
	sprintf := sprintfFunc(fmt.Sprintf)
	if o.locale != language.Und {
		p := message.NewPrinter(o.locale)
		sprintf = func(format string, a ...any) string { return p.Sprintf(format, a...) }
	}
	verb := elemFormat[T](o)

	var buf bytes.Buffer
	buf.WriteString(label)
	buf.WriteString(":\n")
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(sprintf(verb, m.data[i*m.c+j]))
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return matrixErrorf(opFprint, err)
	}

	return nil
}

// Sprint returns what Fprint would write. A nil or empty matrix renders as the label only.
func Sprint[T Number](label string, m *Dense[T], opts ...PrintOption) string {
	var buf bytes.Buffer
	if err := Fprint(&buf, label, m, opts...); err != nil {
		return label + ":\n\n"
	}

	return buf.String()
}
