// SPDX-License-Identifier: MIT

// Package linalg - diagnostic rendering.
//
// Output is for humans and logs, not a serialization format: components are
// printed in fixed-point with DefaultPrecision fractional digits unless
// WithPrecision says otherwise.

package linalg

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtVecOpen  = "("
	_fmtVecClose = ")"
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

var (
	_ fmt.Stringer = Vector3{}
	_ fmt.Stringer = Matrix3x3{}
)

// writeRow appends xs as fixed-point numbers separated by _fmtSep.
func writeRow(b *strings.Builder, xs []float64, precision int) {
	for i, x := range xs {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(x, 'f', precision, 64))
	}
}

// String renders v as "(x, y, ...)" with three fractional digits.
func (v Vector[D]) String() string { return v.Render() }

// Render renders v as "(x, y, ...)".
// Options: WithPrecision.
func (v Vector[D]) Render(opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	b.WriteString(_fmtVecOpen)
	writeRow(&b, v.c[:v.Dim()], o.precision)
	b.WriteString(_fmtVecClose)

	return b.String()
}

// String renders m one row per line, "[a, b, ...]\n", with three fractional digits.
func (m Matrix[D]) String() string { return m.Render() }

// Render renders m one row per line, "[a, b, ...]\n".
// Options: WithPrecision.
func (m Matrix[D]) Render(opts ...Option) string {
	o := gatherOptions(opts...)
	n := m.Dim()
	var b strings.Builder
	for i := 0; i < n; i++ { // fixed row order
		b.WriteString(_fmtRowOpen)
		writeRow(&b, m.v[i*n:(i+1)*n], o.precision)
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
