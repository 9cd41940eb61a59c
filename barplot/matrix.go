// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Matrix is a table of bar heights. Each row is a category and each
// column is a series.
type Matrix struct {
	// Names optionally names each column. It is either nil or has
	// one element per column.
	Names []string

	rows int
	cols [][]float64
}

// FromRows returns a Matrix with one row per element of rows. Every
// row must have the same length.
func FromRows(rows [][]float64) (*Matrix, error) {
	m := &Matrix{rows: len(rows)}
	for r, row := range rows {
		if r == 0 {
			m.cols = make([][]float64, len(row))
			for c := range m.cols {
				m.cols[c] = make([]float64, len(rows))
			}
		} else if len(row) != len(m.cols) {
			return nil, fmt.Errorf("barplot: row %d has %d values, want %d", r, len(row), len(m.cols))
		}
		for c, v := range row {
			m.cols[c][r] = v
		}
	}
	return m, nil
}

// FromColumns returns a Matrix with the given columns. names may be
// nil; otherwise it must have one name per column. The columns are not
// copied.
func FromColumns(names []string, cols ...[]float64) (*Matrix, error) {
	if names != nil && len(names) != len(cols) {
		return nil, fmt.Errorf("barplot: %d names for %d columns", len(names), len(cols))
	}
	m := &Matrix{Names: names, cols: cols}
	for c, col := range cols {
		if c == 0 {
			m.rows = len(col)
		} else if len(col) != m.rows {
			return nil, fmt.Errorf("barplot: column %d has %d values, want %d", c, len(col), m.rows)
		}
	}
	return m, nil
}

// FromSlices converts rows, which must be a slice of slices of any
// numeric type (for example, [][]int), to a Matrix. Like FromRows,
// each inner slice is a row.
func FromSlices(rows interface{}) (*Matrix, error) {
	rv := reflect.ValueOf(rows)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Slice {
		return nil, fmt.Errorf("barplot: %T is not a slice of slices", rows)
	}
	if et := rv.Type().Elem().Elem(); !isNumeric(et) {
		return nil, fmt.Errorf("barplot: cannot convert %s to float64", et)
	}
	frows := make([][]float64, rv.Len())
	for i := range frows {
		slice.Convert(&frows[i], rv.Index(i).Interface())
	}
	return FromRows(frows)
}

// FromTable converts the named columns of t to a Matrix, in the order
// given. If cols is empty, it uses every numeric column of t in table
// order. The Matrix's columns are named after the table columns.
func FromTable(t *table.Table, cols ...string) (*Matrix, error) {
	if len(cols) == 0 {
		for _, name := range t.Columns() {
			if isNumeric(reflect.TypeOf(t.Column(name)).Elem()) {
				cols = append(cols, name)
			}
		}
	}
	m := &Matrix{Names: cols, rows: t.Len(), cols: make([][]float64, len(cols))}
	for i, name := range cols {
		col := t.Column(name)
		if col == nil {
			return nil, fmt.Errorf("barplot: table has no column %q", name)
		}
		if et := reflect.TypeOf(col).Elem(); !isNumeric(et) {
			return nil, fmt.Errorf("barplot: column %q has non-numeric type %s", name, et)
		}
		slice.Convert(&m.cols[i], col)
	}
	return m, nil
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Rows returns the number of rows (categories) in m.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns (series) in m.
func (m *Matrix) Cols() int {
	return len(m.cols)
}

// Col returns column c of m. The caller must not modify it.
func (m *Matrix) Col(c int) []float64 {
	return m.cols[c]
}

// At returns the value in row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.cols[c][r]
}

// RowSums returns the sum of each row of m.
func (m *Matrix) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for _, col := range m.cols {
		for r, v := range col {
			sums[r] += v
		}
	}
	return sums
}
