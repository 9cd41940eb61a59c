// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/aclements/go-barplot/barplot"
	"github.com/aclements/go-gg/table"
)

// readTSV reads a tab-separated table with a header row. The first
// column names the categories and every other numeric column is a
// series.
func readTSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	if len(rows[0]) < 2 {
		return nil, fmt.Errorf("table needs a category column and at least one series")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// tsvMatrix splits t into category labels and a Matrix of its numeric
// series columns.
func tsvMatrix(t *table.Table) ([]string, *barplot.Matrix, error) {
	cols := t.Columns()
	cats := make([]string, t.Len())
	catCol := reflect.ValueOf(t.MustColumn(cols[0]))
	for i := range cats {
		cats[i] = fmt.Sprint(catCol.Index(i).Interface())
	}

	// Any numeric column other than the first is a series.
	all, err := barplot.FromTable(t)
	if err != nil {
		return nil, nil, err
	}
	var series []string
	for _, name := range all.Names {
		if name != cols[0] {
			series = append(series, name)
		}
	}
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("no numeric columns after %q", cols[0])
	}
	m, err := barplot.FromTable(t, series...)
	return cats, m, err
}
