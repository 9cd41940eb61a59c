// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import (
	"fmt"
	"math"
)

// recorder is an Axes that records every call.
type recorder struct {
	bars   []Bar
	ticks  []float64
	labels []string

	// failAt, if > 0, makes the failAt'th Bar call fail.
	failAt int
}

func (r *recorder) Bar(b Bar) error {
	if r.failAt > 0 && len(r.bars)+1 == r.failAt {
		return fmt.Errorf("bar %d failed", r.failAt)
	}
	// Copy the slices so later mutation by the caller would be
	// caught.
	b.X = append([]float64(nil), b.X...)
	b.Height = append([]float64(nil), b.Height...)
	b.Bottom = append([]float64(nil), b.Bottom...)
	r.bars = append(r.bars, b)
	return nil
}

func (r *recorder) SetXTicks(pos []float64) error {
	r.ticks = append([]float64(nil), pos...)
	return nil
}

func (r *recorder) SetXTickLabels(labels []string) error {
	r.labels = append([]string(nil), labels...)
	return nil
}

func approxEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func mustRows(rows [][]float64) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// scribbler is an Axes that overwrites every slice it is given.
type scribbler struct{}

func (scribbler) Bar(b Bar) error {
	for _, s := range [][]float64{b.X, b.Height, b.Bottom} {
		for i := range s {
			s[i] = -1
		}
	}
	for i := range b.Labels {
		b.Labels[i] = "?"
	}
	return nil
}

func (scribbler) SetXTicks(pos []float64) error {
	for i := range pos {
		pos[i] = -1
	}
	return nil
}

func (scribbler) SetXTickLabels(labels []string) error {
	for i := range labels {
		labels[i] = "?"
	}
	return nil
}
