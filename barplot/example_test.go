// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot_test

import (
	"fmt"

	"github.com/aclements/go-barplot/barplot"
)

// printAxes prints each drawing call.
type printAxes struct{}

func (printAxes) Bar(b barplot.Bar) error {
	fmt.Printf("bar x=%v height=%v bottom=%v width=%g color=%v\n", b.X, b.Height, b.Bottom, b.Width, b.Style["color"])
	return nil
}

func (printAxes) SetXTicks(pos []float64) error {
	fmt.Printf("ticks %v\n", pos)
	return nil
}

func (printAxes) SetXTickLabels(labels []string) error {
	fmt.Printf("labels %v\n", labels)
	return nil
}

func ExampleStackBar() {
	ys, _ := barplot.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	barplot.StackBar(printAxes{}, []string{"A", "B"}, ys, barplot.StackOptions{
		Style: barplot.Options{"color": barplot.PerSeries("red", "blue")},
	})
	// Output:
	// bar x=[0 1] height=[2 4] bottom=[0 0] width=0.8 color=blue
	// bar x=[0 1] height=[1 3] bottom=[2 4] width=0.8 color=red
}

func ExampleMultiBar() {
	ys, _ := barplot.FromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	barplot.MultiBar(printAxes{}, []string{"A", "B", "C"}, ys, barplot.MultiOptions{})
	// Output:
	// bar x=[0 1 2] height=[1 3 5] bottom=[0 0 0] width=0.5 color=<nil>
	// bar x=[0.5 1.5 2.5] height=[2 4 6] bottom=[0 0 0] width=0.5 color=<nil>
	// ticks [0.25 1.25 2.25]
	// labels [A B C]
}
