// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-barplot/figure"
	"golang.org/x/crypto/ssh/terminal"
)

// outputFormat returns the image format to write to path. An explicit
// format wins. Otherwise it is taken from path's extension, and stdout
// gets SVG.
func outputFormat(path, format string) (string, error) {
	if format == "" {
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".png":
			format = "png"
		case "", ".svg":
			format = "svg"
		default:
			return "", fmt.Errorf("unknown output extension %q; use -format", ext)
		}
	}
	switch format {
	case "svg", "png":
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// writeFigure renders fig to w in the given format.
func writeFigure(w io.Writer, fig *figure.Figure, format string, width, height int) error {
	if format == "png" {
		return fig.WritePNG(w, width, height)
	}
	return fig.WriteSVG(w, width, height)
}

// checkBinaryOutput refuses to write binary formats to a terminal.
func checkBinaryOutput(path, format string) error {
	if format == "png" && path == "" && terminal.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write PNG to a terminal; use -o")
	}
	return nil
}

// outputFile writes to the file at path, or to stdout if path is "".
// The file is not created until the first Write, so an error before
// any output leaves an existing file alone.
type outputFile struct {
	path string
	f    *os.File
}

func (o *outputFile) Write(p []byte) (int, error) {
	if o.f == nil {
		if o.path == "" {
			o.f = os.Stdout
		} else {
			f, err := os.Create(o.path)
			if err != nil {
				return 0, err
			}
			o.f = f
		}
	}
	return o.f.Write(p)
}

func (o *outputFile) Close() error {
	if o.f == nil || o.f == os.Stdout {
		return nil
	}
	return o.f.Close()
}
