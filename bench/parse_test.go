// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

func raw(v string) *Config {
	return &Config{RawValue: v}
}

func block(v string) *Config {
	return &Config{RawValue: v, InBlock: true}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Benchmark
	}{
		// Test basic line.
		{`
BenchmarkX	1	2 ns/op 3 MB/s`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{}, map[string]float64{"ns/op": 2, "MB/s": 3}},
			},
		},

		// Test short name.
		{`
Benchmark	1	2 ns/op`,
			[]*Benchmark{
				{"", 1, map[string]*Config{}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test bad names and lines.
		{`
Benchmarkx	1	2 ns/op
benchmarkX	1	2 ns/op
BenchmarkX	0	2 ns/op
BenchmarkX	x	2 ns/op
BenchmarkX	1
PASS`,
			[]*Benchmark{},
		},

		// Test "no tests to run" is not a config line.
		{`
testing: warning: no tests to run
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test -N.
		{`
BenchmarkX-4	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{"gomaxprocs": raw("4")}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test per-benchmark config, with and without -N.
		{`
BenchmarkX/a:20/b:abc	1	2 ns/op
BenchmarkSort/n:10-8	2	4 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{
					"a": raw("20"),
					"b": raw("abc"),
				}, map[string]float64{"ns/op": 2}},
				{"Sort", 2, map[string]*Config{
					"n":          raw("10"),
					"gomaxprocs": raw("8"),
				}, map[string]float64{"ns/op": 4}},
			},
		},

		// Test plain sub-benchmark names.
		{`
BenchmarkEncode/json/n:10-8	1	2 ns/op`,
			[]*Benchmark{
				{"Encode/json", 1, map[string]*Config{
					"n":          raw("10"),
					"gomaxprocs": raw("8"),
				}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test block config.
		{`
commit: 123456
date: Jan 1
colon:colon: 42
blank:
#not-config: x
spa ce: x
Not-config: x
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{
					"commit":      block("123456"),
					"date":        block("Jan 1"),
					"colon:colon": block("42"),
					"blank":       block(""),
				}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test benchmark config overriding block config.
		{`
commit: 123456
date: Jan 1
BenchmarkX/commit:abcdef	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{
					"commit": raw("abcdef"),
					"date":   block("Jan 1"),
				}, map[string]float64{"ns/op": 2}},
			},
		},

		// Test block config overriding block config.
		{`
commit: 123456
commit: abcdef
date: Jan 1
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{
					"commit": block("abcdef"),
					"date":   block("Jan 1"),
				}, map[string]float64{"ns/op": 2}},
			},
		},
	} {
		r := bytes.NewBufferString(test.input)
		bs, err := Parse(r)
		if err != nil {
			t.Error("unexpected Parse error", err)
			continue
		}
		if !reflect.DeepEqual(bs, test.want) {
			t.Log("want:")
			for _, b := range test.want {
				t.Logf("%#v", b)
			}
			t.Log("got:")
			for _, b := range bs {
				t.Logf("%#v", b)
			}
			t.Fail()
		}
	}
}

func TestParseValues(t *testing.T) {
	bs, err := Parse(strings.NewReader(`
commit: abc
BenchmarkX/n:10/t:1s/f:1.5	1	2 ns/op
BenchmarkX/n:20/t:2ms/f:2	1	2 ns/op
commit: 123
BenchmarkX/n:30/t:3/f:x	1	2 ns/op
`))
	if err != nil {
		t.Fatal(err)
	}
	ParseValues(bs, nil)

	for _, test := range []struct {
		key  string
		want []interface{}
	}{
		{"n", []interface{}{10, 20, 30}},
		{"commit", []interface{}{"abc", "abc", "123"}},
		{"t", []interface{}{"1s", "2ms", "3"}},
		{"f", []interface{}{"1.5", "2", "x"}},
	} {
		var got []interface{}
		for _, b := range bs {
			got = append(got, b.Config[test.key].Value)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s values = %#v; want %#v", test.key, got, test.want)
		}
	}

	bs, _ = Parse(strings.NewReader("BenchmarkX/t:1s 1 2 ns/op\nBenchmarkX/t:5ms 1 2 ns/op\n"))
	ParseValues(bs, nil)
	if got, want := bs[1].Config["t"].Value, 5*time.Millisecond; got != want {
		t.Errorf("t = %#v; want %#v", got, want)
	}
	if got, want := bs[0].Config["t"].String(), "1s"; got != want {
		t.Errorf("t.String() = %q; want %q", got, want)
	}
}

func TestConfigString(t *testing.T) {
	for _, test := range []struct {
		c    *Config
		want string
	}{
		{&Config{RawValue: "010"}, "010"},
		{&Config{RawValue: "010", Value: 10}, "10"},
		{&Config{RawValue: "1.50", Value: 1.5}, "1.5"},
		{&Config{RawValue: "1m30s", Value: 90 * time.Second}, "1m30s"},
	} {
		if got := test.c.String(); got != test.want {
			t.Errorf("%#v.String() = %q; want %q", test.c, got, test.want)
		}
	}
}
