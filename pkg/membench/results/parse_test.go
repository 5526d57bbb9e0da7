/*
Copyright 2026 The membench Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package results

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const benchmarkOutput = `=== Memory Access Pattern Benchmark ===
Buffer size: 64 MB

  Sequential:    12.34 ms
      Random:   156.78 ms

CSV_OUTPUT:
Pattern,Time_ms
Sequential,12.34
Backward,13.50
Interleaved,24.75
Bouncing,30.00
Random,156.78
`

func TestParseBenchmarkOutput(t *testing.T) {
	tests := []struct {
		description string
		output      string
		parsed      int
		times       map[string]float64
	}{
		{
			description: "full benchmark output",
			output:      benchmarkOutput,
			parsed:      5,
			times: map[string]float64{
				"Sequential":  12.34,
				"Backward":    13.5,
				"Interleaved": 24.75,
				"Bouncing":    30,
				"Random":      156.78,
			},
		},
		{
			description: "no marker",
			output:      "Sequential,12.34\nRandom,156.78\n",
			parsed:      0,
			times:       map[string]float64{},
		},
		{
			description: "marker only",
			output:      "CSV_OUTPUT:\nPattern,Time_ms\n",
			parsed:      0,
			times:       map[string]float64{},
		},
		{
			description: "unparseable time fields are dropped",
			output:      "CSV_OUTPUT:\nPattern,Time_ms\nSequential,12.34\nRandom,fast\nBouncing,\n",
			parsed:      1,
			times:       map[string]float64{"Sequential": 12.34},
		},
		{
			description: "blank lines and lines without commas are ignored",
			output:      "CSV_OUTPUT:\nPattern,Time_ms\n\nnot a csv line\nSequential,12.34\n",
			parsed:      1,
			times:       map[string]float64{"Sequential": 12.34},
		},
		{
			description: "duplicate patterns overwrite",
			output:      "CSV_OUTPUT:\nPattern,Time_ms\nSequential,12.34\nSequential,99.99\n",
			parsed:      2,
			times:       map[string]float64{"Sequential": 99.99},
		},
		{
			description: "split on first comma only",
			output:      "CSV_OUTPUT:\nPattern,Time_ms\nSequential,12.34,extra\n",
			parsed:      0,
			times:       map[string]float64{},
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			table := NewTable()
			n := table.ParseBenchmarkOutput(test.output, "C")
			if n != test.parsed {
				t.Errorf("ParseBenchmarkOutput() = %d entries, want %d", n, test.parsed)
			}

			actual := map[string]float64{}
			for _, pattern := range table.Patterns() {
				if v, ok := table.Time(pattern, "C"); ok {
					actual[pattern] = v
				}
			}
			if diff := cmp.Diff(test.times, actual); diff != "" {
				t.Errorf("parsed table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	once := NewTable()
	once.ParseBenchmarkOutput(benchmarkOutput, "C")

	twice := NewTable()
	twice.ParseBenchmarkOutput(benchmarkOutput, "C")
	twice.ParseBenchmarkOutput(benchmarkOutput, "C")

	if diff := cmp.Diff(tableContents(once), tableContents(twice)); diff != "" {
		t.Errorf("re-parsing identical input changed the table (-once +twice):\n%s", diff)
	}
}

func TestParsePreservesOrder(t *testing.T) {
	table := NewTable()
	table.ParseBenchmarkOutput(benchmarkOutput, "C")

	expected := []string{"Sequential", "Backward", "Interleaved", "Bouncing", "Random"}
	if diff := cmp.Diff(expected, table.Patterns()); diff != "" {
		t.Errorf("pattern order mismatch (-want +got):\n%s", diff)
	}
}

// tableContents flattens a table for comparison in tests.
func tableContents(t *Table) map[string]map[string]float64 {
	m := map[string]map[string]float64{}
	for _, pattern := range t.Patterns() {
		row := map[string]float64{}
		for _, lang := range t.Languages() {
			if v, ok := t.Time(pattern, lang); ok {
				row[lang] = v
			}
		}
		m[pattern] = row
	}
	return m
}
