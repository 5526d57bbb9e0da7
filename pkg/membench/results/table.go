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

// Package results holds the timing table the benchmark outputs are parsed
// into, along with the derived views the reporter charts.
package results

// Table maps access pattern -> language -> time in milliseconds. Pattern and
// language strings are whatever the benchmark binaries printed; they are not
// validated. Insertion order of both axes is preserved so console, CSV and
// chart output mirror the benchmarks' own output order.
type Table struct {
	times     map[string]map[string]float64
	patterns  []string
	languages []string
}

// NewTable returns an empty timing table.
func NewTable() *Table {
	return &Table{times: map[string]map[string]float64{}}
}

// Add stores a timing under (pattern, language). A later Add for the same
// pair overwrites the earlier value.
func (t *Table) Add(pattern, language string, ms float64) {
	row, ok := t.times[pattern]
	if !ok {
		row = map[string]float64{}
		t.times[pattern] = row
		t.patterns = append(t.patterns, pattern)
	}
	if !contains(t.languages, language) {
		t.languages = append(t.languages, language)
	}
	row[language] = ms
}

// Empty reports whether the table holds no timings at all.
func (t *Table) Empty() bool {
	return len(t.patterns) == 0
}

// Time returns the timing stored under (pattern, language).
func (t *Table) Time(pattern, language string) (float64, bool) {
	v, ok := t.times[pattern][language]
	return v, ok
}

// Patterns returns the pattern names in first-seen order.
func (t *Table) Patterns() []string {
	return append([]string(nil), t.patterns...)
}

// Languages returns the language columns in first-seen order.
func (t *Table) Languages() []string {
	return append([]string(nil), t.languages...)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
