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

func twoLanguageTable() *Table {
	t := NewTable()
	t.Add("Random", "C", 10.0)
	t.Add("Sequential", "C", 2.0)
	t.Add("Random", "C++", 5.0)
	t.Add("Sequential", "C++", 1.0)
	return t
}

func TestRelative(t *testing.T) {
	rel := twoLanguageTable().Relative("Random")
	if rel == nil {
		t.Fatal("Relative() returned nil with the baseline present")
	}

	expected := map[string]map[string]float64{
		"Random":     {"C": 1.0, "C++": 1.0},
		"Sequential": {"C": 5.0, "C++": 5.0},
	}
	if diff := cmp.Diff(expected, tableContents(rel)); diff != "" {
		t.Errorf("relative table mismatch (-want +got):\n%s", diff)
	}
}

func TestRelativeMissingBaseline(t *testing.T) {
	table := NewTable()
	table.Add("Sequential", "C", 2.0)
	if rel := table.Relative("Random"); rel != nil {
		t.Fatalf("Relative() = %v, want nil without the baseline pattern", tableContents(rel))
	}
}

func TestRatios(t *testing.T) {
	table := twoLanguageTable()
	// A pattern missing in one column must not produce a ratio.
	table.Add("Backward", "C", 3.0)

	ratios, ok := table.Ratios()
	if !ok {
		t.Fatal("Ratios() not applicable with two language columns")
	}
	expected := []Ratio{
		{Pattern: "Random", Value: 2.0},
		{Pattern: "Sequential", Value: 2.0},
	}
	if diff := cmp.Diff(expected, ratios); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}
}

func TestRatiosSingleLanguage(t *testing.T) {
	table := NewTable()
	table.Add("Random", "C", 10.0)
	table.Add("Sequential", "C", 2.0)

	if _, ok := table.Ratios(); ok {
		t.Fatal("Ratios() applicable with a single language column")
	}
}

func TestSpeedups(t *testing.T) {
	table := twoLanguageTable()
	table.Add("Bouncing", "C", 5.0)
	table.Add("Bouncing", "C++", 2.5)

	speedups := table.Speedups("Random")
	// mean(Random)=7.5, mean(Sequential)=1.5, mean(Bouncing)=3.75
	expected := []Speedup{
		{Pattern: "Sequential", Factor: 5.0},
		{Pattern: "Bouncing", Factor: 2.0},
	}
	if diff := cmp.Diff(expected, speedups); diff != "" {
		t.Errorf("speedups mismatch (-want +got):\n%s", diff)
	}
}

func TestSpeedupsMissingBaseline(t *testing.T) {
	table := NewTable()
	table.Add("Sequential", "C", 2.0)
	if s := table.Speedups("Random"); s != nil {
		t.Fatalf("Speedups() = %v, want nil without the baseline pattern", s)
	}
}

func TestSummary(t *testing.T) {
	table := twoLanguageTable()
	// Backward has no C++ value and no baseline entry in a third language,
	// so it contributes a single insight.
	table.Add("Backward", "C", 4.0)

	insights := table.Summary("Random")
	expected := []Insight{
		{Pattern: "Sequential", Language: "C", Factor: 5.0},
		{Pattern: "Sequential", Language: "C++", Factor: 5.0},
		{Pattern: "Backward", Language: "C", Factor: 2.5},
	}
	if diff := cmp.Diff(expected, insights); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestAddOverwrites(t *testing.T) {
	table := NewTable()
	table.Add("Random", "C", 10.0)
	table.Add("Random", "C", 11.0)

	if v, _ := table.Time("Random", "C"); v != 11.0 {
		t.Fatalf("Time() = %v after overwrite, want 11.0", v)
	}
	if len(table.Patterns()) != 1 || len(table.Languages()) != 1 {
		t.Fatalf("overwrite changed axes: patterns=%v languages=%v", table.Patterns(), table.Languages())
	}
}

func TestEmpty(t *testing.T) {
	table := NewTable()
	if !table.Empty() {
		t.Fatal("new table not Empty()")
	}
	table.Add("Random", "C", 10.0)
	if table.Empty() {
		t.Fatal("populated table reported Empty()")
	}
}
