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

import "sort"

// Ratio is the cross-language time ratio for a single pattern.
type Ratio struct {
	Pattern string
	// Value is firstLanguage/secondLanguage: below 1.0 the first language
	// is faster.
	Value float64
}

// Speedup is a pattern's average speedup over the baseline pattern.
type Speedup struct {
	Pattern string
	Factor  float64
}

// Insight is a per-language speedup of one pattern over the baseline.
type Insight struct {
	Pattern  string
	Language string
	Factor   float64
}

// Relative returns a table of baselineTime/patternTime per language column,
// so the baseline pattern reads 1.0 everywhere and faster patterns read
// above 1.0. Returns nil if the baseline pattern is absent.
func (t *Table) Relative(baseline string) *Table {
	if _, ok := t.times[baseline]; !ok {
		return nil
	}

	rel := NewTable()
	for _, lang := range t.languages {
		base, ok := t.Time(baseline, lang)
		if !ok {
			continue
		}
		for _, pattern := range t.patterns {
			if v, ok := t.Time(pattern, lang); ok {
				rel.Add(pattern, lang, base/v)
			}
		}
	}
	return rel
}

// Ratios returns the per-pattern time ratio of the first language column to
// the second. It applies only when exactly two language columns are present;
// patterns missing a value in either column are omitted.
func (t *Table) Ratios() ([]Ratio, bool) {
	if len(t.languages) != 2 {
		return nil, false
	}

	var ratios []Ratio
	for _, pattern := range t.patterns {
		a, okA := t.Time(pattern, t.languages[0])
		b, okB := t.Time(pattern, t.languages[1])
		if !okA || !okB {
			continue
		}
		ratios = append(ratios, Ratio{Pattern: pattern, Value: a / b})
	}
	return ratios, true
}

// Speedups ranks every non-baseline pattern by mean(baseline)/mean(pattern),
// averaged over the languages present in each row, highest first. Returns
// nil if the baseline pattern is absent.
func (t *Table) Speedups(baseline string) []Speedup {
	base, ok := t.mean(baseline)
	if !ok {
		return nil
	}

	var speedups []Speedup
	for _, pattern := range t.patterns {
		if pattern == baseline {
			continue
		}
		if m, ok := t.mean(pattern); ok {
			speedups = append(speedups, Speedup{Pattern: pattern, Factor: base / m})
		}
	}
	sort.SliceStable(speedups, func(i, j int) bool {
		return speedups[i].Factor > speedups[j].Factor
	})
	return speedups
}

// Summary returns, for every non-baseline pattern and every language present
// in both that pattern and the baseline, the baseline/pattern speedup factor.
func (t *Table) Summary(baseline string) []Insight {
	var insights []Insight
	for _, pattern := range t.patterns {
		if pattern == baseline {
			continue
		}
		for _, lang := range t.languages {
			v, okV := t.Time(pattern, lang)
			base, okB := t.Time(baseline, lang)
			if !okV || !okB {
				continue
			}
			insights = append(insights, Insight{Pattern: pattern, Language: lang, Factor: base / v})
		}
	}
	return insights
}

// mean averages a pattern's timings over the languages it has values for.
func (t *Table) mean(pattern string) (float64, bool) {
	row, ok := t.times[pattern]
	if !ok || len(row) == 0 {
		return 0, false
	}
	total := float64(0)
	for _, v := range row {
		total += v
	}
	return total / float64(len(row)), true
}
