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

// Package report renders the timing table to the console, to CSV files, and
// to the composed comparison chart.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/membench/membench/pkg/membench/constants"
	"github.com/membench/membench/pkg/membench/out"
	"github.com/membench/membench/pkg/membench/results"
)

// ErrNoResults indicates neither benchmark produced a single parseable
// timing, so there is nothing to chart or persist.
var ErrNoResults = errors.New("no results to chart")

// Config holds the reporter's output paths and the baseline pattern name.
type Config struct {
	ChartPath   string
	ResultsCSV  string
	RelativeCSV string
	Baseline    string
}

// DefaultConfig returns the fixed output paths of the pipeline.
func DefaultConfig() Config {
	return Config{
		ChartPath:   constants.DefaultChartPath,
		ResultsCSV:  constants.DefaultResultsCSV,
		RelativeCSV: constants.DefaultRelativeCSV,
		Baseline:    constants.BaselinePattern,
	}
}

// Render emits the comparative results: console table, chart PNG, CSV
// table(s), and the speedup summary. With an empty table it writes no file
// and returns ErrNoResults.
func Render(table *results.Table, cfg Config) error {
	if table.Empty() {
		return ErrNoResults
	}

	out.Ln("\nComparative Results:")
	printTable(os.Stdout, table)

	if err := saveChart(table, cfg); err != nil {
		return errors.Wrap(err, "rendering chart")
	}
	out.Ln("Chart saved: %s", cfg.ChartPath)

	if err := writeCSV(cfg.ResultsCSV, table); err != nil {
		return errors.Wrapf(err, "writing %s", cfg.ResultsCSV)
	}
	if rel := table.Relative(cfg.Baseline); rel != nil {
		if err := writeCSV(cfg.RelativeCSV, rel); err != nil {
			return errors.Wrapf(err, "writing %s", cfg.RelativeCSV)
		}
	}
	out.Ln("Results saved to CSV files")

	printSummary(table, cfg.Baseline)
	return nil
}

// printTable renders the timing table, values rounded for display only.
func printTable(w io.Writer, table *results.Table) {
	languages := table.Languages()

	t := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	t.Header(append([]string{"Pattern"}, languages...))

	var data [][]string
	for _, pattern := range table.Patterns() {
		row := []string{pattern}
		for _, lang := range languages {
			if v, ok := table.Time(pattern, lang); ok {
				row = append(row, fmt.Sprintf("%.2f", v))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	if err := t.Bulk(data); err != nil {
		klog.Warningf("appending table rows: %v", err)
	}
	if err := t.Render(); err != nil {
		klog.Warningf("rendering table: %v", err)
	}
}

// writeCSV persists a table as pattern-per-row, language-per-column CSV.
// Values are written at full precision; missing cells stay empty.
func writeCSV(path string, table *results.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	languages := table.Languages()
	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"Pattern"}, languages...)); err != nil {
		return err
	}
	for _, pattern := range table.Patterns() {
		row := []string{pattern}
		for _, lang := range languages {
			if v, ok := table.Time(pattern, lang); ok {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	klog.Infof("wrote %d patterns to %s", len(table.Patterns()), path)
	return nil
}

// printSummary prints the per-language speedup of every non-baseline pattern
// over the baseline.
func printSummary(table *results.Table, baseline string) {
	insights := table.Summary(baseline)
	if len(insights) == 0 {
		return
	}
	out.Ln("\nSummary Insights:")
	for _, in := range insights {
		out.Ln("   %s (%s): %.1fx faster than %s", in.Pattern, in.Language, in.Factor, baseline)
	}
}
