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

package report

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/membench/membench/pkg/membench/detect"
	"github.com/membench/membench/pkg/membench/results"
)

const (
	chartWidth  = 16 * vg.Inch
	chartHeight = 12 * vg.Inch
	chartDPI    = 300
)

var barWidth = vg.Points(20)

var (
	fasterColor = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	slowerColor = color.RGBA{R: 198, G: 40, B: 40, A: 255}
	parityColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// saveChart composes the four comparison panels onto one canvas and writes
// it as a PNG. Panels whose preconditions do not hold (no baseline pattern,
// not exactly two languages) render as empty axes.
func saveChart(table *results.Table, cfg Config) error {
	absolute, err := absolutePanel(table)
	if err != nil {
		return err
	}
	relative, err := relativePanel(table, cfg.Baseline)
	if err != nil {
		return err
	}
	ratio, err := ratioPanel(table)
	if err != nil {
		return err
	}
	speedup, err := speedupPanel(table, cfg.Baseline)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{
		{absolute, relative},
		{ratio, speedup},
	}

	img := vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight), vgimg.UseDPI(chartDPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 2,
		PadX: vg.Points(20),
		PadY: vg.Points(20),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	f, err := os.Create(cfg.ChartPath)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}

// absolutePanel is the absolute time grouped bar chart; lower is better.
func absolutePanel(table *results.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Absolute Performance - lower is better\n" + detect.HostSummary()
	p.Y.Label.Text = "Time (ms)"

	if err := groupedBars(p, table); err != nil {
		return nil, err
	}
	return p, nil
}

// relativePanel is the baseline-relative grouped bar chart; higher is
// better. Empty axes when the baseline pattern is absent.
func relativePanel(table *results.Table, baseline string) (*plot.Plot, error) {
	p := plot.New()
	rel := table.Relative(baseline)
	if rel == nil {
		return p, nil
	}

	p.Title.Text = fmt.Sprintf("Relative Performance (%s = 1.0) - higher is better", baseline)
	p.Y.Label.Text = "Speedup Factor"

	if err := groupedBars(p, rel); err != nil {
		return nil, err
	}
	return p, nil
}

// ratioPanel charts the per-pattern time ratio between the two language
// columns: bars below the dashed parity line mean the first language is
// faster. Empty axes unless exactly two languages are present.
func ratioPanel(table *results.Table) (*plot.Plot, error) {
	p := plot.New()
	ratios, ok := table.Ratios()
	if !ok || len(ratios) == 0 {
		return p, nil
	}

	languages := table.Languages()
	p.Title.Text = fmt.Sprintf("%s vs %s Time Ratio - below 1.0 means %s is faster", languages[0], languages[1], languages[0])
	p.Y.Label.Text = fmt.Sprintf("Time Ratio (%s / %s)", languages[0], languages[1])
	p.Add(plotter.NewGrid())

	// One single-bar series per pattern so each bar can carry its own color.
	names := make([]string, len(ratios))
	for i, r := range ratios {
		names[i] = r.Pattern
		values := make(plotter.Values, len(ratios))
		values[i] = r.Value

		bar, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, err
		}
		bar.LineStyle.Width = vg.Length(0)
		switch {
		case r.Value < 1:
			bar.Color = fasterColor
		case r.Value > 1:
			bar.Color = slowerColor
		default:
			bar.Color = parityColor
		}
		p.Add(bar)
	}
	p.NominalX(names...)

	parity, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1},
		{X: float64(len(ratios)) - 0.5, Y: 1},
	})
	if err != nil {
		return nil, err
	}
	parity.Color = color.Black
	parity.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(parity)

	if err := valueLabels(p, ratioXYs(ratios), "%.2f"); err != nil {
		return nil, err
	}
	return p, nil
}

// speedupPanel ranks every non-baseline pattern by average speedup over the
// baseline. Empty axes when the baseline pattern is absent.
func speedupPanel(table *results.Table, baseline string) (*plot.Plot, error) {
	p := plot.New()
	speedups := table.Speedups(baseline)
	if len(speedups) == 0 {
		return p, nil
	}

	p.Title.Text = "Hardware Prefetching Effectiveness - higher is better"
	p.Y.Label.Text = fmt.Sprintf("Average Speedup vs %s", baseline)
	p.Add(plotter.NewGrid())

	names := make([]string, len(speedups))
	values := make(plotter.Values, len(speedups))
	var xys plotter.XYs
	for i, s := range speedups {
		names[i] = s.Pattern
		values[i] = s.Factor
		xys = append(xys, plotter.XY{X: float64(i), Y: s.Factor})
	}

	bar, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, err
	}
	bar.LineStyle.Width = vg.Length(0)
	bar.Color = fasterColor
	p.Add(bar)
	p.NominalX(names...)

	if err := valueLabels(p, xys, "%.1fx"); err != nil {
		return nil, err
	}
	return p, nil
}

// groupedBars adds one bar series per language, offset so the groups sit
// side by side per pattern.
func groupedBars(p *plot.Plot, table *results.Table) error {
	patterns := table.Patterns()
	languages := table.Languages()

	for i, lang := range languages {
		values := make(plotter.Values, len(patterns))
		for j, pattern := range patterns {
			if v, ok := table.Time(pattern, lang); ok {
				values[j] = v
			}
		}

		bar, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return err
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = plotutil.Color(i)
		bar.Offset = barWidth*vg.Length(i) - barWidth*vg.Length(len(languages)-1)/2
		p.Add(bar)
		p.Legend.Add(lang, bar)
	}

	p.Legend.Top = true
	p.NominalX(patterns...)
	p.Add(plotter.NewGrid())
	return nil
}

// valueLabels prints a value just above each bar top.
func valueLabels(p *plot.Plot, xys plotter.XYs, format string) error {
	labels := make([]string, len(xys))
	offset := make(plotter.XYs, len(xys))
	for i, xy := range xys {
		labels[i] = fmt.Sprintf(format, xy.Y)
		offset[i] = plotter.XY{X: xy.X - 0.03, Y: xy.Y + 0.02}
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: offset, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

func ratioXYs(ratios []results.Ratio) plotter.XYs {
	xys := make(plotter.XYs, len(ratios))
	for i, r := range ratios {
		xys[i] = plotter.XY{X: float64(i), Y: r.Value}
	}
	return xys
}
