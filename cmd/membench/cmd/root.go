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

package cmd

import (
	goflag "flag"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/membench/membench/pkg/membench/constants"
	"github.com/membench/membench/pkg/membench/detect"
	"github.com/membench/membench/pkg/membench/out"
	"github.com/membench/membench/pkg/membench/report"
	"github.com/membench/membench/pkg/membench/runner"
	"github.com/membench/membench/pkg/membench/toolchain"
	"github.com/membench/membench/pkg/version"
)

const membenchEnvPrefix = "MEMBENCH"

const (
	cSource           = "c-source"
	cppSource         = "cpp-source"
	chartPath         = "chart"
	resultsCSV        = "results-csv"
	relativeCSV       = "relative-csv"
	baseline          = "baseline"
	extraCompilerDirs = "extra-compiler-dirs"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "membench",
	Short:   "Membench compiles, runs and compares the C and C++ memory-access benchmarks.",
	Long:    `Membench compiles the C and C++ variants of the memory-access-pattern benchmark, runs them, and renders comparative charts and CSV tables from their timing output.`,
	Version: version.GetVersion(),
	Run:     runSuite,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		klog.Exitln(err)
	}
}

func init() {
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	initMembenchFlags()
	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		klog.Exitf("unable to bind flags: %v", err)
	}
}

// initMembenchFlags registers the pipeline flags; every flag is also
// readable from the environment, e.g. --c-source => $MEMBENCH_C_SOURCE.
func initMembenchFlags() {
	viper.SetEnvPrefix(membenchEnvPrefix)
	// Replaces '-' in flags with '_' in env variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	RootCmd.Flags().String(cSource, constants.CSourceFile, "Path to the C benchmark source")
	RootCmd.Flags().String(cppSource, constants.CppSourceFile, "Path to the C++ benchmark source")
	RootCmd.Flags().String(chartPath, constants.DefaultChartPath, "Path to write the composed comparison chart to")
	RootCmd.Flags().String(resultsCSV, constants.DefaultResultsCSV, "Path to write the full timing table to")
	RootCmd.Flags().String(relativeCSV, constants.DefaultRelativeCSV, "Path to write the baseline-relative table to")
	RootCmd.Flags().String(baseline, constants.BaselinePattern, "Pattern used as the denominator for relative-speedup calculations")
	RootCmd.Flags().StringSlice(extraCompilerDirs, toolchain.DefaultSearchDirs(), "Directories prepended to PATH before resolving compilers")
}

// runSuite drives the whole pipeline: build and run both language variants
// in sequence, then report whatever data was collected. Failures are printed
// and the run continues; the process exit status stays zero either way.
func runSuite(cmd *cobra.Command, _ []string) {
	if v, err := version.GetSemverVersion(); err == nil {
		klog.Infof("membench %s running on %s", v, detect.HostSummary())
	} else {
		klog.Warningf("membench version %q is not a semantic version: %v", version.GetVersion(), err)
	}

	out.Ln("=== COMPLETE Memory Access Benchmark Suite ===\n")

	r := runner.New(viper.GetStringSlice(extraCompilerDirs))
	languages := runner.Languages(viper.GetString(cSource), viper.GetString(cppSource))

	succeeded := 0
	for i, lang := range languages {
		if i > 0 {
			out.Separator()
		}
		if err := r.BuildAndRun(cmd.Context(), lang); err != nil {
			out.Err("%v", err)
			continue
		}
		succeeded++
	}

	out.Ln("\n%s", strings.Repeat("=", 50))

	if succeeded == 0 {
		out.Ln("\nNo successful benchmarks")
		return
	}

	cfg := report.Config{
		ChartPath:   viper.GetString(chartPath),
		ResultsCSV:  viper.GetString(resultsCSV),
		RelativeCSV: viper.GetString(relativeCSV),
		Baseline:    viper.GetString(baseline),
	}
	if err := report.Render(r.Table, cfg); err != nil {
		out.Err("%v", err)
	}

	out.Ln("\nComplete benchmark suite finished!")
}
