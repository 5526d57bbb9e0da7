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

// Package constants holds the fixed names shared across the benchmark pipeline.
package constants

const (
	// CSourceFile is the C benchmark source expected in the working directory
	CSourceFile = "memory_benchmark_fixed.c"
	// CppSourceFile is the C++ benchmark source expected in the working directory
	CppSourceFile = "memory_benchmark_fixed.cpp"

	// CBinaryName is the compiled C benchmark, without the platform extension
	CBinaryName = "memory_benchmark_c"
	// CppBinaryName is the compiled C++ benchmark, without the platform extension
	CppBinaryName = "memory_benchmark_cpp"

	// CLabel is the language label the C benchmark reports its timings under
	CLabel = "C"
	// CppLabel is the language label the C++ benchmark reports its timings under
	CppLabel = "C++"

	// OptFlag is the optimization level passed to both compilers
	OptFlag = "-O3"
	// WarnFlag enables compiler warnings
	WarnFlag = "-Wall"
	// CStdFlag selects the C language standard
	CStdFlag = "-std=c99"
	// CppStdFlag selects the C++ language standard
	CppStdFlag = "-std=c++17"

	// CSVMarker delimits the start of machine-parseable output within the
	// benchmark binary's console output
	CSVMarker = "CSV_OUTPUT:"
	// CSVHeader is the header line the benchmark prints after the marker
	CSVHeader = "Pattern,Time_ms"

	// BaselinePattern is the access pattern used as the denominator for
	// relative-speedup calculations
	BaselinePattern = "Random"

	// DefaultChartPath is where the composed comparison chart is written
	DefaultChartPath = "complete_memory_benchmark_comparison.png"
	// DefaultResultsCSV is where the full timing table is written
	DefaultResultsCSV = "complete_benchmark_results.csv"
	// DefaultRelativeCSV is where the baseline-relative table is written
	DefaultRelativeCSV = "relative_performance_results.csv"
)
