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

// Package runner compiles the benchmark sources and executes the resulting
// binaries, feeding their output into the shared timing table.
package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/membench/membench/pkg/membench/constants"
	"github.com/membench/membench/pkg/membench/detect"
	"github.com/membench/membench/pkg/membench/out"
	"github.com/membench/membench/pkg/membench/results"
	"github.com/membench/membench/pkg/membench/toolchain"
)

// Failure causes, checkable with errors.Cause. The orchestrator logs them
// and continues with the other language; partial data still yields a report.
var (
	// ErrMissingCompiler indicates the language's compiler was not resolved
	ErrMissingCompiler = errors.New("compiler not found")
	// ErrMissingSource indicates the benchmark source file is absent
	ErrMissingSource = errors.New("benchmark source not found")
	// ErrCompileFailed indicates the compiler exited non-zero
	ErrCompileFailed = errors.New("compilation failed")
	// ErrRunFailed indicates the benchmark binary exited non-zero
	ErrRunFailed = errors.New("benchmark execution failed")
)

// Language describes one benchmark variant to compile and run.
type Language struct {
	// Label is the console label and the table column, e.g. "C++"
	Label string
	// Tag selects the compiler from the toolchain package
	Tag string
	// StdFlag is the language-standard flag passed to the compiler
	StdFlag string
	// Source is the benchmark source file in the working directory
	Source string
	// Output is the executable the compiler produces
	Output string
}

// Languages returns the two benchmark variants in run order. Empty source
// paths fall back to the fixed names.
func Languages(cSource, cppSource string) []Language {
	if cSource == "" {
		cSource = constants.CSourceFile
	}
	if cppSource == "" {
		cppSource = constants.CppSourceFile
	}
	return []Language{
		{
			Label:   constants.CLabel,
			Tag:     toolchain.C,
			StdFlag: constants.CStdFlag,
			Source:  cSource,
			Output:  constants.CBinaryName + detect.BinaryExt(),
		},
		{
			Label:   constants.CppLabel,
			Tag:     toolchain.CPP,
			StdFlag: constants.CppStdFlag,
			Source:  cppSource,
			Output:  constants.CppBinaryName + detect.BinaryExt(),
		},
	}
}

// Runner drives the compile-run-parse pipeline for each language into a
// shared table.
type Runner struct {
	// ExtraDirs are prepended to PATH before each compiler lookup
	ExtraDirs []string
	// Table accumulates parsed timings across languages
	Table *results.Table
}

// New returns a Runner with an empty timing table.
func New(extraDirs []string) *Runner {
	return &Runner{
		ExtraDirs: extraDirs,
		Table:     results.NewTable(),
	}
}

// BuildAndRun compiles one language's benchmark, executes it, and parses its
// output into the table. Compilers are re-resolved on every call so a PATH
// extension from an earlier step is honored. Blocking, no timeout: a hung
// subprocess blocks until it exits.
func (r *Runner) BuildAndRun(ctx context.Context, lang Language) error {
	compilers := toolchain.Locate(r.ExtraDirs)
	compiler := compilers[lang.Tag]
	if compiler == "" {
		return errors.Wrapf(ErrMissingCompiler, "%s compiler (%s)", lang.Label, toolchain.CompilerName(lang.Tag))
	}
	if v, err := toolchain.Version(compiler); err != nil {
		klog.Warningf("probing %s version: %v", compiler, err)
	} else {
		klog.Infof("%s version %s", compiler, v)
	}

	if _, err := os.Stat(lang.Source); err != nil {
		return errors.Wrapf(ErrMissingSource, "%s", lang.Source)
	}

	out.Ln("Compiling %s version...", lang.Label)
	if err := r.compile(ctx, compiler, lang); err != nil {
		return err
	}
	out.Success("%s compilation successful", lang.Label)

	stdout, err := r.execute(ctx, lang)
	if err != nil {
		return err
	}
	out.Success("%s benchmark completed", lang.Label)

	n := r.Table.ParseBenchmarkOutput(stdout, lang.Label)
	klog.Infof("parsed %d timings for %s", n, lang.Label)
	return nil
}

// compile invokes <compiler> -O3 <std> -Wall <source> -o <output> and captures
// both streams. On non-zero exit the captured stderr is carried in the error.
func (r *Runner) compile(ctx context.Context, compiler string, lang Language) error {
	cmd := exec.CommandContext(ctx, compiler, constants.OptFlag, lang.StdFlag, constants.WarnFlag, lang.Source, "-o", lang.Output)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	klog.Infof("Running: %v", cmd.Args)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ErrCompileFailed, "%s: %v: %s", lang.Label, err, stderr.String())
	}
	return nil
}

// execute runs the produced binary with no arguments and the working
// directory set to the current directory, returning its captured stdout.
func (r *Runner) execute(ctx context.Context, lang Language) (string, error) {
	cmd := exec.CommandContext(ctx, "."+string(os.PathSeparator)+lang.Output)
	cmd.Dir = "."
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	klog.Infof("Running: %v", cmd.Args)
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ErrRunFailed, "%s: %v: %s", lang.Label, err, stderr.String())
	}
	return stdout.String(), nil
}
