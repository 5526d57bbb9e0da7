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

// Package toolchain locates the host C and C++ compilers.
package toolchain

import (
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/membench/membench/pkg/membench/detect"
	"github.com/membench/membench/pkg/membench/out"
)

const (
	// C is the language tag for the C compiler
	C = "c"
	// CPP is the language tag for the C++ compiler
	CPP = "cpp"
)

// compilerNames maps a language tag to the executable resolved on PATH
var compilerNames = map[string]string{
	C:   "gcc",
	CPP: "g++",
}

// Compilers maps a language tag to a resolved compiler path. A missing or
// empty entry means the compiler was not found; callers must check.
type Compilers map[string]string

// CompilerName returns the conventional executable name for a language tag.
func CompilerName(tag string) string {
	return compilerNames[tag]
}

// DefaultSearchDirs returns the conventional compiler install directories for
// the host OS family. Only Windows has ones worth probing: MinGW installs are
// commonly not on PATH.
func DefaultSearchDirs() []string {
	if !detect.IsWindows() {
		return nil
	}
	return []string{`C:\MinGW\bin`, `C:\mingw64\bin`, `C:\msys64\mingw64\bin`}
}

// Locate prepends each existing extraDir to the process PATH and resolves the
// C and C++ compilers. The PATH mutation is process-wide and intentionally
// persists for the remainder of the run, so a dir added for the first build
// step still applies to the second. Absence of a compiler is not an error.
func Locate(extraDirs []string) Compilers {
	extendPath(extraDirs)

	cs := Compilers{}
	for tag, name := range compilerNames {
		path, err := exec.LookPath(name)
		if err != nil {
			klog.Warningf("%s not found on PATH: %v", name, err)
			continue
		}
		klog.Infof("resolved %s to %s", name, path)
		cs[tag] = path
	}
	return cs
}

// extendPath prepends dirs that exist and are not already present to the
// process PATH.
func extendPath(dirs []string) {
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		path := os.Getenv("PATH")
		if pathContains(path, dir) {
			continue
		}
		if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+path); err != nil {
			klog.Warningf("failed to prepend %s to PATH: %v", dir, err)
			continue
		}
		out.Step("Added %s to PATH", dir)
	}
}

func pathContains(path, dir string) bool {
	for _, p := range strings.Split(path, string(os.PathListSeparator)) {
		if p == dir {
			return true
		}
	}
	return false
}

// versionRe matches the dotted triple in compiler banners such as
// "gcc (Ubuntu 11.4.0-1ubuntu1~22.04.1) 11.4.0".
var versionRe = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// Version probes a resolved compiler for its version. Informational only: a
// failed probe never fails the pipeline.
func Version(path string) (semver.Version, error) {
	cmd := exec.Command(path, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return semver.Version{}, errors.Wrapf(err, "running %s --version", path)
	}

	ev := extractVersion(string(output))
	if ev == "" {
		return semver.Version{}, errors.Errorf("unable to extract version from %q", firstLine(string(output)))
	}

	v, err := semver.Make(ev)
	if err != nil {
		return semver.Version{}, errors.Wrapf(err, "parsing version %q", ev)
	}
	return v, nil
}

// extractVersion extracts the first dotted version triple from a compiler
// banner, or "" if none is found.
func extractVersion(s string) string {
	return versionRe.FindString(s)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
