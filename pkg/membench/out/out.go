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

// Package out provides stylized output to the benchmark console.
//
// By design, this package uses global references to output objects, in
// preference to passing a console object throughout the code base. Typical
// usage is:
//
//	out.SetOutFile(os.Stdout)
//	out.SetErrFile(os.Stderr)
//	out.Step("Added %s to PATH", dir)
//	out.Err("C compilation failed: %s", stderr)
//
// NOTE: If you do not want colorized output, set MEMBENCH_IN_STYLE=false in
// your environment.
package out

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	isatty "github.com/mattn/go-isatty"
	"k8s.io/klog/v2"
)

var (
	// outFile is where Out* functions send output to. Set using SetOutFile()
	outFile fdWriter
	// errFile is where Err* functions send output to. Set using SetErrFile()
	errFile fdWriter
	// useColor is whether or not color output should be used, updated by Set*File.
	useColor = false
)

// OverrideEnv is the environment variable used to override color usage
const OverrideEnv = "MEMBENCH_IN_STYLE"

const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// fdWriter is the subset of file.File that implements io.Writer and Fd()
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// String writes a basic formatted string to stdout
func String(format string, a ...interface{}) {
	// Flush log buffer so that output order makes sense
	klog.Flush()

	if outFile == nil {
		klog.Warningf("[unset outFile]: %s", fmt.Sprintf(format, a...))
		return
	}
	if _, err := fmt.Fprintf(outFile, format, a...); err != nil {
		klog.Errorf("Fprintf failed: %v", err)
	}
}

// Ln writes a basic formatted string with a newline to stdout
func Ln(format string, a ...interface{}) {
	String(format+"\n", a...)
}

// Step writes an informational pipeline step message to stdout
func Step(format string, a ...interface{}) {
	Ln(colorize(colorYellow, "[INFO]")+" "+format, a...)
}

// Success writes a successful step result to stdout
func Success(format string, a ...interface{}) {
	Ln(colorize(colorGreen, "[SUCCESS]")+" "+format, a...)
}

// ErrString writes a basic formatted string to stderr
func ErrString(format string, a ...interface{}) {
	klog.Flush()

	if errFile == nil {
		klog.Errorf("[unset errFile]: %s", fmt.Sprintf(format, a...))
		return
	}
	if _, err := fmt.Fprintf(errFile, format, a...); err != nil {
		klog.Errorf("Fprintf failed: %v", err)
	}
}

// Err writes a failed step result to stderr
func Err(format string, a ...interface{}) {
	ErrString(colorize(colorRed, "[ERROR]")+" "+format+"\n", a...)
}

// Separator writes the dashed line dividing two pipeline steps
func Separator() {
	Ln("\n%s\n", strings.Repeat("-", 50))
}

func colorize(color, s string) string {
	if !useColor {
		return s
	}
	return color + s + colorReset
}

// SetOutFile configures which writer standard output goes to.
func SetOutFile(w fdWriter) {
	klog.Infof("Setting OutFile to fd %d ...", w.Fd())
	outFile = w
	useColor = wantsColor(w.Fd())
}

// SetErrFile configures which writer error output goes to.
func SetErrFile(w fdWriter) {
	klog.Infof("Setting ErrFile to fd %d...", w.Fd())
	errFile = w
	useColor = wantsColor(w.Fd())
}

// wantsColor determines if the user might want colorized output.
func wantsColor(fd uintptr) bool {
	// First process the environment: we allow users to force colors on or off.
	//
	// MEMBENCH_IN_STYLE=[1, T, true, TRUE]
	// MEMBENCH_IN_STYLE=[0, f, false, FALSE]
	//
	// If unset, we try to automatically determine suitability from the environment.
	val := os.Getenv(OverrideEnv)
	if val != "" {
		klog.Infof("%s=%q\n", OverrideEnv, val)
		override, err := strconv.ParseBool(val)
		if err != nil {
			// That's OK, we will just fall-back to automatic detection.
			klog.Errorf("ParseBool(%s): %v", OverrideEnv, err)
		} else {
			return override
		}
	}

	term := os.Getenv("TERM")
	colorTerm := os.Getenv("COLORTERM")
	// Example: term-256color
	if !strings.Contains(term, "color") && !strings.Contains(colorTerm, "truecolor") && !strings.Contains(colorTerm, "24bit") && !strings.Contains(colorTerm, "yes") {
		klog.Infof("TERM=%s,COLORTERM=%s, which probably does not support color", term, colorTerm)
		return false
	}

	isT := isatty.IsTerminal(fd)
	klog.Infof("isatty.IsTerminal(%d) = %v\n", fd, isT)
	return isT
}
