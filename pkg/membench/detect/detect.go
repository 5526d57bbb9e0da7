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

// Package detect reports properties of the host the benchmarks run on.
package detect

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid"
	"golang.org/x/sys/cpu"
)

// RuntimeOS returns the runtime operating system
func RuntimeOS() string {
	return runtime.GOOS
}

// RuntimeArch returns the runtime architecture
func RuntimeArch() string {
	arch := runtime.GOARCH
	if arch == "arm" {
		// runtime.GOARM
		if !cpu.ARM.HasVFP {
			return "arm/v5"
		}
		if !cpu.ARM.HasVFPv3 {
			return "arm/v6"
		}
		// "arm" (== "arm/v7")
	}
	return arch
}

// IsWindows returns true when running on the Windows OS family
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// BinaryExt returns the executable extension for the host OS
func BinaryExt() string {
	if IsWindows() {
		return ".exe"
	}
	return ""
}

// CPUBrand returns the CPU brand string, or "" if the host does not expose one.
// A memory-access benchmark result is hard to interpret without it.
func CPUBrand() string {
	return strings.TrimSpace(cpuid.CPU.BrandName)
}

// HostSummary returns a one-line description of the host, suitable for logs
// and chart titles: "<brand> (<os>/<arch>)", or just "<os>/<arch>" when the
// CPU brand is unavailable.
func HostSummary() string {
	platform := RuntimeOS() + "/" + RuntimeArch()
	if brand := CPUBrand(); brand != "" {
		return brand + " (" + platform + ")"
	}
	return platform
}
