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

package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		description string
		banner      string
		expected    string
	}{
		{
			description: "ubuntu gcc",
			banner:      "gcc (Ubuntu 11.4.0-1ubuntu1~22.04.1) 11.4.0\nCopyright (C) 2021 Free Software Foundation, Inc.",
			expected:    "11.4.0",
		},
		{
			description: "mingw g++",
			banner:      "g++.exe (MinGW-W64 x86_64-posix-seh) 13.2.0",
			expected:    "13.2.0",
		},
		{
			description: "no version",
			banner:      "not a compiler banner",
			expected:    "",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			actual := extractVersion(test.banner)
			if actual != test.expected {
				t.Fatalf("extractVersion(%q) = %q, want %q", test.banner, actual, test.expected)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on shell script fakes")
	}

	dir := t.TempDir()
	for _, name := range []string{"gcc", "g++"} {
		script := filepath.Join(dir, name)
		if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("writing fake %s: %v", name, err)
		}
	}

	// An empty PATH plus the fake dir passed explicitly: Locate must find
	// both compilers via the prepended dir.
	t.Setenv("PATH", t.TempDir())
	cs := Locate([]string{dir})

	for _, tag := range []string{C, CPP} {
		path, ok := cs[tag]
		if !ok || path == "" {
			t.Errorf("Locate() did not resolve %q", CompilerName(tag))
			continue
		}
		if !strings.HasPrefix(path, dir) {
			t.Errorf("Locate() resolved %q to %q, want a path under %q", CompilerName(tag), path, dir)
		}
	}

	// The PATH mutation persists for later build steps.
	if !strings.Contains(os.Getenv("PATH"), dir) {
		t.Errorf("PATH does not contain %q after Locate()", dir)
	}
}

func TestLocateMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on PATH isolation")
	}

	t.Setenv("PATH", t.TempDir())
	cs := Locate(nil)
	if path := cs[C]; path != "" {
		t.Errorf("Locate() resolved gcc to %q on an empty PATH", path)
	}
	if path := cs[CPP]; path != "" {
		t.Errorf("Locate() resolved g++ to %q on an empty PATH", path)
	}
}

func TestVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on shell script fakes")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "gcc")
	banner := "#!/bin/sh\necho 'gcc (GCC) 12.3.0'\n"
	if err := os.WriteFile(script, []byte(banner), 0o755); err != nil {
		t.Fatalf("writing fake gcc: %v", err)
	}

	v, err := Version(script)
	if err != nil {
		t.Fatalf("Version(%q) returned error: %v", script, err)
	}
	if v.String() != "12.3.0" {
		t.Fatalf("Version(%q) = %s, want 12.3.0", script, v)
	}
}
