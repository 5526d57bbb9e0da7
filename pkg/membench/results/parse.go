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

import (
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/membench/membench/pkg/membench/constants"
)

// ParseBenchmarkOutput scans captured benchmark stdout for the CSV_OUTPUT:
// marker and stores every pattern,time_ms line that follows under the given
// language. The header line is skipped. Lines whose time field does not
// parse as a float are silently dropped, not surfaced as errors. Returns the
// number of timings stored.
func (t *Table) ParseBenchmarkOutput(output, language string) int {
	n := 0
	inCSV := false
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, constants.CSVMarker) {
			inCSV = true
			continue
		}
		if !inCSV {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ",") {
			continue
		}
		if strings.Contains(line, constants.CSVHeader) {
			continue
		}

		parts := strings.SplitN(line, ",", 2)
		ms, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			klog.Infof("skipping unparseable %s line %q: %v", language, line, err)
			continue
		}
		t.Add(parts[0], language, ms)
		n++
	}
	return n
}
