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

package version

import (
	"strings"

	"github.com/blang/semver/v4"
)

// VersionPrefix is the prefix of the git tag for a version
const VersionPrefix = "v"

// version is a private field and should be set when compiling with
// --ldflags="-X github.com/membench/membench/pkg/version.version=vX.Y.Z"
var version = "v0.0.0-unset"

// GetVersion returns the current membench version
func GetVersion() string {
	return version
}

// GetSemverVersion returns the current membench semantic version
func GetSemverVersion() (semver.Version, error) {
	return semver.Make(strings.TrimPrefix(GetVersion(), VersionPrefix))
}
