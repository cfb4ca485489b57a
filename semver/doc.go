// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package semver implements the strict three-component semantic version
// value type used by route version constraints.
//
// A version is always exactly "major.minor.patch" with non-negative
// integer components. There is no "v" prefix and no pre-release or build
// metadata; anything outside that shape is a parse error. This is
// deliberately stricter than golang.org/x/mod/semver because declared
// route constraints and request headers share one canonical textual form.
//
// # Usage
//
// Parse request input and compare:
//
//	v, err := semver.Parse("2.1.0")
//	if err != nil {
//	    // not a version
//	}
//	if v.AtLeast(semver.MustParse("2.0.0")) {
//	    // v is 2.0.0 or newer
//	}
//
// Versions are immutable values with value equality. Compare orders by
// major, then minor, then patch.
package semver
