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

package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse when the input is not exactly
// three dot-separated non-negative integers.
// Wrapped errors carry the offending input; test with errors.Is.
var ErrInvalidFormat = errors.New("invalid version format")

// Version is an immutable major.minor.patch semantic version.
// The zero value (0.0.0) is valid but below Lowest; constraint defaults
// use Lowest instead so that an unset lower bound stays representable.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Lowest is the smallest version a range lower bound defaults to.
var Lowest = Version{Major: 0, Minor: 0, Patch: 1}

// Parse parses a strict "major.minor.patch" version string.
// Leading and trailing whitespace is trimmed. Each component must be a
// base-10 non-negative integer; a "v" prefix, pre-release suffixes, and
// build metadata are all rejected.
//
// Example:
//
//	v, err := semver.Parse("1.2.3") // Version{1, 2, 3}
//	_, err = semver.Parse("v1.2.3") // ErrInvalidFormat
//	_, err = semver.Parse("1.2")    // ErrInvalidFormat
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	components := [3]int{}
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		components[i] = n
	}

	return Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

// MustParse is like Parse but panics on invalid input.
// Use for static declarations where the version is a compile-time literal.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// parseComponent parses one version component.
// strconv.Atoi alone would accept "+1" and "-0"; require digits only.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty component", ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: non-digit component %q", ErrInvalidFormat, s)
		}
	}

	return strconv.Atoi(s)
}

// Compare orders two versions lexicographically over (major, minor, patch).
// It returns -1 if a < b, 0 if equal, and 1 if a > b.
func Compare(a, b Version) int {
	if a.Major != b.Major {
		return sign(a.Major - b.Major)
	}
	if a.Minor != b.Minor {
		return sign(a.Minor - b.Minor)
	}

	return sign(a.Patch - b.Patch)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Compare orders v against other; see the package-level Compare.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Equal reports whether all three components match.
func (v Version) Equal(other Version) bool {
	return v == other
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool {
	return Compare(v, other) >= 0
}

// AtMost reports whether v <= other.
func (v Version) AtMost(other Version) bool {
	return Compare(v, other) <= 0
}

// String returns the canonical "major.minor.patch" form.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}
