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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid versions", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			want  Version
		}{
			{"0.0.1", Version{0, 0, 1}},
			{"1.2.3", Version{1, 2, 3}},
			{"10.0.0", Version{10, 0, 0}},
			{"0.0.0", Version{0, 0, 0}},
			{"123.456.789", Version{123, 456, 789}},
			{"  1.2.3  ", Version{1, 2, 3}}, // surrounding whitespace trimmed
		}

		for _, tt := range tests {
			v, err := Parse(tt.input)
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, v, "input %q", tt.input)
		}
	})

	t.Run("invalid versions", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"   ",
			"1",
			"1.2",
			"1.2.3.4",
			"v1.2.3",
			"1.2.x",
			"1.-2.3",
			"+1.2.3",
			"1..3",
			"1.2.",
			".2.3",
			"a.b.c",
			"1.2.3-beta",
			"1.2.3+build",
			"not-a-version",
			"1 .2.3", // interior whitespace is not trimmed
		}

		for _, input := range inputs {
			_, err := Parse(input)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"0.0.1", "1.2.3", "99.100.101"} {
			v, err := Parse(s)
			require.NoError(t, err)

			again, err := Parse(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, again)
			assert.Equal(t, s, again.String())
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version{3, 0, 0}, MustParse("3.0.0"))
	assert.Panics(t, func() { MustParse("nope") })
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"1.1.0", "1.2.0", -1},
		{"1.2.1", "1.2.0", 1},
		{"1.0.9", "1.1.0", -1}, // minor dominates patch
		{"0.9.9", "1.0.0", -1}, // major dominates minor and patch
		{"10.0.0", "9.99.99", 1},
	}

	for _, tt := range tests {
		got := Compare(MustParse(tt.a), MustParse(tt.b))
		assert.Equal(t, tt.want, got, "Compare(%s, %s)", tt.a, tt.b)
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	t.Parallel()

	versions := []Version{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0},
		{1, 0, 1}, {1, 1, 0}, {2, 0, 0}, {10, 5, 3},
	}

	for _, a := range versions {
		assert.Zero(t, Compare(a, a), "Compare(%s, %s)", a, a)

		for _, b := range versions {
			// Antisymmetry
			assert.Equal(t, -Compare(b, a), Compare(a, b), "antisymmetry for %s, %s", a, b)

			for _, c := range versions {
				// Transitivity
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "transitivity for %s <= %s <= %s", a, b, c)
				}
			}
		}
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	low := MustParse("1.0.0")
	high := MustParse("2.0.0")

	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.True(t, low.Equal(low))
	assert.True(t, high.AtLeast(low))
	assert.True(t, high.AtLeast(high))
	assert.True(t, low.AtMost(high))
	assert.True(t, low.AtMost(low))
	assert.False(t, low.AtLeast(high))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.2.3", Version{1, 2, 3}.String())
	assert.Equal(t, "0.0.1", Lowest.String())
	assert.Equal(t, "0.0.0", Version{}.String())
}

func FuzzParse(f *testing.F) {
	f.Add("1.2.3")
	f.Add("0.0.1")
	f.Add("v1.2.3")
	f.Add("1.2")
	f.Add("not-a-version")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := Parse(input)
		if err != nil {
			return
		}

		// Any accepted input must round-trip through the canonical form.
		again, err := Parse(v.String())
		require.NoError(t, err)
		require.Equal(t, v, again)
		require.GreaterOrEqual(t, v.Major, 0)
		require.GreaterOrEqual(t, v.Minor, 0)
		require.GreaterOrEqual(t, v.Patch, 0)
	})
}
