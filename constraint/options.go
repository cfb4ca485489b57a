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

package constraint

import (
	"fmt"

	"rivaas.dev/semroute/semver"
)

// Option configures a Constraint during New.
type Option func(*Constraint) error

// Exact puts the constraint in exact mode: only the given version
// matches. Range bounds, if also set, are ignored at evaluation time.
//
// Example:
//
//	constraint.New(constraint.Exact("3.0.0"))
func Exact(version string) Option {
	return func(c *Constraint) error {
		v, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidExact, err)
		}
		c.exact = &v

		return nil
	}
}

// Min sets the inclusive range lower bound.
// Defaults to semver.Lowest (0.0.1) when not set.
//
// Example:
//
//	constraint.New(constraint.Min("4.0.0"))
//	// Matches 4.0.0 and anything newer.
func Min(version string) Option {
	return func(c *Constraint) error {
		v, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMin, err)
		}
		c.min = v

		return nil
	}
}

// Max sets the inclusive range upper bound.
// Absent means unbounded above.
//
// Example:
//
//	constraint.New(constraint.Min("1.0.0"), constraint.Max("2.0.0"))
//	// Matches 1.0.0 through 2.0.0 inclusive.
func Max(version string) Option {
	return func(c *Constraint) error {
		v, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMax, err)
		}
		c.max = &v

		return nil
	}
}

// Header sets the request header the constraint reads the client
// version from. Defaults to DefaultHeader ("api-version").
//
// Example:
//
//	constraint.New(constraint.Exact("2.0.0"), constraint.Header("X-API-Version"))
func Header(name string) Option {
	return func(c *Constraint) error {
		if name == "" {
			return ErrEmptyHeader
		}
		c.header = name

		return nil
	}
}
