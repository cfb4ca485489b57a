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
	"strings"

	"rivaas.dev/semroute/semver"
)

// DefaultHeader is the request header a constraint reads the client
// version from when none is configured.
const DefaultHeader = "api-version"

// Constraint is an immutable version requirement attached to a route.
//
// A constraint is in exact mode when an exact version is set; the range
// bounds are ignored at evaluation time in that case. Otherwise it is a
// range [min, max] with max optionally unbounded.
//
// Construct via New or MustNew; the zero value behaves like an empty
// range constraint and should not be used directly.
type Constraint struct {
	exact         *semver.Version
	max           *semver.Version
	min           semver.Version
	header        string
	unconstrained bool
}

// New builds a constraint from the given options, validating eagerly.
// Declared versions that fail to parse reject the constraint here, at
// registration time, rather than surfacing during dispatch.
//
// Example:
//
//	c, err := constraint.New(
//	    constraint.Min("1.0.0"),
//	    constraint.Max("2.0.0"),
//	    constraint.Header("X-API-Version"),
//	)
func New(opts ...Option) (*Constraint, error) {
	c := &Constraint{
		min:    semver.Lowest,
		header: DefaultHeader,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid constraint: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid constraint: %w", err)
	}

	return c, nil
}

// MustNew is like New but panics on error.
// Use for static route declarations.
func MustNew(opts ...Option) *Constraint {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Unconstrained returns the always-match constraint used for routes
// declared without a version requirement. It matches every request,
// including those with an absent or malformed version header, and sorts
// after every other constraint during dispatch.
func Unconstrained() *Constraint {
	return &Constraint{
		min:           semver.Lowest,
		header:        DefaultHeader,
		unconstrained: true,
	}
}

// validate checks cross-field invariants after options are applied.
func (c *Constraint) validate() error {
	if c.max != nil && c.max.Less(c.min) {
		return fmt.Errorf("%w: min %s, max %s", ErrRangeInverted, c.min, c.max)
	}

	return nil
}

// Matches reports whether the request-supplied version value satisfies
// the constraint.
//
// Absent, empty, and malformed values never match a constrained route;
// they are normal control flow, not errors. An unconstrained route
// matches regardless of the value.
func (c *Constraint) Matches(headerValue string) bool {
	if c == nil {
		return false
	}
	if c.unconstrained {
		return true
	}

	if strings.TrimSpace(headerValue) == "" {
		return false
	}

	v, err := semver.Parse(headerValue)
	if err != nil {
		return false // malformed request input is a non-match, never an error
	}

	if c.exact != nil {
		return v.Equal(*c.exact)
	}

	if !v.AtLeast(c.min) {
		return false
	}

	return c.max == nil || v.AtMost(*c.max)
}

// Combine resolves the class-level/method-level pair for one route.
// The method-declared constraint always wins outright; this is a
// replace, not a field-by-field merge. Invoke as
// classLevel.Combine(methodLevel).
//
// A nil method constraint returns the receiver, letting callers pass
// the pair through unconditionally.
func (c *Constraint) Combine(method *Constraint) *Constraint {
	if method == nil {
		return c
	}

	return method
}

// Priority orders two constraints for dispatch: -1 means the receiver
// is evaluated first (higher priority), 1 the opposite, 0 equal.
//
// Rules, in order:
//
//  1. Exact outranks range, unconditionally.
//  2. Two exacts: the larger version outranks.
//  3. Two ranges: the larger lower bound outranks, regardless of
//     boundedness. A [10.0.0, unbounded) range therefore outranks a
//     [0.0.1, 20.0.0] range even where they overlap, favoring the
//     handler focused on newer versions.
//  4. Equal lower bounds: the narrower range outranks; an unbounded
//     maximum is wider than any bounded one.
//
// Remaining ties, and any pairing involving a nil constraint, are equal
// priority; the caller's sort must be stable and must not assume a
// specific winner.
func (c *Constraint) Priority(other *Constraint) int {
	if c == nil || other == nil {
		return 0
	}

	// Unconstrained sorts after everything.
	if c.unconstrained || other.unconstrained {
		switch {
		case c.unconstrained && other.unconstrained:
			return 0
		case c.unconstrained:
			return 1
		default:
			return -1
		}
	}

	// Rule 1: exact beats range.
	if c.exact != nil || other.exact != nil {
		switch {
		case c.exact != nil && other.exact == nil:
			return -1
		case c.exact == nil:
			return 1
		default:
			// Rule 2: larger exact version dispatches first.
			return -semver.Compare(*c.exact, *other.exact)
		}
	}

	// Rule 3: larger lower bound dispatches first.
	if cmp := semver.Compare(c.min, other.min); cmp != 0 {
		return -cmp
	}

	// Rule 4: with equal lower bounds, narrower range dispatches first.
	switch {
	case c.max == nil && other.max == nil:
		return 0
	case c.max == nil:
		return 1
	case other.max == nil:
		return -1
	default:
		return semver.Compare(*c.max, *other.max)
	}
}

// ExactVersion returns the exact version and true when the constraint is
// in exact mode.
func (c *Constraint) ExactVersion() (semver.Version, bool) {
	if c == nil || c.exact == nil {
		return semver.Version{}, false
	}

	return *c.exact, true
}

// MinVersion returns the range lower bound.
func (c *Constraint) MinVersion() semver.Version {
	if c == nil {
		return semver.Lowest
	}

	return c.min
}

// MaxVersion returns the range upper bound and true when bounded.
func (c *Constraint) MaxVersion() (semver.Version, bool) {
	if c == nil || c.max == nil {
		return semver.Version{}, false
	}

	return *c.max, true
}

// HeaderName returns the request header this constraint reads.
func (c *Constraint) HeaderName() string {
	if c == nil || c.header == "" {
		return DefaultHeader
	}

	return c.header
}

// IsUnconstrained reports whether this is the always-match constraint.
func (c *Constraint) IsUnconstrained() bool {
	return c != nil && c.unconstrained
}

// String renders the constraint for logs and error messages.
func (c *Constraint) String() string {
	switch {
	case c == nil:
		return "<nil>"
	case c.unconstrained:
		return "unconstrained"
	case c.exact != nil:
		return "=" + c.exact.String()
	case c.max != nil:
		return ">=" + c.min.String() + " <=" + c.max.String()
	default:
		return ">=" + c.min.String()
	}
}
