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

// Package constraint represents the version requirement a route declares
// and the rules that decide which of several matching routes dispatches.
//
// A constraint is either exact (satisfied by one version only) or a range
// (inclusive [min, max], with max optionally unbounded). Constraints are
// built once at route-registration time via functional options and are
// immutable afterwards:
//
//	exact, err := constraint.New(constraint.Exact("3.0.0"))
//	stable, err := constraint.New(
//	    constraint.Min("1.0.0"),
//	    constraint.Max("2.0.0"),
//	)
//	preview := constraint.MustNew(constraint.Min("4.0.0"))
//
// Declared versions are validated eagerly: a malformed Exact, Min, or Max
// fails New, so an unparsable constraint can never reach the dispatch
// path. Request input, by contrast, is never an error: Matches simply
// returns false for absent, empty, or malformed header values.
//
// # Dispatch priority
//
// When several constraints match one request, Priority orders them:
//
//  1. An exact constraint outranks any range constraint.
//  2. Between two exacts, the larger version outranks.
//  3. Between two ranges, the larger lower bound outranks.
//  4. With equal lower bounds, the narrower range outranks; an unbounded
//     maximum counts as wider than any bounded one.
//
// Ties beyond these rules are equal priority and order-stable: callers
// must not rely on a specific winner.
package constraint
