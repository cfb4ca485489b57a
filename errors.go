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

package semroute

import "errors"

var (
	// ErrNoMatch indicates that no registered route matched the request.
	// The transport layer decides whether this becomes a 404 or falls
	// through to another routing mechanism.
	ErrNoMatch = errors.New("no versioned route found")

	// ErrNilHandler indicates that a route was registered without a handler.
	ErrNilHandler = errors.New("route handler cannot be nil")

	// ErrEmptyMethod indicates that a route was registered with an empty HTTP method.
	ErrEmptyMethod = errors.New("route method cannot be empty")

	// ErrEmptyPath indicates that a route was registered with an empty path.
	ErrEmptyPath = errors.New("route path cannot be empty")

	// ErrNilConstraint indicates that a nil constraint was attached to a route.
	ErrNilConstraint = errors.New("constraint cannot be nil")

	// ErrNilTable indicates that a nil table was supplied to the resolver.
	ErrNilTable = errors.New("table cannot be nil")

	// ErrNilResolver indicates that a nil resolver was supplied to the mux.
	ErrNilResolver = errors.New("resolver cannot be nil")
)
