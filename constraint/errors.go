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

import "errors"

// Static errors for constraint construction.
// Version-format failures additionally wrap semver.ErrInvalidFormat.
var (
	// ErrInvalidExact indicates that the exact version string is malformed.
	ErrInvalidExact = errors.New("invalid exact version")

	// ErrInvalidMin indicates that the range lower bound is malformed.
	ErrInvalidMin = errors.New("invalid minimum version")

	// ErrInvalidMax indicates that the range upper bound is malformed.
	ErrInvalidMax = errors.New("invalid maximum version")

	// ErrEmptyHeader indicates that the header name is empty.
	ErrEmptyHeader = errors.New("header name cannot be empty")

	// ErrRangeInverted indicates that the upper bound is below the lower bound.
	ErrRangeInverted = errors.New("maximum version is below minimum version")
)
