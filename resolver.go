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

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"rivaas.dev/semroute/semver"
)

// HeaderGetter is the narrow transport interface the resolver consumes:
// a single-value header lookup on the current request. http.Header
// satisfies it.
type HeaderGetter interface {
	Get(name string) string
}

// Resolution outcomes reported to observers and metrics recorders.
const (
	// OutcomeMatched means a version-constrained route won dispatch.
	OutcomeMatched = "matched"

	// OutcomeFallback means only the unconstrained default route matched.
	OutcomeFallback = "fallback"

	// OutcomeNoMatch means no candidate matched at all.
	OutcomeNoMatch = "no_match"
)

// MetricsRecorder receives one measurement per resolution.
// Package metrics provides an OpenTelemetry implementation.
type MetricsRecorder interface {
	RecordResolution(method, outcome string, seconds float64)
}

// Observer holds callbacks for resolution events.
// Nil callbacks are skipped; all callbacks must be safe for concurrent use.
type Observer struct {
	// OnResolved is called when a constrained route wins dispatch.
	// version is the canonical form of the request's version header.
	OnResolved func(method, path, version string)

	// OnFallback is called when only the unconstrained default matched.
	OnFallback func(method, path string)

	// OnNoMatch is called when resolution finds no candidate.
	OnNoMatch func(method, path string)
}

// Resolver picks the handler for a request from the registered candidate
// set. The read path is lock-free: candidates live in an immutable
// snapshot behind an atomic pointer, so resolution may run concurrently
// with a SetTable swap and sees either the old table or the new one,
// never a mix.
type Resolver struct {
	snap     atomic.Pointer[tableSnapshot]
	observer *Observer
	recorder MetricsRecorder
}

// New creates a resolver with the given options.
//
// Example:
//
//	r, err := semroute.New(
//	    semroute.WithTable(tbl),
//	    semroute.WithObserver(
//	        semroute.OnNoMatch(func(method, path string) {
//	            log.Warn("unroutable", "method", method, "path", path)
//	        }),
//	    ),
//	)
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("invalid resolver option: %w", err)
		}
	}

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Resolver {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// SetTable atomically replaces the candidate set. In-flight resolutions
// keep the snapshot they loaded; subsequent ones see the new table.
func (r *Resolver) SetTable(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	r.snap.Store(t.snapshot())

	return nil
}

// Resolve picks the handler for the given method, path, and request
// headers. It returns ErrNoMatch (wrapped) when no candidate matches.
//
// Resolution never mutates registration state and is safe to invoke
// concurrently and repeatedly for the same route set.
func (r *Resolver) Resolve(method, path string, headers HeaderGetter) (http.Handler, error) {
	rt, _, err := r.ResolveRoute(method, path, headers)
	if err != nil {
		return nil, err
	}

	return rt.Handler(), nil
}

// ResolveRoute is Resolve with the winning route and the canonical form
// of the request's version value. version is empty when the winner is
// the unconstrained default and the header was absent or malformed.
func (r *Resolver) ResolveRoute(method, path string, headers HeaderGetter) (*Route, string, error) {
	start := time.Now()

	rt, version, err := r.resolve(method, path, headers)

	outcome := OutcomeMatched
	switch {
	case err != nil:
		outcome = OutcomeNoMatch
	case rt.Constraint().IsUnconstrained():
		outcome = OutcomeFallback
	}

	r.record(method, outcome, time.Since(start).Seconds())
	r.notify(outcome, method, path, version)

	return rt, version, err
}

func (r *Resolver) resolve(method, path string, headers HeaderGetter) (*Route, string, error) {
	snap := r.snap.Load()
	if snap == nil {
		return nil, "", fmt.Errorf("%w: %s %s", ErrNoMatch, method, path)
	}

	key := routeKey{method: strings.ToUpper(strings.TrimSpace(method)), path: path}
	candidates := snap.candidates[key]

	// Each candidate reads its own configured header: mixed header names
	// across routes are legal and evaluate independently.
	matched := make([]*Route, 0, len(candidates))
	for _, rt := range candidates {
		if rt.Constraint().Matches(headerValue(headers, rt)) {
			matched = append(matched, rt)
		}
	}

	if len(matched) == 0 {
		return nil, "", fmt.Errorf("%w: %s %s", ErrNoMatch, method, path)
	}

	// Stable sort: full priority ties keep registration order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Constraint().Priority(matched[j].Constraint()) < 0
	})

	best := matched[0]

	version := ""
	if v, err := semver.Parse(headerValue(headers, best)); err == nil {
		version = v.String()
	}

	return best, version, nil
}

func headerValue(headers HeaderGetter, rt *Route) string {
	if headers == nil {
		return ""
	}

	return headers.Get(rt.Constraint().HeaderName())
}

func (r *Resolver) record(method, outcome string, seconds float64) {
	if r.recorder != nil {
		r.recorder.RecordResolution(strings.ToUpper(strings.TrimSpace(method)), outcome, seconds)
	}
}

func (r *Resolver) notify(outcome, method, path, version string) {
	if r.observer == nil {
		return
	}

	switch outcome {
	case OutcomeMatched:
		if r.observer.OnResolved != nil {
			r.observer.OnResolved(method, path, version)
		}
	case OutcomeFallback:
		if r.observer.OnFallback != nil {
			r.observer.OnFallback(method, path)
		}
	case OutcomeNoMatch:
		if r.observer.OnNoMatch != nil {
			r.observer.OnNoMatch(method, path)
		}
	}
}
