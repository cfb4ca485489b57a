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

// Option configures a Resolver during New.
type Option func(*Resolver) error

// WithTable installs the initial route table.
// Equivalent to calling SetTable right after New.
func WithTable(t *Table) Option {
	return func(r *Resolver) error {
		return r.SetTable(t)
	}
}

// WithRecorder attaches a metrics recorder that receives one
// measurement per resolution.
func WithRecorder(rec MetricsRecorder) Option {
	return func(r *Resolver) error {
		r.recorder = rec

		return nil
	}
}

// ObserverOption configures the resolution observer.
type ObserverOption func(*Observer)

// WithObserver configures observability hooks for resolution events.
//
// Example:
//
//	semroute.WithObserver(
//	    semroute.OnResolved(func(method, path, version string) {
//	        log.Debug("resolved", "version", version)
//	    }),
//	    semroute.OnNoMatch(func(method, path string) {
//	        log.Warn("unroutable", "method", method, "path", path)
//	    }),
//	)
func WithObserver(opts ...ObserverOption) Option {
	return func(r *Resolver) error {
		obs := &Observer{}
		for _, opt := range opts {
			opt(obs)
		}
		r.observer = obs

		return nil
	}
}

// OnResolved sets the callback for a constrained route winning dispatch.
func OnResolved(fn func(method, path, version string)) ObserverOption {
	return func(o *Observer) {
		o.OnResolved = fn
	}
}

// OnFallback sets the callback for the unconstrained default winning.
func OnFallback(fn func(method, path string)) ObserverOption {
	return func(o *Observer) {
		o.OnFallback = fn
	}
}

// OnNoMatch sets the callback for resolution finding no candidate.
func OnNoMatch(fn func(method, path string)) ObserverOption {
	return func(o *Observer) {
		o.OnNoMatch = fn
	}
}
