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

import "net/http"

// ResponseHeader is the response header carrying the resolved version
// when WithResponseHeader is enabled.
const ResponseHeader = "X-API-Version"

// Mux adapts a Resolver to http.Handler for standalone serving.
// For mounting inside a host router, call Resolver.Resolve directly
// instead.
type Mux struct {
	resolver   *Resolver
	notFound   http.Handler
	echoHeader bool
}

// MuxOption configures a Mux during NewMux.
type MuxOption func(*Mux) error

// WithNotFoundHandler replaces the default http.NotFound response for
// requests no route matches.
func WithNotFoundHandler(h http.Handler) MuxOption {
	return func(m *Mux) error {
		if h == nil {
			return ErrNilHandler
		}
		m.notFound = h

		return nil
	}
}

// WithResponseHeader echoes the resolved version in the X-API-Version
// response header on matched requests.
func WithResponseHeader() MuxOption {
	return func(m *Mux) error {
		m.echoHeader = true

		return nil
	}
}

// NewMux wraps a resolver as an http.Handler.
func NewMux(r *Resolver, opts ...MuxOption) (*Mux, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	m := &Mux{resolver: r, notFound: http.NotFoundHandler()}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNewMux is like NewMux but panics on error.
func MustNewMux(r *Resolver, opts ...MuxOption) *Mux {
	m, err := NewMux(r, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// ServeHTTP resolves the request and dispatches to the winning handler,
// or serves the not-found handler when no route matches.
func (m *Mux) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rt, version, err := m.resolver.ResolveRoute(req.Method, req.URL.Path, req.Header)
	if err != nil {
		m.notFound.ServeHTTP(w, req)

		return
	}

	if m.echoHeader && version != "" {
		w.Header().Set(ResponseHeader, version)
	}

	rt.Handler().ServeHTTP(w, req)
}
