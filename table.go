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
	"strings"
	"sync"

	"rivaas.dev/semroute/constraint"
)

// routeKey identifies the candidate set for one method and path.
type routeKey struct {
	method string
	path   string
}

// Route is one registered handler with its declared version constraints.
// Routes are immutable once registered.
type Route struct {
	handler   http.Handler
	group     *constraint.Constraint // class-level declaration, may be nil
	own       *constraint.Constraint // method-level declaration, may be nil
	effective *constraint.Constraint // own if set, else group, else unconstrained
	method    string
	path      string
}

// Method returns the route's HTTP method, uppercased.
func (rt *Route) Method() string { return rt.method }

// Path returns the registered path.
func (rt *Route) Path() string { return rt.path }

// Handler returns the registered handler.
func (rt *Route) Handler() http.Handler { return rt.handler }

// Constraint returns the effective constraint: the method-level one if
// declared, otherwise the group-level one, otherwise unconstrained.
func (rt *Route) Constraint() *constraint.Constraint { return rt.effective }

// RouteOption configures a route during registration.
type RouteOption func(*Route) error

// WithConstraint declares the route's method-level constraint.
// When a group-level constraint is also present, this one replaces it
// outright.
func WithConstraint(c *constraint.Constraint) RouteOption {
	return func(rt *Route) error {
		if c == nil {
			return ErrNilConstraint
		}
		rt.own = c

		return nil
	}
}

// WithGroupConstraint declares the route's class/group-level constraint.
// It applies only when the route has no method-level constraint.
func WithGroupConstraint(c *constraint.Constraint) RouteOption {
	return func(rt *Route) error {
		if c == nil {
			return ErrNilConstraint
		}
		rt.group = c

		return nil
	}
}

// Table collects routes during the single-writer initialization phase.
// Registration is synchronized; the resolver never reads a Table
// directly, only immutable snapshots produced from it.
type Table struct {
	candidates map[routeKey][]*Route
	order      []*Route
	mu         sync.Mutex
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{candidates: make(map[routeKey][]*Route)}
}

// Add registers a route. Declared constraints were already validated by
// constraint.New, so the only failures here are structural: empty
// method or path, nil handler, nil constraint option.
//
// Several routes may share one method and path with different
// constraints; they become the candidate set the resolver picks from.
func (t *Table) Add(method, path string, h http.Handler, opts ...RouteOption) (*Route, error) {
	if strings.TrimSpace(method) == "" {
		return nil, ErrEmptyMethod
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilHandler, method, path)
	}

	rt := &Route{
		method:  strings.ToUpper(strings.TrimSpace(method)),
		path:    path,
		handler: h,
	}

	for _, opt := range opts {
		if err := opt(rt); err != nil {
			return nil, fmt.Errorf("route %s %s: %w", method, path, err)
		}
	}

	rt.effective = effectiveConstraint(rt.group, rt.own)

	key := routeKey{method: rt.method, path: rt.path}

	t.mu.Lock()
	t.candidates[key] = append(t.candidates[key], rt)
	t.order = append(t.order, rt)
	t.mu.Unlock()

	return rt, nil
}

// MustAdd is like Add but panics on error.
// Use for static route declarations at startup.
func (t *Table) MustAdd(method, path string, h http.Handler, opts ...RouteOption) *Route {
	rt, err := t.Add(method, path, h, opts...)
	if err != nil {
		panic(err)
	}

	return rt
}

// HandleFunc registers an http.HandlerFunc; a nil fn is rejected as a
// nil handler.
func (t *Table) HandleFunc(method, path string, fn http.HandlerFunc, opts ...RouteOption) (*Route, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilHandler, method, path)
	}

	return t.Add(method, path, fn, opts...)
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []*Route {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Route, len(t.order))
	copy(out, t.order)

	return out
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.order)
}

// Group returns a registration helper whose routes share a path prefix
// and a class-level constraint. A route's own WithConstraint replaces
// the group constraint entirely.
func (t *Table) Group(prefix string, c *constraint.Constraint) *Group {
	return &Group{table: t, prefix: prefix, constraint: c}
}

// snapshot produces the immutable view the resolver dispatches against.
func (t *Table) snapshot() *tableSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := &tableSnapshot{candidates: make(map[routeKey][]*Route, len(t.candidates))}
	for key, routes := range t.candidates {
		copied := make([]*Route, len(routes))
		copy(copied, routes)
		snap.candidates[key] = copied
	}

	return snap
}

// tableSnapshot is the immutable candidate view used during resolution.
// Route pointers are shared with the table; routes themselves never
// change after registration.
type tableSnapshot struct {
	candidates map[routeKey][]*Route
}

// effectiveConstraint applies the class/method merge rule.
func effectiveConstraint(group, own *constraint.Constraint) *constraint.Constraint {
	switch {
	case group != nil:
		return group.Combine(own) // own wins when present
	case own != nil:
		return own
	default:
		return constraint.Unconstrained()
	}
}

// Group registers routes sharing a path prefix and a class-level
// constraint, mirroring a controller-level version declaration.
type Group struct {
	table      *Table
	constraint *constraint.Constraint
	prefix     string
}

// Add registers a route under the group prefix with the group's
// class-level constraint attached.
func (g *Group) Add(method, path string, h http.Handler, opts ...RouteOption) (*Route, error) {
	if g.constraint != nil {
		opts = append([]RouteOption{WithGroupConstraint(g.constraint)}, opts...)
	}

	return g.table.Add(method, g.prefix+path, h, opts...)
}

// Handle adds a route with the specified HTTP method to the group,
// panicking on registration errors. This is the generic method behind
// the HTTP verb shortcuts.
func (g *Group) Handle(method, path string, h http.Handler, opts ...RouteOption) *Route {
	rt, err := g.Add(method, path, h, opts...)
	if err != nil {
		panic(err)
	}

	return rt
}

// GET adds a GET route to the group.
func (g *Group) GET(path string, h http.Handler, opts ...RouteOption) *Route {
	return g.Handle(http.MethodGet, path, h, opts...)
}

// POST adds a POST route to the group.
func (g *Group) POST(path string, h http.Handler, opts ...RouteOption) *Route {
	return g.Handle(http.MethodPost, path, h, opts...)
}

// PUT adds a PUT route to the group.
func (g *Group) PUT(path string, h http.Handler, opts ...RouteOption) *Route {
	return g.Handle(http.MethodPut, path, h, opts...)
}

// DELETE adds a DELETE route to the group.
func (g *Group) DELETE(path string, h http.Handler, opts ...RouteOption) *Route {
	return g.Handle(http.MethodDelete, path, h, opts...)
}

// PATCH adds a PATCH route to the group.
func (g *Group) PATCH(path string, h http.Handler, opts ...RouteOption) *Route {
	return g.Handle(http.MethodPatch, path, h, opts...)
}
