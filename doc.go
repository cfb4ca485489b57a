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

// Package semroute resolves HTTP requests to handlers by semantic API
// version. Routes are registered with optional version constraints; at
// request time the resolver reads the client's version header, keeps the
// routes whose constraint admits it, and deterministically picks the
// single best match by constraint specificity, with ties broken by
// registration order.
//
// semroute is not a path router: candidates are keyed by exact method
// and path, and path-pattern matching belongs to whatever host router
// (or mux) sits in front. The resolver consumes only a narrow
// HeaderGetter interface, so it mounts inside any HTTP framework.
//
// # Registering routes
//
// Build a Table during startup, then hand it to a Resolver:
//
//	tbl := semroute.NewTable()
//	tbl.MustAdd("GET", "/orders", listOrdersV1,
//	    semroute.WithConstraint(constraint.MustNew(
//	        constraint.Min("1.0.0"),
//	        constraint.Max("2.0.0"),
//	    )),
//	)
//	tbl.MustAdd("GET", "/orders", listOrdersV3,
//	    semroute.WithConstraint(constraint.MustNew(constraint.Exact("3.0.0"))),
//	)
//	tbl.MustAdd("GET", "/orders", listOrdersDefault) // unconstrained fallback
//
//	r := semroute.MustNew(semroute.WithTable(tbl))
//
// Group-level (class) constraints cover every route in a group unless a
// route declares its own, which replaces the group's outright:
//
//	v2 := tbl.Group("/api", constraint.MustNew(constraint.Min("2.0.0")))
//	v2.GET("/orders", listOrders)                 // inherits >=2.0.0
//	v2.GET("/legacy", listLegacy,
//	    semroute.WithConstraint(oneOhOnly))        // replaces the group constraint
//
// # Resolving
//
// Resolution is a pure function over the registered snapshot; it is safe
// to call concurrently and never mutates the table:
//
//	h, err := r.Resolve(req.Method, req.URL.Path, req.Header)
//	if errors.Is(err, semroute.ErrNoMatch) {
//	    // 404-equivalent
//	}
//
// Swapping in a new table with SetTable is atomic: in-flight resolutions
// see either the old snapshot or the new one, never a mix.
//
// # Serving
//
// Mux adapts a Resolver to http.Handler for standalone use:
//
//	mux := semroute.MustNewMux(r, semroute.WithResponseHeader())
//	http.ListenAndServe(":8080", mux)
package semroute
