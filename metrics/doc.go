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

// Package metrics provides OpenTelemetry metrics for route resolution.
//
// The Recorder implements semroute.MetricsRecorder and records, per
// resolution: a count by outcome (matched, fallback, no_match) and HTTP
// method, and a duration histogram.
//
// # Usage
//
// Attach a recorder to the resolver:
//
//	rec, err := metrics.New(
//	    metrics.WithServiceName("orders-api"),
//	)
//	if err != nil {
//	    // handle
//	}
//	defer rec.Shutdown(context.Background())
//
//	r := semroute.MustNew(
//	    semroute.WithTable(tbl),
//	    semroute.WithRecorder(rec),
//	)
//
//	// Expose Prometheus metrics (default provider):
//	http.Handle("/metrics", rec.Handler())
//
// # Providers
//
// Prometheus is the default and uses a dedicated registry, so multiple
// Recorder instances coexist in one process without collisions. OTLP
// HTTP and stdout providers are available via WithOTLP and WithStdout;
// a fully custom meter provider via WithMeterProvider.
//
// By default the package does not touch the global OpenTelemetry meter
// provider; use WithGlobalMeterProvider to opt in.
package metrics
