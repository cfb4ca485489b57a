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

package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	promclient "github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// meterName identifies this instrumentation scope.
const meterName = "rivaas.dev/semroute/metrics"

// DefaultDurationBuckets are histogram boundaries for resolution
// duration in seconds. Resolution is in-memory and fast; the buckets
// cover sub-microsecond through millisecond outliers.
var DefaultDurationBuckets = []float64{
	0.0000005, 0.000001, 0.0000025, 0.000005, 0.00001,
	0.000025, 0.00005, 0.0001, 0.00025, 0.001, 0.01,
}

// Provider represents the available metrics providers.
type Provider string

const (
	// PrometheusProvider uses the Prometheus exporter (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider uses the OTLP HTTP exporter.
	OTLPProvider Provider = "otlp"
	// StdoutProvider uses the stdout exporter (development/testing).
	StdoutProvider Provider = "stdout"
)

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., exporter failure).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event is an internal operational event from the metrics package.
type Event struct {
	Message string
	Args    []any // slog-style key-value pairs
	Type    EventType
}

// EventHandler processes internal operational events.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler logging to the given
// slog.Logger, or a no-op handler when logger is nil.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

// Recorder records route-resolution metrics through OpenTelemetry.
// It implements semroute.MetricsRecorder. All methods are safe for
// concurrent use.
type Recorder struct {
	meter              metric.Meter
	meterProvider      metric.MeterProvider
	sdkProvider        *sdkmetric.MeterProvider // nil with a custom provider
	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler
	eventHandler       EventHandler

	resolutionCount    metric.Int64Counter
	resolutionDuration metric.Float64Histogram
	routesRegistered   metric.Int64UpDownCounter

	serviceNameAttr    attribute.KeyValue
	serviceVersionAttr attribute.KeyValue

	durationBuckets []float64
	exportInterval  time.Duration

	serviceName    string
	serviceVersion string
	otlpEndpoint   string

	provider       Provider
	registerGlobal bool
	customProvider bool
}

// New creates a Recorder with the given options.
// Returns an error if the provider fails to initialize.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		provider:        PrometheusProvider,
		serviceName:     "semroute",
		serviceVersion:  "0.1.0",
		exportInterval:  30 * time.Second,
		durationBuckets: DefaultDurationBuckets,
		eventHandler:    func(Event) {},
	}

	for _, opt := range opts {
		opt(r)
	}

	r.serviceNameAttr = attribute.String("service.name", r.serviceName)
	r.serviceVersionAttr = attribute.String("service.version", r.serviceVersion)

	if err := r.initializeProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// initializeMetrics creates the instruments on the configured meter.
func (r *Recorder) initializeMetrics() error {
	var err error

	r.resolutionCount, err = r.meter.Int64Counter(
		"semroute_resolutions_total",
		metric.WithDescription("Total route resolutions by outcome"),
	)
	if err != nil {
		return fmt.Errorf("failed to create resolution counter: %w", err)
	}

	r.resolutionDuration, err = r.meter.Float64Histogram(
		"semroute_resolution_duration_seconds",
		metric.WithDescription("Route resolution duration in seconds"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	)
	if err != nil {
		return fmt.Errorf("failed to create resolution duration histogram: %w", err)
	}

	r.routesRegistered, err = r.meter.Int64UpDownCounter(
		"semroute_routes_registered",
		metric.WithDescription("Number of currently registered routes"),
	)
	if err != nil {
		return fmt.Errorf("failed to create routes gauge: %w", err)
	}

	return nil
}

// RecordResolution records one resolution measurement.
// outcome is one of the semroute.Outcome* constants.
func (r *Recorder) RecordResolution(method, outcome string, seconds float64) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.String("http.method", method),
		attribute.String("outcome", outcome),
	)

	r.resolutionCount.Add(ctx, 1, attrs)
	r.resolutionDuration.Record(ctx, seconds, attrs)
}

// RecordRoutesRegistered adjusts the registered-route gauge; pass the
// delta (positive on registration, negative on table swap shrink).
func (r *Recorder) RecordRoutesRegistered(delta int64) {
	r.routesRegistered.Add(context.Background(), delta, metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
	))
}

// Handler returns the Prometheus scrape handler, or nil when the
// recorder does not use the Prometheus provider.
func (r *Recorder) Handler() http.Handler {
	return r.prometheusHandler
}

// MeterProvider returns the meter provider in use, for wiring other
// instrumentation onto the same pipeline.
func (r *Recorder) MeterProvider() metric.MeterProvider {
	return r.meterProvider
}

// Shutdown flushes and stops the SDK meter provider.
// It is a no-op with a custom user-supplied provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.sdkProvider == nil {
		return nil
	}

	if err := r.sdkProvider.Shutdown(ctx); err != nil {
		r.emit(EventError, "failed to shut down meter provider", "error", err)

		return fmt.Errorf("meter provider shutdown: %w", err)
	}

	return nil
}

func (r *Recorder) emit(typ EventType, msg string, args ...any) {
	if r.eventHandler != nil {
		r.eventHandler(Event{Type: typ, Message: msg, Args: args})
	}
}
