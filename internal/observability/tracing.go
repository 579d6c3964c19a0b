// Package observability wires the OpenTelemetry tracer used by the HTTP layer.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracer is the application tracer. Defaults to a no-op tracer until
// InitTracing replaces it.
var Tracer trace.Tracer = noop.NewTracerProvider().Tracer("plume")

// InitTracing configures the global tracer provider. With an OTLP endpoint it
// exports over OTLP/HTTP; otherwise spans go to stdout (development only).
// The returned shutdown function flushes pending spans.
func InitTracing(ctx context.Context, otlpEndpoint string, production bool) (func(context.Context) error, error) {
	var exporter sdktrace.SpanExporter
	var err error

	if otlpEndpoint != "" {
		exporter, err = otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(otlpEndpoint))
	} else if !production {
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	} else {
		// Production without an OTLP endpoint: tracing stays disabled.
		return func(context.Context) error { return nil }, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create span exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	Tracer = provider.Tracer("plume")

	return provider.Shutdown, nil
}
