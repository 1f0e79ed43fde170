// Package observability provides OpenTelemetry tracing setup and the health
// types reported by the server's probe endpoints.
//
// InitTracer wires an OTLP HTTP exporter into the global tracer provider;
// spans are then created through StartSpan or the server's tracing
// middleware. Metrics are intentionally out of scope.
package observability
