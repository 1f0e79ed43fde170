// Package server hosts the HTTP surface: a Gin engine behind an h2c-enabled
// http.Server with a configurable middleware stack, graceful shutdown, health
// probes, and automatic mounting of the OpenAPI document when routes have
// registered descriptors.
//
// RespondWithError is the single error boundary: handlers return AppErrors
// and this package maps them to the flat {code, message, details} wire body,
// logging each failure exactly once.
package server
