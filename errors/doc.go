// Package errors provides unified error handling for dykit services.
// It defines a structured application error type with machine-readable
// error codes and HTTP status mapping. Every error that reaches the
// request boundary is rendered as a single flat JSON body:
//
//	{"code": "NOT_FOUND", "message": "User not found"}
//
// with an optional "details" string for additional context.
package errors
