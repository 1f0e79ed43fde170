// Package logger provides structured logging for dykit services on top of
// zerolog. It exposes a small Logger wrapper with component tagging, a global
// logger with package-level convenience functions, and env-driven setup.
package logger
