// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, context-carried loggers and request IDs, and a CI-aware
// handler that annotates records with build metadata.
package logger
