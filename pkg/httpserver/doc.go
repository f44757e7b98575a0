// Package httpserver runs an http.Server with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, and provides liveness and readiness
// handlers built from named dependency checks.
package httpserver
