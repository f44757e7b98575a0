// Package requestid tags every request with an X-Request-ID and exposes it
// to handlers and log records through the context.
package requestid
