// Package api exposes session resolution and the session's user record over
// HTTP. Every /v1 request passes through the session middleware first, so
// handlers always have an identifier in their context.
package api
