// Package middleware provides the HTTP middleware chain for the REST API:
// correlation ID propagation, request/response logging, the operational kill
// switch and Prometheus instrumentation.
package middleware
