// Package observability bundles the service's operational concerns:
// structured JSON logging with request-ID propagation, Prometheus metrics,
// and coordinated graceful shutdown.
package observability
