// Package server provides the MCP server context, health checks, and the
// dedicated metrics listener for tasklight.
//
// # Key Components
//
// ServerContext holds the operation dispatcher and the optional metrics
// recorder and audit logger shared by all tool handlers, plus the shutdown
// state the health checks report on.
//
// HealthChecker serves /healthz and /readyz for Kubernetes-style probes
// when the server runs over the streamable HTTP transport.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, keeping
// operational metrics off the main application listener.
package server
