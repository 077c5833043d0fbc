// Package logging provides structured logging utilities for tasklight.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//   - Token sanitization for credential-adjacent logging
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "tasks.list")
//	logger.Info("listing tasks",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("token loaded",
//	    slog.String("token", logging.SanitizeToken(token)))
package logging
