package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/tasklight/tasklight/internal/dispatch"
	"github.com/tasklight/tasklight/internal/instrumentation"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	dispatcher  *dispatch.Dispatcher
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, dispatcher *dispatch.Dispatcher) (*ServerContext, error) {
	if dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:        shutdownCtx,
		cancel:     cancel,
		dispatcher: dispatcher,
		shutdown:   false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Dispatcher returns the operation dispatcher
func (sc *ServerContext) Dispatcher() *dispatch.Dispatcher {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.dispatcher
}

// SetMetrics sets the metrics recorder for tool instrumentation
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool invocations
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// AuditLogger returns the audit logger, or nil if not configured
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
