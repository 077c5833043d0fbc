package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestMetricsProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestMetricsProvider(t, ctx)

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 50*time.Millisecond)
}

func TestMetrics_RecordTasksOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestMetricsProvider(t, ctx)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordTasksOperation(ctx, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordTasksOperation(ctx, "insert", StatusError, 500*time.Millisecond)
	metrics.RecordTasksOperation(ctx, "patch", StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestMetricsProvider(t, ctx)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "list_tasks", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "create_task", StatusError, 500*time.Millisecond)
}

func TestMetrics_NoOp_WhenDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil even when disabled")
	}

	// Recording on a disabled provider should be a no-op, not a panic
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordTasksOperation(ctx, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "list_tasks", StatusSuccess, 100*time.Millisecond)
}
