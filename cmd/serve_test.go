package cmd

import (
	"strings"
	"testing"
)

func TestValidateTransport(t *testing.T) {
	tests := []struct {
		name        string
		transport   string
		expectError bool
	}{
		{
			name:      "stdio transport",
			transport: TransportStdio,
		},
		{
			name:      "streamable-http transport",
			transport: TransportStreamableHTTP,
		},
		{
			name:        "sse transport unsupported",
			transport:   "sse",
			expectError: true,
		},
		{
			name:        "empty transport",
			transport:   "",
			expectError: true,
		},
		{
			name:        "unknown transport",
			transport:   "websocket",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransport(tt.transport)
			if tt.expectError {
				if err == nil {
					t.Errorf("validateTransport(%q) expected error, got nil", tt.transport)
				} else if !strings.Contains(err.Error(), "unsupported transport") {
					t.Errorf("unexpected error: %v", err)
				}
			} else if err != nil {
				t.Errorf("validateTransport(%q) unexpected error: %v", tt.transport, err)
			}
		})
	}
}

func TestRunServe_InvalidTransport(t *testing.T) {
	err := runServe("sse", false, ":8080", "", MetricsConfig{})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "unsupported transport") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()

	for _, flag := range []string{"debug", "transport", "http-addr", "env-file", "metrics-enabled", "metrics-addr"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag %q to be registered", flag)
		}
	}

	if got := cmd.Flags().Lookup("transport").DefValue; got != TransportStdio {
		t.Errorf("expected default transport %q, got %q", TransportStdio, got)
	}
}
