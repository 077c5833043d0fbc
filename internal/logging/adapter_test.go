package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSlogAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	tests := []struct {
		name  string
		log   func(msg string, args ...interface{})
		level string
	}{
		{"debug", adapter.Debug, "DEBUG"},
		{"info", adapter.Info, "INFO"},
		{"warn", adapter.Warn, "WARN"},
		{"error", adapter.Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log("message", KeyTaskID, "t1")

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log entry: %v", err)
			}
			if entry["level"] != tt.level {
				t.Errorf("expected level %q, got %v", tt.level, entry["level"])
			}
			if entry[KeyTaskID] != "t1" {
				t.Errorf("expected task_id 't1', got %v", entry[KeyTaskID])
			}
		})
	}
}

func TestNewSlogAdapter_NilDefaultsToSlogDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	if adapter.Logger() == nil {
		t.Error("expected non-nil underlying logger")
	}
}

func TestNopLogger(t *testing.T) {
	// Must not panic, regardless of arguments.
	nop := NewNopLogger()
	nop.Debug("msg")
	nop.Info("msg", KeyError, "x")
	nop.Warn("msg", 1, 2, 3)
	nop.Error("msg")
}
