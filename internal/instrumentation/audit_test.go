package instrumentation

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestToolInvocation_Complete(t *testing.T) {
	ti := NewToolInvocation("list_tasks").WithOperation("list")

	time.Sleep(time.Millisecond)
	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("expected Success true")
	}
	if ti.Duration <= 0 {
		t.Errorf("expected positive duration, got %v", ti.Duration)
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("expected status %q, got %q", StatusSuccess, ti.Status())
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation("delete_task").WithOperation("delete")
	ti.CompleteWithError(errors.New("task not found"))

	if ti.Success {
		t.Error("expected Success false")
	}
	if ti.Error != "task not found" {
		t.Errorf("expected Error 'task not found', got %q", ti.Error)
	}
	if ti.Status() != StatusError {
		t.Errorf("expected status %q, got %q", StatusError, ti.Status())
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation("create_task").WithOperation("insert")
	ti.CompleteSuccess()

	attrs := ti.LogAttrs()

	found := map[string]bool{}
	for _, attr := range attrs {
		found[attr.Key] = true
	}

	for _, key := range []string{"tool", "duration", "success", "operation"} {
		if !found[key] {
			t.Errorf("expected attribute %q", key)
		}
	}
	if found["error"] {
		t.Error("did not expect error attribute on success")
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("create_task").WithOperation("insert")
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v", err)
	}

	if entry["msg"] != "tool_executed" {
		t.Errorf("expected msg 'tool_executed', got %v", entry["msg"])
	}
	if entry["tool"] != "create_task" {
		t.Errorf("expected tool 'create_task', got %v", entry["tool"])
	}
	if entry["success"] != true {
		t.Errorf("expected success true, got %v", entry["success"])
	}
}

func TestAuditLogger_LogToolInvocation_Failure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("delete_task")
	ti.CompleteWithError(errors.New("boom"))
	al.LogToolInvocation(ti)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v", err)
	}

	if entry["msg"] != "tool_failed" {
		t.Errorf("expected msg 'tool_failed', got %v", entry["msg"])
	}
	if entry["error"] != "boom" {
		t.Errorf("expected error 'boom', got %v", entry["error"])
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	al := NewAuditLogger(logger)
	al.SetEnabled(false)

	ti := NewToolInvocation("list_tasks")
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}
