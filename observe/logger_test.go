package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// parseLine parses the first JSON log line from the buffer.
func parseLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}
	return entry
}

// TestLogger_EmitsStructuredJSON verifies level, message, and fields.
func TestLogger_EmitsStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "login allowed",
		Field{Key: "flow", Value: "login"},
		Field{Key: "subject", Value: "alice"},
	)

	entry := parseLine(t, &buf)
	if v, _ := entry["level"].(string); v != "info" {
		t.Errorf("expected level='info', got %v", entry["level"])
	}
	if v, _ := entry["message"].(string); v != "login allowed" {
		t.Errorf("expected message='login allowed', got %v", entry["message"])
	}
	if v, _ := entry["flow"].(string); v != "login" {
		t.Errorf("expected flow='login', got %v", entry["flow"])
	}
	if v, _ := entry["subject"].(string); v != "alice" {
		t.Errorf("expected subject='alice', got %v", entry["subject"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected a time field")
	}
}

// TestLogger_ErrorLevel verifies error entries carry the error field.
func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Error(context.Background(), "login rejected",
		Field{Key: "error", Value: "invalid credentials"},
	)

	entry := parseLine(t, &buf)
	if v, _ := entry["level"].(string); v != "error" {
		t.Errorf("expected level='error', got %v", entry["level"])
	}
	if v, _ := entry["error"].(string); v != "invalid credentials" {
		t.Errorf("expected error='invalid credentials', got %v", entry["error"])
	}
}

// TestLogger_LevelFiltering verifies entries below the level are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "dropped debug")
	logger.Info(context.Background(), "dropped info")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got: %q", buf.String())
	}

	logger.Warn(context.Background(), "kept warn")
	if !strings.Contains(buf.String(), "kept warn") {
		t.Errorf("expected warn entry, got: %q", buf.String())
	}
}

// TestLogger_RedactsSensitiveFields verifies credentials never reach the stream.
func TestLogger_RedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "register",
		Field{Key: "password", Value: "hunter2"},
		Field{Key: "access_token", Value: "eyJ0eXAi.payload.sig"},
		Field{Key: "username", Value: "alice"},
	)

	output := buf.String()
	if strings.Contains(output, "hunter2") {
		t.Error("plaintext password leaked into log output")
	}
	if strings.Contains(output, "eyJ0eXAi") {
		t.Error("access token leaked into log output")
	}

	entry := parseLine(t, &buf)
	if v, _ := entry["password"].(string); v != "[REDACTED]" {
		t.Errorf("expected password='[REDACTED]', got %v", entry["password"])
	}
	if v, _ := entry["access_token"].(string); v != "[REDACTED]" {
		t.Errorf("expected access_token='[REDACTED]', got %v", entry["access_token"])
	}
	if v, _ := entry["username"].(string); v != "alice" {
		t.Errorf("expected username unredacted, got %v", entry["username"])
	}
}

// TestLogger_With verifies bound fields appear on every entry.
func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).With(
		Field{Key: "flow", Value: "login"},
	)

	logger.Info(context.Background(), "first")
	logger.Info(context.Background(), "second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d: parse error: %v", i, err)
		}
		if v, _ := entry["flow"].(string); v != "login" {
			t.Errorf("line %d: expected flow='login', got %v", i, entry["flow"])
		}
	}
}

// TestLogger_WithRedactsSensitiveFields verifies bound fields are redacted too.
func TestLogger_WithRedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).With(
		Field{Key: "token", Value: "super-secret"},
	)

	logger.Info(context.Background(), "bound")
	if strings.Contains(buf.String(), "super-secret") {
		t.Error("bound token leaked into log output")
	}
}

// TestNopLogger_Silent verifies the nop logger emits nothing and never panics.
func TestNopLogger_Silent(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug(context.Background(), "x")
	logger.Info(context.Background(), "x")
	logger.Warn(context.Background(), "x")
	logger.Error(context.Background(), "x", Field{Key: "error", Value: "boom"})
	if logger.With(Field{Key: "flow", Value: "login"}) == nil {
		t.Fatal("With() on nop logger returned nil")
	}
}

// TestParseLogLevel verifies level parsing with fallback.
func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"},
		{"", "info"},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input).String(); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
