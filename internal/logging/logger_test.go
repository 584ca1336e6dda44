package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromContext_AddsScanID(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, "info", "json")

	id := NewScanID()
	ctx := ContextWithScanID(context.Background(), id)
	WithFields(ctx, "path", "fit.csv").Info("scan started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["scan_id"] != id {
		t.Errorf("scan_id = %v, want %q", entry["scan_id"], id)
	}
	if entry["path"] != "fit.csv" {
		t.Errorf("path = %v, want %q", entry["path"], "fit.csv")
	}
}

func TestFromContext_NoScanID(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, "debug", "text")

	FromContext(context.Background()).Debug("hello")
	if strings.Contains(buf.String(), "scan_id") {
		t.Errorf("unexpected scan_id in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("debug message missing from %q", buf.String())
	}
}

func TestSetup_LevelFilters(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, "warn", "text")

	slog.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
}

func TestNewScanID_Unique(t *testing.T) {
	a, b := NewScanID(), NewScanID()
	if a == "" || a == b {
		t.Errorf("NewScanID() returned %q and %q", a, b)
	}
}
