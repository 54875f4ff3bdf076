package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelError, "ERROR"},
		{slog.LevelWarn, "WARN "},
		{slog.LevelInfo, "INFO "},
		{slog.LevelDebug, "DEBUG"},
	}

	for _, tt := range tests {
		if got := levelTag(tt.level); got != tt.expected {
			t.Errorf("levelTag(%v) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelInfo}

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("Enabled(debug) = true at info level")
	}

	r := slog.NewRecord(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC), slog.LevelInfo, "decoded", 0)
	r.AddAttrs(slog.Int("bytes", 3), slog.String("note", "two words"))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	line := buf.String()
	for _, want := range []string{"12:00:00", "INFO ", "decoded", "bytes=3", `note="two words"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	var h slog.Handler = &consoleHandler{w: &buf, level: slog.LevelDebug}
	h = h.WithAttrs([]slog.Attr{slog.String("width", "32")})

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "encoded", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "width=32") {
		t.Errorf("log line %q missing pre-attached attr", buf.String())
	}
}
