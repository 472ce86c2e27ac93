package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/treyhoover/svgs/internal/services"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level, false))

	logger.Info("annotated item",
		String(FieldComponent, "runner"),
		String(FieldItem, "icons/arrow.svg"),
		Int("entries", 3),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO runner: annotated item") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "item=icons/arrow.svg") {
		t.Fatalf("missing item field: %q", line)
	}
	if !strings.Contains(line, "entries=3") {
		t.Fatalf("missing entries field: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level, false))

	logger.Info("described", String("description", "A blue arrow pointing right."))

	if !strings.Contains(buf.String(), `description="A blue arrow pointing right."`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, level, false))

	logger.Info("batch complete", Int("failed", 1))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode JSON log line: %v", err)
	}
	if decoded["msg"] != "batch complete" {
		t.Fatalf("msg = %v", decoded["msg"])
	}
	if decoded["level"] != "info" {
		t.Fatalf("level = %v", decoded["level"])
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatal("missing ts field")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAttachesItemFields(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level, false))

	ctx := services.WithItem(context.Background(), "shapes/box.svg")
	ctx = services.WithCategory(ctx, "shapes")
	ctx = services.WithRunID(ctx, "run-42")

	WithContext(ctx, logger).Info("processing")

	line := buf.String()
	for _, want := range []string{"item=shapes/box.svg", "category=shapes", "run_id=run-42"} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %q", want, line)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Error("dropped")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should be disabled")
	}
}
