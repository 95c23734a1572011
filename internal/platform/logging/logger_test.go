package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := sonic.UnmarshalString(line, &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestLogger_LevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("service", "tt-league")

	logger.Debug("hidden")
	logger.Info("fixture saved", "fixture_id", 70, "error", errors.New("boom"), "dangling")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %s", len(entries), buf.String())
	}
	e := entries[0]
	if e["msg"] != "fixture saved" || e["level"] != "INFO" {
		t.Fatalf("unexpected entry: %v", e)
	}
	if e["service"] != "tt-league" {
		t.Fatalf("expected inherited service field, got %v", e["service"])
	}
	if e["fixture_id"] != float64(70) {
		t.Fatalf("expected fixture_id=70, got %v", e["fixture_id"])
	}
	if e["error"] != "boom" {
		t.Fatalf("expected error=boom, got %v", e["error"])
	}
	if v, ok := e["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key with null value, got %v (present=%v)", v, ok)
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelDebug)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.WarnContext(ctx, "with span")
	logger.WarnContext(context.Background(), "without span")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["trace_id"] != sc.TraceID().String() || entries[0]["span_id"] != sc.SpanID().String() {
		t.Fatalf("missing trace ids: %v", entries[0])
	}
	if _, ok := entries[1]["trace_id"]; ok {
		t.Fatalf("unexpected trace id without span: %v", entries[1])
	}
}

func TestDefault_NilLoggerAndReset(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(NewJSONWriter(&buf, LevelInfo))
	t.Cleanup(func() { SetDefault(nil) })

	var nilLogger *Logger
	nilLogger.Error("routed to default")
	if !strings.Contains(buf.String(), "routed to default") {
		t.Fatalf("nil logger did not use default: %q", buf.String())
	}
	if err := nilLogger.Sync(); err != nil {
		t.Fatalf("nil Sync: %v", err)
	}

	SetDefault(nil)
	if Default() == nil {
		t.Fatal("default must never be nil")
	}
}
