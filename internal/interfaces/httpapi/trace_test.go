package httpapi

import (
	"context"
	"testing"
)

func TestIsHandlerSpan(t *testing.T) {
	tests := map[string]bool{
		"httpapi.Handler.ListClubs": true,
		"httpapi.Handler.":          false,
		"httpapi.RequestLogging":    false,
		"httpapi.writeError":        false,
	}
	for name, want := range tests {
		if got := isHandlerSpan(name); got != want {
			t.Fatalf("isHandlerSpan(%q)=%v want=%v", name, got, want)
		}
	}
}

func TestStartSpan_WithoutParentReturnsSameContext(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.ListClubs")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected the untouched context when no span is active")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected a no-op span")
	}
}

func TestTracedPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: "/health", want: false},
		{path: "/livez", want: false},
		{path: " /READYZ ", want: false},
		{path: "/v1/clubs", want: true},
		{path: "/v1/fixtures/filter", want: true},
		{path: "/", want: true},
		{path: "/docs", want: true},
	}
	for _, tt := range tests {
		if got := tracedPath(tt.path); got != tt.want {
			t.Fatalf("tracedPath(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
