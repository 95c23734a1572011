package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/tt-league/internal/domain/user"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
	"github.com/riskibarqy/tt-league/internal/usecase"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if called != nil {
			*called = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "configured origin",
			allowed:    []string{" https://league.example.org ", ""},
			method:     http.MethodGet,
			origin:     "https://league.example.org",
			wantOrigin: "https://league.example.org",
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "unconfigured origin",
			allowed:    []string{"https://allowed.example.com"},
			method:     http.MethodGet,
			origin:     "https://not-allowed.example.com",
			wantOrigin: "",
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "wildcard preflight",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			origin:     "https://league.example.org",
			wantOrigin: "*",
			wantStatus: http.StatusNoContent,
			wantCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CORS(tt.allowed, okHandler(&called))

			req := httptest.NewRequest(tt.method, "/v1/fixtures/filter", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
				req.Header.Set("Access-Control-Request-Headers", "HX-Request")
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Fatalf("handler called=%v want=%v", called, tt.wantCalled)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin=%q want=%q", got, tt.wantOrigin)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer   abc ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer   ", wantErr: true},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", tt.header)

		got, err := bearerToken(req)
		if tt.wantErr {
			if !errors.Is(err, usecase.ErrUnauthorized) {
				t.Fatalf("header %q: expected ErrUnauthorized, got %v", tt.header, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("header %q: got %q, %v", tt.header, got, err)
		}
	}
}

func TestRequireLeagueAdmin(t *testing.T) {
	verifier := staticVerifier{
		"member":      {UserID: "user-9"},
		"admin-token": {UserID: "admin", IsLeagueAdmin: true},
	}

	tests := []struct {
		token string
		want  int
	}{
		{token: "", want: http.StatusUnauthorized},
		{token: "unknown", want: http.StatusUnauthorized},
		{token: "member", want: http.StatusForbidden},
		{token: "admin-token", want: http.StatusOK},
	}
	for _, tt := range tests {
		var seen user.Principal
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = principalFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/seasons", nil)
		if tt.token != "" {
			req.Header.Set("Authorization", "Bearer "+tt.token)
		}
		rec := httptest.NewRecorder()
		RequireLeagueAdmin(verifier, next).ServeHTTP(rec, req)

		if rec.Code != tt.want {
			t.Fatalf("token %q: status=%d want=%d", tt.token, rec.Code, tt.want)
		}
		if tt.want == http.StatusOK && seen.UserID != "admin" {
			t.Fatalf("expected principal in context, got %+v", seen)
		}
	}
}

func TestRequestLogging_RecordsStatusAndBytes(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONWriter(&buf, logging.LevelInfo)

	handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/clubs", nil))

	line := buf.String()
	for _, want := range []string{`"status":418`, `"bytes":15`, `"path":"/v1/clubs"`, `"level":"INFO"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %s", want, line)
		}
	}
}

func TestPartial_FlagsHTMXRequests(t *testing.T) {
	var partial bool
	handler := Partial(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		partial = isPartial(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/fixtures/filter", nil)
	req.Header.Set("HX-Request", "TRUE")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !partial {
		t.Fatal("expected HX-Request to mark the request partial")
	}

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/fixtures", nil))
	if partial {
		t.Fatal("expected plain request to stay full")
	}
}

func TestChain_FirstMiddlewareRunsOutermost(t *testing.T) {
	var order []string
	tag := func(name string) middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }),
		tag("tracing"), tag("logging"), tag("recover"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.Join(order, ","); got != "tracing,logging,recover,handler" {
		t.Fatalf("unexpected order: %s", got)
	}
}

func TestRecoverPanic_Writes500(t *testing.T) {
	h := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("scorecard missing")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/results", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := errorStatus(t, rec); got != "INTERNAL" {
		t.Fatalf("expected INTERNAL status, got %q", got)
	}
}
