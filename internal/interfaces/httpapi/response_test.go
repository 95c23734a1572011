package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
	if _, ok := body["meta"]; ok {
		t.Fatalf("did not expect meta on a full page response")
	}
}

func TestWriteSuccess_PartialMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(withPartial(context.Background()), rec, http.StatusOK, []string{})

	body := decodeEnvelope(t, rec)
	meta, ok := body["meta"].(map[string]any)
	if !ok {
		t.Fatalf("expected meta object, got %v", body["meta"])
	}
	if partial, _ := meta["partial"].(bool); !partial {
		t.Fatalf("expected meta.partial=true, got %v", meta["partial"])
	}
}

func TestWriteOutcome_CarriesNotices(t *testing.T) {
	rec := httptest.NewRecorder()
	outcome := usecase.Outcome{
		Notices:  []usecase.Notice{{Level: usecase.NoticeWarning, Message: "Nothing to delete."}},
		Redirect: "/club-admin",
	}
	writeOutcome(context.Background(), rec, outcome, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, ok := decodeEnvelope(t, rec)["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object")
	}
	if done, _ := data["done"].(bool); done {
		t.Fatalf("expected done=false")
	}
	if got, _ := data["redirect"].(string); got != "/club-admin" {
		t.Fatalf("expected redirect /club-admin, got %v", data["redirect"])
	}
	notices, _ := data["notices"].([]any)
	if len(notices) != 1 {
		t.Fatalf("expected one notice, got %v", data["notices"])
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "not found", err: fmt.Errorf("%w: club", usecase.ErrNotFound), wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantCode: http.StatusUnauthorized, wantStatus: "UNAUTHENTICATED"},
		{name: "forbidden", err: fmt.Errorf("%w: not your club", usecase.ErrForbidden), wantCode: http.StatusForbidden, wantStatus: "PERMISSION_DENIED"},
		{name: "conflict", err: fmt.Errorf("%w: duplicate slug", usecase.ErrConflict), wantCode: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, wantCode: http.StatusServiceUnavailable, wantStatus: "UNAVAILABLE"},
		{name: "unknown", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError, wantStatus: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			errorObj, _ := decodeEnvelope(t, rec)["error"].(map[string]any)
			if got, _ := errorObj["status"].(string); got != tt.wantStatus {
				t.Fatalf("expected error status %s, got %v", tt.wantStatus, errorObj["status"])
			}
		})
	}
}

func TestWriteError_ValidationLocations(t *testing.T) {
	verrs := validation.New()
	verrs.Add("start_date", "Enter a valid date.")
	verrs.AddObject("Season must end after it starts.")

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, verrs.Err()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	errorObj, _ := decodeEnvelope(t, rec)["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected two error items, got %v", errorObj["errors"])
	}

	first, _ := items[0].(map[string]any)
	if _, ok := first["location"]; ok {
		t.Fatalf("expected object-level message first without location, got %v", first)
	}
	second, _ := items[1].(map[string]any)
	if got, _ := second["location"].(string); got != "start_date" {
		t.Fatalf("expected location start_date, got %v", second["location"])
	}
	if got, _ := second["locationType"].(string); got != "field" {
		t.Fatalf("expected locationType field, got %v", second["locationType"])
	}
}

func TestWriteJSON_EncodeFailureBecomes500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(context.Background(), rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"INTERNAL"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestWriteJSON_SetsContentLength(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(context.Background(), rec, http.StatusCreated, map[string]string{"name": "Riverside TTC"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got, want := rec.Header().Get("Content-Length"), strconv.Itoa(rec.Body.Len()); got != want {
		t.Fatalf("content length %s, body length %s", got, want)
	}
}
