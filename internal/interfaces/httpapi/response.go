package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "tt-league"
)

// envelope is the body of every JSON response: data on success, error
// otherwise, and meta only for HTMX fragments.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Meta       *meta      `json:"meta,omitempty"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type meta struct {
	Partial bool `json:"partial"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

// errorKind is how one usecase sentinel is reported over HTTP.
type errorKind struct {
	sentinel error
	code     int
	reason   string
	status   string
}

var internalKind = errorKind{code: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

// errorKinds is checked in order; the first sentinel matched wins.
var errorKinds = []errorKind{
	{usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
	{usecase.ErrNotFound, http.StatusNotFound, "notFound", "NOT_FOUND"},
	{usecase.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"},
	{usecase.ErrForbidden, http.StatusForbidden, "forbidden", "PERMISSION_DENIED"},
	{usecase.ErrConflict, http.StatusConflict, "conflict", "ALREADY_EXISTS"},
	{usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"},
}

func classify(err error) errorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.sentinel) {
			return k
		}
	}
	return internalKind
}

// fallbackBody is written when the real payload cannot be encoded.
var fallbackBody = []byte(`{"apiVersion":"` + apiVersion + `","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}` + "\n")

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(fallbackBody)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	body := envelope{APIVersion: apiVersion, Data: data}
	if isPartial(ctx) {
		body.Meta = &meta{Partial: true}
	}
	writeJSON(ctx, w, status, body)
}

// writeOutcome answers admin actions. A skipped action is still a 200: the
// notices carry the warning and the redirect hint.
func writeOutcome(ctx context.Context, w http.ResponseWriter, outcome usecase.Outcome, data any) {
	writeSuccess(ctx, w, http.StatusOK, outcomeDTO{
		Done:     outcome.Done,
		Notices:  outcome.Notices,
		Redirect: outcome.Redirect,
		Result:   data,
	})
}

// writeError reports err with the status of its sentinel. Unclassified
// errors are hidden behind a generic 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := classify(err)
	if kind.code == http.StatusInternalServerError {
		trace.SpanFromContext(ctx).RecordError(err)
		writeInternalError(ctx, w)
		return
	}
	writeJSON(ctx, w, kind.code, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    kind.code,
			Message: err.Error(),
			Status:  kind.status,
			Errors:  errorItems(err, kind.reason),
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	const msg = "internal server error"
	writeJSON(ctx, w, internalKind.code, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    internalKind.code,
			Message: msg,
			Status:  internalKind.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: internalKind.reason, Message: msg}},
		},
	})
}

// errorItems emits one item per validation message, located at its field.
// Whole-object messages carry no location.
func errorItems(err error, reason string) []errorItem {
	verrs, ok := validation.From(err)
	if !ok {
		return []errorItem{{Domain: errorDomain, Reason: reason, Message: err.Error()}}
	}

	var items []errorItem
	for _, field := range verrs.Fields() {
		for _, msg := range verrs[field] {
			item := errorItem{Domain: errorDomain, Reason: reason, Message: msg}
			if field != validation.ObjectKey {
				item.Location, item.LocationType = field, "field"
			}
			items = append(items, item)
		}
	}
	return items
}
