package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/tt-league/internal/usecase"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	q, err := fixtureQueryFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	listing, err := h.fixtureService.ListFixtures(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list fixtures failed", "season", q.SeasonSlug, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, fixtureListingToDTO(ctx, listing))
}

// FilterFixtures serves the fixture list fragment and only answers HTMX
// requests.
func (h *Handler) FilterFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FilterFixtures")
	defer span.End()

	if !isPartial(ctx) {
		writeError(ctx, w, fmt.Errorf("%w: fixture filter only serves HX-Request fragments", usecase.ErrInvalidInput))
		return
	}
	h.ListFixtures(w, r.WithContext(ctx))
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	f, err := h.fixtureService.GetFixture(ctx, fixtureID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(f))
}

func (h *Handler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	h.saveFixture(w, r, 0, http.StatusCreated)
}

func (h *Handler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.saveFixture(w, r, fixtureID, http.StatusOK)
}

func (h *Handler) saveFixture(w http.ResponseWriter, r *http.Request, fixtureID int64, status int) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveFixture")
	defer span.End()

	var req fixtureRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	f, verrs := req.toDomain(fixtureID)
	if err := invalidRequest(verrs); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.fixtureService.SaveFixture(ctx, f)
	if err != nil {
		h.logger.WarnContext(ctx, "save fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, fixtureToDTO(saved))
}

func (h *Handler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixture")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.fixtureService.DeleteFixture(ctx, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "delete fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckFixtures re-validates every stored fixture of a season.
func (h *Handler) CheckFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckFixtures")
	defer span.End()

	slug := strings.TrimSpace(r.URL.Query().Get("season"))
	violations, err := h.fixtureService.CheckSeason(ctx, slug)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureViolationDTO, 0, len(violations))
	for _, v := range violations {
		items = append(items, fixtureViolationDTO{FixtureID: v.FixtureID, Errors: v.Errors})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
