package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	q, err := fixtureQueryFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	listing, err := h.resultService.ListResults(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list results failed", "season", q.SeasonSlug, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, resultListingDTO{
		Season:  optionalSeasonToDTO(listing.Season),
		Results: resultRowsToDTO(listing.Results),
	})
}

func (h *Handler) GetResultBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetResultBreakdown")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	breakdown, err := h.resultService.Breakdown(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "result breakdown failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, breakdownToDTO(ctx, breakdown))
}

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTables")
	defer span.End()

	slug := strings.TrimSpace(r.URL.Query().Get("season"))
	season, tables, err := h.resultService.Tables(ctx, slug)
	if err != nil {
		h.logger.ErrorContext(ctx, "league tables failed", "season", slug, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, tablesToDTO(season, tables))
}

func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSummary")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.resultService.TeamSummary(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamSummaryToDTO(ctx, summary))
}

func (h *Handler) CreateResult(w http.ResponseWriter, r *http.Request) {
	h.saveResult(w, r, 0, http.StatusCreated)
}

func (h *Handler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	resultID, err := pathID(r, "resultID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.saveResult(w, r, resultID, http.StatusOK)
}

func (h *Handler) saveResult(w http.ResponseWriter, r *http.Request, resultID int64, status int) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveResult")
	defer span.End()

	var req resultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.resultService.RecordResult(ctx, req.toDomain(resultID))
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "fixture_id", req.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, status, resultToDTO(saved))
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteResult")
	defer span.End()

	resultID, err := pathID(r, "resultID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.resultService.DeleteResult(ctx, resultID); err != nil {
		h.logger.WarnContext(ctx, "delete result failed", "result_id", resultID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RecordSingles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordSingles")
	defer span.End()

	resultID, err := pathID(r, "resultID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req singlesRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.resultService.RecordSingles(ctx, req.toDomain(resultID))
	if err != nil {
		h.logger.WarnContext(ctx, "record singles failed", "result_id", resultID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, singlesToDTO(m))
}

func (h *Handler) DeleteSingles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSingles")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.resultService.DeleteSingles(ctx, matchID); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordDoubles replaces the doubles rubber of a result with the four
// players given in one request.
func (h *Handler) RecordDoubles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordDoubles")
	defer span.End()

	resultID, err := pathID(r, "resultID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req doublesRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.resultService.RecordDoubles(ctx, req.toDomain(resultID))
	if err != nil {
		h.logger.WarnContext(ctx, "record doubles failed", "result_id", resultID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, doublesToDTO(m))
}
