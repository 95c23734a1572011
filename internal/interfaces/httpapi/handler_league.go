package httpapi

import (
	"net/http"
)

// ListSeasons is the public season picker; hidden seasons are left out.
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	h.listSeasons(w, r, true)
}

func (h *Handler) AdminListSeasons(w http.ResponseWriter, r *http.Request) {
	h.listSeasons(w, r, false)
}

func (h *Handler) listSeasons(w http.ResponseWriter, r *http.Request, visibleOnly bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.leagueService.ListSeasons(ctx, visibleOnly)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req seasonRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	season, verrs := req.toDomain(0)
	if err := invalidRequest(verrs); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.SaveSeason(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req seasonRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	season, verrs := req.toDomain(seasonID)
	if err := invalidRequest(verrs); err != nil {
		writeError(ctx, w, err)
		return
	}

	// The current flag only moves through SetCurrentSeason.
	existing, err := h.leagueService.GetSeason(ctx, seasonID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season.IsCurrent = existing.IsCurrent

	updated, err := h.leagueService.SaveSeason(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(updated))
}

func (h *Handler) SetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCurrentSeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.leagueService.SetCurrentSeason(ctx, seasonID); err != nil {
		h.logger.WarnContext(ctx, "set current season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	season, err := h.leagueService.GetSeason(ctx, seasonID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(season))
}

func (h *Handler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeeks")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := h.leagueService.GetSeason(ctx, seasonID); err != nil {
		writeError(ctx, w, err)
		return
	}

	weeks, err := h.leagueService.ListWeeks(ctx, seasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list weeks failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}
	items := make([]weekDTO, 0, len(weeks))
	for _, wk := range weeks {
		items = append(items, weekToDTO(wk))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWeek")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req weekRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	week, verrs := req.toDomain(seasonID)
	if err := invalidRequest(verrs); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateWeek(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "create week failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, weekToDTO(created))
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	divisions, err := h.leagueService.ListDivisions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDivision")
	defer span.End()

	var req divisionRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	created, err := h.leagueService.SaveDivision(ctx, req.toDomain(0))
	if err != nil {
		h.logger.WarnContext(ctx, "create division failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, divisionToDTO(created))
}

func (h *Handler) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDivision")
	defer span.End()

	divisionID, err := pathID(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req divisionRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	updated, err := h.leagueService.SaveDivision(ctx, req.toDomain(divisionID))
	if err != nil {
		h.logger.WarnContext(ctx, "update division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, divisionToDTO(updated))
}

func (h *Handler) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDivision")
	defer span.End()

	divisionID, err := pathID(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.leagueService.DeleteDivision(ctx, divisionID); err != nil {
		h.logger.WarnContext(ctx, "delete division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
