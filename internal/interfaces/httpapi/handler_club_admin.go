package httpapi

import (
	"net/http"

	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

func (h *Handler) ClubAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClubAdminDashboard")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.clubAdminService.Dashboard(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "club admin dashboard failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, adminViewToDTO(ctx, view))
}

func (h *Handler) UpdateClubInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubInfo")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req clubInfoRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	info, outcome, err := h.clubAdminService.UpdateClubInfo(ctx, principal, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "update club info failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeOutcome(ctx, w, outcome, clubInfoToDTO(info))
}

func (h *Handler) DeleteClubInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubInfo")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req deleteInfoRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.clubAdminService.DeleteClubInfo(ctx, principal, req.Option, req.Confirm)
	if err != nil {
		h.logger.WarnContext(ctx, "delete club info failed", "user_id", principal.UserID, "option", req.Option, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeOutcome(ctx, w, outcome, nil)
}

func (h *Handler) AssignVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignVenue")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req assignVenueRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.clubAdminService.AssignVenue(ctx, principal, req.VenueID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign venue failed", "user_id", principal.UserID, "venue_id", req.VenueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeOutcome(ctx, w, outcome, nil)
}

// UnassignVenue answers with the refreshed dashboard so the venue panel can
// be swapped in place.
func (h *Handler) UnassignVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnassignVenue")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	venueID, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.clubAdminService.UnassignVenue(ctx, principal, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "unassign venue failed", "user_id", principal.UserID, "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, adminViewToDTO(ctx, view))
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateVenue")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req createVenueRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, info, err := h.clubAdminService.CreateVenue(ctx, principal, venue.Venue{Name: req.Name}, req.Info.toDomain(0))
	if err != nil {
		h.logger.WarnContext(ctx, "create venue failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, venueListingDTO{Venue: venueToDTO(created), Info: venueInfoToDTO(info)})
}

func (h *Handler) UpdateVenueInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateVenueInfo")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	venueID, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req venueInfoRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	info, outcome, err := h.clubAdminService.UpdateVenueInfo(ctx, principal, req.toDomain(venueID))
	if err != nil {
		h.logger.WarnContext(ctx, "update venue info failed", "user_id", principal.UserID, "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !outcome.Done {
		writeOutcome(ctx, w, outcome, nil)
		return
	}
	writeOutcome(ctx, w, outcome, venueInfoToDTO(info))
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteVenue")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	venueID, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req deleteInfoRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.clubAdminService.DeleteVenue(ctx, principal, venueID, req.Option, req.Confirm)
	if err != nil {
		h.logger.WarnContext(ctx, "delete venue failed", "user_id", principal.UserID, "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeOutcome(ctx, w, outcome, nil)
}
