package httpapi

import (
	"net/http"
)

func (h *Handler) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPendingApprovals")
	defer span.End()

	queue, err := h.moderationService.Pending(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list pending approvals failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, pendingQueueToDTO(queue))
}

func (h *Handler) ApproveClubInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveClubInfo")
	defer span.End()

	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	info, err := h.moderationService.ApproveClubInfo(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "approve club info failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubInfoToDTO(info))
}

func (h *Handler) ApproveVenueInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveVenueInfo")
	defer span.End()

	venueID, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	info, err := h.moderationService.ApproveVenueInfo(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "approve venue info failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, venueInfoToDTO(info))
}

func (h *Handler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveReview")
	defer span.End()

	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.moderationService.ApproveReview(ctx, reviewID); err != nil {
		h.logger.WarnContext(ctx, "approve review failed", "review_id", reviewID, "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
