package httpapi

import (
	"net/http"
)

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	listings, err := h.directoryService.Clubs(ctx, directoryFilterFromQuery(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubListingDTO, 0, len(listings))
	for _, item := range listings {
		items = append(items, clubListingToDTO(ctx, item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMapPins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMapPins")
	defer span.End()

	pins, err := h.directoryService.MapPins(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list map pins failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]mapPinDTO, 0, len(pins))
	for _, pin := range pins {
		items = append(items, mapPinToDTO(pin))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClubReviews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubReviews")
	defer span.End()

	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reviews, err := h.directoryService.Reviews(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "list club reviews failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubReviewsDTO{
		Club:    clubToDTO(reviews.Club),
		Reviews: reviewsToDTO(reviews.Reviews),
		Summary: reviewSummaryToDTO(reviews.Summary),
	})
}

func (h *Handler) CreateClubReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubReview")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req reviewRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	review, err := h.directoryService.CreateReview(ctx, principal, req.toDomain(clubID))
	if err != nil {
		h.logger.WarnContext(ctx, "create club review failed", "user_id", principal.UserID, "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, reviewToDTO(review))
}
