package handler

import (
	"net/http"

	"github.com/meeplehub/api/internal/middleware"
	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/internal/service"
)

// ReviewHandler handles game review endpoints
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Upload handles POST /review/upload
func (h *ReviewHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.UploadReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	review, err := h.reviews.Upload(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "review uploaded", review)
}

// Update handles PUT /review/update
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.UpdateReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	review, err := h.reviews.Update(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "review updated", review)
}

// Delete handles DELETE /review/{reviewId}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	reviewID := r.PathValue("reviewId")
	if reviewID == "" {
		WriteFailure(w, "review id is required")
		return
	}

	if err := h.reviews.Delete(r.Context(), userID, reviewID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "review deleted", nil)
}

// ListByGame handles GET /game/{gameId}/reviews
func (h *ReviewHandler) ListByGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		WriteFailure(w, "game id is required")
		return
	}

	_, page, pageSize := pagingParams(r)

	result, err := h.reviews.ListByGame(r.Context(), gameID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.TotalPage == 0 {
		WriteSuccess(w, "no reviews for this game yet", nil)
		return
	}
	WriteSuccess(w, "reviews found", result)
}
