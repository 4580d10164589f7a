package handler

import (
	"net/http"

	"github.com/meeplehub/api/internal/middleware"
	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/internal/service"
)

// UserHandler handles account, profile, and favorite endpoints
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SignUp handles POST /user/signup
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	if _, err := h.users.SignUp(r.Context(), &req); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "successfully registered", nil)
}

// Login handles POST /user/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	result, err := h.users.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "login successful", result)
}

// UpdateInfo handles PUT /user/info
func (h *UserHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.UpdateInfoRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	user, err := h.users.UpdateInfo(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "user info updated", user.ToProfile())
}

// ChangePassword handles PUT /user/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.ChangePasswordRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	if err := h.users.ChangePassword(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "password changed", nil)
}

// Withdraw handles DELETE /user
func (h *UserHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	if err := h.users.Withdraw(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "account withdrawn", nil)
}

// GetProfile handles GET /user/{nickname}/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	if nickname == "" {
		WriteFailure(w, "nickname is required")
		return
	}

	profile, err := h.users.GetProfile(r.Context(), nickname)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "profile found", profile)
}

// GetReviews handles GET /user/{nickname}/reviews
func (h *UserHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	if nickname == "" {
		WriteFailure(w, "nickname is required")
		return
	}

	_, page, pageSize := pagingParams(r)

	result, err := h.users.GetReviewsByNickname(r.Context(), nickname, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.TotalPage == 0 {
		WriteSuccess(w, "no reviews written yet", nil)
		return
	}
	WriteSuccess(w, "reviews found", result)
}

// GetFavorites handles GET /user/{nickname}/favorites
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	nickname := r.PathValue("nickname")
	if nickname == "" {
		WriteFailure(w, "nickname is required")
		return
	}

	_, page, pageSize := pagingParams(r)

	result, err := h.users.GetFavorites(r.Context(), nickname, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.TotalPage == 0 {
		WriteSuccess(w, "no favorite games yet", nil)
		return
	}
	WriteSuccess(w, "favorites found", result)
}

// AddFavorite handles POST /user/favorites
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.AddFavoriteRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	if err := h.users.AddFavorite(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "game added to favorites", nil)
}

// RemoveFavorite handles DELETE /user/favorites/{gameId}
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	gameID := r.PathValue("gameId")
	if gameID == "" {
		WriteFailure(w, "game id is required")
		return
	}

	if err := h.users.RemoveFavorite(r.Context(), userID, gameID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "game removed from favorites", nil)
}
