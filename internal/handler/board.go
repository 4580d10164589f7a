package handler

import (
	"net/http"

	"github.com/meeplehub/api/internal/middleware"
	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/internal/service"
)

// BoardHandler handles the general question board endpoints
type BoardHandler struct {
	board *service.BoardService
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(board *service.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// Upload handles POST /board/upload
func (h *BoardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.BoardUploadRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	post, err := h.board.Upload(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "post uploaded", post)
}

// Get handles GET /board/{postId}
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")
	if postID == "" {
		WriteFailure(w, "post id is required")
		return
	}

	detail, err := h.board.Get(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "post found", detail)
}

// Update handles PUT /board/update
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.BoardUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	post, err := h.board.Update(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "post updated", post)
}

// Delete handles DELETE /board/{postId}
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	postID := r.PathValue("postId")
	if postID == "" {
		WriteFailure(w, "post id is required")
		return
	}

	if err := h.board.Delete(r.Context(), userID, postID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "post deleted", nil)
}

// List handles GET /board/list
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	keyword, page, pageSize := pagingParams(r)

	result, err := h.board.List(r.Context(), keyword, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.TotalPage == 0 {
		WriteSuccess(w, "no posts yet", nil)
		return
	}
	WriteSuccess(w, "posts found", result)
}

// CreateReply handles POST /board/reply
func (h *BoardHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.BoardReplyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	reply, err := h.board.CreateReply(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "reply added", reply)
}

// UpdateReply handles PUT /board/reply
func (h *BoardHandler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.BoardReplyUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	reply, err := h.board.UpdateReply(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "reply updated", reply)
}

// DeleteReply handles DELETE /board/reply?id=
func (h *BoardHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	replyID := r.URL.Query().Get("id")
	if replyID == "" {
		WriteFailure(w, "reply id is required")
		return
	}

	if err := h.board.DeleteReply(r.Context(), userID, replyID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "reply deleted", nil)
}
