package handler

import (
	"net/http"

	"github.com/meeplehub/api/internal/middleware"
	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/internal/service"
)

// GameQuestionHandler handles per-game question board endpoints
type GameQuestionHandler struct {
	questions *service.GameQuestionService
}

// NewGameQuestionHandler creates a new game question handler
func NewGameQuestionHandler(questions *service.GameQuestionService) *GameQuestionHandler {
	return &GameQuestionHandler{questions: questions}
}

// Upload handles POST /game/{gameId}/questions
func (h *GameQuestionHandler) Upload(w http.ResponseWriter, r *http.Request) {
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

	var req model.UploadGameQuestionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	question, err := h.questions.Upload(r.Context(), userID, gameID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "question uploaded", question)
}

// ListByGame handles GET /game/{gameId}/questions
func (h *GameQuestionHandler) ListByGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		WriteFailure(w, "game id is required")
		return
	}

	_, page, pageSize := pagingParams(r)

	result, err := h.questions.ListByGame(r.Context(), gameID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.TotalPage == 0 {
		WriteSuccess(w, "no questions for this game yet", nil)
		return
	}
	WriteSuccess(w, "questions found", result)
}

// Get handles GET /question/{questionId}
func (h *GameQuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionId")
	if questionID == "" {
		WriteFailure(w, "question id is required")
		return
	}

	detail, err := h.questions.Get(r.Context(), questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "question found", detail)
}

// Update handles PUT /question/update
func (h *GameQuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.UpdateGameQuestionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	question, err := h.questions.Update(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "question updated", question)
}

// Delete handles DELETE /question/{questionId}
func (h *GameQuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	questionID := r.PathValue("questionId")
	if questionID == "" {
		WriteFailure(w, "question id is required")
		return
	}

	if err := h.questions.Delete(r.Context(), userID, questionID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "question deleted", nil)
}

// CreateAnswer handles POST /question/{questionId}/answers
func (h *GameQuestionHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	questionID := r.PathValue("questionId")
	if questionID == "" {
		WriteFailure(w, "question id is required")
		return
	}

	var req model.GameQuestionAnswerRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	answer, err := h.questions.CreateAnswer(r.Context(), userID, questionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "answer added", answer)
}

// UpdateAnswer handles PUT /question/answer
func (h *GameQuestionHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	var req model.UpdateGameQuestionAnswerRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	answer, err := h.questions.UpdateAnswer(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "answer updated", answer)
}

// DeleteAnswer handles DELETE /question/answer?id=
func (h *GameQuestionHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteUnauthorized(w)
		return
	}

	answerID := r.URL.Query().Get("id")
	if answerID == "" {
		WriteFailure(w, "answer id is required")
		return
	}

	if err := h.questions.DeleteAnswer(r.Context(), userID, answerID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "answer deleted", nil)
}
