package handler

import (
	"net/http"

	"github.com/meeplehub/api/internal/service"
)

// GameHandler handles game catalog endpoints
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// List handles GET /game/list
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	keyword, page, pageSize := pagingParams(r)

	result, err := h.games.List(r.Context(), keyword, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.TotalPage == 0 {
		WriteSuccess(w, "no games registered", nil)
		return
	}
	WriteSuccess(w, "games found", result)
}

// Get handles GET /game/{gameId}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	if gameID == "" {
		WriteFailure(w, "game id is required")
		return
	}

	game, err := h.games.Get(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, "game found", game)
}
