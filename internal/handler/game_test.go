package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/internal/service"
)

type stubGameRepo struct {
	games []*model.Game
}

func (s *stubGameRepo) GetByID(ctx context.Context, id string) (*model.Game, error) {
	for _, g := range s.games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (s *stubGameRepo) List(ctx context.Context, keyword string, limit, offset int) ([]*model.Game, error) {
	return s.games, nil
}

func (s *stubGameRepo) Count(ctx context.Context, keyword string) (int, error) {
	return len(s.games), nil
}

func newGameHandler(games ...*model.Game) *GameHandler {
	svc := service.NewGameService(service.GameServiceConfig{
		Games: &stubGameRepo{games: games},
	})
	return NewGameHandler(svc)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGameList_EmptyCatalogEnvelope(t *testing.T) {
	t.Parallel()

	h := newGameHandler()

	req := httptest.NewRequest(http.MethodGet, "/game/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(http.StatusOK), body["status"])
	assert.Equal(t, "no games registered", body["message"])
	assert.NotContains(t, body, "data")
}

func TestGameList_ReturnsPage(t *testing.T) {
	t.Parallel()

	h := newGameHandler(
		&model.Game{ID: "game:catan", Name: "Catan"},
		&model.Game{ID: "game:azul", Name: "Azul"},
	)

	req := httptest.NewRequest(http.MethodGet, "/game/list?page=1&pagesize=10", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Contains(t, body, "data")

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["totalPage"])
	assert.Equal(t, float64(1), data["nowPage"])
	assert.Len(t, data["games"], 2)
}

func TestGameGet_UnknownGame(t *testing.T) {
	t.Parallel()

	h := newGameHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /game/{gameId}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/game/game:ghost", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(http.StatusBadRequest), body["status"])
	assert.Equal(t, "game not found", body["message"])
}

func TestPagingParams_Defaults(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/board/list", nil)
	keyword, page, pageSize := pagingParams(req)

	assert.Empty(t, keyword)
	assert.Equal(t, model.DefaultPage, page)
	assert.Equal(t, model.DefaultPageSize, pageSize)
}

func TestPagingParams_IgnoresMalformedValues(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/board/list?page=abc&pagesize=-1&keyword=catan", nil)
	keyword, page, pageSize := pagingParams(req)

	assert.Equal(t, "catan", keyword)
	assert.Equal(t, model.DefaultPage, page)
	assert.Equal(t, model.DefaultPageSize, pageSize)
}
