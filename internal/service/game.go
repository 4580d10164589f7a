package service

import (
	"context"

	"github.com/meeplehub/api/internal/model"
)

// GameRepository defines the interface for game storage
type GameRepository interface {
	GetByID(ctx context.Context, id string) (*model.Game, error)
	List(ctx context.Context, keyword string, limit, offset int) ([]*model.Game, error)
	Count(ctx context.Context, keyword string) (int, error)
}

// GameService handles game catalog browsing
type GameService struct {
	games GameRepository
}

// GameServiceConfig holds configuration for the game service
type GameServiceConfig struct {
	Games GameRepository
}

// NewGameService creates a new game service
func NewGameService(cfg GameServiceConfig) *GameService {
	return &GameService{games: cfg.Games}
}

// Get retrieves a game by ID
func (s *GameService) Get(ctx context.Context, id string) (*model.Game, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// List retrieves a page of games, optionally filtered by keyword
func (s *GameService) List(ctx context.Context, keyword string, page, pageSize int) (*model.GamePage, error) {
	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.games.Count(ctx, keyword)
	if err != nil {
		return nil, err
	}

	result := &model.GamePage{
		TotalPage:   model.TotalPages(total, pageSize),
		NowPage:     page,
		NowPageSize: pageSize,
		Games:       []*model.Game{},
	}
	if total == 0 {
		return result, nil
	}

	games, err := s.games.List(ctx, keyword, pageSize, model.PageOffset(page, pageSize))
	if err != nil {
		return nil, err
	}
	result.Games = games
	return result, nil
}
