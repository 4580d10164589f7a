package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// GameRepository handles game data access. Games are read-mostly reference
// data seeded outside the API.
type GameRepository struct {
	db database.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db database.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID retrieves a game by record ID
func (r *GameRepository) GetByID(ctx context.Context, id string) (*model.Game, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, err := asRow(result)
	if err != nil {
		return nil, err
	}
	return parseGame(row), nil
}

// List retrieves a page of games. A non-empty keyword filters by
// case-insensitive substring match on either name.
func (r *GameRepository) List(ctx context.Context, keyword string, limit, offset int) ([]*model.Game, error) {
	query := `
		SELECT * FROM game
		ORDER BY name ASC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	if keyword != "" {
		query = `
			SELECT * FROM game
			WHERE string::contains(string::lowercase(name), $keyword)
			OR string::contains(string::lowercase(name_kor), $keyword)
			ORDER BY name ASC
			LIMIT $limit START $offset
		`
		vars["keyword"] = strings.ToLower(keyword)
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0)
	for _, row := range queryRows(result) {
		games = append(games, parseGame(row))
	}
	return games, nil
}

// Count counts games matching a keyword (all games when empty)
func (r *GameRepository) Count(ctx context.Context, keyword string) (int, error) {
	query := `SELECT count() as count FROM game GROUP ALL`
	vars := map[string]interface{}{}

	if keyword != "" {
		query = `
			SELECT count() as count FROM game
			WHERE string::contains(string::lowercase(name), $keyword)
			OR string::contains(string::lowercase(name_kor), $keyword)
			GROUP ALL
		`
		vars["keyword"] = strings.ToLower(keyword)
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return countFrom(result), nil
}

func parseGame(row map[string]interface{}) *model.Game {
	return &model.Game{
		ID:            convertSurrealID(row["id"]),
		Name:          getString(row, "name"),
		NameKor:       getString(row, "name_kor"),
		Thumbnail:     getString(row, "thumbnail"),
		YearPublished: getInt(row, "year_published"),
		MinPlayers:    getInt(row, "min_players"),
		MaxPlayers:    getInt(row, "max_players"),
	}
}
