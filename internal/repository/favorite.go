package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// FavoriteRepository handles favorite data access. The store carries a
// unique index on (user, game) which is the final authority against
// double-favoriting under concurrent requests.
type FavoriteRepository struct {
	db database.Database
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db database.Database) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create marks a game as a favorite for a user
func (r *FavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	query := `
		CREATE favorite CONTENT {
			user: type::record($user_id),
			game: type::record($game_id),
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"user_id": favorite.UserID,
		"game_id": favorite.GameID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: game already favorited", database.ErrDuplicate)
		}
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	favorite.ID = convertSurrealID(row["id"])
	return nil
}

// GetByUserAndGame retrieves a user's favorite for a specific game
func (r *FavoriteRepository) GetByUserAndGame(ctx context.Context, userID, gameID string) (*model.Favorite, error) {
	query := `
		SELECT * FROM favorite
		WHERE user = type::record($user_id) AND game = type::record($game_id)
		LIMIT 1
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"game_id": gameID,
	}

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

	return &model.Favorite{
		ID:     convertSurrealID(row["id"]),
		UserID: convertSurrealID(row["user"]),
		GameID: convertSurrealID(row["game"]),
	}, nil
}

// Delete removes a user's favorite for a game
func (r *FavoriteRepository) Delete(ctx context.Context, userID, gameID string) error {
	query := `
		DELETE favorite
		WHERE user = type::record($user_id) AND game = type::record($game_id)
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"game_id": gameID,
	}

	return r.db.Execute(ctx, query, vars)
}

// ListByUser retrieves a page of a user's favorited games with the game
// fields joined in, newest favorite first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error) {
	query := `
		SELECT
			game AS game_id,
			game.thumbnail AS thumbnail,
			game.name AS game_name,
			game.name_kor AS game_name_kor
		FROM favorite
		WHERE user = type::record($user_id)
		ORDER BY created_on DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	favorites := make([]*model.FavoriteGame, 0)
	for _, row := range queryRows(result) {
		favorites = append(favorites, &model.FavoriteGame{
			GameID:    convertSurrealID(row["game_id"]),
			Thumbnail: getString(row, "thumbnail"),
			GameName:  getString(row, "game_name"),
			NameKor:   getString(row, "game_name_kor"),
		})
	}
	return favorites, nil
}

// CountByUser counts a user's favorites
func (r *FavoriteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT count() as count FROM favorite
		WHERE user = type::record($user_id)
		GROUP ALL
	`
	vars := map[string]interface{}{"user_id": userID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return countFrom(result), nil
}
