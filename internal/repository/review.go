package repository

import (
	"context"
	"errors"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// reviewTimeLayout is the display format for review timestamps
const reviewTimeLayout = "2006-01-02 15:04:05"

// ReviewRepository handles review data access
type ReviewRepository struct {
	db database.Database
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db database.Database) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review. Author nickname and game name are copied
// onto the record so listings avoid per-row lookups.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		CREATE review CONTENT {
			user: type::record($user_id),
			user_nickname: $user_nickname,
			game: type::record($game_id),
			game_name: $game_name,
			comment: $comment,
			rating: $rating,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"user_id":       review.UserID,
		"user_nickname": review.UserNickname,
		"game_id":       review.GameID,
		"game_name":     review.GameName,
		"comment":       review.Comment,
		"rating":        review.Rating,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	review.ID = convertSurrealID(row["id"])
	review.CreatedOn = getTime(row, "created_on")
	return nil
}

// GetByID retrieves a review by record ID
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
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
	return parseReview(row), nil
}

// Update changes a review's comment and rating
func (r *ReviewRepository) Update(ctx context.Context, id, comment string, rating int) error {
	query := `
		UPDATE type::record($id) SET
			comment = $comment,
			rating = $rating
	`
	vars := map[string]interface{}{
		"id":      id,
		"comment": comment,
		"rating":  rating,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// ListByGame retrieves a page of reviews for a game, newest first, with
// the localized game name joined in.
func (r *ReviewRepository) ListByGame(ctx context.Context, gameID string, limit, offset int) ([]*model.ReviewDetail, error) {
	query := `
		SELECT *, game.name_kor AS game_name_kor FROM review
		WHERE game = type::record($game_id)
		ORDER BY created_on DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"game_id": gameID,
		"limit":   limit,
		"offset":  offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReviewDetails(result), nil
}

// CountByGame counts reviews for a game
func (r *ReviewRepository) CountByGame(ctx context.Context, gameID string) (int, error) {
	query := `
		SELECT count() as count FROM review
		WHERE game = type::record($game_id)
		GROUP ALL
	`
	vars := map[string]interface{}{"game_id": gameID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return countFrom(result), nil
}

// ListByUser retrieves a page of reviews written by a user, newest first
func (r *ReviewRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.ReviewDetail, error) {
	query := `
		SELECT *, game.name_kor AS game_name_kor FROM review
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

	return parseReviewDetails(result), nil
}

// CountByUser counts reviews written by a user
func (r *ReviewRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT count() as count FROM review
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

func parseReview(row map[string]interface{}) *model.Review {
	return &model.Review{
		ID:           convertSurrealID(row["id"]),
		UserID:       convertSurrealID(row["user"]),
		UserNickname: getString(row, "user_nickname"),
		GameID:       convertSurrealID(row["game"]),
		GameName:     getString(row, "game_name"),
		Comment:      getString(row, "comment"),
		Rating:       getInt(row, "rating"),
		CreatedOn:    getTime(row, "created_on"),
	}
}

func parseReviewDetails(result []interface{}) []*model.ReviewDetail {
	details := make([]*model.ReviewDetail, 0)
	for _, row := range queryRows(result) {
		detail := &model.ReviewDetail{
			ID:           convertSurrealID(row["id"]),
			UserID:       convertSurrealID(row["user"]),
			GameID:       convertSurrealID(row["game"]),
			GameName:     getString(row, "game_name"),
			GameNameKor:  getString(row, "game_name_kor"),
			UserNickname: getString(row, "user_nickname"),
			Comment:      getString(row, "comment"),
			Rating:       getInt(row, "rating"),
		}
		if t := getTime(row, "created_on"); !t.IsZero() {
			detail.CreatedAt = t.Format(reviewTimeLayout)
		}
		details = append(details, detail)
	}
	return details
}
