package repository

import (
	"context"
	"errors"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// GameQuestionRepository handles per-game question data access
type GameQuestionRepository struct {
	db database.Database
}

// NewGameQuestionRepository creates a new game question repository
func NewGameQuestionRepository(db database.Database) *GameQuestionRepository {
	return &GameQuestionRepository{db: db}
}

// Create creates a new question on a game's board
func (r *GameQuestionRepository) Create(ctx context.Context, question *model.GameQuestion) error {
	query := `
		CREATE game_question CONTENT {
			game: type::record($game_id),
			author: type::record($author_id),
			author_nickname: $author_nickname,
			title: $title,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"game_id":         question.GameID,
		"author_id":       question.AuthorID,
		"author_nickname": question.AuthorNickname,
		"title":           question.Title,
		"content":         question.Content,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	question.ID = convertSurrealID(row["id"])
	question.CreatedOn = getTime(row, "created_on")
	question.UpdatedOn = getTime(row, "updated_on")
	return nil
}

// GetByID retrieves a question by record ID
func (r *GameQuestionRepository) GetByID(ctx context.Context, id string) (*model.GameQuestion, error) {
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
	return parseGameQuestion(row), nil
}

// Update changes a question's title and content
func (r *GameQuestionRepository) Update(ctx context.Context, id, title, content string) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			content = $content,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":      id,
		"title":   title,
		"content": content,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a question together with its answers
func (r *GameQuestionRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`DELETE game_question_answer WHERE question = type::record($id)`,
		map[string]interface{}{"id": id},
	)
	batch.Add(
		`DELETE type::record($id)`,
		map[string]interface{}{"id": id},
	)
	return batch.Execute(ctx, r.db)
}

// ListByGame retrieves a page of questions for a game, newest first
func (r *GameQuestionRepository) ListByGame(ctx context.Context, gameID string, limit, offset int) ([]*model.GameQuestion, error) {
	query := `
		SELECT * FROM game_question
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

	questions := make([]*model.GameQuestion, 0)
	for _, row := range queryRows(result) {
		questions = append(questions, parseGameQuestion(row))
	}
	return questions, nil
}

// CountByGame counts questions for a game
func (r *GameQuestionRepository) CountByGame(ctx context.Context, gameID string) (int, error) {
	query := `
		SELECT count() as count FROM game_question
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

func parseGameQuestion(row map[string]interface{}) *model.GameQuestion {
	return &model.GameQuestion{
		ID:             convertSurrealID(row["id"]),
		GameID:         convertSurrealID(row["game"]),
		AuthorID:       convertSurrealID(row["author"]),
		AuthorNickname: getString(row, "author_nickname"),
		Title:          getString(row, "title"),
		Content:        getString(row, "content"),
		CreatedOn:      getTime(row, "created_on"),
		UpdatedOn:      getTime(row, "updated_on"),
	}
}
