package repository

import (
	"context"
	"errors"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// GameQuestionAnswerRepository handles answer data access
type GameQuestionAnswerRepository struct {
	db database.Database
}

// NewGameQuestionAnswerRepository creates a new answer repository
func NewGameQuestionAnswerRepository(db database.Database) *GameQuestionAnswerRepository {
	return &GameQuestionAnswerRepository{db: db}
}

// Create creates a new answer on a question
func (r *GameQuestionAnswerRepository) Create(ctx context.Context, answer *model.GameQuestionAnswer) error {
	query := `
		CREATE game_question_answer CONTENT {
			question: type::record($question_id),
			author: type::record($author_id),
			author_nickname: $author_nickname,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"question_id":     answer.QuestionID,
		"author_id":       answer.AuthorID,
		"author_nickname": answer.AuthorNickname,
		"content":         answer.Content,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	answer.ID = convertSurrealID(row["id"])
	answer.CreatedOn = getTime(row, "created_on")
	answer.UpdatedOn = getTime(row, "updated_on")
	return nil
}

// GetByID retrieves an answer by record ID
func (r *GameQuestionAnswerRepository) GetByID(ctx context.Context, id string) (*model.GameQuestionAnswer, error) {
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
	return parseGameQuestionAnswer(row), nil
}

// Update changes an answer's content
func (r *GameQuestionAnswerRepository) Update(ctx context.Context, id, content string) error {
	query := `
		UPDATE type::record($id) SET
			content = $content,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":      id,
		"content": content,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes an answer
func (r *GameQuestionAnswerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// ListByQuestion retrieves all answers on a question, oldest first
func (r *GameQuestionAnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]*model.GameQuestionAnswer, error) {
	query := `
		SELECT * FROM game_question_answer
		WHERE question = type::record($question_id)
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"question_id": questionID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	answers := make([]*model.GameQuestionAnswer, 0)
	for _, row := range queryRows(result) {
		answers = append(answers, parseGameQuestionAnswer(row))
	}
	return answers, nil
}

func parseGameQuestionAnswer(row map[string]interface{}) *model.GameQuestionAnswer {
	return &model.GameQuestionAnswer{
		ID:             convertSurrealID(row["id"]),
		QuestionID:     convertSurrealID(row["question"]),
		AuthorID:       convertSurrealID(row["author"]),
		AuthorNickname: getString(row, "author_nickname"),
		Content:        getString(row, "content"),
		CreatedOn:      getTime(row, "created_on"),
		UpdatedOn:      getTime(row, "updated_on"),
	}
}
