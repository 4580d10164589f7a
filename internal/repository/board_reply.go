package repository

import (
	"context"
	"errors"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// BoardReplyRepository handles board reply data access
type BoardReplyRepository struct {
	db database.Database
}

// NewBoardReplyRepository creates a new board reply repository
func NewBoardReplyRepository(db database.Database) *BoardReplyRepository {
	return &BoardReplyRepository{db: db}
}

// Create creates a new reply on a post
func (r *BoardReplyRepository) Create(ctx context.Context, reply *model.BoardReply) error {
	query := `
		CREATE board_reply CONTENT {
			post: type::record($post_id),
			author: type::record($author_id),
			author_nickname: $author_nickname,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"post_id":         reply.PostID,
		"author_id":       reply.AuthorID,
		"author_nickname": reply.AuthorNickname,
		"content":         reply.Content,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	reply.ID = convertSurrealID(row["id"])
	reply.CreatedOn = getTime(row, "created_on")
	reply.UpdatedOn = getTime(row, "updated_on")
	return nil
}

// GetByID retrieves a reply by record ID
func (r *BoardReplyRepository) GetByID(ctx context.Context, id string) (*model.BoardReply, error) {
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
	return parseBoardReply(row), nil
}

// Update changes a reply's content
func (r *BoardReplyRepository) Update(ctx context.Context, id, content string) error {
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

// Delete removes a reply
func (r *BoardReplyRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// ListByPost retrieves all replies on a post, oldest first
func (r *BoardReplyRepository) ListByPost(ctx context.Context, postID string) ([]*model.BoardReply, error) {
	query := `
		SELECT * FROM board_reply
		WHERE post = type::record($post_id)
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"post_id": postID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	replies := make([]*model.BoardReply, 0)
	for _, row := range queryRows(result) {
		replies = append(replies, parseBoardReply(row))
	}
	return replies, nil
}

func parseBoardReply(row map[string]interface{}) *model.BoardReply {
	return &model.BoardReply{
		ID:             convertSurrealID(row["id"]),
		PostID:         convertSurrealID(row["post"]),
		AuthorID:       convertSurrealID(row["author"]),
		AuthorNickname: getString(row, "author_nickname"),
		Content:        getString(row, "content"),
		CreatedOn:      getTime(row, "created_on"),
		UpdatedOn:      getTime(row, "updated_on"),
	}
}
