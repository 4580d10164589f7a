package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
)

// BoardRepository handles general board post data access
type BoardRepository struct {
	db database.Database
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db database.Database) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create creates a new board post
func (r *BoardRepository) Create(ctx context.Context, post *model.BoardPost) error {
	query := `
		CREATE board_post CONTENT {
			author: type::record($author_id),
			author_nickname: $author_nickname,
			title: $title,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"author_id":       post.AuthorID,
		"author_nickname": post.AuthorNickname,
		"title":           post.Title,
		"content":         post.Content,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := firstCreatedRow(result)
	if err != nil {
		return err
	}

	post.ID = convertSurrealID(row["id"])
	post.CreatedOn = getTime(row, "created_on")
	post.UpdatedOn = getTime(row, "updated_on")
	return nil
}

// GetByID retrieves a board post by record ID
func (r *BoardRepository) GetByID(ctx context.Context, id string) (*model.BoardPost, error) {
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
	return parseBoardPost(row), nil
}

// Update changes a board post's title and content
func (r *BoardRepository) Update(ctx context.Context, id, title, content string) error {
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

// Delete removes a board post together with its replies
func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`DELETE board_reply WHERE post = type::record($id)`,
		map[string]interface{}{"id": id},
	)
	batch.Add(
		`DELETE type::record($id)`,
		map[string]interface{}{"id": id},
	)
	return batch.Execute(ctx, r.db)
}

// List retrieves a page of board posts, newest first. A non-empty keyword
// filters by case-insensitive substring match on the title or content.
func (r *BoardRepository) List(ctx context.Context, keyword string, limit, offset int) ([]*model.BoardPost, error) {
	query := `
		SELECT * FROM board_post
		ORDER BY created_on DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	if keyword != "" {
		query = `
			SELECT * FROM board_post
			WHERE string::contains(string::lowercase(title), $keyword)
				OR string::contains(string::lowercase(content), $keyword)
			ORDER BY created_on DESC
			LIMIT $limit START $offset
		`
		vars["keyword"] = strings.ToLower(keyword)
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	posts := make([]*model.BoardPost, 0)
	for _, row := range queryRows(result) {
		posts = append(posts, parseBoardPost(row))
	}
	return posts, nil
}

// Count counts board posts matching a keyword (all posts when empty)
func (r *BoardRepository) Count(ctx context.Context, keyword string) (int, error) {
	query := `SELECT count() as count FROM board_post GROUP ALL`
	vars := map[string]interface{}{}

	if keyword != "" {
		query = `
			SELECT count() as count FROM board_post
			WHERE string::contains(string::lowercase(title), $keyword)
				OR string::contains(string::lowercase(content), $keyword)
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

func parseBoardPost(row map[string]interface{}) *model.BoardPost {
	return &model.BoardPost{
		ID:             convertSurrealID(row["id"]),
		AuthorID:       convertSurrealID(row["author"]),
		AuthorNickname: getString(row, "author_nickname"),
		Title:          getString(row, "title"),
		Content:        getString(row, "content"),
		CreatedOn:      getTime(row, "created_on"),
		UpdatedOn:      getTime(row, "updated_on"),
	}
}
