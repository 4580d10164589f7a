package service

import (
	"context"
	"strings"

	"github.com/meeplehub/api/internal/model"
)

// BoardRepository defines the interface for board post storage
type BoardRepository interface {
	Create(ctx context.Context, post *model.BoardPost) error
	GetByID(ctx context.Context, id string) (*model.BoardPost, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, keyword string, limit, offset int) ([]*model.BoardPost, error)
	Count(ctx context.Context, keyword string) (int, error)
}

// BoardReplyRepository defines the interface for board reply storage
type BoardReplyRepository interface {
	Create(ctx context.Context, reply *model.BoardReply) error
	GetByID(ctx context.Context, id string) (*model.BoardReply, error)
	Update(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	ListByPost(ctx context.Context, postID string) ([]*model.BoardReply, error)
}

// BoardService handles the general question board
type BoardService struct {
	posts   BoardRepository
	replies BoardReplyRepository
	users   UserRepository
}

// BoardServiceConfig holds configuration for the board service
type BoardServiceConfig struct {
	Posts   BoardRepository
	Replies BoardReplyRepository
	Users   UserRepository
}

// NewBoardService creates a new board service
func NewBoardService(cfg BoardServiceConfig) *BoardService {
	return &BoardService{
		posts:   cfg.Posts,
		replies: cfg.Replies,
		users:   cfg.Users,
	}
}

// Upload creates a new board post
func (s *BoardService) Upload(ctx context.Context, userID string, req *model.BoardUploadRequest) (*model.BoardPost, error) {
	if err := validatePostContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.BoardPost{
		AuthorID:       user.ID,
		AuthorNickname: user.Nickname,
		Title:          strings.TrimSpace(req.Title),
		Content:        strings.TrimSpace(req.Content),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get retrieves a board post together with its replies
func (s *BoardService) Get(ctx context.Context, id string) (*model.BoardPostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	replies, err := s.replies.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.BoardPostDetail{
		Post:    post,
		Replies: replies,
	}, nil
}

// Update changes a post's title and content. Only the author may edit.
func (s *BoardService) Update(ctx context.Context, userID string, req *model.BoardUpdateRequest) (*model.BoardPost, error) {
	if err := validatePostContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = strings.TrimSpace(req.Content)

	if err := s.posts.Update(ctx, post.ID, post.Title, post.Content); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and its replies. Only the author may delete.
func (s *BoardService) Delete(ctx context.Context, userID, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotPostAuthor
	}
	return s.posts.Delete(ctx, id)
}

// List retrieves a page of posts, optionally filtered by title keyword
func (s *BoardService) List(ctx context.Context, keyword string, page, pageSize int) (*model.BoardPage, error) {
	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.posts.Count(ctx, keyword)
	if err != nil {
		return nil, err
	}

	result := &model.BoardPage{
		TotalPage:   model.TotalPages(total, pageSize),
		NowPage:     page,
		NowPageSize: pageSize,
		Posts:       []*model.BoardPost{},
	}
	if total == 0 {
		return result, nil
	}

	posts, err := s.posts.List(ctx, keyword, pageSize, model.PageOffset(page, pageSize))
	if err != nil {
		return nil, err
	}
	result.Posts = posts
	return result, nil
}

// CreateReply adds a reply to a post
func (s *BoardService) CreateReply(ctx context.Context, userID string, req *model.BoardReplyRequest) (*model.BoardReply, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.Content) > model.MaxContentLength {
		return nil, ErrContentTooLong
	}

	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	reply := &model.BoardReply{
		PostID:         post.ID,
		AuthorID:       user.ID,
		AuthorNickname: user.Nickname,
		Content:        strings.TrimSpace(req.Content),
	}

	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// UpdateReply changes a reply's content. Only the author may edit.
func (s *BoardService) UpdateReply(ctx context.Context, userID string, req *model.BoardReplyUpdateRequest) (*model.BoardReply, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.Content) > model.MaxContentLength {
		return nil, ErrContentTooLong
	}

	reply, err := s.replies.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, ErrReplyNotFound
	}
	if reply.AuthorID != userID {
		return nil, ErrNotReplyAuthor
	}

	reply.Content = strings.TrimSpace(req.Content)

	if err := s.replies.Update(ctx, reply.ID, reply.Content); err != nil {
		return nil, err
	}
	return reply, nil
}

// DeleteReply removes a reply. Only the author may delete.
func (s *BoardService) DeleteReply(ctx context.Context, userID, id string) error {
	reply, err := s.replies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reply == nil {
		return ErrReplyNotFound
	}
	if reply.AuthorID != userID {
		return ErrNotReplyAuthor
	}
	return s.replies.Delete(ctx, id)
}

func (s *BoardService) author(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Withdraw {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func validatePostContent(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(title) > model.MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	if len(content) > model.MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
