package service

import (
	"context"
	"strings"

	"github.com/meeplehub/api/internal/model"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	Update(ctx context.Context, id, comment string, rating int) error
	Delete(ctx context.Context, id string) error
	ListByGame(ctx context.Context, gameID string, limit, offset int) ([]*model.ReviewDetail, error)
	CountByGame(ctx context.Context, gameID string) (int, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.ReviewDetail, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// ReviewService handles game review business logic
type ReviewService struct {
	reviews ReviewRepository
	games   GameRepository
	users   UserRepository
}

// ReviewServiceConfig holds configuration for the review service
type ReviewServiceConfig struct {
	Reviews ReviewRepository
	Games   GameRepository
	Users   UserRepository
}

// NewReviewService creates a new review service
func NewReviewService(cfg ReviewServiceConfig) *ReviewService {
	return &ReviewService{
		reviews: cfg.Reviews,
		games:   cfg.Games,
		users:   cfg.Users,
	}
}

// Upload creates a new review for a game
func (s *ReviewService) Upload(ctx context.Context, userID string, req *model.UploadReviewRequest) (*model.Review, error) {
	if err := validateReviewContent(req.Comment, req.Rating); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Withdraw {
		return nil, ErrUserNotFound
	}

	game, err := s.games.GetByID(ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	review := &model.Review{
		UserID:       user.ID,
		UserNickname: user.Nickname,
		GameID:       game.ID,
		GameName:     game.Name,
		Comment:      strings.TrimSpace(req.Comment),
		Rating:       req.Rating,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update changes a review's comment and rating. Only the author may edit.
func (s *ReviewService) Update(ctx context.Context, userID string, req *model.UpdateReviewRequest) (*model.Review, error) {
	if err := validateReviewContent(req.Comment, req.Rating); err != nil {
		return nil, err
	}

	review, err := s.reviews.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrNotReviewAuthor
	}

	review.Comment = strings.TrimSpace(req.Comment)
	review.Rating = req.Rating

	if err := s.reviews.Update(ctx, review.ID, review.Comment, review.Rating); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review. Only the author may delete.
func (s *ReviewService) Delete(ctx context.Context, userID, id string) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrNotReviewAuthor
	}
	return s.reviews.Delete(ctx, id)
}

// ListByGame retrieves a page of reviews for a game
func (s *ReviewService) ListByGame(ctx context.Context, gameID string, page, pageSize int) (*model.ReviewPage, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.reviews.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	result := &model.ReviewPage{
		TotalPage:   model.TotalPages(total, pageSize),
		NowPage:     page,
		NowPageSize: pageSize,
		Reviews:     []*model.ReviewDetail{},
	}
	if total == 0 {
		return result, nil
	}

	reviews, err := s.reviews.ListByGame(ctx, gameID, pageSize, model.PageOffset(page, pageSize))
	if err != nil {
		return nil, err
	}
	result.Reviews = reviews
	return result, nil
}

func validateReviewContent(comment string, rating int) error {
	if strings.TrimSpace(comment) == "" {
		return ErrCommentRequired
	}
	if rating < model.MinRating || rating > model.MaxRating {
		return ErrInvalidRating
	}
	return nil
}
