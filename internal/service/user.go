package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/meeplehub/api/internal/database"
	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/pkg/jwt"
)

// bcryptCost is the work factor for password hashing
const bcryptCost = 12

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByLoginID(ctx context.Context, loginID string) (*model.User, error)
	GetByNickname(ctx context.Context, nickname string) (*model.User, error)
	UpdateInfo(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, userID, hash string) error
	Withdraw(ctx context.Context, userID string) error
}

// FavoriteRepository defines the interface for favorite storage
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	GetByUserAndGame(ctx context.Context, userID, gameID string) (*model.Favorite, error)
	Delete(ctx context.Context, userID, gameID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Sign(claims jwt.Claims) (string, error)
}

// UserService handles account lifecycle, profiles, and favorites
type UserService struct {
	users     UserRepository
	favorites FavoriteRepository
	reviews   ReviewRepository
	games     GameRepository
	tokens    TokenIssuer
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	Users     UserRepository
	Favorites FavoriteRepository
	Reviews   ReviewRepository
	Games     GameRepository
	Tokens    TokenIssuer
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		users:     cfg.Users,
		favorites: cfg.Favorites,
		reviews:   cfg.Reviews,
		games:     cfg.Games,
		tokens:    cfg.Tokens,
	}
}

// SignUp registers a new account. Login id and nickname must be unique
// among active users.
func (s *UserService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.User, error) {
	loginID := strings.TrimSpace(req.LoginID)
	nickname := strings.TrimSpace(req.Nickname)

	if loginID == "" {
		return nil, ErrLoginIDRequired
	}
	if nickname == "" {
		return nil, ErrNicknameRequired
	}
	if len(nickname) > model.MaxNicknameLength {
		return nil, ErrNicknameTooLong
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Withdraw {
		return nil, ErrLoginIDTaken
	}

	existing, err = s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNicknameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		LoginID:  loginID,
		Nickname: nickname,
		Hash:     string(hash),
	}

	// The store-side guard inside Create is the final authority under
	// concurrency; the pre-checks above only give the common case a
	// friendly failure without a write attempt.
	if err := s.users.Create(ctx, user); err != nil {
		var dup *database.DuplicateError
		if errors.As(err, &dup) && dup.Key == "nickname" {
			return nil, ErrNicknameTaken
		}
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrLoginIDTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	user, err := s.users.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.Withdraw {
		return nil, ErrUserWithdrawn
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(jwt.Claims{
		Subject:  user.ID,
		UserID:   user.ID,
		LoginID:  user.LoginID,
		Nickname: user.Nickname,
	})
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		Nickname:    user.Nickname,
		AccessToken: token,
	}, nil
}

// UpdateInfo changes the acting user's nickname, age, and gender
func (s *UserService) UpdateInfo(ctx context.Context, userID string, req *model.UpdateInfoRequest) (*model.User, error) {
	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return nil, ErrNicknameRequired
	}
	if len(nickname) > model.MaxNicknameLength {
		return nil, ErrNicknameTooLong
	}

	if nickname != user.Nickname {
		existing, err := s.users.GetByNickname(ctx, nickname)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrNicknameTaken
		}
	}

	user.Nickname = nickname
	user.Age = req.Age
	user.Gender = req.Gender

	if err := s.users.UpdateInfo(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrNicknameTaken
		}
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *UserService) ChangePassword(ctx context.Context, userID string, req *model.ChangePasswordRequest) error {
	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials
	}

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, user.ID, string(hash))
}

// Withdraw soft-deletes the acting user's account and clears their
// favorites. The login id stays reserved until re-registered.
func (s *UserService) Withdraw(ctx context.Context, userID string) error {
	if _, err := s.activeUser(ctx, userID); err != nil {
		return err
	}
	return s.users.Withdraw(ctx, userID)
}

// GetProfile retrieves the public profile of an active user
func (s *UserService) GetProfile(ctx context.Context, nickname string) (*model.Profile, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.ToProfile(), nil
}

// GetReviewsByNickname retrieves a page of reviews written by a user
func (s *UserService) GetReviewsByNickname(ctx context.Context, nickname string, page, pageSize int) (*model.ReviewPage, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.reviews.CountByUser(ctx, user.ID)
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

	reviews, err := s.reviews.ListByUser(ctx, user.ID, pageSize, model.PageOffset(page, pageSize))
	if err != nil {
		return nil, err
	}
	result.Reviews = reviews
	return result, nil
}

// GetFavorites retrieves a page of a user's favorited games
func (s *UserService) GetFavorites(ctx context.Context, nickname string, page, pageSize int) (*model.FavoritePage, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.favorites.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	result := &model.FavoritePage{
		TotalPage: model.TotalPages(total, pageSize),
		NowPage:   page,
		List:      []*model.FavoriteGame{},
	}
	if total == 0 {
		return result, nil
	}

	list, err := s.favorites.ListByUser(ctx, user.ID, pageSize, model.PageOffset(page, pageSize))
	if err != nil {
		return nil, err
	}
	result.List = list
	return result, nil
}

// AddFavorite marks a game as a favorite for the acting user
func (s *UserService) AddFavorite(ctx context.Context, userID string, req *model.AddFavoriteRequest) error {
	if _, err := s.activeUser(ctx, userID); err != nil {
		return err
	}

	game, err := s.games.GetByID(ctx, req.GameID)
	if err != nil {
		return err
	}
	if game == nil {
		return ErrGameNotFound
	}

	existing, err := s.favorites.GetByUserAndGame(ctx, userID, req.GameID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyFavorited
	}

	favorite := &model.Favorite{
		UserID: userID,
		GameID: req.GameID,
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		// The unique index is the final authority under concurrency
		if errors.Is(err, database.ErrDuplicate) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

// RemoveFavorite unmarks a game as a favorite for the acting user
func (s *UserService) RemoveFavorite(ctx context.Context, userID, gameID string) error {
	existing, err := s.favorites.GetByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFavoriteNotFound
	}
	return s.favorites.Delete(ctx, userID, gameID)
}

// activeUser loads a user by ID and rejects missing or withdrawn accounts
func (s *UserService) activeUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Withdraw {
		return nil, ErrUserWithdrawn
	}
	return user, nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < model.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > model.MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
