package service

import (
	"context"

	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/pkg/jwt"
)

// Shared func-field mocks for the repository interfaces. Unset fields
// behave like empty repositories.

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user *model.User) error
	getByIDFunc        func(ctx context.Context, id string) (*model.User, error)
	getByLoginIDFunc   func(ctx context.Context, loginID string) (*model.User, error)
	getByNicknameFunc  func(ctx context.Context, nickname string) (*model.User, error)
	updateInfoFunc     func(ctx context.Context, user *model.User) error
	updatePasswordFunc func(ctx context.Context, userID, hash string) error
	withdrawFunc       func(ctx context.Context, userID string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	if m.getByLoginIDFunc != nil {
		return m.getByLoginIDFunc(ctx, loginID)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByNickname(ctx context.Context, nickname string) (*model.User, error) {
	if m.getByNicknameFunc != nil {
		return m.getByNicknameFunc(ctx, nickname)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateInfo(ctx context.Context, user *model.User) error {
	if m.updateInfoFunc != nil {
		return m.updateInfoFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID, hash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, userID, hash)
	}
	return nil
}

func (m *mockUserRepo) Withdraw(ctx context.Context, userID string) error {
	if m.withdrawFunc != nil {
		return m.withdrawFunc(ctx, userID)
	}
	return nil
}

type mockFavoriteRepo struct {
	createFunc           func(ctx context.Context, favorite *model.Favorite) error
	getByUserAndGameFunc func(ctx context.Context, userID, gameID string) (*model.Favorite, error)
	deleteFunc           func(ctx context.Context, userID, gameID string) error
	listByUserFunc       func(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error)
	countByUserFunc      func(ctx context.Context, userID string) (int, error)
}

func (m *mockFavoriteRepo) Create(ctx context.Context, favorite *model.Favorite) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, favorite)
	}
	return nil
}

func (m *mockFavoriteRepo) GetByUserAndGame(ctx context.Context, userID, gameID string) (*model.Favorite, error) {
	if m.getByUserAndGameFunc != nil {
		return m.getByUserAndGameFunc(ctx, userID, gameID)
	}
	return nil, nil
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, userID, gameID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, gameID)
	}
	return nil
}

func (m *mockFavoriteRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.FavoriteGame, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockFavoriteRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if m.countByUserFunc != nil {
		return m.countByUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockGameRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Game, error)
	listFunc    func(ctx context.Context, keyword string, limit, offset int) ([]*model.Game, error)
	countFunc   func(ctx context.Context, keyword string) (int, error)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*model.Game, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGameRepo) List(ctx context.Context, keyword string, limit, offset int) ([]*model.Game, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, keyword, limit, offset)
	}
	return nil, nil
}

func (m *mockGameRepo) Count(ctx context.Context, keyword string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, keyword)
	}
	return 0, nil
}

type mockReviewRepo struct {
	createFunc      func(ctx context.Context, review *model.Review) error
	getByIDFunc     func(ctx context.Context, id string) (*model.Review, error)
	updateFunc      func(ctx context.Context, id, comment string, rating int) error
	deleteFunc      func(ctx context.Context, id string) error
	listByGameFunc  func(ctx context.Context, gameID string, limit, offset int) ([]*model.ReviewDetail, error)
	countByGameFunc func(ctx context.Context, gameID string) (int, error)
	listByUserFunc  func(ctx context.Context, userID string, limit, offset int) ([]*model.ReviewDetail, error)
	countByUserFunc func(ctx context.Context, userID string) (int, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *model.Review) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*model.Review, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepo) Update(ctx context.Context, id, comment string, rating int) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, comment, rating)
	}
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepo) ListByGame(ctx context.Context, gameID string, limit, offset int) ([]*model.ReviewDetail, error) {
	if m.listByGameFunc != nil {
		return m.listByGameFunc(ctx, gameID, limit, offset)
	}
	return nil, nil
}

func (m *mockReviewRepo) CountByGame(ctx context.Context, gameID string) (int, error) {
	if m.countByGameFunc != nil {
		return m.countByGameFunc(ctx, gameID)
	}
	return 0, nil
}

func (m *mockReviewRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.ReviewDetail, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockReviewRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if m.countByUserFunc != nil {
		return m.countByUserFunc(ctx, userID)
	}
	return 0, nil
}

type mockBoardRepo struct {
	createFunc  func(ctx context.Context, post *model.BoardPost) error
	getByIDFunc func(ctx context.Context, id string) (*model.BoardPost, error)
	updateFunc  func(ctx context.Context, id, title, content string) error
	deleteFunc  func(ctx context.Context, id string) error
	listFunc    func(ctx context.Context, keyword string, limit, offset int) ([]*model.BoardPost, error)
	countFunc   func(ctx context.Context, keyword string) (int, error)
}

func (m *mockBoardRepo) Create(ctx context.Context, post *model.BoardPost) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return nil
}

func (m *mockBoardRepo) GetByID(ctx context.Context, id string) (*model.BoardPost, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBoardRepo) Update(ctx context.Context, id, title, content string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, title, content)
	}
	return nil
}

func (m *mockBoardRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBoardRepo) List(ctx context.Context, keyword string, limit, offset int) ([]*model.BoardPost, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, keyword, limit, offset)
	}
	return nil, nil
}

func (m *mockBoardRepo) Count(ctx context.Context, keyword string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, keyword)
	}
	return 0, nil
}

type mockBoardReplyRepo struct {
	createFunc     func(ctx context.Context, reply *model.BoardReply) error
	getByIDFunc    func(ctx context.Context, id string) (*model.BoardReply, error)
	updateFunc     func(ctx context.Context, id, content string) error
	deleteFunc     func(ctx context.Context, id string) error
	listByPostFunc func(ctx context.Context, postID string) ([]*model.BoardReply, error)
}

func (m *mockBoardReplyRepo) Create(ctx context.Context, reply *model.BoardReply) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, reply)
	}
	return nil
}

func (m *mockBoardReplyRepo) GetByID(ctx context.Context, id string) (*model.BoardReply, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBoardReplyRepo) Update(ctx context.Context, id, content string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, content)
	}
	return nil
}

func (m *mockBoardReplyRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBoardReplyRepo) ListByPost(ctx context.Context, postID string) ([]*model.BoardReply, error) {
	if m.listByPostFunc != nil {
		return m.listByPostFunc(ctx, postID)
	}
	return nil, nil
}

type mockQuestionRepo struct {
	createFunc      func(ctx context.Context, question *model.GameQuestion) error
	getByIDFunc     func(ctx context.Context, id string) (*model.GameQuestion, error)
	updateFunc      func(ctx context.Context, id, title, content string) error
	deleteFunc      func(ctx context.Context, id string) error
	listByGameFunc  func(ctx context.Context, gameID string, limit, offset int) ([]*model.GameQuestion, error)
	countByGameFunc func(ctx context.Context, gameID string) (int, error)
}

func (m *mockQuestionRepo) Create(ctx context.Context, question *model.GameQuestion) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, question)
	}
	return nil
}

func (m *mockQuestionRepo) GetByID(ctx context.Context, id string) (*model.GameQuestion, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQuestionRepo) Update(ctx context.Context, id, title, content string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, title, content)
	}
	return nil
}

func (m *mockQuestionRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockQuestionRepo) ListByGame(ctx context.Context, gameID string, limit, offset int) ([]*model.GameQuestion, error) {
	if m.listByGameFunc != nil {
		return m.listByGameFunc(ctx, gameID, limit, offset)
	}
	return nil, nil
}

func (m *mockQuestionRepo) CountByGame(ctx context.Context, gameID string) (int, error) {
	if m.countByGameFunc != nil {
		return m.countByGameFunc(ctx, gameID)
	}
	return 0, nil
}

type mockAnswerRepo struct {
	createFunc         func(ctx context.Context, answer *model.GameQuestionAnswer) error
	getByIDFunc        func(ctx context.Context, id string) (*model.GameQuestionAnswer, error)
	updateFunc         func(ctx context.Context, id, content string) error
	deleteFunc         func(ctx context.Context, id string) error
	listByQuestionFunc func(ctx context.Context, questionID string) ([]*model.GameQuestionAnswer, error)
}

func (m *mockAnswerRepo) Create(ctx context.Context, answer *model.GameQuestionAnswer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, answer)
	}
	return nil
}

func (m *mockAnswerRepo) GetByID(ctx context.Context, id string) (*model.GameQuestionAnswer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAnswerRepo) Update(ctx context.Context, id, content string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, content)
	}
	return nil
}

func (m *mockAnswerRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAnswerRepo) ListByQuestion(ctx context.Context, questionID string) ([]*model.GameQuestionAnswer, error) {
	if m.listByQuestionFunc != nil {
		return m.listByQuestionFunc(ctx, questionID)
	}
	return nil, nil
}

type mockTokenIssuer struct {
	signFunc func(claims jwt.Claims) (string, error)
}

func (m *mockTokenIssuer) Sign(claims jwt.Claims) (string, error) {
	if m.signFunc != nil {
		return m.signFunc(claims)
	}
	return "test-token", nil
}
