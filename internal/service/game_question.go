package service

import (
	"context"
	"strings"

	"github.com/meeplehub/api/internal/model"
)

// GameQuestionRepository defines the interface for game question storage
type GameQuestionRepository interface {
	Create(ctx context.Context, question *model.GameQuestion) error
	GetByID(ctx context.Context, id string) (*model.GameQuestion, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
	ListByGame(ctx context.Context, gameID string, limit, offset int) ([]*model.GameQuestion, error)
	CountByGame(ctx context.Context, gameID string) (int, error)
}

// GameQuestionAnswerRepository defines the interface for answer storage
type GameQuestionAnswerRepository interface {
	Create(ctx context.Context, answer *model.GameQuestionAnswer) error
	GetByID(ctx context.Context, id string) (*model.GameQuestionAnswer, error)
	Update(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	ListByQuestion(ctx context.Context, questionID string) ([]*model.GameQuestionAnswer, error)
}

// GameQuestionService handles per-game question boards
type GameQuestionService struct {
	questions GameQuestionRepository
	answers   GameQuestionAnswerRepository
	games     GameRepository
	users     UserRepository
}

// GameQuestionServiceConfig holds configuration for the question service
type GameQuestionServiceConfig struct {
	Questions GameQuestionRepository
	Answers   GameQuestionAnswerRepository
	Games     GameRepository
	Users     UserRepository
}

// NewGameQuestionService creates a new game question service
func NewGameQuestionService(cfg GameQuestionServiceConfig) *GameQuestionService {
	return &GameQuestionService{
		questions: cfg.Questions,
		answers:   cfg.Answers,
		games:     cfg.Games,
		users:     cfg.Users,
	}
}

// Upload creates a new question on a game's board
func (s *GameQuestionService) Upload(ctx context.Context, userID, gameID string, req *model.UploadGameQuestionRequest) (*model.GameQuestion, error) {
	if err := validatePostContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Withdraw {
		return nil, ErrUserNotFound
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	question := &model.GameQuestion{
		GameID:         game.ID,
		AuthorID:       user.ID,
		AuthorNickname: user.Nickname,
		Title:          strings.TrimSpace(req.Title),
		Content:        strings.TrimSpace(req.Content),
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// Get retrieves a question together with its answers
func (s *GameQuestionService) Get(ctx context.Context, id string) (*model.GameQuestionDetail, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answers, err := s.answers.ListByQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.GameQuestionDetail{
		Question: question,
		Answers:  answers,
	}, nil
}

// Update changes a question's title and content. Only the author may edit.
func (s *GameQuestionService) Update(ctx context.Context, userID string, req *model.UpdateGameQuestionRequest) (*model.GameQuestion, error) {
	if err := validatePostContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	question, err := s.questions.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if question.AuthorID != userID {
		return nil, ErrNotQuestionAuthor
	}

	question.Title = strings.TrimSpace(req.Title)
	question.Content = strings.TrimSpace(req.Content)

	if err := s.questions.Update(ctx, question.ID, question.Title, question.Content); err != nil {
		return nil, err
	}
	return question, nil
}

// Delete removes a question and its answers. Only the author may delete.
func (s *GameQuestionService) Delete(ctx context.Context, userID, id string) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	if question.AuthorID != userID {
		return ErrNotQuestionAuthor
	}
	return s.questions.Delete(ctx, id)
}

// ListByGame retrieves a page of questions for a game
func (s *GameQuestionService) ListByGame(ctx context.Context, gameID string, page, pageSize int) (*model.GameQuestionPage, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	page, pageSize = normalizePaging(page, pageSize)

	total, err := s.questions.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	result := &model.GameQuestionPage{
		TotalPage:   model.TotalPages(total, pageSize),
		NowPage:     page,
		NowPageSize: pageSize,
		Questions:   []*model.GameQuestion{},
	}
	if total == 0 {
		return result, nil
	}

	questions, err := s.questions.ListByGame(ctx, gameID, pageSize, model.PageOffset(page, pageSize))
	if err != nil {
		return nil, err
	}
	result.Questions = questions
	return result, nil
}

// CreateAnswer adds an answer to a question
func (s *GameQuestionService) CreateAnswer(ctx context.Context, userID, questionID string, req *model.GameQuestionAnswerRequest) (*model.GameQuestionAnswer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.Content) > model.MaxContentLength {
		return nil, ErrContentTooLong
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Withdraw {
		return nil, ErrUserNotFound
	}

	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answer := &model.GameQuestionAnswer{
		QuestionID:     question.ID,
		AuthorID:       user.ID,
		AuthorNickname: user.Nickname,
		Content:        strings.TrimSpace(req.Content),
	}

	if err := s.answers.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// UpdateAnswer changes an answer's content. Only the author may edit.
func (s *GameQuestionService) UpdateAnswer(ctx context.Context, userID string, req *model.UpdateGameQuestionAnswerRequest) (*model.GameQuestionAnswer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.Content) > model.MaxContentLength {
		return nil, ErrContentTooLong
	}

	answer, err := s.answers.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}
	if answer.AuthorID != userID {
		return nil, ErrNotAnswerAuthor
	}

	answer.Content = strings.TrimSpace(req.Content)

	if err := s.answers.Update(ctx, answer.ID, answer.Content); err != nil {
		return nil, err
	}
	return answer, nil
}

// DeleteAnswer removes an answer. Only the author may delete.
func (s *GameQuestionService) DeleteAnswer(ctx context.Context, userID, id string) error {
	answer, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}
	if answer.AuthorID != userID {
		return ErrNotAnswerAuthor
	}
	return s.answers.Delete(ctx, id)
}
