package model

import "time"

// GameQuestion is a question scoped to a specific game. Structurally a
// board post plus the game reference, with the same ownership rule.
type GameQuestion struct {
	ID             string    `json:"id"`
	GameID         string    `json:"game_id"`
	AuthorID       string    `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

// GameQuestionAnswer is an answer to a game question
type GameQuestionAnswer struct {
	ID             string    `json:"id"`
	QuestionID     string    `json:"question_id"`
	AuthorID       string    `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Content        string    `json:"content"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

// GameQuestionDetail is a question together with its answers
type GameQuestionDetail struct {
	Question *GameQuestion         `json:"question"`
	Answers  []*GameQuestionAnswer `json:"answers"`
}

// GameQuestionPage is the paginated question listing for a game
type GameQuestionPage struct {
	TotalPage   int             `json:"totalPage"`
	NowPage     int             `json:"nowPage"`
	NowPageSize int             `json:"nowPageSize"`
	Questions   []*GameQuestion `json:"questions"`
}

// UploadGameQuestionRequest creates a question on a game's board
type UploadGameQuestionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateGameQuestionRequest edits an existing game question
type UpdateGameQuestionRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GameQuestionAnswerRequest creates an answer on a question
type GameQuestionAnswerRequest struct {
	Content string `json:"content"`
}

// UpdateGameQuestionAnswerRequest edits an existing answer
type UpdateGameQuestionAnswerRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
