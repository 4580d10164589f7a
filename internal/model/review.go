package model

import "time"

// Rating bounds for game reviews
const (
	MinRating = 1
	MaxRating = 10
)

// Review represents a user's review of a game. Author nickname and game
// name are denormalized onto the record so listings avoid extra lookups.
type Review struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserNickname string    `json:"user_nickname"`
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Comment      string    `json:"comment"`
	Rating       int       `json:"rating"`
	CreatedOn    time.Time `json:"created_on"`
}

// ReviewDetail is the listing view of a review with the localized game
// name joined in and the timestamp rendered as a date string.
type ReviewDetail struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	GameID       string `json:"game_id"`
	GameName     string `json:"game_name"`
	GameNameKor  string `json:"game_name_kor,omitempty"`
	UserNickname string `json:"user_nickname"`
	Comment      string `json:"comment"`
	Rating       int    `json:"rating"`
	CreatedAt    string `json:"created_at"`
}

// ReviewPage is the paginated review listing payload
type ReviewPage struct {
	TotalPage   int             `json:"totalPage"`
	NowPage     int             `json:"nowPage"`
	NowPageSize int             `json:"nowPageSize"`
	Reviews     []*ReviewDetail `json:"reviews"`
}

// UploadReviewRequest represents a request to review a game
type UploadReviewRequest struct {
	GameID  string `json:"game_id"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// UpdateReviewRequest represents a request to edit an existing review
type UpdateReviewRequest struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}
