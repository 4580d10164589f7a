package service

import "errors"

// Account errors
var (
	ErrLoginIDRequired    = errors.New("login id is required")
	ErrLoginIDTaken       = errors.New("login id is already in use")
	ErrNicknameRequired   = errors.New("nickname is required")
	ErrNicknameTaken      = errors.New("nickname is already in use")
	ErrNicknameTooLong    = errors.New("nickname is too long")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserWithdrawn      = errors.New("account has been withdrawn")
	ErrInvalidCredentials = errors.New("invalid login id or password")
)

// Game and review errors
var (
	ErrGameNotFound    = errors.New("game not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewAuthor = errors.New("not the author of this review")
	ErrInvalidRating   = errors.New("rating must be between 1 and 10")
	ErrCommentRequired = errors.New("comment is required")
)

// Favorite errors
var (
	ErrAlreadyFavorited = errors.New("game is already a favorite")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Board errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostAuthor   = errors.New("not the author of this post")
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrContentRequired = errors.New("content is required")
	ErrContentTooLong  = errors.New("content is too long")
	ErrReplyNotFound   = errors.New("reply not found")
	ErrNotReplyAuthor  = errors.New("not the author of this reply")
)

// Game question errors
var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrNotQuestionAuthor = errors.New("not the author of this question")
	ErrAnswerNotFound    = errors.New("answer not found")
	ErrNotAnswerAuthor   = errors.New("not the author of this answer")
)
