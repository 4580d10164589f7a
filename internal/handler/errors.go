package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/meeplehub/api/internal/model"
	"github.com/meeplehub/api/internal/service"
)

// domainErrors lists every failure a service can report to a client.
// Anything else is treated as an internal error.
var domainErrors = []error{
	service.ErrLoginIDRequired,
	service.ErrLoginIDTaken,
	service.ErrNicknameRequired,
	service.ErrNicknameTaken,
	service.ErrNicknameTooLong,
	service.ErrPasswordRequired,
	service.ErrPasswordTooShort,
	service.ErrPasswordTooLong,
	service.ErrUserNotFound,
	service.ErrUserWithdrawn,
	service.ErrInvalidCredentials,
	service.ErrGameNotFound,
	service.ErrReviewNotFound,
	service.ErrNotReviewAuthor,
	service.ErrInvalidRating,
	service.ErrCommentRequired,
	service.ErrAlreadyFavorited,
	service.ErrFavoriteNotFound,
	service.ErrPostNotFound,
	service.ErrNotPostAuthor,
	service.ErrTitleRequired,
	service.ErrTitleTooLong,
	service.ErrContentRequired,
	service.ErrContentTooLong,
	service.ErrReplyNotFound,
	service.ErrNotReplyAuthor,
	service.ErrQuestionNotFound,
	service.ErrNotQuestionAuthor,
	service.ErrAnswerNotFound,
	service.ErrNotAnswerAuthor,
}

// writeServiceError maps a service error onto the response envelope
func writeServiceError(w http.ResponseWriter, err error) {
	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			WriteFailure(w, domainErr.Error())
			return
		}
	}

	slog.Error("internal error", slog.Any("error", err))
	WriteJSON(w, http.StatusInternalServerError, model.Envelope{
		Status:  http.StatusInternalServerError,
		Message: "an unexpected error occurred",
	})
}
