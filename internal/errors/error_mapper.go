package errors

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by repositories. MapError turns them into
// the AppError the handlers respond with.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// NewValidationError builds the field-detailed validation AppError.
func NewValidationError(technicalMessage string, fields map[string]string) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      MsgValidationFailed,
		Code:             ErrCodeValidation,
		HTTPStatus:       http.StatusBadRequest,
		Fields:           fields,
	}
}

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewAppError(err.Error(), MsgUserNotFound, ErrCodeNotFound, http.StatusNotFound, err)
	case errors.Is(err, ErrPropertyNotFound):
		return NewAppError(err.Error(), MsgPropertyNotFound, ErrCodeNotFound, http.StatusNotFound, err)
	case errors.Is(err, ErrSubscriptionNotFound):
		return NewAppError(err.Error(), MsgSubscriptionNotFound, ErrCodeNotFound, http.StatusNotFound, err)
	case errors.Is(err, mongo.ErrNoDocuments):
		return NewAppError(err.Error(), MsgPropertyNotFound, ErrCodeNotFound, http.StatusNotFound, err)
	case errors.Is(err, context.DeadlineExceeded),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		return NewAppError(err.Error(), MsgStoreUnavailable, ErrCodeStoreUnavailable, http.StatusServiceUnavailable, err)
	default:
		return NewAppError(err.Error(), MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
	}
}
