package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"user not found", ErrUserNotFound, ErrCodeNotFound, http.StatusNotFound},
		{"property not found", ErrPropertyNotFound, ErrCodeNotFound, http.StatusNotFound},
		{"subscription not found", ErrSubscriptionNotFound, ErrCodeNotFound, http.StatusNotFound},
		{"wrapped sentinel", fmt.Errorf("looking up owner: %w", ErrUserNotFound), ErrCodeNotFound, http.StatusNotFound},
		{"deadline exceeded", context.DeadlineExceeded, ErrCodeStoreUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("disk on fire"), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", appErr.Code, tt.wantCode)
			}
			if appErr.HTTPStatus != tt.wantStatus {
				t.Errorf("status = %d, want %d", appErr.HTTPStatus, tt.wantStatus)
			}
			if appErr.UserMessage == "" {
				t.Error("user message is empty")
			}
		})
	}
}

func TestMapError_PassesThroughAppError(t *testing.T) {
	original := NewValidationError("bad type", map[string]string{"type": "unknown property type"})
	mapped := MapError(fmt.Errorf("validating payload: %w", original))
	if mapped != original {
		t.Error("wrapped AppError should be unwrapped, not re-mapped")
	}
	if mapped.Fields["type"] == "" {
		t.Error("field detail lost in mapping")
	}
}

func TestMapError_Nil(t *testing.T) {
	if MapError(nil) != nil {
		t.Error("nil error should map to nil")
	}
}

func TestMapError_InternalHidesTechnicalDetail(t *testing.T) {
	appErr := MapError(errors.New("connection string had password hunter2"))
	if appErr.UserMessage == appErr.TechnicalMessage {
		t.Error("user message should not expose the technical message")
	}
}
