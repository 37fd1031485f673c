package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/qna-api/internal/api/shared"
	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/service"
	"github.com/phrazzld/qna-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrEmptyWriter),
		errors.Is(err, domain.ErrEmptyLoginID),
		errors.Is(err, domain.ErrEmptyPassword):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Store failures never expose driver detail to clients.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong password"

	case errors.Is(err, service.ErrNotOwned):
		return "You are not the writer of this question"

	case errors.Is(err, store.ErrQuestionNotFound):
		return "Question not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrReplyNotFound):
		return "Reply not found"

	case errors.Is(err, store.ErrLoginIDExists):
		return "Login ID already exists"

	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError is the single funnel for handler error paths.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
