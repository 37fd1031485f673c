package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/qna-api/internal/api"
	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/service"
	"github.com/phrazzld/qna-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"question not found", store.ErrQuestionNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", store.NewStoreError("question", "find", "lookup failed", store.ErrQuestionNotFound), http.StatusNotFound},
		{"duplicate login", store.ErrLoginIDExists, http.StatusConflict},
		{"empty title", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"store failure", store.NewStoreError("user", "save", "insert failed", errors.New("driver: bad connection")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("store failures never leak driver detail", func(t *testing.T) {
		t.Parallel()
		err := store.NewStoreError("user", "save", "insert failed", errors.New("driver: bad connection"))
		msg := api.GetSafeErrorMessage(err)
		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "driver")
	})

	t.Run("known errors map to friendly text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Wrong password", api.GetSafeErrorMessage(service.ErrWrongPassword))
		assert.Equal(t, "Question not found", api.GetSafeErrorMessage(store.ErrQuestionNotFound))
		assert.Equal(t, "Login ID already exists", api.GetSafeErrorMessage(store.ErrLoginIDExists))
	})

	t.Run("validation errors pass their message through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.ErrEmptyTitle.Error(), api.GetSafeErrorMessage(domain.ErrEmptyTitle))
	})
}
