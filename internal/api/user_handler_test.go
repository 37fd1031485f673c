package api_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/qna-api/internal/api"
)

func TestUserHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("valid request returns 201 with assigned id", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		id := createTestUser(t, router, "userId")
		assert.Equal(t, int64(1), id)
	})

	t.Run("duplicate login id returns 409", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		createTestUser(t, router, "userId")
		rec := doJSON(t, router, http.MethodPost, "/api/users", api.CreateUserRequest{
			LoginID:  "userId",
			Password: "other",
			Name:     "other",
			Email:    "other@slipp.net",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/users", api.CreateUserRequest{
			LoginID: "userId",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/users", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_GetAndList(t *testing.T) {
	t.Parallel()

	t.Run("get returns user without password", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		id := createTestUser(t, router, "userId")
		rec := doJSON(t, router, http.MethodGet, "/api/users/"+strconv.FormatInt(id, 10), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got api.UserResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "userId", got.LoginID)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/api/users/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/api/users/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list returns all registered users", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		createTestUser(t, router, "first")
		createTestUser(t, router, "second")

		rec := doJSON(t, router, http.MethodGet, "/api/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []api.UserResponse
		decodeBody(t, rec, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].LoginID)
		assert.Equal(t, "second", got[1].LoginID)
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("correct password updates profile", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		id := createTestUser(t, router, "userId")
		rec := doJSON(t, router, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10), api.UpdateUserRequest{
			Password: "password",
			LoginID:  "updated",
			Name:     "updated name",
			Email:    "updated@slipp.net",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		get := doJSON(t, router, http.MethodGet, "/api/users/"+strconv.FormatInt(id, 10), nil)
		var got api.UserResponse
		decodeBody(t, get, &got)
		assert.Equal(t, "updated", got.LoginID)
		assert.Equal(t, "updated name", got.Name)
		assert.Equal(t, "updated@slipp.net", got.Email)
	})

	t.Run("wrong password returns 401 and leaves user unchanged", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		id := createTestUser(t, router, "userId")
		rec := doJSON(t, router, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10), api.UpdateUserRequest{
			Password: "1234",
			LoginID:  "updated",
			Name:     "updated name",
			Email:    "updated@slipp.net",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		get := doJSON(t, router, http.MethodGet, "/api/users/"+strconv.FormatInt(id, 10), nil)
		var got api.UserResponse
		decodeBody(t, get, &got)
		assert.Equal(t, "userId", got.LoginID)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPut, "/api/users/42", api.UpdateUserRequest{
			Password: "password",
			LoginID:  "updated",
			Name:     "updated name",
			Email:    "updated@slipp.net",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
