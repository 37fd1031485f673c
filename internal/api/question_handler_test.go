package api_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/qna-api/internal/api"
)

func TestQuestionHandler_CreateAndGet(t *testing.T) {
	t.Parallel()

	t.Run("valid request returns 201 with assigned id", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		id := createTestQuestion(t, router, writerID)
		assert.Equal(t, int64(1), id)

		rec := doJSON(t, router, http.MethodGet, "/api/questions/"+strconv.FormatInt(id, 10), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got api.QuestionResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, "title", got.Title)
		assert.Equal(t, "content", got.Content)
		assert.Equal(t, writerID, got.WriterID)
	})

	t.Run("blank title returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/questions", api.CreateQuestionRequest{
			Content:  "content",
			Writer:   "writer",
			WriterID: 1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/api/questions/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		createTestQuestion(t, router, writerID)
		createTestQuestion(t, router, writerID)

		rec := doJSON(t, router, http.MethodGet, "/api/questions", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []api.QuestionResponse
		decodeBody(t, rec, &got)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})
}

func TestQuestionHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("writer can edit title and content", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		id := createTestQuestion(t, router, writerID)

		rec := doJSON(t, router, http.MethodPut, "/api/questions/"+strconv.FormatInt(id, 10), api.UpdateQuestionRequest{
			Title:    "updated title",
			Content:  "updated content",
			WriterID: writerID,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		get := doJSON(t, router, http.MethodGet, "/api/questions/"+strconv.FormatInt(id, 10), nil)
		var got api.QuestionResponse
		decodeBody(t, get, &got)
		assert.Equal(t, "updated title", got.Title)
		assert.Equal(t, "updated content", got.Content)
	})

	t.Run("someone else's edit returns 403", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		otherID := createTestUser(t, router, "other")
		id := createTestQuestion(t, router, writerID)

		rec := doJSON(t, router, http.MethodPut, "/api/questions/"+strconv.FormatInt(id, 10), api.UpdateQuestionRequest{
			Title:    "updated title",
			Content:  "updated content",
			WriterID: otherID,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestQuestionHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("writer can delete and replies go with the question", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		id := createTestQuestion(t, router, writerID)
		qPath := "/api/questions/" + strconv.FormatInt(id, 10)

		rec := doJSON(t, router, http.MethodPost, qPath+"/replies", api.CreateReplyRequest{
			Writer:  "other",
			Content: "a reply",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, qPath+"?writer_id="+strconv.FormatInt(writerID, 10), nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, qPath, nil).Code)

		replies := doJSON(t, router, http.MethodGet, qPath+"/replies", nil)
		require.Equal(t, http.StatusOK, replies.Code)
		var got []api.ReplyResponse
		decodeBody(t, replies, &got)
		assert.Empty(t, got)
	})

	t.Run("someone else's delete returns 403", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		otherID := createTestUser(t, router, "other")
		id := createTestQuestion(t, router, writerID)

		rec := doJSON(t, router, http.MethodDelete,
			"/api/questions/"+strconv.FormatInt(id, 10)+"?writer_id="+strconv.FormatInt(otherID, 10), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("deleting twice returns 404", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		id := createTestQuestion(t, router, writerID)
		path := "/api/questions/" + strconv.FormatInt(id, 10) + "?writer_id=" + strconv.FormatInt(writerID, 10)

		require.Equal(t, http.StatusNoContent, doJSON(t, router, http.MethodDelete, path, nil).Code)
		assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodDelete, path, nil).Code)
	})

	t.Run("missing writer_id returns 400", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		id := createTestQuestion(t, router, writerID)

		rec := doJSON(t, router, http.MethodDelete, "/api/questions/"+strconv.FormatInt(id, 10), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestQuestionHandler_Replies(t *testing.T) {
	t.Parallel()

	t.Run("reply to missing question returns 404", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/api/questions/42/replies", api.CreateReplyRequest{
			Writer:  "other",
			Content: "a reply",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("replies list only covers the requested question", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(t)

		writerID := createTestUser(t, router, "writer")
		first := createTestQuestion(t, router, writerID)
		second := createTestQuestion(t, router, writerID)

		for _, target := range []int64{first, first, second} {
			rec := doJSON(t, router, http.MethodPost,
				"/api/questions/"+strconv.FormatInt(target, 10)+"/replies", api.CreateReplyRequest{
					Writer:  "other",
					Content: "a reply",
				})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := doJSON(t, router, http.MethodGet, "/api/questions/"+strconv.FormatInt(first, 10)+"/replies", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []api.ReplyResponse
		decodeBody(t, rec, &got)
		require.Len(t, got, 2)
		for _, reply := range got {
			assert.Equal(t, first, reply.QuestionID)
		}
	})
}
