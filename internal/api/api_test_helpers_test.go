package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/qna-api/internal/api"
	"github.com/phrazzld/qna-api/internal/platform/memstore"
	"github.com/phrazzld/qna-api/internal/service"
	"github.com/phrazzld/qna-api/internal/service/auth"
)

// newTestRouter builds a router over in-memory stores with the same routes
// the server registers, so handler tests exercise the full decode, service,
// and error mapping path.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	replies := memstore.NewReplyStore()
	questions := memstore.NewQuestionStore(replies, nil)
	users := memstore.NewUserStore()

	userService := service.NewUserService(users, nil, auth.NewPlaintextScheme(), nil)
	questionService := service.NewQuestionService(questions, nil)

	userHandler := api.NewUserHandler(userService, nil)
	questionHandler := api.NewQuestionHandler(questionService, replies, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
		})
		r.Route("/questions", func(r chi.Router) {
			r.Post("/", questionHandler.Create)
			r.Get("/", questionHandler.List)
			r.Get("/{id}", questionHandler.Get)
			r.Put("/{id}", questionHandler.Update)
			r.Delete("/{id}", questionHandler.Delete)
			r.Post("/{id}/replies", questionHandler.CreateReply)
			r.Get("/{id}/replies", questionHandler.ListReplies)
		})
	})
	return r
}

// doJSON performs a request with a JSON body against the router and returns
// the recorded response.
func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// createTestUser registers a user through the API and returns its id.
func createTestUser(t *testing.T, router http.Handler, loginID string) int64 {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/users", api.CreateUserRequest{
		LoginID:  loginID,
		Password: "password",
		Name:     "name",
		Email:    "javajigi@slipp.net",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created api.CreatedResponse
	decodeBody(t, rec, &created)
	return created.ID
}

// createTestQuestion posts a question through the API and returns its id.
func createTestQuestion(t *testing.T, router http.Handler, writerID int64) int64 {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/questions", api.CreateQuestionRequest{
		Title:    "title",
		Content:  "content",
		Writer:   "writer",
		WriterID: writerID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created api.CreatedResponse
	decodeBody(t, rec, &created)
	return created.ID
}
