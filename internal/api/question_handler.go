package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/qna-api/internal/api/shared"
	"github.com/phrazzld/qna-api/internal/service"
	"github.com/phrazzld/qna-api/internal/store"
)

// CreateQuestionRequest represents the request body for posting a question.
type CreateQuestionRequest struct {
	Title    string `json:"title"     validate:"required"`
	Content  string `json:"content"   validate:"required"`
	Writer   string `json:"writer"    validate:"required"`
	WriterID int64  `json:"writer_id" validate:"required,gt=0"`
}

// UpdateQuestionRequest represents the request body for editing a question.
// WriterID identifies the caller; only the question's writer may edit.
type UpdateQuestionRequest struct {
	Title    string `json:"title"     validate:"required"`
	Content  string `json:"content"   validate:"required"`
	WriterID int64  `json:"writer_id" validate:"required,gt=0"`
}

// CreateReplyRequest represents the request body for posting a reply.
type CreateReplyRequest struct {
	Writer  string `json:"writer"  validate:"required"`
	Content string `json:"content" validate:"required"`
}

// QuestionHandler handles question and reply HTTP requests.
type QuestionHandler struct {
	questionService service.QuestionService
	replies         store.ReplyStore
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService service.QuestionService, replies store.ReplyStore, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionHandler{
		questionService: questionService,
		replies:         replies,
		validator:       validator.New(),
		logger:          logger.With(slog.String("component", "question_handler")),
	}
}

// Create handles POST /api/questions requests.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	id, err := h.questionService.Create(r.Context(), req.Title, req.Content, req.Writer, req.WriterID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// List handles GET /api/questions requests.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.FindAll(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionsToResponse(questions))
}

// Get handles GET /api/questions/{id} requests.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	question, err := h.questionService.FindByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionToResponse(question))
}

// Update handles PUT /api/questions/{id} requests.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateQuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	if err := h.questionService.Update(r.Context(), id, req.WriterID, req.Title, req.Content); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreatedResponse{ID: id})
}

// Delete handles DELETE /api/questions/{id}?writer_id=N requests.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	writerID, err := strconv.ParseInt(r.URL.Query().Get("writer_id"), 10, 64)
	if err != nil || writerID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid writer_id", err)
		return
	}

	if err := h.questionService.Delete(r.Context(), id, writerID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateReply handles POST /api/questions/{id}/replies requests.
func (h *QuestionHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	questionID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req CreateReplyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	// The reply must target a live question.
	if _, err := h.questionService.FindByID(r.Context(), questionID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	id, err := h.replies.Save(r.Context(), questionID, req.Writer, req.Content)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// ListReplies handles GET /api/questions/{id}/replies requests.
func (h *QuestionHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	questionID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	replies, err := h.replies.FindByQuestionID(r.Context(), questionID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, repliesToResponse(replies))
}
