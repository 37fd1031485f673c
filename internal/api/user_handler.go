package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/qna-api/internal/api/shared"
	"github.com/phrazzld/qna-api/internal/service"
)

// CreateUserRequest represents the request body for registering a user.
type CreateUserRequest struct {
	LoginID  string `json:"user_id"  validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
}

// UpdateUserRequest represents the request body for the password-guarded
// user update. Password is the current password; the remaining fields are
// the replacement values.
type UpdateUserRequest struct {
	Password string `json:"password" validate:"required"`
	LoginID  string `json:"user_id"  validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	id, err := h.userService.CreateUser(r.Context(), req.LoginID, req.Password, req.Name, req.Email)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// List handles GET /api/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.FindAll(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// Get handles GET /api/users/{id} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.FindByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Update handles PUT /api/users/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	updatedID, err := h.userService.Update(r.Context(), id, req.Password, req.LoginID, req.Name, req.Email)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreatedResponse{ID: updatedID})
}
