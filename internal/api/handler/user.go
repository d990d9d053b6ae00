package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bebe-pirat/edugame-api/internal/api/middleware"
	"github.com/bebe-pirat/edugame-api/internal/api/request"
	"github.com/bebe-pirat/edugame-api/internal/api/response"
	"github.com/bebe-pirat/edugame-api/internal/auth"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/services/account"
	"github.com/bebe-pirat/edugame-api/internal/services/stats"
)

// UserHandler handles account and user-administration endpoints
type UserHandler struct {
	accounts *account.Service
	stats    *stats.Service
	tokens   *auth.TokenManager
	logger   *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(accounts *account.Service, statsService *stats.Service, tokens *auth.TokenManager, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		stats:    statsService,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewValidationError("username and password are required"))
		return
	}

	_, err := h.accounts.Register(r.Context(), req.Username, req.Password, model.Role(req.Role))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	// No token on registration; the user logs in separately
	response.JSON(w, http.StatusCreated, response.Message{Message: "Account created successfully. You can now log in."})
}

// Login handles POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, NewValidationError("username and password are required"))
		return
	}

	user, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.UserFromModel(user),
	})
}

// List handles GET /users (admin)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}

// Delete handles DELETE /users/{id} (admin)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	targetID := model.UserID(mux.Vars(r)["id"])
	claims := middleware.MustGetClaims(r.Context())

	if err := h.accounts.DeleteUser(r.Context(), targetID, model.UserID(claims.UserID)); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "User deleted"})
}

// UpdateAvatar handles PUT /users/avatar
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	claims := middleware.MustGetClaims(r.Context())

	user, err := h.accounts.UpdateAvatar(r.Context(), model.UserID(claims.UserID), req.Avatar)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UpdateAvatarResponse{
		Message: "Avatar updated",
		User:    response.UserFromModel(user),
	})
}

// Overview handles GET /users/stats (admin)
func (h *UserHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.GetOverview(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OverviewFromStats(overview))
}
