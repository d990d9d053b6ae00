package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bebe-pirat/edugame-api/internal/api/middleware"
	"github.com/bebe-pirat/edugame-api/internal/api/request"
	"github.com/bebe-pirat/edugame-api/internal/api/response"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/services/results"
	"github.com/bebe-pirat/edugame-api/internal/services/stats"
)

// GameHandler handles result recording and statistics endpoints
type GameHandler struct {
	results *results.Service
	stats   *stats.Service
	logger  *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(resultsService *results.Service, statsService *stats.Service, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		results: resultsService,
		stats:   statsService,
		logger:  logger,
	}
}

// Save handles POST /game/save
func (h *GameHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	if req.GameType == "" || req.Score == nil {
		WriteError(w, NewValidationError("gameType and score are required"))
		return
	}

	claims := middleware.MustGetClaims(r.Context())

	result, err := h.results.Submit(r.Context(), model.UserID(claims.UserID), model.GameType(req.GameType), *req.Score, req.Trophy)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SaveResultResponse{
		Message: "Result saved",
		Data:    response.ResultFromModel(result),
	})
}

// History handles GET /game/history
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	history, err := h.results.History(r.Context(), model.UserID(claims.UserID))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultsFromModel(history))
}

// UserHistory handles GET /game/history/{userId} (admin)
func (h *GameHandler) UserHistory(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["userId"])

	history, err := h.stats.UserHistory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultsFromModel(history))
}

// Popularity handles GET /game/stats/popularity
func (h *GameHandler) Popularity(w http.ResponseWriter, r *http.Request) {
	counts, err := h.stats.Popularity(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryCountsFromStats(counts))
}

// Activity handles GET /game/stats/activity
func (h *GameHandler) Activity(w http.ResponseWriter, r *http.Request) {
	days, err := h.stats.DailyActivity(r.Context(), stats.DefaultActivityWindowDays)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DayCountsFromStats(days))
}

// Averages handles GET /game/stats/averages
func (h *GameHandler) Averages(w http.ResponseWriter, r *http.Request) {
	averages, err := h.stats.AverageScores(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryAveragesFromStats(averages))
}
