package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bebe-pirat/edugame-api/internal/api/handler"
	apimiddleware "github.com/bebe-pirat/edugame-api/internal/api/middleware"
	"github.com/bebe-pirat/edugame-api/internal/auth"
	"github.com/bebe-pirat/edugame-api/internal/middleware"
	"github.com/bebe-pirat/edugame-api/internal/services/account"
	"github.com/bebe-pirat/edugame-api/internal/services/results"
	"github.com/bebe-pirat/edugame-api/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	TokenManager   *auth.TokenManager
	AccountService *account.Service
	ResultsService *results.Service
	StatsService   *stats.Service
}

// gate is the auth stage a route requires before its handler runs
type gate int

const (
	gateNone  gate = iota // public
	gateAuth              // valid token required
	gateAdmin             // valid token with admin role required
)

// route is one entry in the dispatch table
type route struct {
	method  string
	path    string
	gate    gate
	handler http.HandlerFunc
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	userHandler := handler.NewUserHandler(cfg.AccountService, cfg.StatsService, cfg.TokenManager, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.ResultsService, cfg.StatsService, cfg.Logger)

	authenticate := apimiddleware.Auth(cfg.TokenManager)
	adminOnly := apimiddleware.Admin(cfg.TokenManager)

	routes := []route{
		{http.MethodPost, "/users/register", gateNone, userHandler.Register},
		{http.MethodPost, "/users/login", gateNone, userHandler.Login},
		{http.MethodGet, "/users", gateAdmin, userHandler.List},
		{http.MethodGet, "/users/stats", gateAdmin, userHandler.Overview},
		{http.MethodPut, "/users/avatar", gateAuth, userHandler.UpdateAvatar},
		{http.MethodDelete, "/users/{id}", gateAdmin, userHandler.Delete},

		{http.MethodPost, "/game/save", gateAuth, gameHandler.Save},
		{http.MethodGet, "/game/history", gateAuth, gameHandler.History},
		{http.MethodGet, "/game/history/{userId}", gateAdmin, gameHandler.UserHistory},
		{http.MethodGet, "/game/stats/popularity", gateAuth, gameHandler.Popularity},
		{http.MethodGet, "/game/stats/activity", gateAuth, gameHandler.Activity},
		{http.MethodGet, "/game/stats/averages", gateAuth, gameHandler.Averages},

		{http.MethodGet, "/health", gateNone, healthHandler},
	}

	for _, rt := range routes {
		var h http.Handler = rt.handler
		switch rt.gate {
		case gateAuth:
			h = authenticate(h)
		case gateAdmin:
			h = adminOnly(h)
		}
		r.Handle(rt.path, h).Methods(rt.method)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
