package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/bebe-pirat/edugame-api/internal/auth"
	"github.com/bebe-pirat/edugame-api/internal/dependencies/clock"
	"github.com/bebe-pirat/edugame-api/internal/services/account"
	"github.com/bebe-pirat/edugame-api/internal/services/results"
	"github.com/bebe-pirat/edugame-api/internal/services/stats"
	"github.com/bebe-pirat/edugame-api/internal/storage"
	"github.com/bebe-pirat/edugame-api/internal/storage/memory"
	redisstorage "github.com/bebe-pirat/edugame-api/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Auth
	TokenManager *auth.TokenManager

	// Services
	AccountService *account.Service
	ResultsService *results.Service
	StatsService   *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// JWTSecret signs session tokens (required)
	JWTSecret string
	// TokenTTL is the session token lifetime (defaults to auth.DefaultTokenTTL)
	TokenTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.JWTSecret, cfg.TokenTTL, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, jwtSecret string, tokenTTL time.Duration, logger *slog.Logger) *App {
	tokens := auth.NewTokenManager(jwtSecret, tokenTTL, clk)
	accountService := account.New(store, clk, logger)
	resultsService := results.New(store, clk, logger)
	statsService := stats.New(store, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		TokenManager:   tokens,
		AccountService: accountService,
		ResultsService: resultsService,
		StatsService:   statsService,
	}
}
