package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/bebe-pirat/edugame-api/internal/dependencies/clock"
	"github.com/bebe-pirat/edugame-api/internal/storage"
)

// NewForTesting creates an App with injected storage and clock so tests
// can control time and inspect persisted state directly.
func NewForTesting(store storage.Storage, clk clock.Clock, jwtSecret string, tokenTTL time.Duration, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return newWithDependencies(store, clk, jwtSecret, tokenTTL, logger)
}
