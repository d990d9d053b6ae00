package handler

import (
	"log/slog"
	"net/http"

	"github.com/bebe-pirat/edugame-api/internal/api/apierr"
)

// Re-export apierr helpers for convenience within handlers
var (
	WriteError         = apierr.WriteError
	NewValidationError = apierr.NewValidationError
)

// writeServiceError writes the mapped error response. Unexpected errors
// (those that surface as a generic 500) are logged with full detail
// before the sanitized response goes out.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if apierr.IsInternal(err) {
		logger.Error("internal error", slog.String("error", err.Error()))
	}
	apierr.WriteError(w, err)
}
