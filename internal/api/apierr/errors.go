package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bebe-pirat/edugame-api/internal/auth"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/services/account"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeSelfDelete         = "SELF_DELETE"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeForbidden          = "FORBIDDEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Model errors
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusBadRequest, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, model.ErrSelfDelete):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfDelete, "You cannot delete your own account"}}
	case errors.Is(err, model.ErrInvalidGameType):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationError, "gameType must be one of MathPractice, Counting, JackSparrow"}}

	// Account errors
	case errors.Is(err, account.ErrInvalidCredentials):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, account.ErrUsernameRequired),
		errors.Is(err, account.ErrPasswordTooShort),
		errors.Is(err, account.ErrInvalidRole),
		errors.Is(err, account.ErrAvatarRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationError, err.Error()}}

	// Token errors
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidToken, "Invalid or expired token"}}

	default:
		// Unexpected failures are reported generically; detail stays in logs
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// IsInternal reports whether err maps to a generic 500 response
func IsInternal(err error) bool {
	return toHTTPError(err).status == http.StatusInternalServerError
}

// NewValidationError creates a 400 validation error with the given message
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeValidationError, message}}
}

// NewUnauthenticatedError creates a 401 error for requests without a token
func NewUnauthenticatedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthenticated, "No token provided, access denied"}}
}

// NewForbiddenError creates a 403 error for insufficient role
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin access required"}}
}

// NewInternalError creates a 500 internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
