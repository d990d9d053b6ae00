package storage

import (
	"context"

	"github.com/bebe-pirat/edugame-api/internal/model"
)

// Storage defines the interface for data persistence.
// Implementations are responsible for their own synchronization;
// callers never hold locks across storage calls.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error
	CountUsersByRole(ctx context.Context, role model.Role) (int, error)

	// Result operations. Results are append-only; individual records are
	// never updated, and deletion only happens as a cascade when the
	// owning user is removed.
	SaveResult(ctx context.Context, result *model.GameResult) error
	ResultsForUser(ctx context.Context, userID model.UserID) ([]*model.GameResult, error)
	AllResults(ctx context.Context) ([]*model.GameResult, error)
	DeleteResultsForUser(ctx context.Context, userID model.UserID) error
	CountResults(ctx context.Context) (int, error)
}
