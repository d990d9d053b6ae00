package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bebe-pirat/edugame-api/internal/auth"
	"github.com/bebe-pirat/edugame-api/internal/dependencies/clock"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAvatarRequired     = errors.New("avatar is required")
)

// MinPasswordLength is the minimum source length of a password before hashing
const MinPasswordLength = 6

// Service handles registration, login, and user administration
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new account service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Register creates a new user account. The username is trimmed and must be
// unique; uniqueness is enforced at write time. An empty role defaults to
// student. The password is hashed before anything is persisted.
func (s *Service) Register(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if role == "" {
		role = model.RoleStudent
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Avatar:       model.DefaultAvatar,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", string(user.ID)),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// Login verifies credentials and returns the matching user.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns every user account
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// GetUser returns a single user by id
func (s *Service) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// DeleteUser removes a user account. Callers cannot delete themselves.
// The user's game results are deleted along with the account so no
// orphaned records remain.
func (s *Service) DeleteUser(ctx context.Context, targetID, callerID model.UserID) error {
	user, err := s.storage.GetUser(ctx, targetID)
	if err != nil {
		return err
	}

	if user.ID == callerID {
		return model.ErrSelfDelete
	}

	if err := s.storage.DeleteUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.storage.DeleteResultsForUser(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info("user deleted",
		slog.String("user_id", string(targetID)),
		slog.String("deleted_by", string(callerID)),
	)

	return nil
}

// UpdateAvatar changes a user's avatar reference and returns the updated user
func (s *Service) UpdateAvatar(ctx context.Context, userID model.UserID, avatar string) (*model.User, error) {
	if strings.TrimSpace(avatar) == "" {
		return nil, ErrAvatarRequired
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Avatar = avatar
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
