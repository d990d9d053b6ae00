package results

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bebe-pirat/edugame-api/internal/dependencies/clock"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/storage"
)

// Service records game-play outcomes and serves per-user history
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new results service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Submit validates and persists a single game result for the given user.
// The game type must be a member of the closed enum and the user must
// exist. Score has no lower bound; zero and negative values are stored
// as-is. The returned record carries the generated id and timestamp.
func (s *Service) Submit(ctx context.Context, userID model.UserID, gameType model.GameType, score int, trophy *string) (*model.GameResult, error) {
	if !model.ValidGameType(gameType) {
		return nil, model.ErrInvalidGameType
	}

	if _, err := s.storage.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	result := &model.GameResult{
		ID:        model.ResultID(uuid.NewString()),
		UserID:    userID,
		GameType:  gameType,
		Score:     score,
		Trophy:    trophy,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveResult(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("result recorded",
		slog.String("user_id", string(userID)),
		slog.String("game_type", string(gameType)),
		slog.Int("score", score),
	)

	return result, nil
}

// History returns all results for a user, most recent first.
// A user with no results gets an empty slice, not an error.
func (s *Service) History(ctx context.Context, userID model.UserID) ([]*model.GameResult, error) {
	return s.storage.ResultsForUser(ctx, userID)
}
