package stats

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/bebe-pirat/edugame-api/internal/dependencies/clock"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/storage"
)

// DefaultActivityWindowDays is the default lookback for daily activity
const DefaultActivityWindowDays = 7

// CategoryCount is the number of recorded results for one game type
type CategoryCount struct {
	GameType model.GameType
	Count    int
}

// DayCount is the number of results recorded on one calendar day (UTC)
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// CategoryAverage is the mean score for one game type
type CategoryAverage struct {
	GameType     model.GameType
	AverageScore float64
}

// Overview holds headline counters for the admin dashboard
type Overview struct {
	TotalUsers       int
	TotalGamesPlayed int
}

// Service computes aggregate statistics over the result set.
// Every call recomputes from storage; nothing is cached.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new stats service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Popularity groups all results by game type and counts each group.
// Only observed game types appear; types with zero records are omitted
// rather than zero-filled. Output is sorted by game type name.
func (s *Service) Popularity(ctx context.Context) ([]CategoryCount, error) {
	results, err := s.storage.AllResults(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.GameType]int)
	for _, result := range results {
		counts[result.GameType]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for gameType, count := range counts {
		out = append(out, CategoryCount{GameType: gameType, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GameType < out[j].GameType
	})

	return out, nil
}

// DailyActivity buckets results from the last windowDays days by UTC
// calendar date and counts each bucket. Days without activity are
// omitted. Output ascends by date, oldest first.
func (s *Service) DailyActivity(ctx context.Context, windowDays int) ([]DayCount, error) {
	if windowDays <= 0 {
		windowDays = DefaultActivityWindowDays
	}

	results, err := s.storage.AllResults(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := s.clock.Now().AddDate(0, 0, -windowDays)

	counts := make(map[string]int)
	for _, result := range results {
		if result.CreatedAt.Before(cutoff) {
			continue
		}
		day := result.CreatedAt.UTC().Format(time.DateOnly)
		counts[day]++
	}

	out := make([]DayCount, 0, len(counts))
	for day, count := range counts {
		out = append(out, DayCount{Date: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out, nil
}

// AverageScores computes the arithmetic mean score per game type.
// JackSparrow is a non-scored game and is always excluded.
func (s *Service) AverageScores(ctx context.Context) ([]CategoryAverage, error) {
	results, err := s.storage.AllResults(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[model.GameType]int)
	counts := make(map[model.GameType]int)
	for _, result := range results {
		if result.GameType == model.GameTypeJackSparrow {
			continue
		}
		sums[result.GameType] += result.Score
		counts[result.GameType]++
	}

	out := make([]CategoryAverage, 0, len(sums))
	for gameType, sum := range sums {
		out = append(out, CategoryAverage{
			GameType:     gameType,
			AverageScore: float64(sum) / float64(counts[gameType]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GameType < out[j].GameType
	})

	return out, nil
}

// UserHistory returns another user's results, most recent first.
// Unlike the self-service history endpoint this fails with
// ErrUserNotFound when the user does not exist.
func (s *Service) UserHistory(ctx context.Context, userID model.UserID) ([]*model.GameResult, error) {
	if _, err := s.storage.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.storage.ResultsForUser(ctx, userID)
}

// GetOverview returns the headline counters: total student accounts and
// total recorded games.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	totalUsers, err := s.storage.CountUsersByRole(ctx, model.RoleStudent)
	if err != nil {
		return nil, err
	}

	totalGames, err := s.storage.CountResults(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalUsers:       totalUsers,
		TotalGamesPlayed: totalGames,
	}, nil
}
