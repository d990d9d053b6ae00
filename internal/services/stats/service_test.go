package stats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bebe-pirat/edugame-api/internal/dependencies/mocks"
	"github.com/bebe-pirat/edugame-api/internal/model"
	"github.com/bebe-pirat/edugame-api/internal/storage/memory"
	"github.com/bebe-pirat/edugame-api/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	seq int
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
	s.seq = 0
}

func (s *ServiceSuite) addResult(gameType model.GameType, score int, createdAt time.Time) {
	s.seq++
	err := s.storage.SaveResult(s.ctx, &model.GameResult{
		ID:        model.ResultID(fmt.Sprintf("result-%d", s.seq)),
		UserID:    "user-1",
		GameType:  gameType,
		Score:     score,
		CreatedAt: createdAt,
	})
	s.Require().NoError(err)
}

// Popularity

func (s *ServiceSuite) TestPopularity() {
	now := s.clock.Now()
	s.addResult(model.GameTypeMathPractice, 60, now)
	s.addResult(model.GameTypeMathPractice, 80, now)
	s.addResult(model.GameTypeCounting, 50, now)

	counts, err := s.service.Popularity(s.ctx)
	s.Require().NoError(err)
	s.Equal([]CategoryCount{
		{GameType: model.GameTypeCounting, Count: 1},
		{GameType: model.GameTypeMathPractice, Count: 2},
	}, counts)
}

func (s *ServiceSuite) TestPopularityOmitsUnplayedTypes() {
	s.addResult(model.GameTypeCounting, 50, s.clock.Now())

	counts, err := s.service.Popularity(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(counts, 1)
	s.Equal(model.GameTypeCounting, counts[0].GameType)
}

func (s *ServiceSuite) TestPopularityEmpty() {
	counts, err := s.service.Popularity(s.ctx)
	s.Require().NoError(err)
	s.Empty(counts)
	s.NotNil(counts)
}

// DailyActivity

func (s *ServiceSuite) TestDailyActivityWindow() {
	now := s.clock.Now()
	s.addResult(model.GameTypeMathPractice, 60, now)
	s.addResult(model.GameTypeMathPractice, 70, now.AddDate(0, 0, -2))
	s.addResult(model.GameTypeCounting, 50, now.AddDate(0, 0, -2))

	// Outside the 7-day window; must not appear
	s.addResult(model.GameTypeCounting, 40, now.AddDate(0, 0, -10))

	days, err := s.service.DailyActivity(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal([]DayCount{
		{Date: "2024-06-08", Count: 2},
		{Date: "2024-06-10", Count: 1},
	}, days)
}

func (s *ServiceSuite) TestDailyActivityCustomWindow() {
	now := s.clock.Now()
	s.addResult(model.GameTypeMathPractice, 60, now.AddDate(0, 0, -10))

	days, err := s.service.DailyActivity(s.ctx, 30)
	s.Require().NoError(err)
	s.Require().Len(days, 1)
	s.Equal("2024-05-31", days[0].Date)
}

func (s *ServiceSuite) TestDailyActivityEmpty() {
	days, err := s.service.DailyActivity(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(days)
	s.NotNil(days)
}

// AverageScores

func (s *ServiceSuite) TestAverageScores() {
	now := s.clock.Now()
	s.addResult(model.GameTypeMathPractice, 60, now)
	s.addResult(model.GameTypeMathPractice, 80, now)
	s.addResult(model.GameTypeCounting, 50, now)

	averages, err := s.service.AverageScores(s.ctx)
	s.Require().NoError(err)
	s.Equal([]CategoryAverage{
		{GameType: model.GameTypeCounting, AverageScore: 50},
		{GameType: model.GameTypeMathPractice, AverageScore: 70},
	}, averages)
}

func (s *ServiceSuite) TestAverageScoresExcludesJackSparrow() {
	now := s.clock.Now()
	s.addResult(model.GameTypeMathPractice, 60, now)
	s.addResult(model.GameTypeJackSparrow, 999, now)

	averages, err := s.service.AverageScores(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(averages, 1)
	s.Equal(model.GameTypeMathPractice, averages[0].GameType)
}

// UserHistory

func (s *ServiceSuite) TestUserHistory() {
	err := s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "alice"})
	s.Require().NoError(err)

	now := s.clock.Now()
	s.addResult(model.GameTypeMathPractice, 60, now)
	s.addResult(model.GameTypeCounting, 50, now.Add(time.Hour))

	history, err := s.service.UserHistory(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(model.GameTypeCounting, history[0].GameType)
}

func (s *ServiceSuite) TestUserHistoryUnknownUser() {
	_, err := s.service.UserHistory(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Overview

func (s *ServiceSuite) TestGetOverviewCountsStudentsOnly() {
	err := s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "alice", Role: model.RoleStudent})
	s.Require().NoError(err)
	err = s.storage.SaveUser(s.ctx, &model.User{ID: "user-2", Username: "bob", Role: model.RoleStudent})
	s.Require().NoError(err)
	err = s.storage.SaveUser(s.ctx, &model.User{ID: "user-3", Username: "teach", Role: model.RoleAdmin})
	s.Require().NoError(err)

	s.addResult(model.GameTypeMathPractice, 60, s.clock.Now())

	overview, err := s.service.GetOverview(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, overview.TotalUsers)
	s.Equal(1, overview.TotalGamesPlayed)
}
