package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/bebe-pirat/edugame-api/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Username:     "alice",
		PasswordHash: "hash",
		Role:         model.RoleStudent,
		Avatar:       model.DefaultAvatar,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.Role, retrieved.Role)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{ID: "user-1", Username: "alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)

	_, err = s.storage.GetUserByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersOrderedByCreation() {
	now := time.Now().UTC()
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-2", Username: "bob", CreatedAt: now.Add(time.Minute)})
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "alice", CreatedAt: now})

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal(model.UserID("user-1"), users[0].ID)
	s.Equal(model.UserID("user-2"), users[1].ID)
}

func (s *StorageSuite) TestDeleteUser() {
	user := &model.User{ID: "user-1", Username: "alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	err := s.storage.DeleteUser(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *StorageSuite) TestDeleteUserNotFound() {
	err := s.storage.DeleteUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCountUsersByRole() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "alice", Role: model.RoleStudent})
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-2", Username: "bob", Role: model.RoleStudent})
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-3", Username: "teach", Role: model.RoleAdmin})

	count, err := s.storage.CountUsersByRole(s.ctx, model.RoleStudent)
	s.Require().NoError(err)
	s.Equal(2, count)
}

// Result tests

func (s *StorageSuite) TestSaveAndFetchResults() {
	now := time.Now().UTC()
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{
		ID:        "result-1",
		UserID:    "user-1",
		GameType:  model.GameTypeMathPractice,
		Score:     80,
		CreatedAt: now,
	})
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{
		ID:        "result-2",
		UserID:    "user-1",
		GameType:  model.GameTypeCounting,
		Score:     50,
		CreatedAt: now.Add(time.Minute),
	})
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{
		ID:        "result-3",
		UserID:    "user-2",
		GameType:  model.GameTypeMathPractice,
		Score:     60,
		CreatedAt: now,
	})

	results, err := s.storage.ResultsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(model.ResultID("result-2"), results[0].ID)
	s.Equal(model.ResultID("result-1"), results[1].ID)

	all, err := s.storage.AllResults(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	count, err := s.storage.CountResults(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *StorageSuite) TestResultsForUserEmpty() {
	results, err := s.storage.ResultsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(results)
	s.NotNil(results)
}

func (s *StorageSuite) TestResultTrophyRoundTrip() {
	trophy := "gold"
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{
		ID:       "result-1",
		UserID:   "user-1",
		GameType: model.GameTypeCounting,
		Score:    100,
		Trophy:   &trophy,
	})

	results, err := s.storage.ResultsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Require().NotNil(results[0].Trophy)
	s.Equal("gold", *results[0].Trophy)
}

func (s *StorageSuite) TestDeleteResultsForUser() {
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{ID: "result-1", UserID: "user-1"})
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{ID: "result-2", UserID: "user-1"})
	_ = s.storage.SaveResult(s.ctx, &model.GameResult{ID: "result-3", UserID: "user-2"})

	err := s.storage.DeleteResultsForUser(s.ctx, "user-1")
	s.Require().NoError(err)

	results, err := s.storage.ResultsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(results)

	count, err := s.storage.CountResults(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}
