package account

import (
	"context"
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
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegister() {
	user, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)
	s.NotEmpty(user.ID)
	s.Equal("alice", user.Username)
	s.Equal(model.RoleStudent, user.Role)
	s.Equal(model.DefaultAvatar, user.Avatar)
	s.Equal(s.clock.Now(), user.CreatedAt)

	// Password is stored hashed
	s.NotEqual("secret123", user.PasswordHash)
	s.NotEmpty(user.PasswordHash)
}

func (s *ServiceSuite) TestRegisterDefaultsToStudent() {
	user, err := s.service.Register(s.ctx, "alice", "secret123", "")
	s.Require().NoError(err)
	s.Equal(model.RoleStudent, user.Role)
}

func (s *ServiceSuite) TestRegisterAdmin() {
	user, err := s.service.Register(s.ctx, "teach", "secret123", model.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, user.Role)
}

func (s *ServiceSuite) TestRegisterTrimsUsername() {
	user, err := s.service.Register(s.ctx, "  alice  ", "secret123", model.RoleStudent)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)

	// Lookup works on the trimmed form
	_, err = s.service.Login(s.ctx, "alice", "secret123")
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "different1", model.RoleStudent)
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterEmptyUsername() {
	_, err := s.service.Register(s.ctx, "   ", "secret123", model.RoleStudent)
	s.ErrorIs(err, ErrUsernameRequired)
}

func (s *ServiceSuite) TestRegisterShortPassword() {
	_, err := s.service.Register(s.ctx, "alice", "short", model.RoleStudent)
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *ServiceSuite) TestRegisterInvalidRole() {
	_, err := s.service.Register(s.ctx, "alice", "secret123", "wizard")
	s.ErrorIs(err, ErrInvalidRole)
}

// Login tests

func (s *ServiceSuite) TestLogin() {
	registered, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	user, err := s.service.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	s.Equal(registered.ID, user.ID)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "wrongpass")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "secret123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Delete tests

func (s *ServiceSuite) TestDeleteUser() {
	admin, err := s.service.Register(s.ctx, "teach", "secret123", model.RoleAdmin)
	s.Require().NoError(err)
	student, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	err = s.service.DeleteUser(s.ctx, student.ID, admin.ID)
	s.Require().NoError(err)

	_, err = s.service.GetUser(s.ctx, student.ID)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestDeleteUserCascadesResults() {
	admin, err := s.service.Register(s.ctx, "teach", "secret123", model.RoleAdmin)
	s.Require().NoError(err)
	student, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	err = s.storage.SaveResult(s.ctx, &model.GameResult{
		ID:        "result-1",
		UserID:    student.ID,
		GameType:  model.GameTypeMathPractice,
		Score:     80,
		CreatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)

	err = s.service.DeleteUser(s.ctx, student.ID, admin.ID)
	s.Require().NoError(err)

	count, err := s.storage.CountResults(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *ServiceSuite) TestDeleteSelf() {
	admin, err := s.service.Register(s.ctx, "teach", "secret123", model.RoleAdmin)
	s.Require().NoError(err)

	err = s.service.DeleteUser(s.ctx, admin.ID, admin.ID)
	s.ErrorIs(err, model.ErrSelfDelete)

	// Account still exists
	_, err = s.service.GetUser(s.ctx, admin.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteUnknownUser() {
	err := s.service.DeleteUser(s.ctx, "nonexistent", "caller")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Avatar tests

func (s *ServiceSuite) TestUpdateAvatar() {
	user, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	updated, err := s.service.UpdateAvatar(s.ctx, user.ID, "avatar07.jpg")
	s.Require().NoError(err)
	s.Equal("avatar07.jpg", updated.Avatar)

	stored, err := s.service.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("avatar07.jpg", stored.Avatar)
}

func (s *ServiceSuite) TestUpdateAvatarEmpty() {
	user, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	_, err = s.service.UpdateAvatar(s.ctx, user.ID, "  ")
	s.ErrorIs(err, ErrAvatarRequired)
}

func (s *ServiceSuite) TestUpdateAvatarUnknownUser() {
	_, err := s.service.UpdateAvatar(s.ctx, "nonexistent", "avatar07.jpg")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// ListUsers

func (s *ServiceSuite) TestListUsers() {
	_, err := s.service.Register(s.ctx, "alice", "secret123", model.RoleStudent)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.service.Register(s.ctx, "bob", "secret123", model.RoleStudent)
	s.Require().NoError(err)

	users, err := s.service.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("bob", users[1].Username)
}
