package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"solemate/internal/domain/models"
	"solemate/internal/storage"
	"solemate/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByID(ctx context.Context, userID int64) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) UserID(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	log := slog.Default()

	service := NewUserService(log, mockRepo, mockSessions, time.Hour)

	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	testUser := models.User{
		ID:       42,
		Name:     "Test",
		Email:    testEmail,
		Password: hashedPassword,
		Phone:    "12345",
	}

	t.Run("successful login opens a session", func(t *testing.T) {
		mockRepo.On("UserByEmail", ctx, testEmail).Return(testUser, nil).Once()
		mockSessions.On("SaveSession", ctx, mock.AnythingOfType("string"), int64(42), time.Hour).Return(nil).Once()

		user, sessionID, err := service.Login(ctx, testEmail, testPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		assert.Equal(t, testUser.Name, user.Name)
		assert.Equal(t, testUser.Email, user.Email)
		assert.Equal(t, testUser.Phone, user.Phone)
	})

	t.Run("invalid password", func(t *testing.T) {
		mockRepo.On("UserByEmail", ctx, testEmail).Return(testUser, nil).Once()

		_, _, err := service.Login(ctx, testEmail, "wrong_password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.On("UserByEmail", ctx, "nonexistent@example.com").
			Return(models.User{}, storage.ErrUserNotFound).Once()

		_, _, err := service.Login(ctx, "nonexistent@example.com", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.On("UserByEmail", ctx, testEmail).
			Return(models.User{}, errors.New("db error")).Once()

		_, _, err := service.Login(ctx, testEmail, testPassword)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	mockRepo.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
}

func TestUserService_RegisterNewUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	log := slog.Default()

	service := NewUserService(log, mockRepo, mockSessions, time.Hour)

	input := dto.SignupInput{
		Name:     "Test",
		Email:    "test@example.com",
		Password: "password123",
		Phone:    "12345",
		Address:  "Somewhere 1",
	}

	t.Run("successful registration stores a hash, not the password", func(t *testing.T) {
		mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
			return u.Email == input.Email &&
				bcrypt.CompareHashAndPassword(u.Password, []byte(input.Password)) == nil
		})).Return(int64(1), nil).Once()

		id, err := service.RegisterNewUser(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo.On("SaveUser", ctx, mock.AnythingOfType("models.User")).
			Return(int64(0), storage.ErrUserExists).Once()

		_, err := service.RegisterNewUser(ctx, input)
		assert.ErrorIs(t, err, ErrUserExist)
	})

	mockRepo.AssertExpectations(t)
}

func TestUserService_Profile(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	log := slog.Default()

	service := NewUserService(log, mockRepo, mockSessions, time.Hour)

	t.Run("empty session id", func(t *testing.T) {
		_, err := service.Profile(ctx, "")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("unknown session", func(t *testing.T) {
		mockSessions.On("UserID", ctx, "dead-session").
			Return(int64(0), storage.ErrSessionNotFound).Once()

		_, err := service.Profile(ctx, "dead-session")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("session points at deleted user", func(t *testing.T) {
		mockSessions.On("UserID", ctx, "orphan-session").Return(int64(7), nil).Once()
		mockRepo.On("UserByID", ctx, int64(7)).
			Return(models.User{}, storage.ErrUserNotFound).Once()

		_, err := service.Profile(ctx, "orphan-session")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("valid session", func(t *testing.T) {
		want := models.User{ID: 7, Name: "Test", Email: "t@e.com", Wallet: 12.5}
		mockSessions.On("UserID", ctx, "live-session").Return(int64(7), nil).Once()
		mockRepo.On("UserByID", ctx, int64(7)).Return(want, nil).Once()

		user, err := service.Profile(ctx, "live-session")
		require.NoError(t, err)
		assert.Equal(t, want, user)
	})

	mockRepo.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	log := slog.Default()

	service := NewUserService(log, mockRepo, mockSessions, time.Hour)

	t.Run("empty session id is a no-op", func(t *testing.T) {
		require.NoError(t, service.Logout(ctx, ""))
	})

	t.Run("deletes the stored session", func(t *testing.T) {
		mockSessions.On("DeleteSession", ctx, "live-session").Return(nil).Once()

		require.NoError(t, service.Logout(ctx, "live-session"))
	})

	mockSessions.AssertExpectations(t)
}
