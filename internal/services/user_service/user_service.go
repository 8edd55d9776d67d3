package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"solemate/internal/domain/models"
	"solemate/internal/lib/logger/sl"
	"solemate/internal/repository"
	"solemate/internal/storage"
	"solemate/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExist          = errors.New("user already exist")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoSession          = errors.New("no active session")
)

type UserService struct {
	log        *slog.Logger
	repo       repository.UserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
}

func NewUserService(log *slog.Logger, repo repository.UserRepository, sessions repository.SessionRepository, sessionTTL time.Duration) *UserService {
	return &UserService{
		log:        log,
		repo:       repo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *UserService) RegisterNewUser(ctx context.Context, input dto.SignupInput) (int64, error) {
	const op = "user_service.RegisterNewUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", input.Email),
	)

	log.Info("registering user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, input.ToDomain(passHash))
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists", sl.Err(err))

			return 0, fmt.Errorf("%s: %w", op, ErrUserExist)
		}

		log.Error("failed to save user", sl.Err(err))

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.Int64("user_id", id))

	return id, nil
}

// Login checks the credentials and opens a server-side session. The
// returned session id goes into the client cookie; the store keeps the
// id -> user mapping with the configured TTL.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	const op = "user_service.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login user")

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get user", sl.Err(err))

		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	sessionID := uuid.NewString()
	if err := s.sessions.SaveSession(ctx, sessionID, user.ID, s.sessionTTL); err != nil {
		log.Error("failed to save session", sl.Err(err))

		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in successfully")

	return user, sessionID, nil
}

// Logout is idempotent: an empty or unknown session id is not an error.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	const op = "user_service.Logout"

	if sessionID == "" {
		return nil
	}

	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.log.Error("failed to delete session", slog.String("op", op), sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *UserService) Profile(ctx context.Context, sessionID string) (models.User, error) {
	const op = "user_service.Profile"

	log := s.log.With(
		slog.String("op", op),
	)

	if sessionID == "" {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrNoSession)
	}

	userID, err := s.sessions.UserID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			log.Warn("session expired or unknown")

			return models.User{}, fmt.Errorf("%s: %w", op, ErrNoSession)
		}

		log.Error("failed to resolve session", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("session points at missing user", slog.Int64("user_id", userID))

			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		log.Error("failed to get user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
