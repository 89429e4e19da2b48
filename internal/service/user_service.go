package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// UserService handles account registration and lookup.
type UserService struct {
	userRepo UserStore
	log      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo UserStore, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates a new account. The email must not be in use; the password
// must already be hashed by the caller.
func (s *UserService) Register(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyUsed
	}

	user := &model.User{Name: name, Email: email, PasswordHash: passwordHash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-check and hit
		// the users.email unique constraint instead.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("User registered")
	return user, nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by id.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
