package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func TestUserRegister(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.userSvc.Register(ctx, "Alice", "alice@example.com", "hashed-secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("registered user has no id")
	}

	got, err := env.userSvc.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != user.ID || got.Name != "Alice" {
		t.Errorf("got %+v, want the registered user", got)
	}
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.userSvc.Register(ctx, "Alice", "alice@example.com", "hash-one"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	if _, err := env.userSvc.Register(ctx, "Impostor", "alice@example.com", "hash-two"); !errors.Is(err, service.ErrEmailAlreadyUsed) {
		t.Errorf("got %v, want ErrEmailAlreadyUsed", err)
	}
}

// racingUserStore simulates a concurrent registration: the email lookup sees
// nothing, but the insert hits the unique constraint.
type racingUserStore struct{}

func (racingUserStore) Create(_ context.Context, _ *model.User) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
}

func (racingUserStore) FindByID(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return nil, pgx.ErrNoRows
}

func (racingUserStore) FindByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}

func TestUserRegisterConcurrentDuplicate(t *testing.T) {
	svc := service.NewUserService(racingUserStore{}, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hashed"); !errors.Is(err, service.ErrEmailAlreadyUsed) {
		t.Errorf("got %v, want ErrEmailAlreadyUsed", err)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	env := newTestEnv()

	if _, err := env.userSvc.GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestUserGetByID(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.userSvc.Register(ctx, "Alice", "alice@example.com", "hashed")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := env.userSvc.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("got email %q, want alice@example.com", got.Email)
	}

	if _, err := env.userSvc.GetByID(ctx, uuid.New()); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}
