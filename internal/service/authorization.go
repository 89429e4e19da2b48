package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/jackc/pgx/v5"
)

// resolveUser maps the authenticated principal's email to its account.
// A principal that cannot be resolved is an authorization failure.
func resolveUser(ctx context.Context, users UserStore, email string) (*model.User, error) {
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return user, nil
}
