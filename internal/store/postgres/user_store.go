package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/types"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a new user and returns the stored record with its
// generated ID and timestamp. Duplicate usernames map to store.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	stored := &types.User{
		Username: user.Username,
		Password: user.Password,
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, created_at`,
		user.Username, user.Password,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, store.ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return stored, nil
}

// GetUser retrieves a user by ID, returning store.ErrNotFound on a miss.
func (s *Store) GetUser(ctx context.Context, id int64) (*types.User, error) {
	return s.getUser(ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = $1`, id)
}

// GetUserByUsername retrieves a user by username, returning
// store.ErrNotFound on a miss.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.getUser(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`, username)
}

func (s *Store) getUser(ctx context.Context, query string, arg any) (*types.User, error) {
	user := &types.User{}
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
